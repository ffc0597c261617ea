// Package semantic renders a structured query back into Spanish, as an
// explanation of what was understood.
package semantic

import (
	"fmt"
	"strings"

	"github.com/miajio/nlsql/pkg/parser"
)

// MissingEntity is returned by Sentence when the query names no entity.
const MissingEntity = "-- No se puede generar consulta en LN: entidad desconocida."

var operatorWords = map[string]string{
	"=":  "igual",
	">":  "mayor",
	"<":  "menor",
	">=": "mayor o igual",
	"<=": "menor o igual",
	"!=": "diferente",
	"<>": "diferente",
}

// OperatorWord returns the Spanish word for op, or op itself when unknown.
func OperatorWord(op string) string {
	if w, ok := operatorWords[op]; ok {
		return w
	}
	return op
}

// Conditions joins every condition as "<attribute> <word> <value>" with " y ".
func Conditions(conds []parser.Condition) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = fmt.Sprintf("%s %s %s", c.Attribute, OperatorWord(c.Operator), c.Value)
	}
	return strings.Join(parts, " y ")
}

// Sentence renders the whole query as a Spanish request.
func Sentence(q parser.Query) string {
	if !q.HasEntity() {
		return MissingEntity
	}
	s := "selecciona * de " + q.Entity
	if conds := Conditions(q.Conditions); conds != "" {
		s += " donde " + conds
	}
	return s + "."
}
