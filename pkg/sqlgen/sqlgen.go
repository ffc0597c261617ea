// Package sqlgen renders a structured query as a SQL SELECT statement.
package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/parser"
)

// MissingEntity is the comment emitted instead of SQL when the query
// names no entity. Callers that only look at text see this string.
const MissingEntity = "-- No se puede generar consulta SQL: entidad desconocida."

// ErrMissingEntity is returned alongside MissingEntity.
var ErrMissingEntity = errors.New("sqlgen: query has no entity")

// Generate renders q. When q has no entity it returns MissingEntity and
// ErrMissingEntity. The output depends only on q, so regenerating an
// unchanged query yields the same text.
func Generate(q parser.Query) (string, error) {
	if !q.HasEntity() {
		return MissingEntity, ErrMissingEntity
	}

	fields := "*"
	if len(q.Attributes) > 0 {
		fields = strings.Join(q.Attributes, ", ")
	}
	sql := fmt.Sprintf("SELECT %s FROM %s", fields, q.Entity)

	if len(q.Conditions) > 0 {
		conds := make([]string, len(q.Conditions))
		for i, c := range q.Conditions {
			conds[i] = Condition(c)
		}
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	return sql, nil
}

// Render is Generate without the error, for callers that only need text.
func Render(q parser.Query) string {
	sql, _ := Generate(q)
	return sql
}

// Condition renders a single condition with type-aware quoting: long
// Spanish dates on "fecha" become DATE('YYYY-MM-DD'), numbers stay bare
// and everything else is single-quoted with embedded quotes doubled.
func Condition(c parser.Condition) string {
	if c.Attribute == "fecha" && lexer.LongDate.MatchString(c.Value) {
		value := c.Value
		if iso, ok := ISODate(value); ok {
			value = iso
		}
		return fmt.Sprintf("%s %s DATE(%s)", c.Attribute, c.Operator, quote(value))
	}
	if IsNumber(c.Value) {
		return fmt.Sprintf("%s %s %s", c.Attribute, c.Operator, c.Value)
	}
	return fmt.Sprintf("%s %s %s", c.Attribute, c.Operator, quote(c.Value))
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// IsNumber reports whether s is a non-negative integer or a decimal with
// a single dot.
func IsNumber(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
