package parser

import (
	"fmt"
	"strings"
)

// Condition is one comparison in the WHERE clause.
type Condition struct {
	Attribute string `json:"atributo"`
	Operator  string `json:"operador"`
	Value     string `json:"valor"`
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Attribute, c.Operator, c.Value)
}

// Query is the structured form of a question. Empty Action or Entity
// means the parser did not find one. Conditions keep encounter order and
// are never merged, so two conditions on the same attribute both survive.
type Query struct {
	Action     string      `json:"accion,omitempty"`
	Entity     string      `json:"entidad,omitempty"`
	Attributes []string    `json:"atributos_mostrar,omitempty"`
	Conditions []Condition `json:"condiciones"`
}

// HasEntity reports whether an entity was recognized.
func (q Query) HasEntity() bool { return q.Entity != "" }

// Clone returns a deep copy of q.
func (q Query) Clone() Query {
	out := q
	if q.Attributes != nil {
		out.Attributes = append([]string(nil), q.Attributes...)
	}
	if q.Conditions != nil {
		out.Conditions = append([]Condition(nil), q.Conditions...)
	}
	return out
}

func (q Query) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "accion=%q entidad=%q", q.Action, q.Entity)
	if len(q.Attributes) > 0 {
		fmt.Fprintf(&b, " atributos=%v", q.Attributes)
	}
	conds := make([]string, len(q.Conditions))
	for i, c := range q.Conditions {
		conds[i] = c.String()
	}
	fmt.Fprintf(&b, " condiciones=[%s]", strings.Join(conds, "; "))
	return b.String()
}
