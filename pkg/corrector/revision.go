package corrector

import (
	"fmt"

	"github.com/miajio/nlsql/pkg/parser"
	"github.com/miajio/nlsql/pkg/trie"
)

// Field says which part of the query a revision patches.
type Field int

const (
	FieldEntity Field = iota
	FieldShownAttribute
	FieldConditionAttribute
)

func (f Field) String() string {
	switch f {
	case FieldEntity:
		return "entidad"
	case FieldShownAttribute:
		return "atributo_mostrar"
	case FieldConditionAttribute:
		return "atributo_condicion"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Revision describes one identifier that is not in the vocabulary.
// Index points into Attributes or Conditions; it is unused for entities.
type Revision struct {
	Field    Field
	Original string
	Index    int
}

func (r Revision) String() string {
	if r.Field == FieldEntity {
		return fmt.Sprintf("%s %q", r.Field, r.Original)
	}
	return fmt.Sprintf("%s[%d] %q", r.Field, r.Index, r.Original)
}

// Revisions lists every entity, shown attribute and condition attribute
// of q that vocab does not contain, in that order.
func Revisions(q parser.Query, vocab *trie.Trie) []Revision {
	var revs []Revision
	if q.HasEntity() && !vocab.Contains(q.Entity) {
		revs = append(revs, Revision{Field: FieldEntity, Original: q.Entity})
	}
	for i, a := range q.Attributes {
		if !vocab.Contains(a) {
			revs = append(revs, Revision{Field: FieldShownAttribute, Original: a, Index: i})
		}
	}
	for i, c := range q.Conditions {
		if c.Attribute != "" && !vocab.Contains(c.Attribute) {
			revs = append(revs, Revision{Field: FieldConditionAttribute, Original: c.Attribute, Index: i})
		}
	}
	return revs
}
