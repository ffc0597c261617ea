package parser

import (
	"strings"

	"github.com/miajio/nlsql/pkg/lexer"
	"github.com/miajio/nlsql/pkg/operator"
)

// Result is what a matching rule reports: how many structural changes it
// made to the query and how many tokens it consumed from the cursor.
type Result struct {
	Deltas   int
	Consumed int
}

// Rule tries to match at the cursor. It mutates st.query only when it
// matches.
type Rule struct {
	Name  string
	Match func(st *State) (Result, bool)
}

// State is the parse state handed to each rule.
type State struct {
	Tokens []lexer.Token
	Pos    int

	query   *Query
	tables  map[string]struct{}
	columns map[string]struct{}
}

// Query returns the query built so far.
func (st *State) Query() *Query { return st.query }

// at returns the token at i, or a zero token when i is out of range.
func (st *State) at(i int) (lexer.Token, bool) {
	if i < 0 || i >= len(st.Tokens) {
		return lexer.Token{}, false
	}
	return st.Tokens[i], true
}

func (st *State) literal(i int) string {
	t, _ := st.at(i)
	return t.Literal
}

func (st *State) isWord(i int) bool {
	t, ok := st.at(i)
	return ok && t.Kind == lexer.Word
}

func (st *State) addCondition(attr, op, value string) {
	st.query.Conditions = append(st.query.Conditions, Condition{
		Attribute: attr,
		Operator:  op,
		Value:     value,
	})
}

// copulas may sit between an attribute and its comparison phrase, as in
// "la edad es mayor a 30".
var copulas = map[string]struct{}{
	"es": {}, "sea": {}, "son": {}, "sean": {}, "está": {}, "están": {}, "fue": {},
}

var calledWords = map[string]struct{}{
	"llamado": {}, "llamados": {}, "llamada": {},
}

// DefaultRules returns the standard rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "date", Match: matchDate},
		{Name: "date-phrase", Match: matchDatePhrase},
		{Name: "action", Match: matchAction},
		{Name: "entity-indicator", Match: matchEntityIndicator},
		{Name: "known-name", Match: matchKnownName},
		{Name: "connector", Match: matchConnector},
		{Name: "con", Match: matchCon},
		{Name: "de", Match: matchDe},
		{Name: "llamado", Match: matchCalled},
		{Name: "se-llama", Match: matchSeLlama},
	}
}

// ExtendedRules is DefaultRules with two refinements: "de" does not take
// a word already listed as an attribute to show as the entity, and a
// noun after a determiner ("las ventas") names the entity when nothing
// else did.
func ExtendedRules() []Rule {
	rules := DefaultRules()
	for i := range rules {
		if rules[i].Name == "de" {
			rules[i].Match = matchDeSkipShown
		}
	}
	return append(rules, Rule{Name: "determiner-noun", Match: matchDeterminerNoun})
}

// matchDate handles a date written as a single token.
func matchDate(st *State) (Result, bool) {
	lit := st.literal(st.Pos)
	if !lexer.IsDate(lit) {
		return Result{}, false
	}
	st.addCondition("fecha", "=", lit)
	return Result{Deltas: 1, Consumed: 1}, true
}

// matchDatePhrase handles "en 21 de julio de 2025". The cursor sits on the
// first "de"; the phrase starts at the token before it.
func matchDatePhrase(st *State) (Result, bool) {
	i := st.Pos
	if st.literal(i) != "de" || i < 2 || st.literal(i-2) != "en" {
		return Result{}, false
	}
	phrase, n := lexer.JoinDate(st.Tokens, i-1)
	if n == 0 {
		return Result{}, false
	}
	st.addCondition("fecha", "=", phrase)
	// The day token before the cursor is already behind us.
	return Result{Deltas: 1, Consumed: n - 1}, true
}

// matchAction records the first action. Later actions are repeats.
func matchAction(st *State) (Result, bool) {
	t, _ := st.at(st.Pos)
	if t.Kind != lexer.Action || st.query.Action != "" {
		return Result{}, false
	}
	st.query.Action = t.Literal
	return Result{Deltas: 1, Consumed: 1}, true
}

// matchEntityIndicator handles "la tabla ventas".
func matchEntityIndicator(st *State) (Result, bool) {
	t, _ := st.at(st.Pos)
	if t.Kind != lexer.EntityIndicator || !st.isWord(st.Pos+1) {
		return Result{}, false
	}
	st.query.Entity = st.literal(st.Pos + 1)
	return Result{Deltas: 1, Consumed: 2}, true
}

// matchKnownName recognizes well-known table and column names while no
// entity is set.
func matchKnownName(st *State) (Result, bool) {
	t, _ := st.at(st.Pos)
	if t.Kind != lexer.Word || st.query.HasEntity() {
		return Result{}, false
	}
	if _, ok := st.tables[t.Literal]; ok {
		st.query.Entity = t.Literal
		return Result{Deltas: 1, Consumed: 1}, true
	}
	if _, ok := st.columns[t.Literal]; ok {
		st.query.Attributes = append(st.query.Attributes, t.Literal)
		return Result{Deltas: 1, Consumed: 1}, true
	}
	return Result{}, false
}

// matchConnector scans forward after "donde" or "que" for
// (attribute, op-word, op-word, value) windows. Dates met on the way
// become fecha conditions. The cursor jumps to wherever the scan stops.
func matchConnector(st *State) (Result, bool) {
	t, _ := st.at(st.Pos)
	if t.Kind != lexer.Connector || (t.Literal != "donde" && t.Literal != "que") {
		return Result{}, false
	}

	n := len(st.Tokens)
	deltas := 0
	j := st.Pos + 1
	for j < n-2 {
		if phrase, width := dateAt(st, j); width > 0 {
			st.addCondition("fecha", "=", phrase)
			deltas++
			j += width
			continue
		}
		if st.isWord(j) {
			if width, ok := conditionAt(st, j); ok {
				deltas++
				j += width
				continue
			}
		}
		j++
	}
	return Result{Deltas: deltas, Consumed: j - st.Pos}, true
}

// conditionAt tries to read a condition whose attribute is at j. It
// returns the number of tokens the condition spans.
func conditionAt(st *State, j int) (int, bool) {
	n := len(st.Tokens)
	attr := st.literal(j)

	if _, ok := copulas[st.literal(j+1)]; ok && j+4 < n {
		if op, valid := operator.Words(st.literal(j+2), st.literal(j+3)); valid {
			st.addCondition(attr, op, st.literal(j+4))
			return 5, true
		}
	}
	if j+3 < n {
		if op, valid := operator.Words(st.literal(j+1), st.literal(j+2)); valid {
			st.addCondition(attr, op, st.literal(j+3))
			return 4, true
		}
	}
	return 0, false
}

// dateAt reads a date literal or an "en <day> de <month> de <year>"
// phrase at j and returns it with the number of tokens it spans.
func dateAt(st *State, j int) (string, int) {
	if lit := st.literal(j); lexer.IsDate(lit) {
		return lit, 1
	}
	if st.literal(j) != "en" || st.literal(j+2) != "de" {
		return "", 0
	}
	phrase, n := lexer.JoinDate(st.Tokens, j+1)
	if n == 0 {
		return "", 0
	}
	return phrase, n + 1
}

// matchCon handles "con <attr> <op> <op> <value>".
func matchCon(st *State) (Result, bool) {
	i := st.Pos
	if st.literal(i) != "con" || i+4 >= len(st.Tokens) {
		return Result{}, false
	}
	op, ok := operator.Words(st.literal(i+2), st.literal(i+3))
	if !ok {
		return Result{}, false
	}
	st.addCondition(st.literal(i+1), op, st.literal(i+4))
	return Result{Deltas: 1, Consumed: 5}, true
}

// matchDe handles "empleados de sistemas": the word before "de" names the
// entity and the word after it the department.
func matchDe(st *State) (Result, bool) {
	return de(st, false)
}

// matchDeSkipShown is matchDe, except that a word already listed as an
// attribute to show is not taken as the entity.
func matchDeSkipShown(st *State) (Result, bool) {
	return de(st, true)
}

func de(st *State, skipShown bool) (Result, bool) {
	i := st.Pos
	if st.literal(i) != "de" || !st.isWord(i-1) {
		return Result{}, false
	}
	if next, ok := st.at(i + 1); ok && lexer.IsDate(next.Literal) {
		return Result{}, false
	}

	res := Result{Consumed: 1}
	prev := st.literal(i - 1)
	if !st.query.HasEntity() && !(skipShown && st.isShownAttribute(prev)) {
		st.query.Entity = prev
		res.Deltas++
	}
	if st.isWord(i + 1) {
		st.addCondition("dept", "=", strings.TrimRight(st.literal(i+1), "."))
		res.Deltas++
		res.Consumed = 2
	}
	return res, res.Deltas > 0
}

func (st *State) isShownAttribute(word string) bool {
	for _, a := range st.query.Attributes {
		if a == word {
			return true
		}
	}
	return false
}

// matchCalled handles "cliente llamado Lucia".
func matchCalled(st *State) (Result, bool) {
	i := st.Pos
	if _, ok := calledWords[st.literal(i)]; !ok || !st.isWord(i-1) {
		return Result{}, false
	}

	res := Result{Consumed: 1}
	if !st.query.HasEntity() {
		st.query.Entity = st.literal(i - 1)
		res.Deltas++
	}
	if next, ok := st.at(i + 1); ok {
		st.addCondition("nombre", "=", next.Literal)
		res.Deltas++
		res.Consumed = 2
	}
	return res, res.Deltas > 0
}

// matchSeLlama handles "cliente que se llama Pedro"; the entity sits three
// tokens before "llama".
func matchSeLlama(st *State) (Result, bool) {
	i := st.Pos
	lit := st.literal(i)
	if (lit != "llama" && lit != "llaman") || st.literal(i-1) != "se" {
		return Result{}, false
	}

	res := Result{Consumed: 1}
	if !st.query.HasEntity() && i >= 3 {
		st.query.Entity = st.literal(i - 3)
		res.Deltas++
	}
	if next, ok := st.at(i + 1); ok {
		st.addCondition("nombre", "=", next.Literal)
		res.Deltas++
		res.Consumed = 2
	}
	return res, res.Deltas > 0
}

// matchDeterminerNoun takes "las ventas" as the entity when nothing else
// named one. A noun followed by "de" is left to matchDe.
func matchDeterminerNoun(st *State) (Result, bool) {
	i := st.Pos
	if st.query.HasEntity() || !st.isWord(i) {
		return Result{}, false
	}
	if prev, ok := st.at(i - 1); !ok || prev.Kind != lexer.Quantifier {
		return Result{}, false
	}
	lit := st.literal(i)
	if st.literal(i+1) == "de" || lexer.IsDate(lit) || isNumber(lit) {
		return Result{}, false
	}
	st.query.Entity = lit
	return Result{Deltas: 1, Consumed: 1}, true
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
