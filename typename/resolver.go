// Package typename resolves an inspected type to its dispatch key: the
// qualifier, typedef and template-clause stripped base name.
package typename

import (
	"github.com/viant/parsly"

	"github.com/korindev/inspect/types"
)

// Split separates a tag of the shape identifier(<...>)? into the identifier
// and its bracketed clause ("" when absent). ok is false when the whole tag
// does not match that shape.
func Split(tag string) (base string, clause string, ok bool) {
	end := 0
	for end < len(tag) && isIdentByte(tag[end]) {
		end++
	}
	if end == 0 {
		return "", "", false
	}
	base = tag[:end]
	if end == len(tag) {
		return base, "", true
	}
	cursor := parsly.NewCursor("", []byte(tag[end:]), 0)
	match := cursor.MatchOne(clauseMatcher)
	if match.Code != clauseToken {
		return "", "", false
	}
	clause = match.Text(cursor)
	if cursor.Pos < len(cursor.Input) {
		return "", "", false
	}
	return base, clause, true
}

// Resolve strips a type down to its tag and returns the base name used for
// formatter dispatch. ok is false for tagless types and for tags that do not
// match identifier(<...>)? — the ordinary dispatch-miss outcome.
func Resolve(t *types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if t.Kind == types.Ref {
		t = t.Elem
	}
	tag := t.Tag()
	if tag == "" {
		return "", false
	}
	base, _, ok := Split(tag)
	if !ok {
		return "", false
	}
	return base, true
}
