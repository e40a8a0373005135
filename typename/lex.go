package typename

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	clauseToken = iota
)

var clauseMatcher = parsly.NewToken(clauseToken, "< .... >", matcher.NewBlock('<', '>', '\\'))

func isIdentByte(b byte) bool {
	return b == '_' || b == ':' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
