package visitor

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	comaTerminatorToken = iota
	scopeBlockToken
)

var (
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	scopeBlockMatcher     = parsly.NewToken(scopeBlockToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
)

// TextVisitorOf creates a visitor over comma separated items, items are trimmed and empty items skipped.
// Items enclosed with {} are visited without braces and may contain commas.
func TextVisitorOf(text string) Visitor[int, interface{}] {
	return func(f func(key int, element interface{}) (bool, error)) error {
		cursor := parsly.NewCursor("", []byte(text), 0)
		index := 0
		for cursor.Pos < len(cursor.Input) {
			item := matchItem(cursor)
			if item == "" {
				continue
			}
			continueVisit, err := f(index, item)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
			index++
		}
		return nil
	}
}

func matchItem(cursor *parsly.Cursor) string {
	for cursor.Pos < len(cursor.Input) && cursor.Input[cursor.Pos] == ' ' {
		cursor.Pos++
	}
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		item := match.Text(cursor)
		cursor.MatchAny(comaTerminatorMatcher)
		return item[1 : len(item)-1]
	case comaTerminatorToken:
		item := match.Text(cursor)
		return strings.TrimSpace(item[:len(item)-1])
	}
	item := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return strings.TrimSpace(item)
}
