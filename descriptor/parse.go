package descriptor

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// maxArrayBytes limits memory of array types built from text
const maxArrayBytes = 1 << 30

const (
	whitespaceToken = iota
	pointerToken
	bracketBlockToken
	interfaceToken
	identifierToken
)

var (
	whitespaceMatcher   = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	pointerMatcher      = parsly.NewToken(pointerToken, "*", matcher.NewByte('*'))
	bracketBlockMatcher = parsly.NewToken(bracketBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
	interfaceMatcher    = parsly.NewToken(interfaceToken, "interface{}", matcher.NewFragment("interface{}"))
	identifierMatcher   = parsly.NewToken(identifierToken, "identifier", &identifier{})
)

var predeclared = NewTypes()

var emptyInterfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

type (
	identifier struct{}

	unresolvedError struct {
		name string
	}
)

func (e *unresolvedError) Error() string {
	return fmt.Sprintf("unknown type: %v", e.name)
}

// Match matches qualified identifier, i.e. int, time.Time, github.com/acme/model.Vendor
func (i *identifier) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	size := 0
	for size < len(input) {
		r := rune(input[size])
		if r == '_' || unicode.IsLetter(r) || (size > 0 && (unicode.IsDigit(r) || r == '.' || r == '/' || r == '-')) {
			size++
			continue
		}
		break
	}
	return size
}

// Parse parses Go type expression, i.e. []int, map[string]*time.Time, [4]byte.
// Named types are looked up in supplied types (predeclared catalog when nil);
// when a name can not be resolved a symbolic descriptor is returned.
func Parse(expr string, types *Types) (*Type, error) {
	if types == nil {
		types = predeclared
	}
	rType, err := parseExpr(expr, types)
	if err != nil {
		if _, ok := err.(*unresolvedError); ok {
			return Symbol(strings.TrimSpace(expr)), nil
		}
		return nil, err
	}
	return Of(rType), nil
}

func parseExpr(expr string, types *Types) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("type expression was empty")
	}
	cursor := parsly.NewCursor("", []byte(expr), 0)
	rType, err := parseType(cursor, types)
	if err != nil {
		return nil, err
	}
	if cursor.Pos < len(cursor.Input) {
		return nil, fmt.Errorf("invalid type expression: %v, unexpected: %s", expr, cursor.Input[cursor.Pos:])
	}
	return rType, nil
}

func parseType(cursor *parsly.Cursor, types *Types) (reflect.Type, error) {
	match := cursor.MatchAfterOptional(whitespaceMatcher, pointerMatcher, bracketBlockMatcher, interfaceMatcher, identifierMatcher)
	switch match.Code {
	case pointerToken:
		elem, err := parseType(cursor, types)
		if err != nil {
			return nil, err
		}
		return reflect.PtrTo(elem), nil
	case bracketBlockToken:
		block := match.Text(cursor)
		size := strings.TrimSpace(block[1 : len(block)-1])
		elem, err := parseType(cursor, types)
		if err != nil {
			return nil, err
		}
		if size == "" {
			return reflect.SliceOf(elem), nil
		}
		length, err := strconv.Atoi(size)
		if err != nil || length < 0 {
			return nil, fmt.Errorf("invalid array length: %v", size)
		}
		if elem.Size() > 0 && uint64(length) > maxArrayBytes/uint64(elem.Size()) {
			return nil, fmt.Errorf("array [%v]%v exceeds %v bytes", size, elem, maxArrayBytes)
		}
		return reflect.ArrayOf(length, elem), nil
	case interfaceToken:
		return emptyInterfaceType, nil
	case identifierToken:
		name := match.Text(cursor)
		if name == "map" {
			return parseMap(cursor, types)
		}
		rType, ok := types.Lookup(name)
		if !ok {
			return nil, &unresolvedError{name: name}
		}
		return rType, nil
	}
	return nil, fmt.Errorf("invalid type expression at %v: %s", cursor.Pos, cursor.Input)
}

func parseMap(cursor *parsly.Cursor, types *Types) (reflect.Type, error) {
	match := cursor.MatchAny(bracketBlockMatcher)
	if match.Code != bracketBlockToken {
		return nil, fmt.Errorf("invalid map expression at %v: %s", cursor.Pos, cursor.Input)
	}
	block := match.Text(cursor)
	key, err := parseExpr(block[1:len(block)-1], types)
	if err != nil {
		return nil, err
	}
	if !key.Comparable() {
		return nil, fmt.Errorf("invalid map key type: %v", key)
	}
	value, err := parseType(cursor, types)
	if err != nil {
		return nil, err
	}
	return reflect.MapOf(key, value), nil
}
