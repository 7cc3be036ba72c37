package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-dropcap/pkg/visibility"
)

// Evaluator interprets show-if rules over string property values.
//
// Supported forms:
//   - flag checks: `use_gradient` (true unless empty, "off", "false" or "0")
//   - comparisons: `gradient_type == radial`, `size != "cover"`, `count == 3`
//   - composition: `a && !b`, `(a || b) && c == on`
//
// Bare words on the right of a comparison are string literals.
type Evaluator struct{}

var _ visibility.Evaluator = (*Evaluator)(nil)

func New() *Evaluator { return &Evaluator{} }

// Eval implements visibility.Evaluator. An empty rule is always true.
func (e *Evaluator) Eval(_ string, rule string, values map[string]string) (bool, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return true, nil
	}
	tokens, err := tokenize(rule)
	if err != nil {
		return false, err
	}
	node, err := parse(tokens)
	if err != nil {
		return false, err
	}
	return node.eval(values), nil
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenString
	tokenEq
	tokenNeq
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	raw  string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isOperator(c byte) bool {
	return c == '(' || c == ')' || c == '!' || c == '=' || c == '&' || c == '|'
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	pair := func(i int, want byte, kind tokenKind, raw string) (int, error) {
		if i+1 >= len(input) || input[i+1] != want {
			return i, fmt.Errorf("visibility/expr: unexpected %q; use %q", input[i], raw)
		}
		tokens = append(tokens, token{kind: kind, raw: raw})
		return i + 2, nil
	}

	for i := 0; i < len(input); {
		c := input[i]
		var err error
		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, raw: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, raw: ")"})
			i++
		case c == '!':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, token{kind: tokenNeq, raw: "!="})
				i += 2
				continue
			}
			tokens = append(tokens, token{kind: tokenNot, raw: "!"})
			i++
		case c == '=':
			i, err = pair(i, '=', tokenEq, "==")
		case c == '&':
			i, err = pair(i, '&', tokenAnd, "&&")
		case c == '|':
			i, err = pair(i, '|', tokenOr, "||")
		case c == '"' || c == '\'':
			end := strings.IndexByte(input[i+1:], c)
			if end < 0 {
				return nil, errors.New("visibility/expr: unterminated string literal")
			}
			tokens = append(tokens, token{kind: tokenString, raw: input[i+1 : i+1+end]})
			i += end + 2
		default:
			start := i
			for i < len(input) && !isSpace(input[i]) && !isOperator(input[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenWord, raw: input[start:i]})
		}
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

type node interface {
	eval(values map[string]string) bool
}

type orNode struct{ left, right node }

func (n orNode) eval(values map[string]string) bool {
	return n.left.eval(values) || n.right.eval(values)
}

type andNode struct{ left, right node }

func (n andNode) eval(values map[string]string) bool {
	return n.left.eval(values) && n.right.eval(values)
}

type notNode struct{ inner node }

func (n notNode) eval(values map[string]string) bool {
	return !n.inner.eval(values)
}

type flagNode struct{ key string }

func (n flagNode) eval(values map[string]string) bool {
	return flagOn(values[n.key])
}

type compareNode struct {
	key    string
	negate bool
	want   string
}

func (n compareNode) eval(values map[string]string) bool {
	return equal(strings.TrimSpace(values[n.key]), n.want) != n.negate
}

// equal compares numerically when both sides are numbers, so "3" matches
// "3.0".
func equal(got, want string) bool {
	a, errA := strconv.ParseFloat(got, 64)
	b, errB := strconv.ParseFloat(want, 64)
	if errA == nil && errB == nil {
		return a == b
	}
	return got == want
}

func flagOn(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "off", "false", "0", "no":
		return false
	default:
		return true
	}
}

type stream struct {
	tokens []token
	pos    int
}

func (s *stream) match(kind tokenKind) bool {
	if s.pos < len(s.tokens) && s.tokens[s.pos].kind == kind {
		s.pos++
		return true
	}
	return false
}

func (s *stream) next() (token, bool) {
	if s.pos >= len(s.tokens) {
		return token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func parse(tokens []token) (node, error) {
	s := &stream{tokens: tokens}
	n, err := parseOr(s)
	if err != nil {
		return nil, err
	}
	if s.pos < len(s.tokens) {
		return nil, fmt.Errorf("visibility/expr: unexpected token %q", s.tokens[s.pos].raw)
	}
	return n, nil
}

func parseOr(s *stream) (node, error) {
	left, err := parseAnd(s)
	if err != nil {
		return nil, err
	}
	for s.match(tokenOr) {
		right, err := parseAnd(s)
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func parseAnd(s *stream) (node, error) {
	left, err := parseUnary(s)
	if err != nil {
		return nil, err
	}
	for s.match(tokenAnd) {
		right, err := parseUnary(s)
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func parseUnary(s *stream) (node, error) {
	if s.match(tokenNot) {
		inner, err := parseUnary(s)
		if err != nil {
			return nil, err
		}
		return notNode{inner: inner}, nil
	}
	return parsePrimary(s)
}

func parsePrimary(s *stream) (node, error) {
	if s.match(tokenLParen) {
		inner, err := parseOr(s)
		if err != nil {
			return nil, err
		}
		if !s.match(tokenRParen) {
			return nil, errors.New("visibility/expr: missing closing ')'")
		}
		return inner, nil
	}

	tok, ok := s.next()
	if !ok {
		return nil, errors.New("visibility/expr: empty expression")
	}
	if tok.kind != tokenWord {
		return nil, fmt.Errorf("visibility/expr: expected field name, got %q", tok.raw)
	}

	negate := false
	switch {
	case s.match(tokenEq):
	case s.match(tokenNeq):
		negate = true
	default:
		return flagNode{key: tok.raw}, nil
	}

	lit, ok := s.next()
	if !ok || (lit.kind != tokenWord && lit.kind != tokenString) {
		return nil, fmt.Errorf("visibility/expr: missing value after %q", tok.raw)
	}
	return compareNode{key: tok.raw, negate: negate, want: lit.raw}, nil
}
