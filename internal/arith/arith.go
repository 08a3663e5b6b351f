// Package arith evaluates the restricted arithmetic grammar accepted by the
// numeric items' FromString: numeric literals (decimal point, e-notation),
// parentheses, unary sign and the + - * / operators. Nothing else parses, so
// text coming from an edit widget can never reach a general evaluator.
package arith

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	value float64
	pos   int
}

// Eval parses and evaluates the expression. Any lexical or syntactic problem,
// as well as division by zero, is reported as an error; callers downgrade it
// to a conversion failure.
func Eval(input string) (float64, error) {
	toks, err := lex(input)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks}
	out, err := p.expr()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return 0, fmt.Errorf("arith: unexpected input at offset %d", tok.pos)
	}
	return out, nil
}

func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			i = scanNumber(input, i)
			text := input[start:i]
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("arith: bad number %q at offset %d", text, start)
			}
			toks = append(toks, token{kind: tokNumber, value: value, pos: start})
		default:
			return nil, fmt.Errorf("arith: unexpected character %q at offset %d", string(c), i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

// scanNumber consumes digits, at most one decimal point and an optional
// exponent part ("e" or "E", signed digits).
func scanNumber(input string, i int) int {
	seenDot := false
	for i < len(input) {
		c := input[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i+1 < len(input) {
			j := i + 1
			if input[j] == '+' || input[j] == '-' {
				j++
			}
			if j < len(input) && input[j] >= '0' && input[j] <= '9' {
				i = j + 1
				for i < len(input) && input[i] >= '0' && input[i] <= '9' {
					i++
				}
			}
		}
		break
	}
	return i
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left += right
		case tokMinus:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokSlash:
			tok := p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("arith: division by zero at offset %d", tok.pos)
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		value, err := p.unary()
		if err != nil {
			return 0, err
		}
		return -value, nil
	case tokPlus:
		p.next()
		return p.unary()
	default:
		return p.primary()
	}
}

func (p *parser) primary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return tok.value, nil
	case tokLParen:
		value, err := p.expr()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return 0, fmt.Errorf("arith: missing closing parenthesis at offset %d", closing.pos)
		}
		return value, nil
	case tokEOF:
		return 0, fmt.Errorf("arith: unexpected end of expression")
	default:
		return 0, fmt.Errorf("arith: unexpected token at offset %d", tok.pos)
	}
}

// Looks reports whether the text even looks like an arithmetic expression,
// mirroring the permissive character gate the grammar replaces. Used to keep
// obviously non-numeric text out of the parser without spending a full parse.
func Looks(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("+-*/().eE \t", r):
		default:
			return false
		}
	}
	return true
}
