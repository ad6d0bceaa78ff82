// Package parser implements a Pratt (operator-precedence) parser:
// single-token lookahead over the lexer's token stream, per-token-kind
// prefix/infix parselet dispatch, and non-aborting error recovery into a
// diagnostics.List.
//
// The parselet-map architecture registers a prefix or infix function per
// token.Kind and climbs precedence by comparing the current operator's
// binding power against the next token's, narrowed here to this
// language's closed operator/keyword set.
package parser

import (
	"strconv"

	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/diagnostics"
	"github.com/Sosokker/pasathai/lexer"
	"github.com/Sosokker/pasathai/token"
)

// Precedence levels, lowest first.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x
	CALL        // f(x) a[i]
)

var precedences = map[token.Kind]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes tokens from a *lexer.Lexer and builds an *ast.Program,
// accumulating diagnostics.Error values instead of aborting on the first
// problem.
type Parser struct {
	l        *lexer.Lexer
	filename string
	source   string

	curToken  token.Token
	peekToken token.Token

	Errors diagnostics.List

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New builds a Parser over l, primes cur/peek with the first two tokens,
// and registers every prefix/infix parselet this grammar needs. source
// is the original text (used only to build diagnostic excerpts);
// filename may be empty.
func New(l *lexer.Lexer, source, filename string) *Parser {
	p := &Parser{l: l, source: source, filename: filename}

	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBoolean,
		token.FALSE:    p.parseBoolean,
		token.NULL:     p.parseNull,
		token.BANG:     p.parsePrefixExpression,
		token.MINUS:    p.parsePrefixExpression,
		token.IF:       p.parseIfExpression,
		token.FUNCTION: p.parseFunctionLiteral,
		token.LBRACKET: p.parseArrayLiteral,
	}

	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

// expectPeek advances past peekToken if it has kind k; otherwise it
// records a diagnostic through peekError (E201 "missing X" for a closing
// delimiter, E200 "expected X, got Y" otherwise) and leaves the cursor in
// place so the caller can decide how to recover.
func (p *Parser) expectPeek(k token.Kind, context string) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k, context)
	return false
}

func (p *Parser) loc(tok token.Token) diagnostics.Location {
	return diagnostics.Location{
		Filename:    p.filename,
		StartLine:   tok.Line,
		StartColumn: tok.Column,
		EndLine:     tok.Line,
		EndColumn:   tok.Column + len([]rune(tok.Literal)),
	}
}

func (p *Parser) errorAt(tok token.Token, code, message string) {
	loc := p.loc(tok)
	err := diagnostics.New(diagnostics.Parse, diagnostics.SeverityError, message).
		WithCode(code).
		WithSpan(loc, diagnostics.SourceLine(p.source, tok.Line), "").
		Build()
	p.Errors.Append(err)
}

// isClosingDelimiter reports whether k closes a bracketed construct
// (call arguments, array literals, index expressions, parenthesized
// conditions, block bodies) rather than introducing one.
func isClosingDelimiter(k token.Kind) bool {
	switch k {
	case token.RPAREN, token.RBRACE, token.RBRACKET:
		return true
	default:
		return false
	}
}

// peekError reports an expectPeek failure. A missing closing delimiter
// (`)`, `}`, `]`) gets its own E201 shape, distinct from E200's general
// "expected X, got Y" shape, so callers can match on code rather than
// parsing message text.
func (p *Parser) peekError(want token.Kind, context string) {
	if isClosingDelimiter(want) {
		msg := "missing " + string(want)
		if context != "" {
			msg = context + ": " + msg
		}
		p.errorAt(p.peekToken, "E201", msg)
		return
	}

	msg := "expected " + string(want) + ", got " + string(p.peekToken.Kind) + " instead"
	if context != "" {
		msg = context + ": " + msg
	}
	p.errorAt(p.peekToken, "E200", msg)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errorAt(tok, "E202", "no prefix parse function for '"+tok.Literal+"'")
}

// ParseProgram repeatedly parses a top-level statement until EOF. nil
// statements (from a recovered error) are skipped rather than appended.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorAt(tok, "E203", "could not parse '"+tok.Literal+"' as an integer")
		return nil
	}
	return &ast.IntegerLiteral{Base: ast.Base{Tok: tok}, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Base: ast.Base{Tok: p.curToken}, Value: p.curToken.Literal}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Base: ast.Base{Tok: p.curToken}, Name: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Base: ast.Base{Tok: p.curToken}, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseNull() ast.Expression {
	return &ast.NullLiteral{Base: ast.Base{Tok: p.curToken}}
}
