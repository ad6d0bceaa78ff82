package parser

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/token"
)

// parseStatement dispatches on curToken.Kind over the top-level
// statement grammar.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `ให้ name = value [;]`.
func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.IDENT, "let statement") {
		return nil
	}
	name := &ast.Identifier{Base: ast.Base{Tok: p.curToken}, Name: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN, "let statement") {
		return nil
	}
	p.nextToken()

	value := p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.LetStatement{Base: ast.Base{Tok: tok}, Name: name, Value: value}
}

// parseReturnStatement parses `คืนค่า value [;]`.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()

	value := p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ReturnStatement{Base: ast.Base{Tok: tok}, Value: value}
}

// parseWhileStatement parses `ขณะที่ (cond) { body }`.
func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.LPAREN, "while condition") {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN, "while condition") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, "while body") {
		return nil
	}
	body := p.parseBlockStatement()

	return &ast.WhileStatement{Base: ast.Base{Tok: tok}, Condition: condition, Body: body}
}

// parseForStatement parses
// `สำหรับ var จาก start (ถึง|ก่อนถึง) end { body }`.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken

	if !p.expectPeek(token.IDENT, "for loop variable") {
		return nil
	}
	loopVar := &ast.Identifier{Base: ast.Base{Tok: p.curToken}, Name: p.curToken.Literal}

	if !p.expectPeek(token.FROM, "for loop range") {
		return nil
	}
	p.nextToken()
	start := p.parseExpression(LOWEST)

	var inclusive bool
	switch {
	case p.peekIs(token.TO):
		p.nextToken()
		inclusive = true
	case p.peekIs(token.BEFORE_TO):
		p.nextToken()
		inclusive = false
	default:
		p.peekError(token.TO, "for loop range")
		return nil
	}

	p.nextToken()
	end := p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE, "for loop body") {
		return nil
	}
	body := p.parseBlockStatement()

	return &ast.ForStatement{
		Base:      ast.Base{Tok: tok},
		Var:       loopVar,
		Start:     start,
		End:       end,
		Inclusive: inclusive,
		Body:      body,
	}
}

// parseExpressionStatement parses a bare expression used as a statement,
// the fallback when no other statement keyword matches.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ExpressionStatement{Base: ast.Base{Tok: tok}, Expression: expr}
}

// parseBlockStatement parses a `{ stmt... }` block. curToken is the `{`
// on entry; it returns with curToken on the matching `}` (or EOF, if the
// block was never closed).
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.curToken
	block := &ast.BlockStatement{Base: ast.Base{Tok: tok}}

	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}
