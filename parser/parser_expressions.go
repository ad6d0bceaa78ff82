package parser

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/token"
)

// parseExpression implements the Pratt precedence climb: find a prefix
// parselet for curToken, then fold in infix operators while the next
// token is not `;` and binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.curToken.Kind]
	if !ok {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.PrefixExpression{Base: ast.Base{Tok: tok}, Operator: tok.Literal, Right: right}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.InfixExpression{Base: ast.Base{Tok: tok}, Left: left, Operator: tok.Literal, Right: right}
}

// parseIfExpression parses `ถ้า (cond) { then } [ไม่งั้น { else }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.curToken

	if !p.expectPeek(token.LPAREN, "if condition") {
		return nil
	}
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN, "if condition") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, "if body") {
		return nil
	}
	then := p.parseBlockStatement()

	node := &ast.IfExpression{Base: ast.Base{Tok: tok}, Condition: condition, Then: then}

	if p.peekIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE, "else body") {
			return nil
		}
		node.Else = p.parseBlockStatement()
	}
	return node
}

// parseFunctionLiteral parses `ฟังก์ชัน(params) { body }`.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.curToken

	if !p.expectPeek(token.LPAREN, "function parameters") {
		return nil
	}
	params := p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE, "function body") {
		return nil
	}
	body := p.parseBlockStatement()

	return &ast.FunctionLiteral{Base: ast.Base{Tok: tok}, Params: params, Body: body}
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Base: ast.Base{Tok: p.curToken}, Name: p.curToken.Literal})

	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Base: ast.Base{Tok: p.curToken}, Name: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN, "function parameters") {
		return nil
	}
	return params
}

// parseCallExpression parses `callee(args...)`, entered as an infix
// parselet on `(`.
func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.RPAREN, "call arguments")
	return &ast.CallExpression{Base: ast.Base{Tok: tok}, Callee: callee, Args: args}
}

// parseArrayLiteral parses `[e1, e2, ...]`.
func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(token.RBRACKET, "array elements")
	return &ast.ArrayLiteral{Base: ast.Base{Tok: tok}, Elements: elements}
}

// parseIndexExpression parses `array[index]`, entered as an infix
// parselet on `[`.
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET, "index expression") {
		return nil
	}
	return &ast.IndexExpression{Base: ast.Base{Tok: tok}, Array: left, Index: index}
}

// parseExpressionList parses a comma-separated list of expressions up to
// and including end, shared by call arguments and array literals.
func (p *Parser) parseExpressionList(end token.Kind, context string) []ast.Expression {
	var list []ast.Expression

	if p.peekIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end, context) {
		return nil
	}
	return list
}
