package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sosokker/pasathai/token"
)

func collect(src string) []token.Token {
	l := New(src, "")
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"ให้", token.LET},
		{"ฟังก์ชัน", token.FUNCTION},
		{"จริง", token.TRUE},
		{"เท็จ", token.FALSE},
		{"ถ้า", token.IF},
		{"ไม่งั้น", token.ELSE},
		{"คืนค่า", token.RETURN},
		{"ขณะที่", token.WHILE},
		{"ว่างเปล่า", token.NULL},
		{"สำหรับ", token.FOR},
		{"จาก", token.FROM},
		{"ถึง", token.TO},
		{"ก่อนถึง", token.BEFORE_TO},
	}
	for _, c := range cases {
		toks := collect(c.src)
		assert.Len(t, toks, 2)
		assert.Equal(t, c.kind, toks[0].Kind)
		assert.Equal(t, token.EOF, toks[1].Kind)
	}
}

func TestOperatorsAndDelimiters(t *testing.T) {
	toks := collect(`= + - ! * / % < > == != , ; ( ) { } [ ]`)
	want := []token.Kind{
		token.ASSIGN, token.PLUS, token.MINUS, token.BANG, token.ASTERISK,
		token.SLASH, token.PERCENT, token.LT, token.GT, token.EQ, token.NOT_EQ,
		token.COMMA, token.SEMICOLON, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET, token.EOF,
	}
	assert.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestColumnAccountingAcrossUTF8Keyword(t *testing.T) {
	toks := collect("ให้ x = 1")
	assert.Equal(t, token.LET, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Literal)
	assert.Equal(t, 1+len([]rune("ให้"))+1, toks[1].Column)
}

func TestStringEscapes(t *testing.T) {
	toks := collect(`"a\nb\t\"c\\d"`)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\t\"c\\d", toks[0].Literal)
}

func TestCommentsAndWhitespaceSkipped(t *testing.T) {
	toks := collect("1 # this is a comment\n+ 2")
	assert.Equal(t, []token.Kind{token.INT, token.PLUS, token.INT, token.EOF}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind, toks[3].Kind,
	})
}

func TestIllegalCharacterRecorded(t *testing.T) {
	l := New("@", "")
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Kind)
	assert.Equal(t, 1, l.Errors.Len())
	assert.Equal(t, "E100", l.Errors.All()[0].Code)
}

func TestIdentifierMixesThaiAndASCII(t *testing.T) {
	toks := collect("ตัวแปร_1")
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "ตัวแปร_1", toks[0].Literal)
}
