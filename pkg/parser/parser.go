// Package parser recognizes model-management statements on top of a host
// SQL grammar.
//
// # Usage
//
//	stmt, err := parser.Parse("CREATE MODEL resnet USING 's3://bucket/model'")
//	if err != nil {
//	    // structural error: malformed recognized statement
//	}
//
// Statements that do not match a recognized shape are returned as
// *Passthrough values carrying the raw text, so the extended grammar
// stays a strict superset of the host grammar:
//
//	stmt, _ := parser.Parse("SELECT * FROM t")
//	pt := stmt.(*parser.Passthrough) // pt.SQL == "SELECT * FROM t"
//
// # Grammar Overview
//
//	statement      → create_model | describe_model | drop_model
//	               | show_models | passthrough
//	create_model   → CREATE MODEL qualified_name [USING string]
//	describe_model → DESCRIBE MODEL qualified_name
//	drop_model     → DROP MODEL qualified_name
//	show_models    → SHOW MODELS
//	qualified_name → identifier ("." identifier)*
package parser

import (
	"github.com/leapstack-labs/modelsql/pkg/token"
)

// Extension keywords. Registered dynamically so the host token set stays
// untouched, mirroring how dialect keywords are added to a host grammar.
var (
	TokenModel  = token.Register("MODEL")
	TokenModels = token.Register("MODELS")
)

// Parser recognizes a single statement from a token stream.
type Parser struct {
	input  string
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given statement text.
func NewParser(sql string) *Parser {
	p := &Parser{
		input: sql,
		lexer: NewLexer(sql),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse recognizes a single statement. Model-management statements are
// returned as typed nodes; anything else comes back as *Passthrough. A
// non-nil error means a recognized statement shape was malformed.
func Parse(sql string) (Statement, error) {
	p := NewParser(sql)
	stmt := p.parseStatement()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmt, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(ErrUnexpectedToken, p.token.Type, t)
	return false
}

// addError adds a parse error at the current token.
func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, NewParseError(p.token.Pos, format, args...))
}
