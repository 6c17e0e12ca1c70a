package parser

import (
	"github.com/leapstack-labs/modelsql/pkg/token"
)

// Statement recognition. Only the first tokens of the input decide whether
// a statement is handled here; everything else is returned as Passthrough
// with its raw text untouched, so host statements never need to lex
// cleanly against the extension grammar.

// parseStatement dispatches on the leading tokens.
func (p *Parser) parseStatement() Statement {
	switch {
	case p.check(token.CREATE) && p.checkPeek(TokenModel):
		return p.parseCreateModel()
	case p.check(token.DESCRIBE) && p.checkPeek(TokenModel):
		return p.parseDescribeModel()
	case p.check(token.DROP) && p.checkPeek(TokenModel):
		return p.parseDropModel()
	case p.check(token.SHOW) && p.checkPeek(TokenModels):
		return p.parseShowModels()
	default:
		// Not a model statement: defer to the host parser.
		return &Passthrough{Start: p.token.Pos, SQL: p.input}
	}
}

// parseCreateModel parses CREATE MODEL <name> [USING '<uri>'].
//
// The grammar does not yet expose replace/table/options clauses; the
// command builder supplies their defaults.
func (p *Parser) parseCreateModel() Statement {
	stmt := &CreateModelStmt{Create: p.token.Pos}
	p.expect(token.CREATE)
	p.expect(TokenModel)

	stmt.Name = p.parseQualifiedName()

	if p.match(token.USING) {
		if !p.check(token.STRING) {
			p.addError(ErrExpectedURI)
			return stmt
		}
		stmt.URI = p.token.Literal
		p.nextToken()
	}

	p.expectEnd()
	return stmt
}

// parseDescribeModel parses DESCRIBE MODEL <name>.
func (p *Parser) parseDescribeModel() Statement {
	stmt := &DescribeModelStmt{Describe: p.token.Pos}
	p.expect(token.DESCRIBE)
	p.expect(TokenModel)

	stmt.Name = p.parseQualifiedName()

	p.expectEnd()
	return stmt
}

// parseDropModel parses DROP MODEL <name>.
func (p *Parser) parseDropModel() Statement {
	stmt := &DropModelStmt{Drop: p.token.Pos}
	p.expect(token.DROP)
	p.expect(TokenModel)

	stmt.Name = p.parseQualifiedName()

	p.expectEnd()
	return stmt
}

// parseShowModels parses SHOW MODELS.
func (p *Parser) parseShowModels() Statement {
	stmt := &ShowModelsStmt{Show: p.token.Pos}
	p.expect(token.SHOW)
	p.expect(TokenModels)

	p.expectEnd()
	return stmt
}

// parseQualifiedName parses identifier ("." identifier)*.
//
// Segments are leaf conversions: raw text for unquoted identifiers,
// dequoted text for quoted ones. Segment count is not validated here;
// the command builder applies the 1-or-2 segment rule.
func (p *Parser) parseQualifiedName() *QualifiedName {
	name := &QualifiedName{NamePos: p.token.Pos}

	for {
		switch {
		case p.check(token.IDENT):
			name.Parts = append(name.Parts, p.token.Literal)
			p.nextToken()
		case token.IsKeyword(p.token.Type) || token.IsDynamic(p.token.Type):
			// Non-reserved-keyword production: not supported yet.
			// Fail fast rather than silently treating it as a name.
			p.addError(ErrNonReservedKeyword, p.token.Type)
			return name
		default:
			p.addError(ErrExpectedModelName)
			return name
		}

		if !p.match(token.DOT) {
			return name
		}
	}
}

// expectEnd consumes an optional semicolon and requires EOF.
func (p *Parser) expectEnd() {
	p.match(token.SEMI)
	if !p.check(token.EOF) {
		p.addError(ErrTrailingInput, p.token.Literal)
	}
}
