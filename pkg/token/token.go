// Package token defines the token types for SQL statement recognition.
//
// Host-grammar tokens are defined as constants (IDs 0-999) for switch
// performance. Extension keywords (MODEL, MODELS, ...) are registered
// dynamically via Register() so the extended grammar stays a strict
// superset of the host grammar.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	DPIPE    // ||
	EQ       // =
	NE       // != or <>
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	DOT      // .
	COMMA    // ,
	SEMI     // ;
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	// Host keywords (alphabetical)
	ALL
	AND
	AS
	BY
	CREATE
	DELETE
	DESCRIBE
	DISTINCT
	DROP
	EXISTS
	FALSE
	FROM
	GROUP
	IF
	IN
	INSERT
	INTO
	IS
	JOIN
	LIKE
	LIMIT
	NOT
	NULL
	ON
	OR
	ORDER
	REPLACE
	SELECT
	SET
	SHOW
	TABLE
	TRUE
	UPDATE
	USING
	VALUES
	VIEW
	WHERE
	WITH

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	// Check dynamic tokens first
	if name, ok := getDynamicName(t); ok {
		return name
	}
	// Then check builtin tokens
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	DPIPE:    "||",
	EQ:       "=",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	DOT:      ".",
	COMMA:    ",",
	SEMI:     ";",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",

	ALL:      "ALL",
	AND:      "AND",
	AS:       "AS",
	BY:       "BY",
	CREATE:   "CREATE",
	DELETE:   "DELETE",
	DESCRIBE: "DESCRIBE",
	DISTINCT: "DISTINCT",
	DROP:     "DROP",
	EXISTS:   "EXISTS",
	FALSE:    "FALSE",
	FROM:     "FROM",
	GROUP:    "GROUP",
	IF:       "IF",
	IN:       "IN",
	INSERT:   "INSERT",
	INTO:     "INTO",
	IS:       "IS",
	JOIN:     "JOIN",
	LIKE:     "LIKE",
	LIMIT:    "LIMIT",
	NOT:      "NOT",
	NULL:     "NULL",
	ON:       "ON",
	OR:       "OR",
	ORDER:    "ORDER",
	REPLACE:  "REPLACE",
	SELECT:   "SELECT",
	SET:      "SET",
	SHOW:     "SHOW",
	TABLE:    "TABLE",
	TRUE:     "TRUE",
	UPDATE:   "UPDATE",
	USING:    "USING",
	VALUES:   "VALUES",
	VIEW:     "VIEW",
	WHERE:    "WHERE",
	WITH:     "WITH",
}

// keywords maps lowercase keyword text to its token type.
var keywords = map[string]TokenType{
	"all":      ALL,
	"and":      AND,
	"as":       AS,
	"by":       BY,
	"create":   CREATE,
	"delete":   DELETE,
	"describe": DESCRIBE,
	"distinct": DISTINCT,
	"drop":     DROP,
	"exists":   EXISTS,
	"false":    FALSE,
	"from":     FROM,
	"group":    GROUP,
	"if":       IF,
	"in":       IN,
	"insert":   INSERT,
	"into":     INTO,
	"is":       IS,
	"join":     JOIN,
	"like":     LIKE,
	"limit":    LIMIT,
	"not":      NOT,
	"null":     NULL,
	"on":       ON,
	"or":       OR,
	"order":    ORDER,
	"replace":  REPLACE,
	"select":   SELECT,
	"set":      SET,
	"show":     SHOW,
	"table":    TABLE,
	"true":     TRUE,
	"update":   UPDATE,
	"using":    USING,
	"values":   VALUES,
	"view":     VIEW,
	"where":    WHERE,
	"with":     WITH,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
// The ident must already be lowercased.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t >= ALL && t <= WITH
}

// Token is a lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
