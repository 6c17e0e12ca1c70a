package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelsql/pkg/token"
)

func TestLexerModelStatement(t *testing.T) {
	tokens := Tokenize("CREATE MODEL resnet USING 's3://bucket/model'")

	types := make([]token.TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []token.TokenType{
		token.CREATE, TokenModel, token.IDENT, token.USING, token.STRING, token.EOF,
	}, types)

	assert.Equal(t, "resnet", tokens[2].Literal)
	assert.Equal(t, "s3://bucket/model", tokens[4].Literal)
}

func TestLexerKeywordsCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"create", token.CREATE},
		{"CREATE", token.CREATE},
		{"Describe", token.DESCRIBE},
		{"drop", token.DROP},
		{"show", token.SHOW},
		{"model", TokenModel},
		{"MODELS", TokenModels},
		{"my_model", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, 2) // token + EOF
			assert.Equal(t, tt.want, tokens[0].Type)
		})
	}
}

func TestLexerQuotedIdentifier(t *testing.T) {
	tokens := Tokenize(`"my ""quoted"" model"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.IDENT, tokens[0].Type)
	assert.Equal(t, `my "quoted" model`, tokens[0].Literal)
}

func TestLexerStringEscape(t *testing.T) {
	tokens := Tokenize("'it''s'")
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "it's", tokens[0].Literal)
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize("DROP MODEL\n  m1")

	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 3, tokens[2].Pos.Column)
}

func TestLexerComments(t *testing.T) {
	l := NewLexer("-- register the model\nCREATE MODEL m1 /* inline */")

	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	assert.Equal(t, []token.TokenType{token.CREATE, TokenModel, token.IDENT, token.EOF}, types)
	require.Len(t, l.Comments, 2)
	assert.True(t, l.Comments[0].IsLineComment())
	assert.True(t, l.Comments[1].IsBlockComment())
}

func TestLexerQualifiedName(t *testing.T) {
	tokens := Tokenize("db.resnet")

	require.Len(t, tokens, 4)
	assert.Equal(t, token.IDENT, tokens[0].Type)
	assert.Equal(t, token.DOT, tokens[1].Type)
	assert.Equal(t, token.IDENT, tokens[2].Type)
}
