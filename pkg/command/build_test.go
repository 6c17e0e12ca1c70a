package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelsql/pkg/command"
	"github.com/leapstack-labs/modelsql/pkg/parser"
)

// build parses and builds in one step for recognized statements.
func build(t *testing.T, sql string) (command.Command, error) {
	t.Helper()
	stmt, err := parser.Parse(sql)
	require.NoError(t, err)
	return command.Build(stmt)
}

func TestBuildCreateModel(t *testing.T) {
	cmd, err := build(t, "CREATE MODEL m1 USING 's3://bucket/model'")
	require.NoError(t, err)

	create, ok := cmd.(*command.CreateModel)
	require.True(t, ok, "expected *CreateModel, got %T", cmd)
	assert.Equal(t, "m1", create.Name)
	assert.Equal(t, "s3://bucket/model", create.URI)

	// Builder-supplied defaults for clauses the grammar does not parse.
	assert.Empty(t, create.Table)
	assert.False(t, create.Replace)
	assert.Equal(t, map[string]string{}, create.Options)
}

func TestBuildCreateModelWithoutURI(t *testing.T) {
	cmd, err := build(t, "CREATE MODEL m1")
	require.NoError(t, err)

	create := cmd.(*command.CreateModel)
	assert.Empty(t, create.URI)
}

func TestBuildDescribeModel(t *testing.T) {
	cmd, err := build(t, "DESCRIBE MODEL m1")
	require.NoError(t, err)

	describe, ok := cmd.(*command.DescribeModel)
	require.True(t, ok)
	assert.Equal(t, "m1", describe.Name)
}

func TestBuildDropModel(t *testing.T) {
	cmd, err := build(t, "DROP MODEL sales.churn")
	require.NoError(t, err)

	drop, ok := cmd.(*command.DropModel)
	require.True(t, ok)
	assert.Equal(t, "sales.churn", drop.Name)
}

func TestBuildShowModels(t *testing.T) {
	cmd, err := build(t, "SHOW MODELS")
	require.NoError(t, err)

	_, ok := cmd.(*command.ShowModels)
	assert.True(t, ok)
}

func TestBuildRejectsPassthrough(t *testing.T) {
	stmt, err := parser.Parse("SELECT 1")
	require.NoError(t, err)

	_, err = command.Build(stmt)
	require.Error(t, err)

	// Internal invariant violation, not a user-facing parse error.
	var perr *parser.ParseError
	assert.NotErrorAs(t, err, &perr)
}

func TestBuildTooManySegments(t *testing.T) {
	_, err := build(t, "DESCRIBE MODEL a.b.c")
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "a.b.c", "error must reference the original text")
	assert.True(t, perr.Pos.IsValid())
}

func TestResolveTableName(t *testing.T) {
	tests := []struct {
		name    string
		parts   []string
		want    command.TableName
		wantErr bool
	}{
		{
			name:  "bare name",
			parts: []string{"orders"},
			want:  command.TableName{Table: "orders"},
		},
		{
			name:  "schema qualified",
			parts: []string{"sales", "orders"},
			want:  command.TableName{Schema: "sales", Table: "orders"},
		},
		{
			name:    "no segments",
			parts:   nil,
			wantErr: true,
		},
		{
			name:    "three segments",
			parts:   []string{"a", "b", "c"},
			wantErr: true,
		},
		{
			name:    "four segments",
			parts:   []string{"a", "b", "c", "d"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.ResolveTableName(&parser.QualifiedName{Parts: tt.parts})
			if tt.wantErr {
				require.Error(t, err)
				var perr *parser.ParseError
				assert.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
