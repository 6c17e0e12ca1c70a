package adapter

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownAdapterError_Error(t *testing.T) {
	err := &UnknownAdapterError{
		Type:      "fake_db",
		Available: []string{"duckdb", "postgres"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "fake_db", "error should mention the unknown type")
	assert.Contains(t, msg, "modelsql.yaml", "error should mention config file")
}

func TestRegister(t *testing.T) {
	Register("test_adapter_internal", func(_ *slog.Logger) Adapter { return nil })

	assert.True(t, IsRegistered("test_adapter_internal"))

	factory, ok := Get("test_adapter_internal")
	assert.True(t, ok)
	assert.NotNil(t, factory)
}

func TestBuiltinAdaptersRegistered(t *testing.T) {
	assert.True(t, IsRegistered("duckdb"))
	assert.True(t, IsRegistered("postgres"))
}

func TestNew_EmptyType(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)
	assert.Equal(t, "adapter type not specified", err.Error())
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(Config{Type: "oracle"}, nil)
	require.Error(t, err)

	var unknownErr *UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "oracle", unknownErr.Type)
	assert.Contains(t, unknownErr.Available, "duckdb")
}

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "defaults",
			cfg:  Config{Database: "models"},
			want: "host=localhost port=5432 dbname=models sslmode=disable",
		},
		{
			name: "full config",
			cfg: Config{
				Host:     "db.internal",
				Port:     5433,
				Database: "models",
				Username: "ml",
				Password: "secret",
				Options:  map[string]string{"sslmode": "require"},
			},
			want: "host=db.internal port=5433 dbname=models sslmode=require user=ml password=secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildPostgresDSN(tt.cfg))
		})
	}
}
