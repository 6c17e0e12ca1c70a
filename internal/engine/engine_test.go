package engine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/modelsql/internal/adapter"
	"github.com/leapstack-labs/modelsql/internal/testutil"
	"github.com/leapstack-labs/modelsql/pkg/catalog"
	"github.com/leapstack-labs/modelsql/pkg/parser"
)

func newTestEngine(t *testing.T, target *adapter.Config) *Engine {
	t.Helper()
	e, err := New(Config{
		Catalog: catalog.NewMemory(),
		Target:  target,
		Logger:  testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestNewRequiresCatalog(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}

func TestExecuteModelLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	_, err := e.Execute(ctx, "CREATE MODEL sales.churn USING 's3://models/churn'")
	require.NoError(t, err)

	res, err := e.Execute(ctx, "DESCRIBE MODEL sales.churn")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "sales.churn", res.Rows[0][0])
	assert.Equal(t, "s3://models/churn", res.Rows[0][1])

	res, err = e.Execute(ctx, "SHOW MODELS")
	require.NoError(t, err)
	assert.Len(t, res.Rows, 1)

	_, err = e.Execute(ctx, "DROP MODEL sales.churn")
	require.NoError(t, err)

	_, err = e.Execute(ctx, "DESCRIBE MODEL sales.churn")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestExecuteParseError(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.Execute(context.Background(), "CREATE MODEL")
	require.Error(t, err)

	var perr *parser.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestExecuteDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, nil)

	_, err := e.Execute(ctx, "CREATE MODEL m1")
	require.NoError(t, err)

	_, err = e.Execute(ctx, "CREATE MODEL m1")
	require.ErrorIs(t, err, catalog.ErrExists)

	// A domain error is not a parse error.
	var perr *parser.ParseError
	assert.NotErrorAs(t, err, &perr)
}

func TestExecutePassthroughWithoutTarget(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.Execute(context.Background(), "SELECT * FROM orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no host database configured")
}

// stubAdapter forwards to a pre-wired sqlmock connection.
type stubAdapter struct {
	adapter.BaseSQLAdapter
}

func (a *stubAdapter) Connect(_ context.Context, cfg adapter.Config) error {
	a.Cfg = cfg
	return nil
}

func TestExecutePassthroughForwards(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, score FROM predictions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "score"}).
			AddRow(int64(1), 0.91).
			AddRow(int64(2), 0.13))

	stub := &stubAdapter{}
	stub.DB = db
	adapter.Register("stub", func(_ *slog.Logger) adapter.Adapter { return stub })

	e := newTestEngine(t, &adapter.Config{Type: "stub"})

	res, err := e.Execute(context.Background(), "SELECT id, score FROM predictions")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "score"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, int64(1), res.Rows[0][0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanRowsConvertsBytes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT name").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow([]byte("churn")))

	rows, err := db.Query("SELECT name")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	res, err := scanRows(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "churn", res.Rows[0][0])
}
