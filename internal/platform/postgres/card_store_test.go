package postgres_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lexi-api/internal/platform/postgres"
	"github.com/phrazzld/lexi-api/internal/store"
)

// queryLog records every statement a stub connection is asked to run.
// The stub driver below returns no rows for every query; it exists to
// pin the SQL the store emits without a live database.
type queryLog struct {
	mu      sync.Mutex
	queries []string
}

func (l *queryLog) record(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, query)
}

func (l *queryLog) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queries) == 0 {
		return ""
	}
	return l.queries[len(l.queries)-1]
}

type stubDriver struct {
	log *queryLog
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{log: d.log}, nil
}

type stubConn struct {
	log *queryLog
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported by stub driver")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported by stub driver")
}

func (c *stubConn) QueryContext(
	_ context.Context,
	query string,
	_ []driver.NamedValue,
) (driver.Rows, error) {
	c.log.record(query)
	return emptyRows{}, nil
}

type emptyRows struct{}

func (emptyRows) Columns() []string         { return nil }
func (emptyRows) Close() error              { return nil }
func (emptyRows) Next([]driver.Value) error { return io.EOF }

var recordedQueries = &queryLog{}

func init() {
	sql.Register("cardstore-stub", &stubDriver{log: recordedQueries})
}

func newRecordingStore(t *testing.T) *postgres.PostgresCardStore {
	t.Helper()

	db, err := sql.Open("cardstore-stub", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewPostgresCardStore(db, slog.Default())
}

// The due query must pick the most recently due card, not the most
// overdue one. The direction is part of the scheduling contract, so the
// emitted SQL is pinned here.
func TestFindNextDue_OrdersMostRecentlyDueFirst(t *testing.T) {
	s := newRecordingStore(t)

	_, err := s.FindNextDue(context.Background(), time.Now().UTC())
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	query := recordedQueries.last()
	require.Contains(t, query, "ORDER BY next_review DESC")
	assert.Contains(t, query, "next_review <= $2")
}

func TestFindNextDueLearnedBetween_OrdersMostRecentlyDueFirst(t *testing.T) {
	s := newRecordingStore(t)

	now := time.Now().UTC()
	_, err := s.FindNextDueLearnedBetween(context.Background(), now, now.Add(-time.Hour), now)
	assert.ErrorIs(t, err, store.ErrCardNotFound)

	query := recordedQueries.last()
	require.Contains(t, query, "ORDER BY next_review DESC")
	assert.Contains(t, query, "first_learn_date >= $3")
	assert.Contains(t, query, "first_learn_date <= $4")
}
