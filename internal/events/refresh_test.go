package events

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	"api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingCache struct {
	summaries map[string][]byte
}

func (r *recordingCache) RegisterPlatform(string) error         { return nil }
func (r *recordingCache) DeleteInactivePlatform() error         { return nil }
func (r *recordingCache) StartIdentityTicker(string)            {}
func (r *recordingCache) GetRateLimit(string, int) (int, error) { return 0, nil }
func (r *recordingCache) Close() error                          { return nil }

func (r *recordingCache) GetSummary(key string) ([]byte, bool, error) {
	payload, found := r.summaries[key]
	return payload, found, nil
}

func (r *recordingCache) SetSummary(key string, payload []byte) error {
	r.summaries[key] = payload
	return nil
}

func (r *recordingCache) InvalidateSummary(key string) error {
	delete(r.summaries, key)
	return nil
}

func (r *recordingCache) TryAcquireLock(string, string, int) (bool, error) { return true, nil }
func (r *recordingCache) RefreshLock(string, string, int) (bool, error)    { return true, nil }

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func(db *sql.DB) func() {
		return func() { _ = db.Close() }
	}(db))

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestNewRefreshMessage(t *testing.T) {
	msg := NewRefreshMessage("scheduled")

	var payload RefreshPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "scheduled", payload.Reason)
	assert.NotEmpty(t, msg.UUID)
}

func TestRecomputeSummary(t *testing.T) {
	t.Run("stores the assembled summary", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"key", "label", "position", "count", "word_count"}).
			AddRow("acts", "Acts", 0, 1000, 1250000000).
			AddRow("bills", "Bills", 6, 234, 46800)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "category_stats" ORDER BY position ASC`)).
			WillReturnRows(rows)

		cache := &recordingCache{summaries: map[string][]byte{}}
		require.NoError(t, RecomputeSummary(gormDB, cache))

		payload, found := cache.summaries["default"]
		require.True(t, found)

		var summary models.SummaryResponse
		require.NoError(t, json.Unmarshal(payload, &summary))
		assert.Equal(t, int64(1234), summary.Totals.Documents)
		assert.Equal(t, "1.25B", summary.WordsCompact)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil cache is a no-op", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		require.NoError(t, RecomputeSummary(gormDB, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
