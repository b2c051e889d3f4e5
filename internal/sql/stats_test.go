package sql

import (
	"database/sql"
	"regexp"
	"testing"

	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

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

func TestGetCategoryStats(t *testing.T) {
	gormDB, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"key", "label", "position", "count", "word_count"}).
		AddRow("acts", "Acts", 0, 58942, 512338120).
		AddRow("supreme_court", "Supreme Court Judgments", 1, 34521, 389455010)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "category_stats" ORDER BY position ASC`)).
		WillReturnRows(rows)

	categories, err := GetCategoryStats(gormDB)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, models.CategoryActs, categories[0].Key)
	assert.Equal(t, int64(512338120), categories[0].WordCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryStat_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "category_stats" WHERE key = $1`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	_, err := GetCategoryStat(gormDB, "missing")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, apierrors.ErrCategoryNotFound, apiErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActCategoryCounts(t *testing.T) {
	gormDB, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"category", "position", "count"}).
		AddRow("Central Acts", 0, 4087).
		AddRow("Maharashtra", 1, 3912)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "act_category_counts" ORDER BY position ASC`)).
		WillReturnRows(rows)

	counts, err := GetActCategoryCounts(gormDB)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Central Acts", counts[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWordCountBuckets(t *testing.T) {
	gormDB, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"range", "position", "num_files"}).
		AddRow("0-1K", 0, 312450).
		AddRow("1K-5K", 1, 854120)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "word_count_buckets" ORDER BY position ASC`)).
		WillReturnRows(rows)

	buckets, err := GetWordCountBuckets(gormDB)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "0-1K", buckets[0].Range)
	assert.Equal(t, int64(854120), buckets[1].NumFiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}
