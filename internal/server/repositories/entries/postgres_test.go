package entries

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock, db
}

var entryColumns = []string{"id", "user_id", "title", "content", "category", "tags", "mood", "date", "time",
	"quote", "quote_author", "created_at", "updated_at"}

func sampleEntry() *models.Entry {
	return &models.Entry{
		ID: "e1", UserID: "u1", Title: "Morning", Content: "Coffee", Category: "Thought",
		Tags: []string{"daily"}, Mood: "calm", Date: "Tuesday, March 4, 2025", Time: "09:05 AM",
	}
}

func TestListByUser_DecodesRows(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	newer := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(entryColumns).
		AddRow("e2", "u1", "B", "b", "Quote", []byte(`["inspiration","quote"]`), "", "d", "t", "q", "a", newer, newer).
		AddRow("e1", "u1", "A", "a", "Thought", []byte(`[]`), "calm", "d", "t", "", "", older, older)
	mock.ExpectQuery(`SELECT .* FROM entries\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, []string{"inspiration", "quote"}, got[0].Tags)
	assert.Equal(t, "a", got[0].QuoteAuthor)
	assert.Equal(t, []string{}, got[1].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_EmptyIsNotNil(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT .* FROM entries`).WithArgs("u1").WillReturnRows(sqlmock.NewRows(entryColumns))

	got, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByUser_Errors(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT .* FROM entries`).WithArgs("u1").WillReturnError(errors.New("boom"))
	_, err := repo.ListByUser(context.Background(), "u1")
	assert.ErrorContains(t, err, "failed to select entries")

	mock.ExpectQuery(`SELECT .* FROM entries`).WithArgs("u1").WillReturnRows(
		sqlmock.NewRows(entryColumns).AddRow("e1", "u1", "A", "a", "Thought", []byte(`{bad`), "", "", "", "", "", time.Now(), time.Now()))
	_, err = repo.ListByUser(context.Background(), "u1")
	assert.ErrorContains(t, err, "decode tags")
}

func TestCreate_Success(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	ts := time.Date(2025, 3, 4, 9, 5, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO entries .* RETURNING created_at, updated_at`).
		WithArgs("e1", "u1", "Morning", "Coffee", "Thought", []byte(`["daily"]`), "calm",
			"Tuesday, March 4, 2025", "09:05 AM", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))

	got, err := repo.Create(context.Background(), sampleEntry())
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(ts))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NilTagsStoredAsEmptyArray(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	e := sampleEntry()
	e.Tags = nil
	mock.ExpectQuery(`INSERT INTO entries`).
		WithArgs("e1", "u1", "Morning", "Coffee", "Thought", []byte(`[]`), "calm",
			"Tuesday, March 4, 2025", "09:05 AM", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

	_, err := repo.Create(context.Background(), e)
	require.NoError(t, err)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO entries`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), sampleEntry())
	assert.ErrorContains(t, err, "db error: db down")
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "owner row updated",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`UPDATE entries\s+SET .* WHERE id = \$1 AND user_id = \$2\s+RETURNING created_at, updated_at`).
					WithArgs("e1", "u1", "Morning", "Coffee", "Thought", []byte(`["daily"]`), "calm",
						"Tuesday, March 4, 2025", "09:05 AM", "", "").
					WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
			},
		},
		{
			name: "missing or foreign",
			prepare: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`UPDATE entries`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrorNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepoWithMock(t)
			tt.prepare(mock)

			_, err := repo.Update(context.Background(), sampleEntry())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM entries WHERE id = \$1 AND user_id = \$2`).
		WithArgs("e1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "u1", "e1"))

	mock.ExpectExec(`DELETE FROM entries`).
		WithArgs("e1", "u2").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u2", "e1"), common.ErrorNotFound)

	mock.ExpectExec(`DELETE FROM entries`).WillReturnError(errors.New("db down"))
	assert.ErrorContains(t, repo.Delete(context.Background(), "u1", "e1"), "db error")

	mock.ExpectExec(`DELETE FROM entries`).WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
	assert.ErrorContains(t, repo.Delete(context.Background(), "u1", "e1"), "rows affected error")
}
