// Package entries provides journal entry storage for the server.
package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/dbx"
	"github.com/dmitrijs2005/gophjournal/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// Tags are kept as a JSONB array.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUser returns the user's entries, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `SELECT id, user_id, title, content, category, tags, mood, date, time, quote, quote_author, created_at, updated_at
		FROM entries
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []*models.Entry{}
	for rows.Next() {
		var (
			e    models.Entry
			tags []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Category, &tags, &e.Mood,
			&e.Date, &e.Time, &e.Quote, &e.QuoteAuthor, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if e.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO entries (id, user_id, title, content, category, tags, mood, date, time, quote, quote_author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query, entry.ID, entry.UserID, entry.Title, entry.Content, entry.Category,
		tags, entry.Mood, entry.Date, entry.Time, entry.Quote, entry.QuoteAuthor).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// Update replaces the editable fields. CreatedAt is kept.
func (r *PostgresRepository) Update(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return nil, err
	}

	query := `UPDATE entries
		SET title = $3, content = $4, category = $5, tags = $6, mood = $7, date = $8, time = $9,
			quote = $10, quote_author = $11, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query, entry.ID, entry.UserID, entry.Title, entry.Content, entry.Category,
		tags, entry.Mood, entry.Date, entry.Time, entry.Quote, entry.QuoteAuthor).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return b, nil
}

func decodeTags(raw []byte) ([]string, error) {
	tags := []string{}
	if len(raw) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}
