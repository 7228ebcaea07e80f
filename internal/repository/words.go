package repository

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNoWords = errors.New("words table is empty")

// WordRepository reads memorable password candidates from the words table.
type WordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository.
func NewWordRepository(db *sql.DB) *WordRepository {
	return &WordRepository{db: db}
}

// FetchWords returns every word in the table, in insertion order.
func (r *WordRepository) FetchWords(ctx context.Context) ([]string, error) {
	query := `SELECT word FROM words ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}
