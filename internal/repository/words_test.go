package repository

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestNewWordRepository(t *testing.T) {
	repo := NewWordRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil WordRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestFetchWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT word FROM words ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"word"}).AddRow("apple").AddRow("tree").AddRow("river"))

	words, err := NewWordRepository(db).FetchWords(context.Background())
	if err != nil {
		t.Fatalf("FetchWords() unexpected error: %v", err)
	}
	if !slices.Equal(words, []string{"apple", "tree", "river"}) {
		t.Errorf("FetchWords() = %v", words)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFetchWordsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT word FROM words`).WillReturnRows(sqlmock.NewRows([]string{"word"}))

	_, err = NewWordRepository(db).FetchWords(context.Background())
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("FetchWords() error = %v, want %v", err, ErrNoWords)
	}
}

func TestFetchWordsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	defer db.Close()

	queryErr := errors.New("table words doesn't exist")
	mock.ExpectQuery(`SELECT word FROM words`).WillReturnError(queryErr)

	_, err = NewWordRepository(db).FetchWords(context.Background())
	if !errors.Is(err, queryErr) {
		t.Errorf("FetchWords() error = %v, want %v", err, queryErr)
	}
}
