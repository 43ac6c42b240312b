// Package session holds the client-side state containers: the persistent
// auth token and the in-memory search/sort selections. Both are explicit
// and injected; nothing here is ambient.
package session

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoToken is returned when no login token is stored.
var ErrNoToken = errors.New("no stored token")

// TokenStore persists the login token between CLI invocations, playing the
// role browser local storage plays for the web client.
type TokenStore struct {
	db *sql.DB
}

// NewTokenStore opens (and if needed initializes) the token database at the
// given path.
func NewTokenStore(path string) (*TokenStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS session (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &TokenStore{db: db}, nil
}

// Save stores the token, replacing any previous one.
func (s *TokenStore) Save(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO session (key, value) VALUES ('token', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		token,
	)
	return err
}

// Token returns the stored token or ErrNoToken.
func (s *TokenStore) Token() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = 'token'`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *TokenStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE key = 'token'`)
	return err
}

// Close releases the underlying database.
func (s *TokenStore) Close() error {
	return s.db.Close()
}
