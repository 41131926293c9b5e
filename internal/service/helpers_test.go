package service_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/galleria-app/galleria/internal/db"
)

// fakeStorage records every blob operation so tests can assert what reached
// the store and what never did.
type fakeStorage struct {
	saves     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saves: map[string][]byte{}}
}

func (f *fakeStorage) Save(key string, body io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.saves[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	delete(f.saves, key)
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "https://images.test/character-images/" + key
}

type uploadFile struct {
	*bytes.Reader
}

func (uploadFile) Close() error { return nil }

// upload builds the multipart pair a handler would pass down: a readable
// file of the given size and a header declaring name, type and size.
func upload(name, contentType string, size int) (multipart.File, *multipart.FileHeader) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return uploadFile{bytes.NewReader(bytes.Repeat([]byte{0xAB}, size))}, &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     int64(size),
	}
}

// openTestDB returns an in-memory sqlite database with migrations applied.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	// Every pooled connection would otherwise get its own :memory: database
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}
