package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleria-app/galleria/internal/db"
	"github.com/galleria-app/galleria/internal/handler"
	"github.com/galleria-app/galleria/internal/model"
	"github.com/galleria-app/galleria/internal/repository"
	"github.com/galleria-app/galleria/internal/service"
)

// fakeStorage is an in-memory stand-in for the S3 bucket.
type fakeStorage struct {
	saves map[string][]byte
}

func (f *fakeStorage) Save(key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.saves[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	delete(f.saves, key)
	return nil
}

func (f *fakeStorage) URL(key string) string {
	return "https://images.test/character-images/" + key
}

func newTestMux(t *testing.T) (*http.ServeMux, *fakeStorage) {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	// Every pooled connection would otherwise get its own :memory: database
	database.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	store := &fakeStorage{saves: map[string][]byte{}}
	images := service.NewImageService(store)
	characterService := service.NewCharacterService(repository.NewCharacterRepository(database), images)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(database))

	character := handler.NewCharacterHandler(characterService)
	category := handler.NewCategoryHandler(categoryService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", category.List)
	mux.HandleFunc("POST /api/categories", category.Create)
	mux.HandleFunc("DELETE /api/categories/{id}", category.Delete)
	mux.HandleFunc("GET /api/characters", character.List)
	mux.HandleFunc("POST /api/characters", character.Create)
	mux.HandleFunc("PUT /api/characters/{id}", character.Update)
	mux.HandleFunc("DELETE /api/characters/{id}", character.Delete)

	return mux, store
}

// multipartBody builds a multipart form with the given fields and an
// optional image part with an explicit Content-Type.
func multipartBody(t *testing.T, fields map[string]string, imageName, imageType string, imageSize int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, imageName))
		header.Set("Content-Type", imageType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xCD}, imageSize))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func do(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope.Data
}

func decodeError(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope.Error
}

func TestCreateCharacterEndToEnd(t *testing.T) {
	mux, store := newTestMux(t)

	// Create the category first
	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader("name=Mecha"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(mux, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	mecha := decodeData[model.Category](t, rec.Body)
	assert.Equal(t, "Mecha", mecha.Name)

	// Upload a 2MB JPEG for "Rei"
	body, contentType := multipartBody(t, map[string]string{
		"name":       "Rei",
		"categoryId": mecha.ID,
	}, "hero.jpg", "image/jpeg", 2<<20)
	req = httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec = do(mux, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeData[model.Character](t, rec.Body)
	assert.Equal(t, "Rei", created.Name)
	assert.True(t, strings.HasSuffix(created.ImageURL, ".jpg"))
	assert.Len(t, store.saves, 1)

	// The list shows the new character with its resolved category
	rec = do(mux, httptest.NewRequest("GET", "/api/characters", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[[]*model.CharacterWithCategory](t, rec.Body)
	require.Len(t, list, 1)
	assert.Equal(t, "Rei", list[0].Name)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "Mecha", list[0].Category.Name)
}

func TestCreateCharacterRejectsOversizedImage(t *testing.T) {
	mux, store := newTestMux(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Rei"}, "huge.png", "image/png", 6<<20)
	req := httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(mux, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File too large. Maximum size is 5MB.", decodeError(t, rec.Body))
	assert.Empty(t, store.saves)
}

func TestCreateCharacterRejectsInvalidType(t *testing.T) {
	mux, store := newTestMux(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Rei"}, "notes.txt", "text/plain", 64)
	req := httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(mux, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid file type. Please upload a JPG, PNG, WebP, or GIF image.", decodeError(t, rec.Body))
	assert.Empty(t, store.saves)
}

func TestCreateCharacterWithoutFile(t *testing.T) {
	mux, _ := newTestMux(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Rei"}, "", "", 0)
	req := httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(mux, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided", decodeError(t, rec.Body))
}

func TestUpdateCharacterKeepsImageWhenNoneUploaded(t *testing.T) {
	mux, _ := newTestMux(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Rei"}, "hero.jpg", "image/jpeg", 1024)
	req := httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(mux, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[model.Character](t, rec.Body)

	body, contentType = multipartBody(t, map[string]string{"name": "Rei Ayanami"}, "", "", 0)
	req = httptest.NewRequest("PUT", "/api/characters/"+created.ID, body)
	req.Header.Set("Content-Type", contentType)
	rec = do(mux, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(mux, httptest.NewRequest("GET", "/api/characters", nil))
	list := decodeData[[]*model.CharacterWithCategory](t, rec.Body)
	require.Len(t, list, 1)
	assert.Equal(t, "Rei Ayanami", list[0].Name)
	assert.Equal(t, created.ImageURL, list[0].ImageURL)
}

func TestDeleteCharacter(t *testing.T) {
	mux, store := newTestMux(t)

	body, contentType := multipartBody(t, map[string]string{"name": "Rei"}, "hero.jpg", "image/jpeg", 1024)
	req := httptest.NewRequest("POST", "/api/characters", body)
	req.Header.Set("Content-Type", contentType)
	rec := do(mux, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[model.Character](t, rec.Body)

	rec = do(mux, httptest.NewRequest("DELETE", "/api/characters/"+created.ID, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.saves)

	rec = do(mux, httptest.NewRequest("GET", "/api/characters", nil))
	list := decodeData[[]*model.CharacterWithCategory](t, rec.Body)
	assert.Empty(t, list)

	// Deleting again reports not found without crashing
	rec = do(mux, httptest.NewRequest("DELETE", "/api/characters/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
