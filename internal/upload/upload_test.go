package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/admin/blogs", &body)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	return r
}

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return store
}

func TestFromRequestStoresFile(t *testing.T) {
	store := newTestStore(t, 1<<20)
	r := multipartRequest(t, "cover", "Campus Photo.JPG", []byte("image-bytes"))

	file, err := store.FromRequest(r, "cover", Images)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Path, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(file.Name, "-campus-photo.jpg"),
		"stored name %q should keep the sanitized original base", file.Name)

	data, err := os.ReadFile(filepath.Join(store.Dir(), file.Name))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestFromRequestUniqueNames(t *testing.T) {
	store := newTestStore(t, 1<<20)

	a, err := store.FromRequest(multipartRequest(t, "cover", "photo.png", []byte("a")), "cover", Images)
	require.NoError(t, err)
	b, err := store.FromRequest(multipartRequest(t, "cover", "photo.png", []byte("b")), "cover", Images)
	require.NoError(t, err)

	assert.NotEqual(t, a.Name, b.Name)
}

func TestFromRequestMissingField(t *testing.T) {
	store := newTestStore(t, 1<<20)
	r := multipartRequest(t, "other", "photo.png", []byte("x"))

	_, err := store.FromRequest(r, "cover", Images)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestFromRequestRejectsDisallowedExtension(t *testing.T) {
	store := newTestStore(t, 1<<20)
	r := multipartRequest(t, "cover", "payload.exe", []byte("x"))

	_, err := store.FromRequest(r, "cover", Images)
	assert.ErrorIs(t, err, ErrBadExtension)

	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries, "rejected uploads must leave nothing on disk")
}

func TestFromRequestRejectsOversizedFile(t *testing.T) {
	store := newTestStore(t, 8)
	r := multipartRequest(t, "cover", "big.png", bytes.Repeat([]byte("x"), 9))

	_, err := store.FromRequest(r, "cover", Images)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries, "oversized uploads must be removed")
}

func TestDiscardRemovesFileOnce(t *testing.T) {
	store := newTestStore(t, 1<<20)
	r := multipartRequest(t, "cover", "photo.png", []byte("x"))

	file, err := store.FromRequest(r, "cover", Images)
	require.NoError(t, err)

	full := filepath.Join(store.Dir(), file.Name)
	_, err = os.Stat(full)
	require.NoError(t, err)

	file.Discard()
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))

	// Second call is a no-op
	file.Discard()
}

func TestRemoveIgnoresPathsOutsideStore(t *testing.T) {
	store := newTestStore(t, 1<<20)

	assert.NoError(t, store.Remove("/etc/passwd"))
	assert.NoError(t, store.Remove(PublicPrefix+"/../escape.png"))
	assert.NoError(t, store.Remove(PublicPrefix+"/does-not-exist.png"))
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	store := newTestStore(t, 1<<20)
	r := multipartRequest(t, "cover", "photo.png", []byte("x"))

	file, err := store.FromRequest(r, "cover", Images)
	require.NoError(t, err)

	require.NoError(t, store.Remove(file.Path))
	_, err = os.Stat(filepath.Join(store.Dir(), file.Name))
	assert.True(t, os.IsNotExist(err))
}
