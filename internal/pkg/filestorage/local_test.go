package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, header, err := req.FormFile(field)
	require.NoError(t, err)
	return header
}

func TestSaveFileKeepsOriginalName(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := storage.SaveFile(uploadHeader(t, "photo", "face.png", "png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "face.png", name)

	data, err := os.ReadFile(filepath.Join(dir, "face.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSaveFileStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := storage.SaveFile(uploadHeader(t, "photo", "../../outside.txt", "contained"))
	require.NoError(t, err)
	assert.Equal(t, "outside.txt", name)

	_, err = os.Stat(filepath.Join(dir, "outside.txt"))
	assert.NoError(t, err)
}

func TestSaveFileOverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = storage.SaveFile(uploadHeader(t, "photo", "face.png", "first"))
	require.NoError(t, err)
	_, err = storage.SaveFile(uploadHeader(t, "photo", "face.png", "second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "face.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.csv"), []byte("a,b"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	names, err := storage.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"report.csv"}, names)
}

func TestResolveContainsPathsToStorageRoot(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	base, err := filepath.Abs(dir)
	require.NoError(t, err)

	target, err := storage.Resolve("face.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "face.png"), target)

	target, err = storage.Resolve("sub/report.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "sub", "report.csv"), target)
}

func TestResolveRejectsEscapes(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, rel := range []string{
		"../secrets.txt",
		"../../etc/passwd",
		"sub/../../../etc/passwd",
	} {
		_, err := storage.Resolve(rel)
		assert.Error(t, err, "path %q must not resolve", rel)
	}
}
