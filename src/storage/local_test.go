package storage

import (
	"errors"
	"os"
	"testing"

	"formflow-backend/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	path, err := store.Put("templates/abc_file.pdf", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, "/templates/abc_file.pdf", path)

	data, err := store.Get(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestGetMissingFile(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Get("/templates/nothing.pdf")
	require.Error(t, err)

	var se *utils.StorageError
	require.True(t, errors.As(err, &se))
	assert.True(t, os.IsNotExist(errors.Unwrap(se)))
}

func TestDelete(t *testing.T) {
	store := New(t.TempDir())

	path, err := store.Put("generated-pdfs/doc.pdf", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))

	_, err = store.Get(path)
	assert.Error(t, err)
}

func TestDeleteMissingFile(t *testing.T) {
	store := New(t.TempDir())

	err := store.Delete("/generated-pdfs/already-gone.pdf")
	require.Error(t, err)

	var se *utils.StorageError
	require.True(t, errors.As(err, &se))
	assert.True(t, os.IsNotExist(errors.Unwrap(se)))
}

func TestDeleteQuietMissingFile(t *testing.T) {
	store := New(t.TempDir())

	// Must not panic; the caller's row delete goes through regardless.
	store.DeleteQuiet("/generated-pdfs/already-gone.pdf")
}

func TestPutCreatesDirectories(t *testing.T) {
	store := New(t.TempDir())

	path, err := store.Put("a/b/c/file.bin", []byte{1, 2, 3})
	require.NoError(t, err)

	data, err := store.Get(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
