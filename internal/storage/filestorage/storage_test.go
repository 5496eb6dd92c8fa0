package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	storage "nevod_store/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T, maxSize int64) (*storage.LocalFileStorage, string) {
	t.Helper()

	// Создаем временную директорию
	tempDir, err := os.MkdirTemp("", "filestorage_test")
	require.NoError(t, err)

	fs, err := storage.NewLocalFileStorage(tempDir, "http://test.local", maxSize)
	require.NoError(t, err)

	return fs, tempDir
}

func cleanupFileStorage(t *testing.T, dir string) {
	t.Helper()
	_ = os.RemoveAll(dir)
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	// Создаем multipart форму
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	// Парсим multipart запрос
	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs, tempDir := setupFileStorage(t, 0)
	defer cleanupFileStorage(t, tempDir)

	ctx := context.Background()
	testFile := createTestFile(t, "test.txt", "test content")

	t.Run("successful save", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		filePath, size, err := fs.Save(ctx, testFile, "subdir")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("subdir", "test.txt"), filePath)
		assert.Equal(t, int64(12), size)

		// Проверяем что файл создан
		fullPath := fs.GetFullPath(filePath)
		_, err = os.Stat(fullPath)
		assert.NoError(t, err)

		// Проверяем содержимое файла
		data, err := os.ReadFile(fullPath)
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("save with empty subpath", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, testFile, "")
		require.NoError(t, err)
		assert.Equal(t, "test.txt", filePath)
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel() // Отменяем контекст сразу

		_, _, err := fs.Save(ctx, testFile, "subdir")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		limited, limitedDir := setupFileStorage(t, 4)
		defer cleanupFileStorage(t, limitedDir)

		bigFile := createTestFile(t, "big.txt", "too big content")

		_, _, err := limited.Save(ctx, bigFile, "")
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs, tempDir := setupFileStorage(t, 0)
	defer cleanupFileStorage(t, tempDir)

	ctx := context.Background()
	testFile := createTestFile(t, "to_delete.txt", "content")

	t.Run("successful delete", func(t *testing.T) {
		// Сначала сохраняем файл
		filePath, _, err := fs.Save(ctx, testFile, "")
		require.NoError(t, err)

		// Удаляем
		err = fs.Delete(ctx, filePath)
		assert.NoError(t, err)

		// Проверяем что файл удален
		_, err = os.Stat(fs.GetFullPath(filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.txt")
		assert.ErrorIs(t, err, storage.ErrFileNotFound)
	})
}

func TestLocalFileStorage_Exists(t *testing.T) {
	fs, tempDir := setupFileStorage(t, 0)
	defer cleanupFileStorage(t, tempDir)

	ctx := context.Background()

	t.Run("existing file", func(t *testing.T) {
		testFile := createTestFile(t, "exists.txt", "content")

		filePath, _, err := fs.Save(ctx, testFile, "")
		require.NoError(t, err)

		assert.True(t, fs.Exists(ctx, filePath))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, fs.Exists(ctx, "missing.txt"))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.False(t, fs.Exists(ctx, ""))
	})
}

func TestLocalFileStorage_GetFullPath(t *testing.T) {
	fs, tempDir := setupFileStorage(t, 0)
	defer os.RemoveAll(tempDir)

	t.Run("returns correct path", func(t *testing.T) {
		relPath := "test/file.txt"
		expected := filepath.Join(fs.GetBaseDir(), relPath)
		assert.Equal(t, expected, fs.GetFullPath(relPath))
	})
}
