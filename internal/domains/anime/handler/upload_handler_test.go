package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCoverStorage struct {
	keys []string
	fail bool
}

func (f *fakeCoverStorage) Upload(ctx context.Context, key string, file *multipart.FileHeader) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	f.keys = append(f.keys, key)
	return nil
}

func newCoverUploadRequest(t *testing.T, field, filename string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/cover", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newUploadRouter(storage *fakeCoverStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/uploads/cover", NewUploadHandler(storage).UploadCover)
	return router
}

func TestUploadCoverStoresObjectAndReturnsKey(t *testing.T) {
	storage := &fakeCoverStorage{}
	router := newUploadRouter(storage)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCoverUploadRequest(t, "cover", "poster.JPG"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, storage.keys, 1)
	assert.True(t, strings.HasPrefix(storage.keys[0], "covers/"), storage.keys[0])
	assert.True(t, strings.HasSuffix(storage.keys[0], ".jpg"), storage.keys[0])
	assert.Contains(t, rec.Body.String(), storage.keys[0])
}

func TestUploadCoverRequiresFile(t *testing.T) {
	storage := &fakeCoverStorage{}
	router := newUploadRouter(storage)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCoverUploadRequest(t, "attachment", "poster.jpg"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, storage.keys)
}

func TestUploadCoverStorageFailure(t *testing.T) {
	storage := &fakeCoverStorage{fail: true}
	router := newUploadRouter(storage)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newCoverUploadRequest(t, "cover", "poster.png"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
