package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/whalechillz-maslabs/whistler-journal/database"
	"github.com/whalechillz-maslabs/whistler-journal/services"
)

// fakeStore is an in-memory ObjectStore recording puts and removes so tests
// can observe the compensation and best-effort delete paths.
type fakeStore struct {
	objects   map[string][]byte
	removed   []string
	putErr    error
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "http://storage.local/gallery/" + key
}

func (f *fakeStore) Remove(_ context.Context, keys ...string) error {
	f.removed = append(f.removed, keys...)
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, key := range keys {
		delete(f.objects, key)
	}
	return nil
}

func newTestController(t *testing.T) (*PhotoController, *fakeStore, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	store := newFakeStore()
	return NewPhotoController(services.NewCatalog(db), store), store, db
}

func newTestRouter(pc *PhotoController) *gin.Engine {
	r := gin.New()
	r.GET("/photos", pc.ListPhotos)
	r.POST("/photos", pc.UpdatePhoto)
	r.DELETE("/photos", pc.DeletePhoto)
	r.POST("/upload", pc.UploadPhoto)
	return r
}

// multipartUpload builds a POST /upload request carrying one file.
func multipartUpload(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
