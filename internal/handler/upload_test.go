package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartImage builds a multipart request with a single "image"
// field of the given size.
func multipartImage(t *testing.T, fieldName, filename string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile(fieldName, filename)
	require.NoError(t, err)

	_, err = fw.Write(bytes.Repeat([]byte{0xAB}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/post-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	e := newTestRouter(t)

	t.Run("reports filename, format, and size in kilobytes", func(t *testing.T) {
		rec := doRequest(t, e, multipartImage(t, "image", "photo.png", 2048))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		decodeJSON(t, rec.Body, &got)

		assert.Equal(t, "photo.png", got["Filename"])
		assert.Equal(t, "application/octet-stream", got["Format"])
		assert.InDelta(t, 2.0, got["Size(kb)"], 0.001)
	})

	t.Run("size rounds to two decimals", func(t *testing.T) {
		// 1000 bytes = 0.9765625 kb, rounds to 0.98.
		rec := doRequest(t, e, multipartImage(t, "image", "small.bin", 1000))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		decodeJSON(t, rec.Body, &got)
		assert.InDelta(t, 0.98, got["Size(kb)"], 0.001)
	})

	t.Run("missing file field is a validation failure", func(t *testing.T) {
		rec := doRequest(t, e, multipartImage(t, "not_image", "photo.png", 16))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		httpErr := decodeHTTPError(t, rec)
		assert.Contains(t, fieldNames(httpErr), "image")
	})
}
