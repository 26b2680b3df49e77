// file: services/cloudinary_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedantwankhade123/Roborace/config"
)

func makeFileHeader(t *testing.T, filename string, payload []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("receipt", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("receipt")
	require.NoError(t, err)
	return fh
}

func testClient(baseURL string) *CloudinaryClient {
	return NewCloudinaryClient(&config.Config{
		CloudinaryCloudName:    "demo",
		CloudinaryUploadPreset: "roborace_receipts",
		CloudinaryBaseURL:      baseURL,
	})
}

func TestUploadReturnsSecureURL(t *testing.T) {
	var gotPreset, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotPreset = r.FormValue("upload_preset")
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/receipt.png"}`))
	}))
	defer srv.Close()

	fh := makeFileHeader(t, "receipt.png", []byte("fake image bytes"))
	url, err := testClient(srv.URL).Upload(fh)
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/receipt.png", url)
	assert.Equal(t, "/v1_1/demo/image/upload", gotPath)
	assert.Equal(t, "roborace_receipts", gotPreset)
}

func TestUploadSurfacesVendorErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer srv.Close()

	fh := makeFileHeader(t, "receipt.png", []byte("fake image bytes"))
	_, err := testClient(srv.URL).Upload(fh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestUploadRejectsOversizedFileBeforeNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	fh := makeFileHeader(t, "receipt.png", []byte("small"))
	fh.Size = MaxReceiptSize + 1

	_, err := testClient(srv.URL).Upload(fh)
	require.ErrorIs(t, err, ErrReceiptTooLarge)
	assert.False(t, called, "no request should reach the upload endpoint")
}

func TestUploadAtSizeLimitIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/ok.png"}`))
	}))
	defer srv.Close()

	fh := makeFileHeader(t, "receipt.png", []byte("payload"))
	fh.Size = MaxReceiptSize

	_, err := testClient(srv.URL).Upload(fh)
	assert.NoError(t, err)
}

func TestUploadWithoutConfiguration(t *testing.T) {
	client := NewCloudinaryClient(&config.Config{CloudinaryBaseURL: "https://api.cloudinary.com"})
	fh := makeFileHeader(t, "receipt.png", []byte("fake"))
	_, err := client.Upload(fh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
