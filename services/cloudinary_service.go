// file: services/cloudinary_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/vedantwankhade123/Roborace/config"
)

// MaxReceiptSize is the upload ceiling for payment receipts (5 MiB).
const MaxReceiptSize = 5 * 1024 * 1024

var ErrReceiptTooLarge = errors.New("receipt image exceeds the 5MB limit")

var cloudinary *CloudinaryClient

// CloudinaryClient performs unsigned uploads against Cloudinary's image upload
// endpoint. Only the cloud name and an unsigned upload preset are required; no
// API secret is held by this service.
type CloudinaryClient struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	httpClient   *http.Client
}

func InitCloudinary(cfg *config.Config) {
	cloudinary = NewCloudinaryClient(cfg)
}

func NewCloudinaryClient(cfg *config.Config) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName:    cfg.CloudinaryCloudName,
		uploadPreset: cfg.CloudinaryUploadPreset,
		baseURL:      cfg.CloudinaryBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadReceipt sends the selected file and returns its public URL.
func UploadReceipt(file *multipart.FileHeader) (string, error) {
	return cloudinary.Upload(file)
}

func (cl *CloudinaryClient) Upload(file *multipart.FileHeader) (string, error) {
	if cl.cloudName == "" || cl.uploadPreset == "" {
		return "", errors.New("cloudinary cloud name or upload preset not configured")
	}
	if file.Size > MaxReceiptSize {
		return "", ErrReceiptTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("file", file.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("upload_preset", cl.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	uploadURL := fmt.Sprintf("%s/v1_1/%s/image/upload", cl.baseURL, cl.cloudName)
	req, err := http.NewRequest(http.MethodPost, uploadURL, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("cloudinary upload failed: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("cloudinary upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary response missing secure_url")
	}
	return result.SecureURL, nil
}
