package external_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/yonatanberih/pulse/internal/domain/contract"
)

// MediaService uploads article media to the third-party media endpoint: a
// multipart POST carrying the file and a fixed upload preset, returning a
// secure URL. This path is separate from the video object-storage pipeline.
type MediaService struct {
	endpoint string
	preset   string
	client   *http.Client
}

// NewMediaService creates a media endpoint client.
func NewMediaService(endpoint, preset string) *MediaService {
	return &MediaService{
		endpoint: endpoint,
		preset:   preset,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

var _ contract.IMediaUploader = (*MediaService)(nil)

// UploadMedia posts the file and returns the hosted secure URL.
func (ms *MediaService) UploadMedia(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read media file: %w", err)
	}
	if err := w.WriteField("upload_preset", ms.preset); err != nil {
		return "", fmt.Errorf("failed to write preset field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ms.endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := ms.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media upload request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("media endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode media response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("media endpoint returned no secure_url")
	}
	return result.SecureURL, nil
}
