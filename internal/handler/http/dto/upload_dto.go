package dto

// BeginUploadResponse returns the id of a freshly opened upload attempt.
type BeginUploadResponse struct {
	UploadID string `json:"upload_id"`
}

// SelectUploadRequest describes the file chosen for an upload attempt.
type SelectUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size"`
}
