package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animelog-backend/internal/shared/response"
)

// CoverStorage is the slice of object storage cover uploads need.
type CoverStorage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) error
}

type UploadHandler struct {
	storage CoverStorage
}

func NewUploadHandler(storage CoverStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadCover - POST /v1/uploads/cover
// Stores the image and returns the object key, which the client passes
// as cover_image when creating or editing an item.
func (h *UploadHandler) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		response.BadRequest(c, "cover file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("covers/%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)

	if err := h.storage.Upload(c.Request.Context(), key, file); err != nil {
		response.InternalServerError(c, "failed to store cover image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"key": key})
}
