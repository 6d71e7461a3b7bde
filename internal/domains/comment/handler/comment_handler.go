package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animelog-backend/internal/domains/comment"
	"animelog-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

// Create - POST /v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), "COMMENT_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update - PUT /v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment ID")
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, comment.ToHTTPStatus(err), "COMMENT_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}
