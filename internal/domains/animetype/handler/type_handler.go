package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animelog-backend/internal/domains/animetype"
	"animelog-backend/internal/shared/response"
)

type TypeHandler struct {
	service animetype.Service
}

func NewTypeHandler(svc animetype.Service) *TypeHandler {
	return &TypeHandler{service: svc}
}

// List - GET /v1/types
func (h *TypeHandler) List(c *gin.Context) {
	types, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, types)
}

// Create - POST /v1/types
func (h *TypeHandler) Create(c *gin.Context) {
	var req animetype.CreateTypeRequest
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
		response.ErrorResponse(c, animetype.ToHTTPStatus(err), "TYPE_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Delete - DELETE /v1/types/:id
func (h *TypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid type ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, animetype.ToHTTPStatus(err), "TYPE_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
