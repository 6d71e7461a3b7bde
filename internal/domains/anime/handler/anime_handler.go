package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"animelog-backend/internal/domains/anime"
	"animelog-backend/internal/shared/response"
)

type AnimeHandler struct {
	service anime.Service
}

func NewAnimeHandler(svc anime.Service) *AnimeHandler {
	return &AnimeHandler{service: svc}
}

// List - GET /v1/anime?status=&search_term=&release_season=&sort_by=&sort_order=
func (h *AnimeHandler) List(c *gin.Context) {
	filter := anime.ListFilter{
		Status:        c.Query("status"),
		SearchTerm:    c.Query("search_term"),
		ReleaseSeason: c.Query("release_season"),
		SortBy:        c.DefaultQuery("sort_by", "release_date"),
		SortOrder:     c.DefaultQuery("sort_order", "DESC"),
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Create - POST /v1/anime
func (h *AnimeHandler) Create(c *gin.Context) {
	var req anime.CreateAnimeRequest
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
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID - GET /v1/anime/:id
func (h *AnimeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid anime ID")
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateInfo - PUT /v1/anime/:id
func (h *AnimeHandler) UpdateInfo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid anime ID")
		return
	}

	var req anime.UpdateAnimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateInfo(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// UpdateStatus - POST /v1/anime/:id/status
func (h *AnimeHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid anime ID")
		return
	}

	var req anime.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	newStatus, err := h.service.ApplyTransition(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, anime.TransitionResponse{NewStatus: newStatus})
}

// UpdateHistory - PUT /v1/history/:id
func (h *AnimeHandler) UpdateHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid history ID")
		return
	}

	var req anime.UpdateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateHistory(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, anime.ToHTTPStatus(err), anime.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}
