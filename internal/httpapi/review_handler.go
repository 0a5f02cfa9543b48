package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dtr-engine/internal/common"
	"dtr-engine/internal/entity"
	"dtr-engine/internal/format"
	"dtr-engine/internal/review"
	"dtr-engine/internal/utils"
)

type reviewHandler struct {
	registry *format.Registry
	review   *review.Service
	logger   *slog.Logger
}

type approveRequest struct {
	Name            string            `json:"name" binding:"required"`
	Pattern         string            `json:"pattern" binding:"required"`
	ExtractionRules map[string]string `json:"extraction_rules" binding:"required"`
	CompanyID       string            `json:"company_id"`
}

type createFormatRequest struct {
	Name            string            `json:"name" binding:"required"`
	Pattern         string            `json:"pattern" binding:"required"`
	ExtractionRules map[string]string `json:"extraction_rules" binding:"required"`
	CompanyID       string            `json:"company_id"`
	Example         string            `json:"example"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (h *reviewHandler) ListPending(c *gin.Context) {
	pending, err := h.review.ListPending(c.Request.Context())
	if err != nil {
		h.logger.Error("list pending failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list pending failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pending})
}

func (h *reviewHandler) GetIntake(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intake ID"})
		return
	}
	rec, err := h.review.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "intake not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}

func (h *reviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intake ID"})
		return
	}
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	companyID, err := utils.ParseOptionalUUID(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	f, err := h.review.Approve(c.Request.Context(), id, req.Name, req.Pattern,
		entity.ExtractionRules(req.ExtractionRules), companyID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, common.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, common.ErrNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": f})
}

func (h *reviewHandler) ListFormats(c *gin.Context) {
	companyID, err := utils.ParseOptionalUUID(c.Query("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}
	formats, err := h.registry.ListActive(c.Request.Context(), companyID)
	if err != nil {
		h.logger.Error("list formats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list formats failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": formats})
}

func (h *reviewHandler) CreateFormat(c *gin.Context) {
	var req createFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	companyID, err := utils.ParseOptionalUUID(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	f, err := h.registry.Create(c.Request.Context(), entity.FormatDraft{
		Name:            req.Name,
		CompanyID:       companyID,
		Pattern:         req.Pattern,
		ExtractionRules: entity.ExtractionRules(req.ExtractionRules),
		Example:         req.Example,
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create format failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create format failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": f})
}

func (h *reviewHandler) SetFormatActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid format ID"})
		return
	}
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.registry.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "format not found"})
			return
		}
		h.logger.Error("toggle format failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "toggle format failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f})
}
