// Package logs exposes the read-only audit trail. Entries are appended by the
// mutation pipeline and never modified through the API.
package logs

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/logs", authMW)
	g.GET("", h.list)
}

func (h *Handler) list(c *gin.Context) {
	q := h.db.Order("created_at DESC")
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q = q.Limit(limit)
	}

	var entries []models.LogModel
	if err := q.Find(&entries).Error; err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, entries)
}
