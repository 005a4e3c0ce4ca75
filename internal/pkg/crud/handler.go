package crud

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/middleware"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"github.com/widyalab/landing-api/internal/pkg/response"
)

// HandlerOptions wires one entity type to the standard route set. BindCreate
// and BindUpdate own the typed DTOs; everything else is shared.
type HandlerOptions[T Entity] struct {
	// BasePath is the route group path, e.g. "/berita".
	BasePath string
	// NotFoundMsg is the 404 body message, e.g. "News not found".
	NotFoundMsg string
	// DeletedMsg is the delete confirmation, e.g. "News deleted successfully".
	DeletedMsg string
	// HasSlugRoute adds GET /slug/:slug.
	HasSlugRoute bool
	// FileField is the multipart field name ("image", "logo"); empty means
	// the entity carries no file.
	FileField string
	// FileRequired rejects creates without an uploaded file.
	FileRequired bool
	// DisableUpdate drops PATCH /:id (banner has no update).
	DisableUpdate bool

	// RenderOne overrides the single-row response for entities that embed
	// related rows; nil renders the row as-is.
	RenderOne func(c *gin.Context, row *T)

	// BindCreate binds and validates the create payload.
	BindCreate func(c *gin.Context) (*T, error)
	// BindUpdate binds the partial payload and returns the merge to apply
	// to the existing row.
	BindUpdate func(c *gin.Context) (func(*T), error)
}

// Handler serves the standard CRUD surface for one entity type.
type Handler[T Entity] struct {
	svc *Service[T]
	opt HandlerOptions[T]
}

func NewHandler[T Entity](svc *Service[T], opt HandlerOptions[T]) *Handler[T] {
	return &Handler[T]{svc: svc, opt: opt}
}

// Service exposes the underlying pipeline for entity-specific extensions.
func (h *Handler[T]) Service() *Service[T] { return h.svc }

func (h *Handler[T]) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group(h.opt.BasePath)
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	if h.opt.HasSlugRoute {
		g.GET("/slug/:slug", h.getBySlug)
	}

	a := g.Group("", authMW)
	a.POST("", h.create)
	if !h.opt.DisableUpdate {
		a.PATCH("/:id", h.update)
	}
	a.DELETE("/:id", h.delete)
}

func (h *Handler[T]) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := h.svc.List(c.DefaultQuery("order", "DESC"), limit)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler[T]) getByID(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	row, err := h.svc.GetByID(id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, h.opt.NotFoundMsg)
		return
	}
	if h.opt.RenderOne != nil {
		h.opt.RenderOne(c, row)
		return
	}
	response.OK(c, row)
}

func (h *Handler[T]) getBySlug(c *gin.Context) {
	row, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Internal(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, h.opt.NotFoundMsg)
		return
	}
	if h.opt.RenderOne != nil {
		h.opt.RenderOne(c, row)
		return
	}
	response.OK(c, row)
}

func (h *Handler[T]) create(c *gin.Context) {
	ent, err := h.opt.BindCreate(c)
	if err != nil {
		response.Validation(c, err.Error())
		return
	}

	file := h.formFile(c)
	if h.opt.FileRequired && file == nil {
		// The legacy API reports a missing required upload as a server
		// error, kept as-is.
		response.Internal(c, fmt.Errorf("image upload failed: %w", imagestore.ErrNoFile))
		return
	}

	if err := h.svc.Create(Actor(c), ent, file); err != nil {
		response.Internal(c, err)
		return
	}
	response.Created(c, ent)
}

func (h *Handler[T]) update(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	apply, err := h.opt.BindUpdate(c)
	if err != nil {
		response.Validation(c, err.Error())
		return
	}

	row, err := h.svc.Update(Actor(c), id, apply, h.formFile(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, h.opt.NotFoundMsg)
		return
	}
	response.OK(c, row)
}

func (h *Handler[T]) delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}
	row, err := h.svc.Delete(Actor(c), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, h.opt.NotFoundMsg)
		return
	}
	response.OK(c, gin.H{"message": h.opt.DeletedMsg})
}

func (h *Handler[T]) formFile(c *gin.Context) *multipart.FileHeader {
	if h.opt.FileField == "" {
		return nil
	}
	f, err := c.FormFile(h.opt.FileField)
	if err != nil {
		return nil
	}
	return f
}

// Actor builds the audit actor from the authenticated request context.
func Actor(c *gin.Context) audit.Actor {
	claims := middleware.Claims(c)
	return audit.Actor{ID: claims.AdminID, Username: claims.Username}
}

// ParseID parses the :id route param, responding 400 on garbage.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Validation(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
