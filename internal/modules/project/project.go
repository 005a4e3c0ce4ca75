// Package project serves showcased projects. On top of the standard CRUD
// surface it embeds members and categories in single-row responses and
// exposes a substring search across title, description and category name.
package project

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/crud"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"github.com/widyalab/landing-api/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type createDTO struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
	Publication string `form:"publication" json:"publication"`
	Link        string `form:"link" json:"link"`
}

type updateDTO struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Publication *string `form:"publication" json:"publication"`
	Link        *string `form:"link" json:"link"`
}

func (dto *updateDTO) apply(p *models.ProjectModel) {
	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Publication != nil {
		p.Publication = *dto.Publication
	}
	if dto.Link != nil {
		p.Link = *dto.Link
	}
}

type detail struct {
	models.ProjectModel
	Members    []models.InternModel   `json:"members"`
	Categories []models.CategoryModel `json:"categories"`
}

// Handler wraps the shared CRUD surface with project-specific routes.
type Handler struct {
	crud *crud.Handler[models.ProjectModel]
	db   *gorm.DB
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *Handler {
	desc := crud.Descriptor[models.ProjectModel]{
		Table:      "project",
		LabelField: "title",
		Label:      func(p *models.ProjectModel) string { return p.Title },
		Image:      func(p *models.ProjectModel) string { return deref(p.ImagePath) },
		SetImage:   func(p *models.ProjectModel, path string) { p.ImagePath = &path },
		SlugTitle:  func(p *models.ProjectModel) string { return p.Title },
		SetSlug:    func(p *models.ProjectModel, s string) { p.Slug = s },
	}

	h := &Handler{db: db}
	svc := crud.NewService(db, desc, images, rec, log)
	h.crud = crud.NewHandler(svc, crud.HandlerOptions[models.ProjectModel]{
		BasePath:     "/project",
		NotFoundMsg:  "Project not found",
		DeletedMsg:   "Project deleted successfully",
		HasSlugRoute: true,
		FileField:    "image",
		FileRequired: true,
		RenderOne:    h.renderDetail,
		BindCreate: func(c *gin.Context) (*models.ProjectModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.ProjectModel{
				Title:       dto.Title,
				Description: dto.Description,
				Publication: dto.Publication,
				Link:        dto.Link,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.ProjectModel), error) {
			var dto updateDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return dto.apply, nil
		},
	})
	return h
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/project/search", h.search)
	h.crud.RegisterRoutes(rg, authMW)
}

// renderDetail responds with the project plus its members and categories.
func (h *Handler) renderDetail(c *gin.Context, row *models.ProjectModel) {
	d := detail{
		ProjectModel: *row,
		Members:      []models.InternModel{},
		Categories:   []models.CategoryModel{},
	}

	err := h.db.Table("intern").
		Joins("JOIN project_member ON project_member.id_intern = intern.id").
		Where("project_member.id_project = ?", row.ID).
		Find(&d.Members).Error
	if err != nil {
		response.Internal(c, err)
		return
	}

	err = h.db.Table("category").
		Joins("JOIN project_category ON project_category.id_category = category.id").
		Where("project_category.id_project = ?", row.ID).
		Find(&d.Categories).Error
	if err != nil {
		response.Internal(c, err)
		return
	}

	response.OK(c, &d)
}

// search matches the query case-insensitively against title, description and
// the names of linked categories. No matches is reported as 404.
func (h *Handler) search(c *gin.Context) {
	que := strings.TrimSpace(c.Query("que"))
	if que == "" {
		response.Validation(c, "query parameter que is required")
		return
	}

	pattern := "%" + strings.ToLower(que) + "%"
	var rows []models.ProjectModel
	err := h.db.Table("project").
		Select("DISTINCT project.*").
		Joins("LEFT JOIN project_category ON project_category.id_project = project.id").
		Joins("LEFT JOIN category ON category.id = project_category.id_category").
		Where("LOWER(project.title) LIKE ? OR LOWER(project.description) LIKE ? OR LOWER(category.name) LIKE ?",
			pattern, pattern, pattern).
		Order("project.created_at DESC").
		Find(&rows).Error
	if err != nil {
		response.Internal(c, err)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, "No projects found")
		return
	}
	response.OK(c, rows)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
