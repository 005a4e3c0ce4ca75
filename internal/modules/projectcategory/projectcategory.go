// Package projectcategory serves the project-category link table.
package projectcategory

import (
	"strconv"

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
	IDProject  uint `form:"id_project" json:"id_project" binding:"required"`
	IDCategory uint `form:"id_category" json:"id_category" binding:"required"`
}

type Handler struct {
	svc *crud.Service[models.ProjectCategoryModel]
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *Handler {
	desc := crud.Descriptor[models.ProjectCategoryModel]{
		Table:      "project_category",
		LabelField: "id_project",
		Label: func(pc *models.ProjectCategoryModel) string {
			return strconv.FormatUint(uint64(pc.IDProject), 10)
		},
	}
	return &Handler{svc: crud.NewService(db, desc, images, rec, log)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/project_category")
	g.GET("/project/:id_project", h.listByProject)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) listByProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id_project"), 10, 64)
	if err != nil {
		response.Validation(c, "invalid id")
		return
	}
	var rows []models.ProjectCategoryModel
	if err := h.svc.DB().Where("id_project = ?", id).Find(&rows).Error; err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) create(c *gin.Context) {
	var dto createDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.Validation(c, err.Error())
		return
	}
	ent := &models.ProjectCategoryModel{IDProject: dto.IDProject, IDCategory: dto.IDCategory}
	if err := h.svc.Create(crud.Actor(c), ent, nil); err != nil {
		response.Internal(c, err)
		return
	}
	response.Created(c, ent)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}
	row, err := h.svc.Delete(crud.Actor(c), id)
	if err != nil {
		response.Internal(c, err)
		return
	}
	if row == nil {
		response.NotFound(c, "Project category not found")
		return
	}
	response.OK(c, gin.H{"message": "Project category deleted successfully"})
}
