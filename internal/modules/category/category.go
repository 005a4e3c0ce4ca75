// Package category serves the project category reference entity.
package category

import (
	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/crud"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type createDTO struct {
	Name string `form:"name" json:"name" binding:"required"`
}

type updateDTO struct {
	Name *string `form:"name" json:"name"`
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.CategoryModel] {
	desc := crud.Descriptor[models.CategoryModel]{
		Table:      "category",
		LabelField: "name",
		Label:      func(cat *models.CategoryModel) string { return cat.Name },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.CategoryModel]{
		BasePath:    "/category",
		NotFoundMsg: "Category not found",
		DeletedMsg:  "Category deleted successfully",
		BindCreate: func(c *gin.Context) (*models.CategoryModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.CategoryModel{Name: dto.Name}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.CategoryModel), error) {
			var dto updateDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return func(cat *models.CategoryModel) {
				if dto.Name != nil {
					cat.Name = *dto.Name
				}
			}, nil
		},
	})
}
