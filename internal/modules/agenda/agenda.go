// Package agenda serves scheduled agenda items.
package agenda

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
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content"`
	Date    string `form:"date" json:"date"`
}

type updateDTO struct {
	Title   *string `form:"title" json:"title"`
	Content *string `form:"content" json:"content"`
	Date    *string `form:"date" json:"date"`
}

func (dto *updateDTO) apply(a *models.AgendaModel) {
	if dto.Title != nil {
		a.Title = *dto.Title
	}
	if dto.Content != nil {
		a.Content = *dto.Content
	}
	if dto.Date != nil {
		a.Date = *dto.Date
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.AgendaModel] {
	desc := crud.Descriptor[models.AgendaModel]{
		Table:       "agenda",
		LabelField:  "title",
		Label:       func(a *models.AgendaModel) string { return a.Title },
		Image:       func(a *models.AgendaModel) string { return deref(a.ImagePath) },
		SetImage:    func(a *models.AgendaModel, p string) { a.ImagePath = &p },
		SlugTitle:   func(a *models.AgendaModel) string { return a.Title },
		SetSlug:     func(a *models.AgendaModel, s string) { a.Slug = s },
		OrderColumn: "date",
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.AgendaModel]{
		BasePath:     "/agenda",
		NotFoundMsg:  "Agenda not found",
		DeletedMsg:   "Agenda deleted successfully",
		HasSlugRoute: true,
		FileField:    "image",
		BindCreate: func(c *gin.Context) (*models.AgendaModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.AgendaModel{
				Title:   dto.Title,
				Content: dto.Content,
				Date:    dto.Date,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.AgendaModel), error) {
			var dto updateDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return dto.apply, nil
		},
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
