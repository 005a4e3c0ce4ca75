// Package testimony serves intern testimonials. Rating is validated at the
// boundary to 1..5.
package testimony

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
	IDIntern uint   `form:"id_intern" json:"id_intern" binding:"required"`
	Content  string `form:"content" json:"content" binding:"required"`
	Rating   int    `form:"rating" json:"rating" binding:"required,min=1,max=5"`
}

type updateDTO struct {
	IDIntern *uint   `form:"id_intern" json:"id_intern"`
	Content  *string `form:"content" json:"content"`
	Rating   *int    `form:"rating" json:"rating" binding:"omitempty,min=1,max=5"`
}

func (dto *updateDTO) apply(t *models.TestimonyModel) {
	if dto.IDIntern != nil {
		t.IDIntern = *dto.IDIntern
	}
	if dto.Content != nil {
		t.Content = *dto.Content
	}
	if dto.Rating != nil {
		t.Rating = *dto.Rating
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.TestimonyModel] {
	desc := crud.Descriptor[models.TestimonyModel]{
		Table:      "testimony",
		LabelField: "content",
		Label: func(t *models.TestimonyModel) string {
			if len(t.Content) > 50 {
				return t.Content[:50]
			}
			return t.Content
		},
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.TestimonyModel]{
		BasePath:    "/testimony",
		NotFoundMsg: "Testimony not found",
		DeletedMsg:  "Testimony deleted successfully",
		BindCreate: func(c *gin.Context) (*models.TestimonyModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.TestimonyModel{
				IDIntern: dto.IDIntern,
				Content:  dto.Content,
				Rating:   dto.Rating,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.TestimonyModel), error) {
			var dto updateDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return dto.apply, nil
		},
	})
}
