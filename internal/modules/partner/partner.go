// Package partner serves partner organizations. The uploaded file field is
// "logo" rather than "image".
package partner

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
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
	Link        string `form:"link" json:"link"`
}

type updateDTO struct {
	Name        *string `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
	Link        *string `form:"link" json:"link"`
}

func (dto *updateDTO) apply(p *models.PartnerModel) {
	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Link != nil {
		p.Link = *dto.Link
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.PartnerModel] {
	desc := crud.Descriptor[models.PartnerModel]{
		Table:      "partnership",
		LabelField: "name",
		Label:      func(p *models.PartnerModel) string { return p.Name },
		Image:      func(p *models.PartnerModel) string { return deref(p.Logo) },
		SetImage:   func(p *models.PartnerModel, path string) { p.Logo = &path },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.PartnerModel]{
		BasePath:     "/partners",
		NotFoundMsg:  "Partner not found",
		DeletedMsg:   "Partner deleted successfully",
		FileField:    "logo",
		FileRequired: true,
		BindCreate: func(c *gin.Context) (*models.PartnerModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.PartnerModel{
				Name:        dto.Name,
				Description: dto.Description,
				Link:        dto.Link,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.PartnerModel), error) {
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
