// Package intern serves intern profiles.
package intern

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
	Role        string `form:"role" json:"role" binding:"required"`
	University  string `form:"university" json:"university"`
	Major       string `form:"major" json:"major"`
	Email       string `form:"email" json:"email"`
	Contact     string `form:"contact" json:"contact"`
	Linkedin    string `form:"linkedin" json:"linkedin"`
	SocialMedia string `form:"social_media" json:"social_media"`
}

type updateDTO struct {
	Name        *string `form:"name" json:"name"`
	Role        *string `form:"role" json:"role"`
	University  *string `form:"university" json:"university"`
	Major       *string `form:"major" json:"major"`
	Email       *string `form:"email" json:"email"`
	Contact     *string `form:"contact" json:"contact"`
	Linkedin    *string `form:"linkedin" json:"linkedin"`
	SocialMedia *string `form:"social_media" json:"social_media"`
}

func (dto *updateDTO) apply(i *models.InternModel) {
	if dto.Name != nil {
		i.Name = *dto.Name
	}
	if dto.Role != nil {
		i.Role = *dto.Role
	}
	if dto.University != nil {
		i.University = *dto.University
	}
	if dto.Major != nil {
		i.Major = *dto.Major
	}
	if dto.Email != nil {
		i.Email = *dto.Email
	}
	if dto.Contact != nil {
		i.Contact = *dto.Contact
	}
	if dto.Linkedin != nil {
		i.Linkedin = *dto.Linkedin
	}
	if dto.SocialMedia != nil {
		i.SocialMedia = *dto.SocialMedia
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.InternModel] {
	desc := crud.Descriptor[models.InternModel]{
		Table:      "intern",
		LabelField: "name",
		Label:      func(i *models.InternModel) string { return i.Name },
		Image:      func(i *models.InternModel) string { return deref(i.ImagePath) },
		SetImage:   func(i *models.InternModel, p string) { i.ImagePath = &p },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.InternModel]{
		BasePath:     "/intern",
		NotFoundMsg:  "Intern not found",
		DeletedMsg:   "Intern deleted successfully",
		FileField:    "image",
		FileRequired: true,
		BindCreate: func(c *gin.Context) (*models.InternModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.InternModel{
				Name:        dto.Name,
				Role:        dto.Role,
				University:  dto.University,
				Major:       dto.Major,
				Email:       dto.Email,
				Contact:     dto.Contact,
				Linkedin:    dto.Linkedin,
				SocialMedia: dto.SocialMedia,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.InternModel), error) {
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
