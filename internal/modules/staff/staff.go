// Package staff serves staff member profiles. A portrait image is required on
// create.
package staff

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
	Position    string `form:"position" json:"position"`
	Description string `form:"description" json:"description"`
	Education   string `form:"education" json:"education"`
	Publication string `form:"publication" json:"publication"`
	Email       string `form:"email" json:"email"`
	Linkedin    string `form:"linkedin" json:"linkedin"`
	SocialMedia string `form:"social_media" json:"social_media"`
}

type updateDTO struct {
	Name        *string `form:"name" json:"name"`
	Position    *string `form:"position" json:"position"`
	Description *string `form:"description" json:"description"`
	Education   *string `form:"education" json:"education"`
	Publication *string `form:"publication" json:"publication"`
	Email       *string `form:"email" json:"email"`
	Linkedin    *string `form:"linkedin" json:"linkedin"`
	SocialMedia *string `form:"social_media" json:"social_media"`
}

func (dto *updateDTO) apply(s *models.StaffModel) {
	if dto.Name != nil {
		s.Name = *dto.Name
	}
	if dto.Position != nil {
		s.Position = *dto.Position
	}
	if dto.Description != nil {
		s.Description = *dto.Description
	}
	if dto.Education != nil {
		s.Education = *dto.Education
	}
	if dto.Publication != nil {
		s.Publication = *dto.Publication
	}
	if dto.Email != nil {
		s.Email = *dto.Email
	}
	if dto.Linkedin != nil {
		s.Linkedin = *dto.Linkedin
	}
	if dto.SocialMedia != nil {
		s.SocialMedia = *dto.SocialMedia
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.StaffModel] {
	desc := crud.Descriptor[models.StaffModel]{
		Table:      "staff",
		LabelField: "name",
		Label:      func(s *models.StaffModel) string { return s.Name },
		Image:      func(s *models.StaffModel) string { return deref(s.ImagePath) },
		SetImage:   func(s *models.StaffModel, p string) { s.ImagePath = &p },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.StaffModel]{
		BasePath:     "/staff",
		NotFoundMsg:  "Staff member not found",
		DeletedMsg:   "Staff member deleted successfully",
		FileField:    "image",
		FileRequired: true,
		BindCreate: func(c *gin.Context) (*models.StaffModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.StaffModel{
				Name:        dto.Name,
				Position:    dto.Position,
				Description: dto.Description,
				Education:   dto.Education,
				Publication: dto.Publication,
				Email:       dto.Email,
				Linkedin:    dto.Linkedin,
				SocialMedia: dto.SocialMedia,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.StaffModel), error) {
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
