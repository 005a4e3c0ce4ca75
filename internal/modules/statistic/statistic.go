// Package statistic serves named landing-page counters.
package statistic

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
	Name  string `form:"name" json:"name" binding:"required"`
	Value string `form:"value" json:"value" binding:"required"`
}

type updateDTO struct {
	Name  *string `form:"name" json:"name"`
	Value *string `form:"value" json:"value"`
}

func (dto *updateDTO) apply(s *models.StatisticModel) {
	if dto.Name != nil {
		s.Name = *dto.Name
	}
	if dto.Value != nil {
		s.Value = *dto.Value
	}
}

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.StatisticModel] {
	desc := crud.Descriptor[models.StatisticModel]{
		Table:      "statistic_data",
		LabelField: "name",
		Label:      func(s *models.StatisticModel) string { return s.Name },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.StatisticModel]{
		BasePath:    "/statistics",
		NotFoundMsg: "Statistic data not found",
		DeletedMsg:  "Statistic data deleted successfully",
		BindCreate: func(c *gin.Context) (*models.StatisticModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return &models.StatisticModel{Name: dto.Name, Value: dto.Value}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.StatisticModel), error) {
			var dto updateDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			return dto.apply, nil
		},
	})
}
