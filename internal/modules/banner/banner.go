// Package banner serves landing-page banners: image-only rows with no update
// operation.
package banner

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/crud"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.BannerModel] {
	desc := crud.Descriptor[models.BannerModel]{
		Table:      "banner",
		LabelField: "id",
		Label:      func(b *models.BannerModel) string { return strconv.FormatUint(uint64(b.ID), 10) },
		Image:      func(b *models.BannerModel) string { return deref(b.ImagePath) },
		SetImage:   func(b *models.BannerModel, p string) { b.ImagePath = &p },
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.BannerModel]{
		BasePath:      "/banner",
		NotFoundMsg:   "Banner not found",
		DeletedMsg:    "Banner deleted successfully",
		FileField:     "image",
		FileRequired:  true,
		DisableUpdate: true,
		BindCreate: func(c *gin.Context) (*models.BannerModel, error) {
			return &models.BannerModel{}, nil
		},
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
