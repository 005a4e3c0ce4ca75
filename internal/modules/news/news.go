// Package news serves the "berita" entity: slugged, dated articles with an
// optional cover image.
package news

import (
	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/middleware"
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
	Author  string `form:"author" json:"author"`
	Date    string `form:"date" json:"date"`
}

type updateDTO struct {
	Title   *string `form:"title" json:"title"`
	Content *string `form:"content" json:"content"`
	Author  *string `form:"author" json:"author"`
	Date    *string `form:"date" json:"date"`
}

func (dto *updateDTO) apply(n *models.NewsModel) {
	if dto.Title != nil {
		n.Title = *dto.Title
	}
	if dto.Content != nil {
		n.Content = *dto.Content
	}
	if dto.Author != nil {
		n.Author = *dto.Author
	}
	if dto.Date != nil {
		n.Date = *dto.Date
	}
}

// NewHandler builds the news pipeline. The list endpoint sorts by article
// date; the slug is regenerated from the title on every write.
func NewHandler(db *gorm.DB, images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *crud.Handler[models.NewsModel] {
	desc := crud.Descriptor[models.NewsModel]{
		Table:       "news",
		LabelField:  "title",
		Label:       func(n *models.NewsModel) string { return n.Title },
		Image:       func(n *models.NewsModel) string { return deref(n.ImagePath) },
		SetImage:    func(n *models.NewsModel, p string) { n.ImagePath = &p },
		SlugTitle:   func(n *models.NewsModel) string { return n.Title },
		SetSlug:     func(n *models.NewsModel, s string) { n.Slug = s },
		OrderColumn: "date",
	}

	svc := crud.NewService(db, desc, images, rec, log)
	return crud.NewHandler(svc, crud.HandlerOptions[models.NewsModel]{
		BasePath:     "/berita",
		NotFoundMsg:  "News not found",
		DeletedMsg:   "News deleted successfully",
		HasSlugRoute: true,
		FileField:    "image",
		BindCreate: func(c *gin.Context) (*models.NewsModel, error) {
			var dto createDTO
			if err := c.ShouldBind(&dto); err != nil {
				return nil, err
			}
			author := dto.Author
			if author == "" {
				author = middleware.Claims(c).Username
			}
			return &models.NewsModel{
				Title:   dto.Title,
				Content: dto.Content,
				Author:  author,
				Date:    dto.Date,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (func(*models.NewsModel), error) {
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
