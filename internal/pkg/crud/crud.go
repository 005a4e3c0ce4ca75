// Package crud implements the admin mutation pipeline shared by every
// writable entity: fetch-existing → resolve-image → persist → audit. Entity
// differences (table name, audit label, image column, slug column) live in a
// Descriptor so the pipeline itself is written once.
package crud

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"github.com/widyalab/landing-api/internal/pkg/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entity is satisfied by every model embedding models.Base.
type Entity interface {
	GetID() uint
}

// Descriptor adapts one entity type to the pipeline. Image and slug accessors
// are optional; leave them nil for entities without the corresponding column.
type Descriptor[T Entity] struct {
	// Table is the store table name, also used as the audit target.
	Table string
	// LabelField names the identifying column used in audit descriptions
	// ("title", "name", "id").
	LabelField string
	// Label returns the identifying value for audit descriptions.
	Label func(*T) string

	// Image returns the stored image path ("" when none).
	Image func(*T) string
	// SetImage stores a new image path on the entity.
	SetImage func(*T, string)

	// SlugTitle returns the title a slug is derived from.
	SlugTitle func(*T) string
	// SetSlug stores a generated slug on the entity.
	SetSlug func(*T, string)

	// OrderColumn is the list sort column; defaults to created_at.
	OrderColumn string
}

// Service runs the pipeline for one entity type.
type Service[T Entity] struct {
	db     *gorm.DB
	desc   Descriptor[T]
	images *imagestore.Store
	audit  *audit.Recorder
	log    *zap.Logger
}

func NewService[T Entity](db *gorm.DB, desc Descriptor[T], images *imagestore.Store, rec *audit.Recorder, log *zap.Logger) *Service[T] {
	if desc.OrderColumn == "" {
		desc.OrderColumn = "created_at"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service[T]{db: db, desc: desc, images: images, audit: rec, log: log}
}

// DB exposes the underlying handle for entity-specific queries (search, joins).
func (s *Service[T]) DB() *gorm.DB { return s.db }

// List returns all rows ordered by the descriptor column. order is ASC or
// DESC (default DESC); limit > 0 caps the result.
func (s *Service[T]) List(order string, limit int) ([]T, error) {
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(order), "ASC") {
		dir = "ASC"
	}
	q := s.db.Order(s.desc.OrderColumn + " " + dir)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []T
	return rows, q.Find(&rows).Error
}

// GetByID returns the row or (nil, nil) when absent.
func (s *Service[T]) GetByID(id uint) (*T, error) {
	var row T
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetBySlug returns the row or (nil, nil) when absent.
func (s *Service[T]) GetBySlug(slugStr string) (*T, error) {
	var row T
	if err := s.db.First(&row, "slug = ?", slugStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create persists a new entity. When upload is non-nil the file is saved
// first and its path stored on the entity; a persistence failure removes the
// just-saved file so it is never orphaned, and the persistence error is
// returned unmasked.
func (s *Service[T]) Create(actor audit.Actor, ent *T, upload *multipart.FileHeader) error {
	savedPath := ""
	if upload != nil {
		path, err := s.images.Save(upload)
		if err != nil {
			return err
		}
		savedPath = path
		s.desc.SetImage(ent, path)
	}

	if s.desc.SetSlug != nil {
		sl, err := slug.Generate(s.db, s.desc.Table, s.desc.SlugTitle(ent))
		if err != nil {
			s.compensate(savedPath)
			return err
		}
		s.desc.SetSlug(ent, sl)
	}

	if err := s.db.Create(ent).Error; err != nil {
		s.compensate(savedPath)
		return err
	}

	desc := fmt.Sprintf("%s Created %s with %s: %s",
		actor.Username, s.desc.Table, s.desc.LabelField, s.desc.Label(ent))
	return s.audit.Record(actor.ID, audit.ActionCreate, s.desc.Table, (*ent).GetID(), desc)
}

// Update fetches the existing row, applies the caller's null-coalescing merge,
// resolves a replacement image, persists and audits. Returns (nil, nil) when
// the row does not exist.
func (s *Service[T]) Update(actor audit.Actor, id uint, apply func(*T), upload *multipart.FileHeader) (*T, error) {
	ent, err := s.GetByID(id)
	if err != nil || ent == nil {
		return ent, err
	}

	apply(ent)

	savedPath := ""
	if upload != nil {
		if old := s.currentImage(ent); old != "" {
			s.images.RemoveQuiet(old)
		}
		path, err := s.images.Save(upload)
		if err != nil {
			return nil, err
		}
		savedPath = path
		s.desc.SetImage(ent, path)
	}

	if s.desc.SetSlug != nil {
		sl, err := slug.Generate(s.db, s.desc.Table, s.desc.SlugTitle(ent))
		if err != nil {
			s.compensate(savedPath)
			return nil, err
		}
		s.desc.SetSlug(ent, sl)
	}

	if err := s.db.Save(ent).Error; err != nil {
		s.compensate(savedPath)
		return nil, err
	}

	desc := fmt.Sprintf("%s Updated %s with %s: %s",
		actor.Username, s.desc.Table, s.desc.LabelField, s.desc.Label(ent))
	if err := s.audit.Record(actor.ID, audit.ActionUpdate, s.desc.Table, id, desc); err != nil {
		return nil, err
	}
	return ent, nil
}

// Delete removes the row, releases its image file best-effort and audits
// using the pre-deletion label. Returns (nil, nil) when the row does not
// exist.
func (s *Service[T]) Delete(actor audit.Actor, id uint) (*T, error) {
	ent, err := s.GetByID(id)
	if err != nil || ent == nil {
		return ent, err
	}

	if err := s.db.Delete(ent).Error; err != nil {
		return nil, err
	}

	if img := s.currentImage(ent); img != "" {
		s.images.RemoveQuiet(img)
	}

	desc := fmt.Sprintf("%s Deleted %s with %s: %s",
		actor.Username, s.desc.Table, s.desc.LabelField, s.desc.Label(ent))
	if err := s.audit.Record(actor.ID, audit.ActionDelete, s.desc.Table, id, desc); err != nil {
		return nil, err
	}
	return ent, nil
}

func (s *Service[T]) currentImage(ent *T) string {
	if s.desc.Image == nil {
		return ""
	}
	return s.desc.Image(ent)
}

// compensate removes a file saved earlier in a request whose persistence
// step failed. Its own failure is logged, never returned, so the original
// error reaches the client unmasked.
func (s *Service[T]) compensate(path string) {
	if path == "" {
		return
	}
	if err := s.images.Remove(path); err != nil {
		s.log.Warn("compensating image deletion failed",
			zap.String("path", path), zap.Error(err))
	}
}
