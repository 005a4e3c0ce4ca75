package crud

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	models.Base
	Name  string  `gorm:"size:64;uniqueIndex"`
	Slug  string  `gorm:"size:64"`
	Image *string `gorm:"size:255"`
}

func (widget) TableName() string { return "widgets" }

func widgetDescriptor() Descriptor[widget] {
	return Descriptor[widget]{
		Table:      "widgets",
		LabelField: "name",
		Label:      func(w *widget) string { return w.Name },
		Image: func(w *widget) string {
			if w.Image == nil {
				return ""
			}
			return *w.Image
		},
		SetImage:  func(w *widget, p string) { w.Image = &p },
		SlugTitle: func(w *widget) string { return w.Name },
		SetSlug:   func(w *widget, s string) { w.Slug = s },
	}
}

func newFixture(t *testing.T) (*Service[widget], *gorm.DB, *imagestore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminModel{}, &models.LogModel{}, &widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&models.AdminModel{Username: "alice", PasswordHash: "x", Role: models.RoleMasterAdmin}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	images, err := imagestore.New(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("image store: %v", err)
	}

	svc := NewService(db, widgetDescriptor(), images, audit.NewRecorder(db), nil)
	return svc, db, images
}

func upload(t *testing.T, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func imageFiles(t *testing.T, images *imagestore.Store) []string {
	t.Helper()
	entries, err := os.ReadDir(images.Dir())
	if err != nil {
		t.Fatalf("read image dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCreateWithUpload(t *testing.T) {
	svc, db, images := newFixture(t)
	actor := audit.Actor{ID: 1, Username: "alice"}

	w := &widget{Name: "Gizmo One"}
	if err := svc.Create(actor, w, upload(t, "pixels")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if w.ID == 0 {
		t.Fatal("widget ID not assigned")
	}
	if w.Slug != "gizmo-one" {
		t.Errorf("slug = %q, want gizmo-one", w.Slug)
	}
	if w.Image == nil {
		t.Fatal("image path not stored")
	}
	if _, err := os.Stat(filepath.Join(images.Dir(), filepath.Base(*w.Image))); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	var logs []models.LogModel
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("log rows = %d, want 1", len(logs))
	}
	l := logs[0]
	if l.Action != "CREATE" || l.TargetTable != "widgets" || l.TargetID != w.ID {
		t.Errorf("log = %+v", l)
	}
	if want := "alice Created widgets with name: Gizmo One"; l.Description != want {
		t.Errorf("description = %q, want %q", l.Description, want)
	}
}

func TestCreatePersistFailureCompensates(t *testing.T) {
	svc, db, images := newFixture(t)
	actor := audit.Actor{ID: 1, Username: "alice"}

	first := &widget{Name: "Gizmo"}
	if err := svc.Create(actor, first, upload(t, "one")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	before := len(imageFiles(t, images))
	dup := &widget{Name: "Gizmo"}
	if err := svc.Create(actor, dup, upload(t, "two")); err == nil {
		t.Fatal("expected unique constraint violation")
	}

	// the file saved for the failed create must be gone again
	if after := len(imageFiles(t, images)); after != before {
		t.Fatalf("image files = %d, want %d", after, before)
	}

	var count int64
	db.Model(&models.LogModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("log rows = %d, want 1 (failed create must not audit)", count)
	}
}

func TestUpdateMergesAndReplacesImage(t *testing.T) {
	svc, _, images := newFixture(t)
	actor := audit.Actor{ID: 1, Username: "alice"}

	w := &widget{Name: "Gizmo"}
	if err := svc.Create(actor, w, upload(t, "old")); err != nil {
		t.Fatalf("create: %v", err)
	}
	oldImage := *w.Image

	got, err := svc.Update(actor, w.ID, func(u *widget) { u.Name = "Gadget" }, upload(t, "new"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Gadget" {
		t.Errorf("name = %q, want Gadget", got.Name)
	}
	if got.Slug != "gadget" {
		t.Errorf("slug = %q, want gadget", got.Slug)
	}
	if *got.Image == oldImage {
		t.Error("image path was not replaced")
	}
	if _, err := os.Stat(filepath.Join(images.Dir(), filepath.Base(oldImage))); !os.IsNotExist(err) {
		t.Error("old image file still on disk")
	}
}

func TestUpdatePartialKeepsStoredValues(t *testing.T) {
	svc, _, _ := newFixture(t)
	actor := audit.Actor{ID: 1, Username: "alice"}

	w := &widget{Name: "Gizmo"}
	if err := svc.Create(actor, w, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(actor, w.ID, func(u *widget) {}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Gizmo" {
		t.Errorf("name = %q, want Gizmo", got.Name)
	}
}

func TestUpdateAbsentRow(t *testing.T) {
	svc, _, _ := newFixture(t)

	got, err := svc.Update(audit.Actor{ID: 1, Username: "alice"}, 999, func(u *widget) {}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for absent row", got)
	}
}

func TestDeleteReleasesImageAndAudits(t *testing.T) {
	svc, db, images := newFixture(t)
	actor := audit.Actor{ID: 1, Username: "alice"}

	w := &widget{Name: "Gizmo"}
	if err := svc.Create(actor, w, upload(t, "pixels")); err != nil {
		t.Fatalf("create: %v", err)
	}
	img := *w.Image

	got, err := svc.Delete(actor, w.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got == nil {
		t.Fatal("delete returned nil for existing row")
	}

	var count int64
	db.Model(&widget{}).Count(&count)
	if count != 0 {
		t.Fatalf("widgets remaining = %d, want 0", count)
	}
	if _, err := os.Stat(filepath.Join(images.Dir(), filepath.Base(img))); !os.IsNotExist(err) {
		t.Error("image file still on disk after delete")
	}

	var last models.LogModel
	if err := db.Order("id DESC").First(&last).Error; err != nil {
		t.Fatalf("load log: %v", err)
	}
	if last.Action != "DELETE" {
		t.Errorf("action = %q, want DELETE", last.Action)
	}
	if want := "alice Deleted widgets with name: Gizmo"; last.Description != want {
		t.Errorf("description = %q, want %q", last.Description, want)
	}
}

func TestDeleteAbsentRow(t *testing.T) {
	svc, _, _ := newFixture(t)

	got, err := svc.Delete(audit.Actor{ID: 1, Username: "alice"}, 999)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for absent row", got)
	}
}

func TestListOrderAndLimit(t *testing.T) {
	_, db, images := newFixture(t)
	desc := widgetDescriptor()
	desc.OrderColumn = "name"
	svc := NewService(db, desc, images, audit.NewRecorder(db), nil)

	for _, name := range []string{"a", "b", "c"} {
		db.Create(&widget{Name: name})
	}

	rows, err := svc.List("ASC", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "a" {
		t.Errorf("first row = %q, want a", rows[0].Name)
	}
}
