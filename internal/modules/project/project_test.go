package project

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/imagestore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.AdminModel{}, &models.LogModel{},
		&models.ProjectModel{}, &models.CategoryModel{}, &models.InternModel{},
		&models.ProjectCategoryModel{}, &models.ProjectMemberModel{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	images, err := imagestore.New(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("image store: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(db, images, audit.NewRecorder(db), nil).RegisterRoutes(api, passthrough)
	return r, db
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func seedProjects(t *testing.T, db *gorm.DB) {
	t.Helper()
	web := models.CategoryModel{Name: "Web Development"}
	ml := models.CategoryModel{Name: "Machine Learning"}
	db.Create(&web)
	db.Create(&ml)

	dashboard := models.ProjectModel{Title: "Dashboard", Slug: "dashboard", Description: "internal analytics"}
	classifier := models.ProjectModel{Title: "Classifier", Slug: "classifier", Description: "image labeling"}
	db.Create(&dashboard)
	db.Create(&classifier)

	db.Create(&models.ProjectCategoryModel{IDProject: dashboard.ID, IDCategory: web.ID})
	db.Create(&models.ProjectCategoryModel{IDProject: classifier.ID, IDCategory: ml.ID})
}

func TestSearchByTitleCaseInsensitive(t *testing.T) {
	r, db := newRouter(t)
	seedProjects(t, db)

	w := get(t, r, "/api/project/search?que=DASHBOARD")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Data []models.ProjectModel `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Title != "Dashboard" {
		t.Fatalf("results = %+v", body.Data)
	}
}

func TestSearchByCategoryName(t *testing.T) {
	r, db := newRouter(t)
	seedProjects(t, db)

	w := get(t, r, "/api/project/search?que=machine")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Data []models.ProjectModel `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Title != "Classifier" {
		t.Fatalf("results = %+v", body.Data)
	}
}

func TestSearchNoMatches(t *testing.T) {
	r, db := newRouter(t)
	seedProjects(t, db)

	w := get(t, r, "/api/project/search?que=blockchain")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
}

func TestSearchMissingQuery(t *testing.T) {
	r, _ := newRouter(t)

	w := get(t, r, "/api/project/search")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetByIDEmbedsRelations(t *testing.T) {
	r, db := newRouter(t)

	p := models.ProjectModel{Title: "Dashboard", Slug: "dashboard"}
	db.Create(&p)
	cat := models.CategoryModel{Name: "Web Development"}
	db.Create(&cat)
	member := models.InternModel{Name: "Alice", Role: "Backend"}
	db.Create(&member)
	db.Create(&models.ProjectCategoryModel{IDProject: p.ID, IDCategory: cat.ID})
	db.Create(&models.ProjectMemberModel{IDProject: p.ID, IDIntern: member.ID})

	w := get(t, r, "/api/project/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Title      string                 `json:"title"`
		Members    []models.InternModel   `json:"members"`
		Categories []models.CategoryModel `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Title != "Dashboard" {
		t.Errorf("title = %q", body.Title)
	}
	if len(body.Members) != 1 || body.Members[0].Name != "Alice" {
		t.Errorf("members = %+v", body.Members)
	}
	if len(body.Categories) != 1 || body.Categories[0].Name != "Web Development" {
		t.Errorf("categories = %+v", body.Categories)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	r, _ := newRouter(t)

	w := get(t, r, "/api/project/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
