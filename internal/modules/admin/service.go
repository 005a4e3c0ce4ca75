package admin

import (
	"errors"
	"fmt"
	"time"

	"github.com/widyalab/landing-api/internal/models"
	"github.com/widyalab/landing-api/internal/pkg/audit"
	"github.com/widyalab/landing-api/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrForbidden          = errors.New("only Master Admin can manage admin accounts")
)

type Service struct {
	db     *gorm.DB
	signer *jwt.Signer
	audit  *audit.Recorder
}

func NewService(db *gorm.DB, signer *jwt.Signer, rec *audit.Recorder) *Service {
	return &Service{db: db, signer: signer, audit: rec}
}

// Login verifies credentials, stamps last_login and issues a token.
func (s *Service) Login(username, password string) (string, *models.AdminModel, error) {
	var a models.AdminModel
	if err := s.db.Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	s.db.Model(&a).Update("last_login", now)
	a.LastLogin = &now

	token, err := s.signer.Sign(a.ID, a.Username, a.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &a, nil
}

func (s *Service) List() ([]models.AdminModel, error) {
	var admins []models.AdminModel
	return admins, s.db.Order("created_at ASC").Find(&admins).Error
}

func (s *Service) GetByID(id uint) (*models.AdminModel, error) {
	var a models.AdminModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create adds an admin account. Master Admin only.
func (s *Service) Create(actor jwt.Claims, username, password string) (*models.AdminModel, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.AdminModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := models.AdminModel{Username: username, PasswordHash: string(hash), Role: models.RoleAdmin}
	if err := s.db.Create(&a).Error; err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("%s Created admin with username: %s", actor.Username, username)
	if err := s.audit.Record(actor.AdminID, audit.ActionCreate, "admin", a.ID, desc); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateDTO carries the partial update; nil fields keep the stored value.
type UpdateDTO struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Update merges the DTO into the stored account. Master Admin only.
func (s *Service) Update(actor jwt.Claims, id uint, dto UpdateDTO) (*models.AdminModel, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	if dto.Username != nil {
		a.Username = *dto.Username
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = string(hash)
	}
	if err := s.db.Save(a).Error; err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("%s Updated admin with username: %s", actor.Username, a.Username)
	if err := s.audit.Record(actor.AdminID, audit.ActionUpdate, "admin", id, desc); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an admin account. Master Admin only. Audit rows referencing
// the account survive via SET NULL.
func (s *Service) Delete(actor jwt.Claims, id uint) (*models.AdminModel, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	if err := s.db.Delete(a).Error; err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("%s Deleted admin with username: %s", actor.Username, a.Username)
	if err := s.audit.Record(actor.AdminID, audit.ActionDelete, "admin", id, desc); err != nil {
		return nil, err
	}
	return a, nil
}

// ResetPassword sets a new password hash. Master Admin only.
func (s *Service) ResetPassword(actor jwt.Claims, id uint, newPassword string) (*models.AdminModel, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(a).Update("password_hash", string(hash)).Error; err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("%s Reset Password for admin with username: %s", actor.Username, a.Username)
	if err := s.audit.Record(actor.AdminID, audit.ActionUpdate, "admin", id, desc); err != nil {
		return nil, err
	}
	return a, nil
}

// requireMaster gates privileged admin management. An empty role skips the
// check, matching observed legacy behavior after JWT decode.
func requireMaster(actor jwt.Claims) error {
	if actor.Role != "" && actor.Role != models.RoleMasterAdmin {
		return ErrForbidden
	}
	return nil
}
