package models

import "time"

// Admin roles. Only a Master Admin may manage other admin accounts.
const (
	RoleMasterAdmin = "Master Admin"
	RoleAdmin       = "Admin"
)

// AdminModel represents an administrator account.
type AdminModel struct {
	Base
	Username     string     `json:"username"   gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string     `json:"-"          gorm:"column:password_hash;size:255;not null"`
	Role         string     `json:"role"       gorm:"size:32;not null;default:Admin"`
	LastLogin    *time.Time `json:"last_login" gorm:"column:last_login"`
}

func (AdminModel) TableName() string { return "admin" }
