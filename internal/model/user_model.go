package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleHandler  UserRole = "handler"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(200);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(200);not null" json:"full_name"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:customer" json:"role"`
	CustomerID   *string    `gorm:"type:varchar(64)" json:"customer_id"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

func (u *User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HashPassword is demo-grade unsalted SHA-256.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(password, hashed string) bool {
	return HashPassword(password) == hashed
}
