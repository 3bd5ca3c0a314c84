package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_users_username" json:"username"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;default:user" json:"role"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

func (UserModel) TableName() string { return "users" }
