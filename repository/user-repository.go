package repository

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Permission string

const (
	PermissionAdmin  Permission = "admin"
	PermissionOffice Permission = "office"
	PermissionJudge  Permission = "judge"
)

type User struct {
	Id          int            `gorm:"primaryKey autoIncrement"`
	DisplayName string         `gorm:"not null"`
	Email       string         `gorm:"null;uniqueIndex"`
	Permissions pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

func (u *User) HasPermission(permissions ...Permission) bool {
	for _, owned := range u.Permissions {
		for _, permission := range permissions {
			if owned == string(permission) {
				return true
			}
		}
	}
	return false
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if result.Error != nil {
		return nil, fmt.Errorf("user with id %d not found: %w", userId, result.Error)
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers() ([]*User, error) {
	users := make([]*User, 0)
	result := r.DB.Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save user: %v", result.Error)
	}
	return user, nil
}
