package service

import (
	"errors"
	"fmt"
	"slices"

	"vaulting/auth"
	"vaulting/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var knownPermissions = []string{
	string(repository.PermissionAdmin),
	string(repository.PermissionOffice),
	string(repository.PermissionJudge),
}

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{userRepository: repository.NewUserRepository(db)}
}

func (s *UserService) GetUserById(userId int) (*repository.User, error) {
	return s.userRepository.GetUserById(userId)
}

func (s *UserService) GetAllUsers() ([]*repository.User, error) {
	return s.userRepository.GetAllUsers()
}

func (s *UserService) SaveUser(user *repository.User) (*repository.User, error) {
	for _, permission := range user.Permissions {
		if !slices.Contains(knownPermissions, permission) {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrValidation, permission)
		}
	}
	return s.userRepository.SaveUser(user)
}

// IssueToken signs a token for a stored user, judges get theirs from the
// office before a competition day.
func (s *UserService) IssueToken(userId int) (string, error) {
	user, err := s.userRepository.GetUserById(userId)
	if err != nil {
		return "", err
	}
	return auth.CreateToken(user)
}

// EnsureAdmin creates the first admin of an empty installation. It returns
// nil when an admin exists already.
func (s *UserService) EnsureAdmin() (*repository.User, error) {
	users, err := s.userRepository.GetAllUsers()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.HasPermission(repository.PermissionAdmin) {
			return nil, nil
		}
	}
	return s.userRepository.SaveUser(&repository.User{
		DisplayName: "Admin",
		Permissions: pq.StringArray{string(repository.PermissionAdmin)},
	})
}

func (s *UserService) GetUserFromAuthHeader(c *gin.Context) (*repository.User, error) {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		authCookie, err := c.Cookie("auth")
		if err != nil {
			return nil, fmt.Errorf("authorization header is invalid")
		}
		return s.GetUserFromToken(authCookie)
	}
	return s.GetUserFromToken(authHeader[7:])
}

func (s *UserService) GetUserFromToken(tokenString string) (*repository.User, error) {
	claims, err := auth.ClaimsFromToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.GetUserById(claims.UserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: token of a deleted user", ErrPermission)
	}
	return user, err
}
