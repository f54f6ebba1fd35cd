package auth

import (
	"errors"
	"time"

	"vaulting/config"
	"vaulting/repository"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour * 5

type Claims struct {
	UserId      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	permissions := []string{}
	if raw, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range raw {
			if s, ok := perm.(string); ok {
				permissions = append(permissions, s)
			}
		}
	}
	claims.Permissions = permissions
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasAny(permissions []repository.Permission) bool {
	for _, required := range permissions {
		for _, owned := range claims.Permissions {
			if string(required) == owned {
				return true
			}
		}
	}
	return false
}

func CreateToken(user *repository.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":     user.Id,
			"permissions": []string(user.Permissions),
			"exp":         time.Now().Add(tokenLifetime).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	return token, nil
}

// ClaimsFromToken parses and checks a token string.
func ClaimsFromToken(tokenString string) (*Claims, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}
