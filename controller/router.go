package controller

import (
	"strconv"
	"time"

	"vaulting/app_error"
	"vaulting/auth"
	"vaulting/config"
	"vaulting/repository"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Permission
}

var (
	officeRoles = []repository.Permission{repository.PermissionAdmin, repository.PermissionOffice}
	adminRoles  = []repository.Permission{repository.PermissionAdmin}
	judgeRoles  = []repository.Permission{repository.PermissionAdmin, repository.PermissionOffice, repository.PermissionJudge}
)

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	group := r.Group("/api")
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupEventController(db)...)
	routes = append(routes, setupCategoryController(db)...)
	routes = append(routes, setupEntryController(db)...)
	routes = append(routes, setupTimetablePartController(db)...)
	routes = append(routes, setupScoreSheetController(db)...)
	routes = append(routes, setupResultGroupController(db)...)
	routes = append(routes, setupResultController(db, cacheStore, resultCacheDuration())...)
	routes = append(routes, setupScoringController(db)...)
	routes = append(routes, setupUserController(db)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func resultCacheDuration() time.Duration {
	return time.Duration(config.Env().ResultCacheSeconds) * time.Second
}

func tokenFromRequest(c *gin.Context) (string, bool) {
	header := c.Request.Header.Get("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:], true
	}
	authCookie, err := c.Cookie("auth")
	if err != nil || authCookie == "" {
		return "", false
	}
	return authCookie, true
}

// AuthMiddleware accepts a bearer token or the auth cookie and stores the
// caller's id as "user_id". An empty role list admits every valid token.
func AuthMiddleware(roles []repository.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims, err := auth.ClaimsFromToken(tokenString)
		if err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if len(roles) > 0 && !claims.HasAny(roles) {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserId)
		c.Next()
	}
}

// intParam reads a numeric path parameter and answers 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return 0, false
	}
	return value, true
}

func respondError(c *gin.Context, err error) {
	app_error.Respond(c, err)
}
