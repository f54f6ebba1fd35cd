package controller

import (
	"vaulting/repository"
	"vaulting/service"
	"vaulting/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{userService: service.NewUserService(db)}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	basePath := "/users"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getAllUsersHandler(), Authenticated: true, RequiredRoles: officeRoles},
		{Method: "POST", Path: "", HandlerFunc: e.createUserHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "GET", Path: "/self", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:user_id", HandlerFunc: e.updateUserHandler(), Authenticated: true, RequiredRoles: adminRoles},
		{Method: "POST", Path: "/:user_id/token", HandlerFunc: e.issueTokenHandler(), Authenticated: true, RequiredRoles: adminRoles},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type UserCreate struct {
	DisplayName string                  `json:"displayName" binding:"required"`
	Email       string                  `json:"email"`
	Permissions []repository.Permission `json:"permissions"`
}

type User struct {
	Id          int                     `json:"id"`
	DisplayName string                  `json:"displayName"`
	Email       string                  `json:"email,omitempty"`
	Permissions []repository.Permission `json:"permissions"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (e *UserCreate) toModel() *repository.User {
	permissions := make(pq.StringArray, 0, len(e.Permissions))
	for _, permission := range e.Permissions {
		permissions = append(permissions, string(permission))
	}
	return &repository.User{DisplayName: e.DisplayName, Email: e.Email, Permissions: permissions}
}

func toUserResponse(user *repository.User) User {
	return User{
		Id:          user.Id,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Permissions: utils.Map(user.Permissions, func(permission string) repository.Permission {
			return repository.Permission(permission)
		}),
	}
}

// @id GetAllUsers
// @Description Fetches all users
// @Tags user
// @Produce json
// @Success 200 {array} User
// @Security BearerAuth
// @Router /users [get]
func (e *UserController) getAllUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetAllUsers()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id GetUser
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/self [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetUserFromAuthHeader(c)
		if err != nil {
			c.JSON(401, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id CreateUser
// @Description Creates a judge, office or admin account
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserCreate true "User"
// @Success 201 {object} User
// @Security BearerAuth
// @Router /users [post]
func (e *UserController) createUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UserCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.SaveUser(body.toModel())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id UpdateUser
// @Description Changes the name and permissions of a user
// @Tags user
// @Accept json
// @Produce json
// @Param user_id path int true "User Id"
// @Param user body UserCreate true "User"
// @Success 200 {object} User
// @Security BearerAuth
// @Router /users/{user_id} [patch]
func (e *UserController) updateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := intParam(c, "user_id")
		if !ok {
			return
		}
		var body UserCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.userService.GetUserById(userId); err != nil {
			respondError(c, err)
			return
		}
		model := body.toModel()
		model.Id = userId
		user, err := e.userService.SaveUser(model)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id IssueToken
// @Description Issues a token for a user, e.g. for a judge's tablet
// @Tags user
// @Produce json
// @Param user_id path int true "User Id"
// @Success 200 {object} TokenResponse
// @Security BearerAuth
// @Router /users/{user_id}/token [post]
func (e *UserController) issueTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := intParam(c, "user_id")
		if !ok {
			return
		}
		token, err := e.userService.IssueToken(userId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, TokenResponse{Token: token})
	}
}
