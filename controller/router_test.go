package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vaulting/auth"
	"vaulting/repository"
	"vaulting/scoring"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEngine(roles []repository.Permission) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected/:id", AuthMiddleware(roles), func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		c.JSON(200, gin.H{"user": c.GetInt("user_id"), "id": id})
	})
	return r
}

func tokenFor(t *testing.T, id int, permissions ...string) string {
	token, err := auth.CreateToken(&repository.User{Id: id, Permissions: pq.StringArray(permissions)})
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, path string, header string, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", "Bearer "+header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareNeedsToken(t *testing.T) {
	r := protectedEngine(officeRoles)
	assert.Equal(t, 401, get(r, "/protected/1", "", "").Code)
	assert.Equal(t, 401, get(r, "/protected/1", "not-a-token", "").Code)
}

func TestAuthMiddlewareChecksRoles(t *testing.T) {
	r := protectedEngine(officeRoles)
	assert.Equal(t, 403, get(r, "/protected/1", tokenFor(t, 3, "judge"), "").Code)

	w := get(r, "/protected/5", tokenFor(t, 4, "office"), "")
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"user": 4, "id": 5}`, w.Body.String())
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	r := protectedEngine(nil)
	w := get(r, "/protected/2", "", tokenFor(t, 7, "judge"))
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"user": 7, "id": 2}`, w.Body.String())
}

func TestIntParamRejectsNonNumbers(t *testing.T) {
	r := protectedEngine(nil)
	assert.Equal(t, 400, get(r, "/protected/abc", tokenFor(t, 7), "").Code)
}

func TestResultLine(t *testing.T) {
	first := 8.0
	line := toResultLine(&scoring.Result{
		EntryId: 3,
		Rank:    2,
		Entry: &repository.Entry{
			Club:     "RV Club",
			Vaulters: []*repository.Person{{Name: "Anna"}, {Name: "Ben"}},
			Horse:    &repository.Horse{Name: "Fidelio"},
		},
		FirstTotalScore: &first,
		TotalScore:      7.6,
	})
	assert.Equal(t, "Anna, Ben", line.DisplayName)
	assert.Equal(t, "Fidelio", line.Horse)
	assert.Empty(t, line.Lunger)
	assert.Equal(t, "7.600", line.Score)
	assert.Equal(t, 2, line.Rank)
}
