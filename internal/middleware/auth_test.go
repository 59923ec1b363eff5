package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Blazehunterx/ironmatch-sub000/internal/config"
	"github.com/Blazehunterx/ironmatch-sub000/internal/database"
	"github.com/Blazehunterx/ironmatch-sub000/internal/models"
	"github.com/Blazehunterx/ironmatch-sub000/pkg/utils"
)

func setupAuthTest(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	database.DB = db

	id := utils.GenerateID()
	db.Create(&models.User{ID: id, Username: "lifter", Email: "lifter@example.com"})
	return id
}

func callProtected(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.GET("/private", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet("userId")})
	})

	req, _ := http.NewRequest("GET", "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	id := setupAuthTest(t)

	token, err := utils.GenerateToken(id)
	assert.NoError(t, err)

	w := callProtected(t, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
}

// A signed token whose subject is not a well-formed user id is rejected
// before any database lookup.
func TestAuthMiddleware_RejectsMalformedSubject(t *testing.T) {
	setupAuthTest(t)

	token, err := utils.GenerateToken("not-a-uuid")
	assert.NoError(t, err)

	w := callProtected(t, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	setupAuthTest(t)

	w := callProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
