package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubreview/internal/database"
	"clubreview/internal/domain"
	"clubreview/internal/modules/clubs"
	"clubreview/internal/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&domain.User{Username: "josh"}).Error)

	clubRepo := repository.NewClubRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	r := gin.New()
	api := r.Group("/api")
	NewHandler(userRepo, clubRepo, favoriteRepo).RegisterRoutes(api)
	clubs.NewHandler(clubRepo).RegisterRoutes(api)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestGetUser(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/user", gin.H{"username": "josh"})
	require.Equal(t, http.StatusOK, w.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "josh", user.Username)

	w = doJSON(t, r, http.MethodGet, "/api/user", gin.H{"username": "ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown username", errorMessage(t, w))

	w = doJSON(t, r, http.MethodGet, "/api/user", gin.H{})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "provide username", errorMessage(t, w))
}

func TestAddFavoriteFlow(t *testing.T) {
	r := setupRouter(t)

	for _, club := range []gin.H{
		{"code": "a", "name": "Archery", "description": "", "tags": []string{}},
		{"code": "b", "name": "Baking", "description": "", "tags": []string{}},
		{"code": "c", "name": "Chess", "description": "", "tags": []string{}},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/clubs", club)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/user/favorite", gin.H{"username": "josh", "code": "a"})
	require.Equal(t, http.StatusOK, w.Code)

	var favorites FavoriteListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	assert.Equal(t, "josh", favorites.Username)
	assert.Equal(t, []string{"Archery"}, favorites.FavoriteClubs)

	// Favoriting the same club twice is a conflict, reported as 505.
	w = doJSON(t, r, http.MethodPost, "/api/user/favorite", gin.H{"username": "josh", "code": "a"})
	require.Equal(t, 505, w.Code)
	assert.Equal(t, "club already favorited", errorMessage(t, w))

	// The favorite shows up in the club listing, others stay at zero.
	w = doJSON(t, r, http.MethodGet, "/api/clubs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []clubs.ClubResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.EqualValues(t, 1, listed[0].FavoriteCount)
	assert.EqualValues(t, 0, listed[1].FavoriteCount)
	assert.EqualValues(t, 0, listed[2].FavoriteCount)
}

func TestAddFavoriteValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/clubs", gin.H{
		"code": "a", "name": "Archery", "description": "", "tags": []string{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/user/favorite", gin.H{"username": "josh"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "include username and club code to favorite", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/user/favorite", gin.H{"username": "ghost", "code": "a"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown username", errorMessage(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/user/favorite", gin.H{"username": "josh", "code": "ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown club code", errorMessage(t, w))
}
