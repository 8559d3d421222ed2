package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubreview/internal/database"
	"clubreview/internal/repository"
)

func TestListTags(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	clubRepo := repository.NewClubRepository(db)
	ctx := context.Background()
	_, err = clubRepo.Create(ctx, "a", "Alpha", "", []string{"Tech", "Arts"})
	require.NoError(t, err)
	_, err = clubRepo.Create(ctx, "b", "Beta", "", []string{"Tech"})
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	NewHandler(repository.NewTagRepository(db)).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var counts []TagCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	require.Len(t, counts, 2)
	assert.Equal(t, TagCountResponse{TagName: "Arts", NumberOfClubs: 1}, counts[0])
	assert.Equal(t, TagCountResponse{TagName: "Tech", NumberOfClubs: 2}, counts[1])
}
