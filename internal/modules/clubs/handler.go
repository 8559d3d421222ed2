package clubs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clubreview/internal/pkg/response"
	"clubreview/internal/pkg/validator"
	"clubreview/internal/repository"
)

type Handler struct {
	clubRepo *repository.ClubRepository
}

func NewHandler(clubRepo *repository.ClubRepository) *Handler {
	return &Handler{clubRepo: clubRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clubs", h.ListClubs)
	r.POST("/clubs", h.CreateClub)
	r.PATCH("/clubs", h.UpdateClub)
	r.GET("/clubs/search", h.SearchClubs)
}

// ListClubs handles GET /api/clubs
func (h *Handler) ListClubs(c *gin.Context) {
	details, err := h.clubRepo.List(c.Request.Context(), "")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, toClubResponses(details))
}

// SearchClubs handles GET /api/clubs/search. The search term arrives in the
// JSON body, not the query string; existing clients send it that way.
func (h *Handler) SearchClubs(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusInternalServerError, "provide name to search for")
		return
	}

	name, ok := body["name"].(string)
	if !ok {
		response.Error(c, http.StatusInternalServerError, "provide name to search for")
		return
	}

	details, err := h.clubRepo.List(c.Request.Context(), name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, toClubResponses(details))
}

// CreateClub handles POST /api/clubs
func (h *Handler) CreateClub(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusInternalServerError, "include code, name, description, and tags")
		return
	}

	code, okCode := body["code"].(string)
	name, okName := body["name"].(string)
	description, okDescription := body["description"].(string)
	tags, okTags := body["tags"]
	if !okCode || !okName || !okDescription || !okTags {
		response.Error(c, http.StatusInternalServerError, "include code, name, description, and tags")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.clubRepo.GetByCode(ctx, code); err == nil {
		response.Error(c, http.StatusInternalServerError, "club code already used")
		return
	}
	if _, err := h.clubRepo.GetByName(ctx, name); err == nil {
		response.Error(c, http.StatusInternalServerError, "club name already used")
		return
	}
	if !validator.IsStringList(tags) {
		response.Error(c, http.StatusInternalServerError, "tags must be list of strings")
		return
	}

	details, err := h.clubRepo.Create(ctx, code, name, description, stringSlice(tags))
	if err != nil {
		handleClubError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClubResponse(*details))
}

// UpdateClub handles PATCH /api/clubs
func (h *Handler) UpdateClub(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusInternalServerError, "include club code and new parameters")
		return
	}

	code, okCode := body["code"].(string)
	newCode, okNewCode := body["newCode"].(string)
	newName, okNewName := body["newName"].(string)
	newDescription, okNewDescription := body["newDescription"].(string)
	newTags, okNewTags := body["newTags"]
	if !okCode || !okNewCode || !okNewName || !okNewDescription || !okNewTags {
		response.Error(c, http.StatusInternalServerError, "include club code and new parameters")
		return
	}

	ctx := c.Request.Context()

	club, err := h.clubRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusInternalServerError, "invalid club code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if newCode != code {
		if _, err := h.clubRepo.GetByCode(ctx, newCode); err == nil {
			response.Error(c, http.StatusInternalServerError, "new code already in use")
			return
		}
	}
	if newName != club.Name {
		if _, err := h.clubRepo.GetByName(ctx, newName); err == nil {
			response.Error(c, http.StatusInternalServerError, "new name already in use")
			return
		}
	}
	if !validator.IsStringList(newTags) {
		response.Error(c, http.StatusInternalServerError, "tags must be list of strings")
		return
	}

	details, err := h.clubRepo.Update(ctx, code, newCode, newName, newDescription, stringSlice(newTags))
	if err != nil {
		handleUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClubResponse(*details))
}

// handleClubError maps repository conflicts surfaced inside the write
// transaction onto the API's documented messages.
func handleClubError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrClubCodeInUse):
		response.Error(c, http.StatusInternalServerError, "club code already used")
	case errors.Is(err, repository.ErrClubNameInUse):
		response.Error(c, http.StatusInternalServerError, "club name already used")
	case errors.Is(err, repository.ErrDuplicateTag):
		response.Error(c, http.StatusInternalServerError, "cannot have duplicate tags")
	case errors.Is(err, repository.ErrClubNotFound):
		response.Error(c, http.StatusInternalServerError, "invalid club code")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func handleUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrClubCodeInUse):
		response.Error(c, http.StatusInternalServerError, "new code already in use")
	case errors.Is(err, repository.ErrClubNameInUse):
		response.Error(c, http.StatusInternalServerError, "new name already in use")
	case errors.Is(err, repository.ErrDuplicateTag):
		response.Error(c, http.StatusInternalServerError, "cannot have duplicate tags")
	case errors.Is(err, repository.ErrClubNotFound):
		response.Error(c, http.StatusInternalServerError, "invalid club code")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// stringSlice converts a value IsStringList has already accepted.
func stringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.(string))
		}
		return out
	default:
		return nil
	}
}
