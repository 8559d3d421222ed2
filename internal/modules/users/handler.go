package users

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
	userRepo     *repository.UserRepository
	clubRepo     *repository.ClubRepository
	favoriteRepo *repository.FavoriteRepository
}

func NewHandler(
	userRepo *repository.UserRepository,
	clubRepo *repository.ClubRepository,
	favoriteRepo *repository.FavoriteRepository,
) *Handler {
	return &Handler{
		userRepo:     userRepo,
		clubRepo:     clubRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/user", h.GetUser)
	r.POST("/user/favorite", h.AddFavorite)
}

// GetUser handles GET /api/user. The username arrives in the JSON body.
func (h *Handler) GetUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusInternalServerError, "provide username")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusInternalServerError, "provide username")
		return
	}

	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "unknown username")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, UserResponse{Username: user.Username})
}

// AddFavorite handles POST /api/user/favorite
func (h *Handler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusInternalServerError, "include username and club code to favorite")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusInternalServerError, "include username and club code to favorite")
		return
	}

	ctx := c.Request.Context()

	user, err := h.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "unknown username")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if _, err := h.clubRepo.GetByCode(ctx, req.Code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "unknown club code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.favoriteRepo.Add(ctx, user.Username, req.Code); err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorited) {
			// 505 is load-bearing: existing clients match on it.
			response.Error(c, 505, "club already favorited")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	names, err := h.userRepo.FavoriteClubNames(ctx, user.Username)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, FavoriteListResponse{
		Username:      user.Username,
		FavoriteClubs: names,
	})
}
