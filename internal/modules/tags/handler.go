package tags

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubreview/internal/pkg/response"
	"clubreview/internal/repository"
)

type TagCountResponse struct {
	TagName       string `json:"tag_name"`
	NumberOfClubs int64  `json:"number_of_clubs"`
}

type Handler struct {
	tagRepo *repository.TagRepository
}

func NewHandler(tagRepo *repository.TagRepository) *Handler {
	return &Handler{tagRepo: tagRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/tags", h.ListTags)
}

// ListTags handles GET /api/tags: every tag in use with the number of
// clubs carrying it.
func (h *Handler) ListTags(c *gin.Context) {
	counts, err := h.tagRepo.UsageCounts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]TagCountResponse, 0, len(counts))
	for _, tc := range counts {
		out = append(out, TagCountResponse{
			TagName:       tc.TagName,
			NumberOfClubs: tc.NumberOfClubs,
		})
	}

	c.JSON(http.StatusOK, out)
}
