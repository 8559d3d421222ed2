package clubs

import "clubreview/internal/repository"

// ClubResponse is the wire shape shared by list, search, create and update.
type ClubResponse struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	FavoriteCount int64    `json:"favorite_count"`
}

func toClubResponse(d repository.ClubDetails) ClubResponse {
	return ClubResponse{
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		Tags:          d.Tags,
		FavoriteCount: d.FavoriteCount,
	}
}

func toClubResponses(details []repository.ClubDetails) []ClubResponse {
	out := make([]ClubResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toClubResponse(d))
	}
	return out
}
