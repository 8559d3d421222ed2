package users

type UserRequest struct {
	Username string `json:"username" validate:"required"`
}

type FavoriteRequest struct {
	Username string `json:"username" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type FavoriteListResponse struct {
	Username      string   `json:"username"`
	FavoriteClubs []string `json:"favorite_clubs"`
}
