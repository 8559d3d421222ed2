package repository

import "errors"

var (
	ErrClubNotFound     = errors.New("club not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrClubCodeInUse    = errors.New("club code already used")
	ErrClubNameInUse    = errors.New("club name already used")
	ErrDuplicateTag     = errors.New("duplicate tag")
	ErrAlreadyFavorited = errors.New("club already favorited")
)
