package domain

import (
	"errors"
)

var (
	MessageSuccessGetPosts   = "community posts retrieved successfully"
	MessageSuccessGetMeta    = "community metadata retrieved successfully"
	MessageSuccessCreatePost = "community post created successfully"
	MessageFailedGetPosts    = "failed to retrieve community posts"
	MessageFailedCreatePost  = "failed to create community post"

	ErrUnknownCategory = errors.New("unknown community category")
)

type (
	CreatePostRequest struct {
		Category string   `json:"category" validate:"required,oneof=review farm challenge tip free"`
		Title    string   `json:"title" validate:"required"`
		Content  string   `json:"content" validate:"required"`
		Image    string   `json:"image"`
		Tags     []string `json:"tags"`
	}

	PostResponse struct {
		ID       int      `json:"id"`
		Category string   `json:"category"`
		Title    string   `json:"title"`
		Author   string   `json:"author"`
		Content  string   `json:"content"`
		Image    string   `json:"image"`
		Likes    int      `json:"likes"`
		Comments int      `json:"comments"`
		Tags     []string `json:"tags"`
		IsHot    bool     `json:"is_hot"`
		Time     string   `json:"time"`
	}

	CategoryResponse struct {
		ID    string `json:"id"`
		Icon  string `json:"icon"`
		Label string `json:"label"`
	}

	AdBannerResponse struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Image    string `json:"image"`
	}

	CommunityMetaResponse struct {
		Categories []CategoryResponse `json:"categories"`
		AdBanner   AdBannerResponse   `json:"ad_banner"`
	}

	FeedResponse struct {
		Posts    []PostResponse `json:"posts"`
		HotPosts []PostResponse `json:"hot_posts"`
	}
)
