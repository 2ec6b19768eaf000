package community

import (
	"context"

	"gogiieum/domain"
	"gogiieum/entities"
)

const categoryAll = "all"

var categories = []domain.CategoryResponse{
	{ID: "all", Icon: "📋", Label: "전체"},
	{ID: "review", Icon: "🥩", Label: "후기"},
	{ID: "farm", Icon: "👨‍🌾", Label: "농가"},
	{ID: "challenge", Icon: "🌱", Label: "챌린지"},
	{ID: "tip", Icon: "💡", Label: "꿀팁"},
	{ID: "free", Icon: "💬", Label: "자유"},
}

type (
	CommunityService interface {
		GetFeed(ctx context.Context, category string) (*domain.FeedResponse, error)
		GetMeta(ctx context.Context) *domain.CommunityMetaResponse
		CreatePost(ctx context.Context, req domain.CreatePostRequest) (*domain.PostResponse, error)
	}

	communityService struct {
		communityRepository CommunityRepository
	}
)

func NewCommunityService(communityRepository CommunityRepository) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
	}
}

// GetFeed returns posts filtered by category. The hot list always spans the
// whole feed, matching the original which only renders it on "all".
func (s *communityService) GetFeed(ctx context.Context, category string) (*domain.FeedResponse, error) {
	if category == "" {
		category = categoryAll
	}
	if !knownCategory(category) {
		return nil, domain.ErrUnknownCategory
	}

	posts, err := s.communityRepository.GetPosts(ctx)
	if err != nil {
		return nil, err
	}

	feed := &domain.FeedResponse{
		Posts:    []domain.PostResponse{},
		HotPosts: []domain.PostResponse{},
	}
	for _, post := range posts {
		if category == categoryAll || post.Category == category {
			feed.Posts = append(feed.Posts, toPostResponse(post))
		}
		if post.IsHot {
			feed.HotPosts = append(feed.HotPosts, toPostResponse(post))
		}
	}
	return feed, nil
}

func (s *communityService) GetMeta(ctx context.Context) *domain.CommunityMetaResponse {
	return &domain.CommunityMetaResponse{
		Categories: categories,
		AdBanner: domain.AdBannerResponse{
			Title:    "삼성 비스포크 냉장고",
			Subtitle: "고기 신선하게 보관하세요",
			Image:    "❄️",
		},
	}
}

func (s *communityService) CreatePost(ctx context.Context, req domain.CreatePostRequest) (*domain.PostResponse, error) {
	image := req.Image
	if image == "" {
		image = "📝"
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &entities.CommunityPost{
		Category: req.Category,
		Title:    req.Title,
		Author:   "고기러버",
		Content:  req.Content,
		Image:    image,
		Tags:     tags,
		Time:     "방금 전",
	}
	if err := s.communityRepository.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	resp := toPostResponse(post)
	return &resp, nil
}

func knownCategory(category string) bool {
	for _, c := range categories {
		if c.ID == category {
			return true
		}
	}
	return false
}

func toPostResponse(post *entities.CommunityPost) domain.PostResponse {
	return domain.PostResponse{
		ID:       post.ID,
		Category: post.Category,
		Title:    post.Title,
		Author:   post.Author,
		Content:  post.Content,
		Image:    post.Image,
		Likes:    post.Likes,
		Comments: post.Comments,
		Tags:     post.Tags,
		IsHot:    post.IsHot,
		Time:     post.Time,
	}
}
