package community

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
)

func TestCommunityService_GetFeed_All(t *testing.T) {
	service := NewCommunityService(NewCommunityRepository())

	feed, err := service.GetFeed(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, feed.Posts, 5)
	require.Len(t, feed.HotPosts, 2)
	assert.True(t, feed.HotPosts[0].IsHot)
	assert.True(t, feed.HotPosts[1].IsHot)
}

func TestCommunityService_GetFeed_FilterByCategory(t *testing.T) {
	service := NewCommunityService(NewCommunityRepository())

	feed, err := service.GetFeed(context.Background(), "farm")
	require.NoError(t, err)

	require.Len(t, feed.Posts, 1)
	assert.Equal(t, "farm", feed.Posts[0].Category)

	// Hot posts always span the whole feed regardless of the filter.
	assert.Len(t, feed.HotPosts, 2)
}

func TestCommunityService_GetFeed_UnknownCategory(t *testing.T) {
	service := NewCommunityService(NewCommunityRepository())

	_, err := service.GetFeed(context.Background(), "gossip")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCommunityService_CreatePost_PrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	service := NewCommunityService(NewCommunityRepository())

	post, err := service.CreatePost(ctx, domain.CreatePostRequest{
		Category: "tip",
		Title:    "삼겹살 바삭하게 굽는 법",
		Content:  "팬을 충분히 달군 뒤에 올리세요.",
		Tags:     []string{"꿀팁"},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, post.ID)
	assert.Equal(t, "고기러버", post.Author)
	assert.Equal(t, "방금 전", post.Time)
	assert.Equal(t, "📝", post.Image)
	assert.False(t, post.IsHot)

	feed, err := service.GetFeed(ctx, "")
	require.NoError(t, err)
	require.Len(t, feed.Posts, 6)
	assert.Equal(t, post.ID, feed.Posts[0].ID)
}

func TestCommunityService_GetMeta(t *testing.T) {
	service := NewCommunityService(NewCommunityRepository())

	meta := service.GetMeta(context.Background())
	require.Len(t, meta.Categories, 6)
	assert.Equal(t, "all", meta.Categories[0].ID)
	assert.Equal(t, "삼성 비스포크 냉장고", meta.AdBanner.Title)
}
