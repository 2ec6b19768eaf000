package community

import (
	"context"
	"sync"

	"gogiieum/entities"
)

type (
	CommunityRepository interface {
		GetPosts(ctx context.Context) ([]*entities.CommunityPost, error)
		CreatePost(ctx context.Context, post *entities.CommunityPost) error
	}

	communityRepository struct {
		mu     sync.RWMutex
		nextID int
		posts  []*entities.CommunityPost
	}
)

func NewCommunityRepository() CommunityRepository {
	posts := seedPosts()
	return &communityRepository{
		nextID: len(posts) + 1,
		posts:  posts,
	}
}

func (r *communityRepository) GetPosts(ctx context.Context) ([]*entities.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.CommunityPost, len(r.posts))
	copy(result, r.posts)
	return result, nil
}

// CreatePost assigns the next identifier and prepends; the feed is
// append-only and newest first.
func (r *communityRepository) CreatePost(ctx context.Context, post *entities.CommunityPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = r.nextID
	r.nextID++
	r.posts = append([]*entities.CommunityPost{post}, r.posts...)
	return nil
}

func seedPosts() []*entities.CommunityPost {
	return []*entities.CommunityPost{
		{
			ID:       1,
			Category: "review",
			Title:    "홍성 한우 1++ 등심 먹어봤는데 진짜 대박!",
			Author:   "고기마니아",
			Content:  "어제 홍성에서 온 1++ 등심 먹었는데 진짜 입에서 녹아요...",
			Image:    "🥩",
			Likes:    156,
			Comments: 23,
			Tags:     []string{"한우", "1++", "등심"},
			IsHot:    true,
			Time:     "2시간 전",
		},
		{
			ID:       2,
			Category: "farm",
			Title:    "우리 농장 돼지들 운동시키는 영상 ㅎㅎ",
			Author:   "박돈육농가",
			Content:  "동물복지 인증받은 우리 농장 돼지들이 뛰어노는 모습입니다~",
			Image:    "🐷",
			Likes:    289,
			Comments: 45,
			Tags:     []string{"동물복지", "돼지", "농장"},
			IsHot:    true,
			Time:     "5시간 전",
		},
		{
			ID:       3,
			Category: "challenge",
			Title:    "저탄소 축산물 챌린지 2주차 성공!",
			Author:   "지구지킴이",
			Content:  "이번주도 저탄소 인증 제품만 구매했어요. 탄소 5kg 절감!",
			Image:    "🌱",
			Likes:    92,
			Comments: 18,
			Tags:     []string{"저탄소", "챌린지", "환경"},
			IsHot:    false,
			Time:     "1일 전",
		},
		{
			ID:       4,
			Category: "tip",
			Title:    "고기 육즙 살리는 꿀팁 공유합니다",
			Author:   "요리고수",
			Content:  "고기 굽기 전 30분 실온 보관이 핵심! 자세한 내용은...",
			Image:    "💡",
			Likes:    201,
			Comments: 34,
			Tags:     []string{"꿀팁", "요리"},
			IsHot:    false,
			Time:     "2일 전",
		},
		{
			ID:       5,
			Category: "free",
			Title:    "오늘 점심 뭐 먹을까요?",
			Author:   "점심고민",
			Content:  "한우 vs 돼지고기 투표 좀 해주세요 ㅠㅠ",
			Image:    "🤔",
			Likes:    67,
			Comments: 89,
			Tags:     []string{"잡담"},
			IsHot:    false,
			Time:     "3시간 전",
		},
	}
}
