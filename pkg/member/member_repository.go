package member

import (
	"context"
	"sync"

	"gogiieum/entities"
)

type (
	MemberRepository interface {
		GetByUsername(ctx context.Context, username string) (*entities.Member, error)
		Create(ctx context.Context, member *entities.Member) error
	}

	memberRepository struct {
		mu      sync.RWMutex
		members map[string]*entities.Member
	}
)

func NewMemberRepository() MemberRepository {
	return &memberRepository{
		members: make(map[string]*entities.Member),
	}
}

func (r *memberRepository) GetByUsername(ctx context.Context, username string) (*entities.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.members[username], nil
}

func (r *memberRepository) Create(ctx context.Context, member *entities.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.Username] = member
	return nil
}
