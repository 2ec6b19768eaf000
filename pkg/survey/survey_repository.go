package survey

import (
	"context"
	"sync"

	"gogiieum/domain"
)

type (
	SurveyRepository interface {
		GetProfile(ctx context.Context) (*domain.PreferenceProfile, error)
		ReplaceProfile(ctx context.Context, profile domain.PreferenceProfile) error
	}

	surveyRepository struct {
		mu      sync.RWMutex
		profile *domain.PreferenceProfile
	}
)

func NewSurveyRepository() SurveyRepository {
	return &surveyRepository{}
}

func (r *surveyRepository) GetProfile(ctx context.Context) (*domain.PreferenceProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, nil
	}
	copied := *r.profile
	return &copied, nil
}

// ReplaceProfile swaps the whole profile; fields are never merged.
func (r *surveyRepository) ReplaceProfile(ctx context.Context, profile domain.PreferenceProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = &profile
	return nil
}
