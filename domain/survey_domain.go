package domain

import (
	"errors"
)

var (
	MessageSuccessCompleteSurvey     = "preference survey completed successfully"
	MessageSuccessGetQuestions       = "survey questions retrieved successfully"
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageFailedCompleteSurvey      = "failed to complete preference survey"
	MessageFailedGetRecommendations  = "failed to retrieve recommendations"

	ErrSurveyNotCompleted = errors.New("preference survey has not been completed")
)

// Ordinal answers for texture and flavor questions. Value 0 always means the
// first option of the original survey (부드러움 / 육즙 풍부 / 약함).
const (
	AnswerSoft   = 0
	AnswerJuicy  = 0
	AnswerStrong = 2
)

const SurveyCompletionReward = 100

type (
	TexturePreference struct {
		Softness  *int `json:"softness" validate:"omitempty,min=0,max=2"`
		Juiciness *int `json:"juiciness" validate:"omitempty,min=0,max=2"`
	}

	FlavorPreference struct {
		Intensity *int `json:"intensity" validate:"omitempty,min=0,max=2"`
	}

	ValuePreference struct {
		Local          bool `json:"local"`
		Sustainability bool `json:"sustainability"`
		ValueForMoney  bool `json:"value4money"`
		Premium        bool `json:"premium"`
	}

	// PreferenceProfile is replaced wholesale on every survey completion,
	// never merged field by field.
	PreferenceProfile struct {
		Texture        TexturePreference `json:"texture"`
		Flavor         FlavorPreference  `json:"flavor"`
		PreferredCuts  []string          `json:"preferred_cuts"`
		Doneness       string            `json:"doneness"`
		CookingMethods []string          `json:"cooking_methods"`
		Values         ValuePreference   `json:"values"`
		BudgetBand     string            `json:"budget_band"`
		PackSize       string            `json:"pack_size"`
	}

	CompleteSurveyRequest struct {
		Profile PreferenceProfile `json:"profile" validate:"required"`
	}

	CompleteSurveyResponse struct {
		AwardedPoints   int                      `json:"awarded_points"`
		Balance         int                      `json:"balance"`
		Summary         string                   `json:"summary"`
		Recommendations []RecommendationResponse `json:"recommendations"`
	}

	RecommendationResponse struct {
		Product ProductResponse `json:"product"`
		Reasons []string        `json:"reasons"`
	}

	SurveyOption struct {
		Label string `json:"label"`
		Value any    `json:"value,omitempty"`
		Key   string `json:"key,omitempty"`
	}

	SurveyQuestion struct {
		ID       int            `json:"id"`
		Title    string         `json:"title"`
		Question string         `json:"question"`
		Type     string         `json:"type"` // single, multi, budget
		Options  []SurveyOption `json:"options,omitempty"`
		Budgets  []string       `json:"budgets,omitempty"`
		Sizes    []string       `json:"sizes,omitempty"`
	}
)
