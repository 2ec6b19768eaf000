package survey

import (
	"context"
	"strings"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/catalog"
	"gogiieum/pkg/point"
	"gogiieum/pkg/session"
)

// Sub-score thresholds a product must clear before a preference counts as a
// match for it. Values taken over from the original recommendation rules.
const (
	softFatThreshold     = 4.5
	juicyTasteThreshold  = 4.7
	strongAromaThreshold = 4.6
	maxRecommendations   = 6
)

type (
	SurveyService interface {
		Complete(ctx context.Context, req domain.CompleteSurveyRequest) (*domain.CompleteSurveyResponse, error)
		GetRecommendations(ctx context.Context) ([]domain.RecommendationResponse, error)
		GetQuestions(ctx context.Context) []domain.SurveyQuestion
		HasProfile(ctx context.Context) (bool, error)
	}

	surveyService struct {
		surveyRepository  SurveyRepository
		catalogRepository catalog.CatalogRepository
		pointService      point.PointService
		sessionService    session.SessionService
	}
)

func NewSurveyService(
	surveyRepository SurveyRepository,
	catalogRepository catalog.CatalogRepository,
	pointService point.PointService,
	sessionService session.SessionService,
) SurveyService {
	return &surveyService{
		surveyRepository:  surveyRepository,
		catalogRepository: catalogRepository,
		pointService:      pointService,
		sessionService:    sessionService,
	}
}

func (s *surveyService) Complete(ctx context.Context, req domain.CompleteSurveyRequest) (*domain.CompleteSurveyResponse, error) {
	if err := s.surveyRepository.ReplaceProfile(ctx, req.Profile); err != nil {
		return nil, err
	}

	balance, err := s.pointService.Award(ctx, domain.SurveyCompletionReward, "Survey", "선호도 설문 완료 적립")
	if err != nil {
		return nil, err
	}

	// Leave the wizard screen if the session is still on it.
	if _, err := s.sessionService.CloseSurvey(ctx); err != nil && err != domain.ErrScreenTransition {
		return nil, err
	}

	products, err := s.catalogRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.CompleteSurveyResponse{
		AwardedPoints:   domain.SurveyCompletionReward,
		Balance:         balance,
		Summary:         Summarize(req.Profile),
		Recommendations: Recommend(products, req.Profile),
	}, nil
}

func (s *surveyService) GetRecommendations(ctx context.Context) ([]domain.RecommendationResponse, error) {
	profile, err := s.surveyRepository.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrSurveyNotCompleted
	}

	products, err := s.catalogRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return Recommend(products, *profile), nil
}

func (s *surveyService) HasProfile(ctx context.Context) (bool, error) {
	profile, err := s.surveyRepository.GetProfile(ctx)
	if err != nil {
		return false, err
	}
	return profile != nil, nil
}

// Recommend is a pure function of the catalog and the profile: each product
// collects one reason per matching rule, zero-reason products drop out,
// catalog order is preserved and the list is cut at six entries.
func Recommend(products []*entities.Product, profile domain.PreferenceProfile) []domain.RecommendationResponse {
	result := make([]domain.RecommendationResponse, 0, len(products))
	for _, product := range products {
		reasons := []string{}

		if profile.Texture.Softness != nil && *profile.Texture.Softness == domain.AnswerSoft && product.Fat >= softFatThreshold {
			reasons = append(reasons, "부드러움↑")
		}
		if profile.Texture.Juiciness != nil && *profile.Texture.Juiciness == domain.AnswerJuicy && product.Taste >= juicyTasteThreshold {
			reasons = append(reasons, "육즙↑")
		}
		if profile.Flavor.Intensity != nil && *profile.Flavor.Intensity == domain.AnswerStrong && product.Aroma >= strongAromaThreshold {
			reasons = append(reasons, "감칠맛↑")
		}
		for _, cut := range profile.PreferredCuts {
			if cut != "" && strings.Contains(product.Name, cut) {
				reasons = append(reasons, "선호 부위")
				break
			}
		}

		if len(reasons) == 0 {
			continue
		}
		result = append(result, domain.RecommendationResponse{
			Product: catalog.ToProductResponse(product),
			Reasons: reasons,
		})
		if len(result) == maxRecommendations {
			break
		}
	}
	return result
}

// Summarize renders the profile the way the result screen words it.
func Summarize(profile domain.PreferenceProfile) string {
	parts := []string{}
	if profile.Texture.Softness != nil && *profile.Texture.Softness == domain.AnswerSoft {
		parts = append(parts, "부드러운")
	}
	if profile.Texture.Juiciness != nil && *profile.Texture.Juiciness == domain.AnswerJuicy {
		parts = append(parts, "육즙 많은")
	}
	if profile.Flavor.Intensity != nil && *profile.Flavor.Intensity == domain.AnswerStrong {
		parts = append(parts, "감칠맛 강한")
	}
	for _, method := range profile.CookingMethods {
		if method == "팬시어링" {
			parts = append(parts, "팬시어링")
			break
		}
	}
	if len(profile.PreferredCuts) > 0 {
		cuts := profile.PreferredCuts
		if len(cuts) > 2 {
			cuts = cuts[:2]
		}
		parts = append(parts, strings.Join(cuts, ", ")+" 선호")
	}

	if len(parts) == 0 {
		return "맞춤 추천"
	}
	return strings.Join(parts, " / ") + " 고기"
}

// GetQuestions serves the wizard metadata so clients render every step from
// the server's definition.
func (s *surveyService) GetQuestions(ctx context.Context) []domain.SurveyQuestion {
	return []domain.SurveyQuestion{
		{
			ID: 1, Title: "식감 선호(텍스처)", Type: "single",
			Question: "부드러운 고기 vs 씹는 맛 있는 고기, 어떤 쪽이 더 좋아요?",
			Options: []domain.SurveyOption{
				{Label: "부드러움", Value: 0},
				{Label: "중간", Value: 1},
				{Label: "식감 선명", Value: 2},
			},
		},
		{
			ID: 2, Title: "육즙감/담백감", Type: "single",
			Question: "육즙 가득 vs 담백 깨끗, 입맛에 맞는 쪽은?",
			Options: []domain.SurveyOption{
				{Label: "육즙 풍부", Value: 0},
				{Label: "적당", Value: 1},
				{Label: "담백", Value: 2},
			},
		},
		{
			ID: 3, Title: "풍미 강도(향)", Type: "single",
			Question: "고기 향 강도를 골라주세요.",
			Options: []domain.SurveyOption{
				{Label: "약함", Value: 0},
				{Label: "중간", Value: 1},
				{Label: "강함", Value: 2},
			},
		},
		{
			ID: 4, Title: "선호 부위군(용도 중심)", Type: "multi",
			Question: "주로 즐기는 방식(부위)을 골라주세요. (다중 선택 가능)",
			Options: []domain.SurveyOption{
				{Label: "등심"}, {Label: "채끝"}, {Label: "살치"}, {Label: "안심"},
				{Label: "갈비살"}, {Label: "양지"}, {Label: "사태"}, {Label: "앞다리"},
			},
		},
		{
			ID: 5, Title: "굽기 스타일", Type: "single",
			Question: "스테이크 굽기 정도를 골라주세요.",
			Options: []domain.SurveyOption{
				{Label: "레어", Value: "레어"},
				{Label: "미디움레어", Value: "미디움레어"},
				{Label: "미디움", Value: "미디움"},
				{Label: "웰던", Value: "웰던"},
			},
		},
		{
			ID: 6, Title: "조리 스타일", Type: "multi",
			Question: "선호하는 조리 방법을 골라주세요. (다중 선택 가능)",
			Options: []domain.SurveyOption{
				{Label: "펜시어링"}, {Label: "그릴"}, {Label: "에어프라이"}, {Label: "튀김"}, {Label: "삶기"},
			},
		},
		{
			ID: 7, Title: "가치 지향", Type: "multi",
			Question: "더 끌리는 가치는 무엇인가요? (다중 선택 가능)",
			Options: []domain.SurveyOption{
				{Label: "지역 브랜드(○○축협)", Key: "local"},
				{Label: "동물복지·저메탄 사료", Key: "sustainability"},
				{Label: "합리적 가격", Key: "value4money"},
				{Label: "한정·프리미엄", Key: "premium"},
			},
		},
		{
			ID: 8, Title: "예산·팩 사이즈", Type: "budget",
			Question: "보통 얼마대/몇 g 단위를 선호하나요?",
			Budgets:  []string{"2~3만원", "3~5만원", "5만원↑"},
			Sizes:    []string{"200g", "400g", "1kg"},
		},
	}
}
