package evaluation

import (
	"context"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/point"
	"gogiieum/pkg/session"
)

type (
	EvaluationService interface {
		Authenticate(ctx context.Context) (*domain.ReceiptResponse, error)
		Submit(ctx context.Context, req domain.SubmitEvaluationRequest) (*domain.SubmitEvaluationResponse, error)
	}

	evaluationService struct {
		pointService   point.PointService
		sessionService session.SessionService
	}
)

func NewEvaluationService(pointService point.PointService, sessionService session.SessionService) EvaluationService {
	return &evaluationService{
		pointService:   pointService,
		sessionService: sessionService,
	}
}

// Authenticate advances the receipt flow from scan to result and returns the
// recognized receipt. The recognition itself is simulated with a fixed
// payload.
func (s *evaluationService) Authenticate(ctx context.Context) (*domain.ReceiptResponse, error) {
	if _, err := s.sessionService.Authenticate(ctx); err != nil {
		return nil, err
	}
	return recognizedReceipt(), nil
}

// Submit accepts a fully answered rating form, awards the evaluation reward
// and resets the evaluate flow back to its initial state. Validation of the
// five required fields happens at the handler; this layer only gates on the
// screen state so a submit is impossible outside the revealed rating form.
func (s *evaluationService) Submit(ctx context.Context, req domain.SubmitEvaluationRequest) (*domain.SubmitEvaluationResponse, error) {
	state, err := s.sessionService.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if state.Screen.Kind != entities.ScreenEvaluateResult || !state.Screen.EvaluationShown {
		return nil, domain.ErrScreenTransition
	}

	balance, err := s.pointService.Award(ctx, domain.EvaluationReward, "Evaluation", "고기 평가 적립")
	if err != nil {
		return nil, err
	}

	if _, err := s.sessionService.ExitEvaluation(ctx); err != nil {
		return nil, err
	}

	return &domain.SubmitEvaluationResponse{
		AwardedPoints: domain.EvaluationReward,
		Balance:       balance,
	}, nil
}

func recognizedReceipt() *domain.ReceiptResponse {
	return &domain.ReceiptResponse{
		Merchant:          "마트365 (강남점)",
		BusinessNumber:    "558-13-02230",
		Phone:             "02-1234-5678",
		TransactionNumber: "103136562357",
		TransactionTime:   "2025-01-15 14:30",
		PaymentMethod:     "카드결제",
		CardNumber:        "9440-81**-****-4977",
		ApprovalNumber:    "20637507",
		Items: []domain.ReceiptLineItem{
			{Name: "딸기 (국산)", Price: 5500},
			{Name: "쌀 (백미 10kg)", Price: 12000},
			{Name: "살치살 200g", Price: 20000},
		},
		Total: 25500,
	}
}
