package point

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gogiieum/domain"
	"gogiieum/entities"
)

type (
	PointService interface {
		GetBalance(ctx context.Context) (int, error)
		Award(ctx context.Context, amount int, feature string, description string) (int, error)
		Redeem(ctx context.Context, amount int, feature string, description string) (int, error)
		GetHistory(ctx context.Context) ([]*domain.PointTransactionResponse, error)
	}

	pointService struct {
		pointRepository PointRepository
	}
)

func NewPointService(pointRepository PointRepository) PointService {
	return &pointService{
		pointRepository: pointRepository,
	}
}

func (s *pointService) GetBalance(ctx context.Context) (int, error) {
	return s.pointRepository.GetBalance(ctx)
}

func (s *pointService) Award(ctx context.Context, amount int, feature string, description string) (int, error) {
	if amount <= 0 {
		return 0, domain.ErrNegativeAmount
	}

	if description == "" {
		description = fmt.Sprintf("Rewarded %d points for %s", amount, feature)
	}

	tx := &entities.PointTransaction{
		ID:          uuid.New(),
		Amount:      amount,
		Type:        "Reward",
		Feature:     feature,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.pointRepository.CreateTransaction(ctx, tx); err != nil {
		return 0, err
	}
	return tx.Balance, nil
}

func (s *pointService) Redeem(ctx context.Context, amount int, feature string, description string) (int, error) {
	if amount < 0 {
		return 0, domain.ErrNegativeAmount
	}
	if amount == 0 {
		return s.pointRepository.GetBalance(ctx)
	}

	if description == "" {
		description = fmt.Sprintf("Used %d points for %s", amount, feature)
	}

	tx := &entities.PointTransaction{
		ID:          uuid.New(),
		Amount:      -amount,
		Type:        "Redeem",
		Feature:     feature,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.pointRepository.CreateTransaction(ctx, tx); err != nil {
		return 0, err
	}
	return tx.Balance, nil
}

func (s *pointService) GetHistory(ctx context.Context) ([]*domain.PointTransactionResponse, error) {
	transactions, err := s.pointRepository.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PointTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, &domain.PointTransactionResponse{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Feature:     tx.Feature,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return result, nil
}
