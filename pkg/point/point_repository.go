package point

import (
	"context"
	"sync"

	"gogiieum/domain"
	"gogiieum/entities"
)

type (
	PointRepository interface {
		GetBalance(ctx context.Context) (int, error)
		CreateTransaction(ctx context.Context, tx *entities.PointTransaction) error
		GetTransactions(ctx context.Context) ([]*entities.PointTransaction, error)
	}

	pointRepository struct {
		mu           sync.RWMutex
		balance      int
		transactions []*entities.PointTransaction
	}
)

func NewPointRepository() PointRepository {
	return &pointRepository{
		balance: domain.StartingBalance,
	}
}

func (r *pointRepository) GetBalance(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balance, nil
}

func (r *pointRepository) CreateTransaction(ctx context.Context, tx *entities.PointTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	newBalance := r.balance + tx.Amount
	if newBalance < 0 {
		return domain.ErrInsufficientPoints
	}

	r.balance = newBalance
	tx.Balance = newBalance
	// newest first, matching the feed ordering convention
	r.transactions = append([]*entities.PointTransaction{tx}, r.transactions...)
	return nil
}

func (r *pointRepository) GetTransactions(ctx context.Context) ([]*entities.PointTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.PointTransaction, len(r.transactions))
	copy(result, r.transactions)
	return result, nil
}
