package point

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
)

func TestPointService_StartingBalance(t *testing.T) {
	service := NewPointService(NewPointRepository())

	balance, err := service.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, balance)
}

func TestPointService_AwardAndRedeem(t *testing.T) {
	ctx := context.Background()
	service := NewPointService(NewPointRepository())

	balance, err := service.Award(ctx, 2000, "Evaluation", "")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance+2000, balance)

	balance, err = service.Redeem(ctx, 3000, "Market", "")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance-1000, balance)
}

func TestPointService_RedeemNeverGoesNegative(t *testing.T) {
	ctx := context.Background()
	service := NewPointService(NewPointRepository())

	_, err := service.Redeem(ctx, domain.StartingBalance+1, "Market", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

	balance, err := service.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, balance)
}

func TestPointService_RedeemZeroIsNoop(t *testing.T) {
	ctx := context.Background()
	service := NewPointService(NewPointRepository())

	balance, err := service.Redeem(ctx, 0, "Market", "")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, balance)

	history, err := service.GetHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPointService_RejectsNonPositiveAward(t *testing.T) {
	ctx := context.Background()
	service := NewPointService(NewPointRepository())

	_, err := service.Award(ctx, 0, "Survey", "")
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = service.Award(ctx, -5, "Survey", "")
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestPointService_HistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	service := NewPointService(NewPointRepository())

	_, err := service.Award(ctx, 100, "Survey", "설문 완료")
	require.NoError(t, err)
	_, err = service.Award(ctx, 2000, "Evaluation", "평가 적립")
	require.NoError(t, err)

	history, err := service.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "Evaluation", history[0].Feature)
	assert.Equal(t, domain.StartingBalance+2100, history[0].Balance)
	assert.Equal(t, "Survey", history[1].Feature)
	assert.Equal(t, domain.StartingBalance+100, history[1].Balance)
}
