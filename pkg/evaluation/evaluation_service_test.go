package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/catalog"
	"gogiieum/pkg/point"
	"gogiieum/pkg/session"
)

func newTestStack(t *testing.T) (EvaluationService, session.SessionService, point.PointService) {
	t.Helper()
	pointService := point.NewPointService(point.NewPointRepository())
	sessionService := session.NewSessionService(session.NewSessionRepository(), catalog.NewCatalogRepository())
	return NewEvaluationService(pointService, sessionService), sessionService, pointService
}

func sampleRatings() domain.SubmitEvaluationRequest {
	return domain.SubmitEvaluationRequest{
		Satisfaction: "😍 최고예요",
		Cut:          "살치살",
		Tenderness:   "부드러움",
		Flavor:       "진함",
		FatAmount:    "적당",
	}
}

func TestEvaluationService_Authenticate(t *testing.T) {
	ctx := context.Background()
	service, sessionService, _ := newTestStack(t)

	_, err := sessionService.EnterApp(ctx)
	require.NoError(t, err)
	_, err = sessionService.StartEvaluation(ctx)
	require.NoError(t, err)

	receipt, err := service.Authenticate(ctx)
	require.NoError(t, err)

	assert.Equal(t, "마트365 (강남점)", receipt.Merchant)
	assert.Equal(t, 25500, receipt.Total)
	require.Len(t, receipt.Items, 3)
	assert.Equal(t, "살치살 200g", receipt.Items[2].Name)

	state, err := sessionService.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenEvaluateResult, state.Screen.Kind)
}

func TestEvaluationService_Authenticate_OutsideScanScreen(t *testing.T) {
	ctx := context.Background()
	service, sessionService, _ := newTestStack(t)

	_, err := sessionService.EnterApp(ctx)
	require.NoError(t, err)

	_, err = service.Authenticate(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestEvaluationService_Submit_AwardsAndResets(t *testing.T) {
	ctx := context.Background()
	service, sessionService, pointService := newTestStack(t)

	_, err := sessionService.EnterApp(ctx)
	require.NoError(t, err)
	_, err = sessionService.StartEvaluation(ctx)
	require.NoError(t, err)
	_, err = service.Authenticate(ctx)
	require.NoError(t, err)
	_, err = sessionService.RevealEvaluation(ctx)
	require.NoError(t, err)

	resp, err := service.Submit(ctx, sampleRatings())
	require.NoError(t, err)

	assert.Equal(t, domain.EvaluationReward, resp.AwardedPoints)
	assert.Equal(t, domain.StartingBalance+domain.EvaluationReward, resp.Balance)

	balance, err := pointService.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance+domain.EvaluationReward, balance)

	state, err := sessionService.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenHome, state.Screen.Kind)
}

func TestEvaluationService_Submit_RequiresRevealedForm(t *testing.T) {
	ctx := context.Background()
	service, sessionService, pointService := newTestStack(t)

	_, err := sessionService.EnterApp(ctx)
	require.NoError(t, err)
	_, err = sessionService.StartEvaluation(ctx)
	require.NoError(t, err)
	_, err = service.Authenticate(ctx)
	require.NoError(t, err)

	// Receipt recognized, rating form not yet revealed.
	_, err = service.Submit(ctx, sampleRatings())
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	balance, err := pointService.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, balance)
}
