package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/catalog"
)

func newTestService() SessionService {
	return NewSessionService(NewSessionRepository(), catalog.NewCatalogRepository())
}

func enter(t *testing.T, service SessionService) {
	t.Helper()
	_, err := service.EnterApp(context.Background())
	require.NoError(t, err)
}

func TestSessionService_StartsOnLanding(t *testing.T) {
	service := newTestService()

	state, err := service.GetState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenLanding, state.Screen.Kind)
	assert.False(t, state.Entered)
}

func TestSessionService_EnterApp_OneWay(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	state, err := service.EnterApp(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenHome, state.Screen.Kind)
	assert.True(t, state.Entered)

	_, err = service.EnterApp(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_SelectTab_RequiresEntry(t *testing.T) {
	service := newTestService()

	_, err := service.SelectTab(context.Background(), entities.TabMarket)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_SelectTab_ResetsSelection(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	state, err := service.SelectProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenProductDetail, state.Screen.Kind)
	assert.Equal(t, 1, state.Screen.SelectedProductID)

	state, err = service.SelectTab(ctx, entities.TabRecipe)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenRecipe, state.Screen.Kind)
	assert.Zero(t, state.Screen.SelectedProductID)
}

func TestSessionService_SelectTab_UnknownTab(t *testing.T) {
	service := newTestService()
	enter(t, service)

	_, err := service.SelectTab(context.Background(), entities.Tab("settings"))
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_SelectProduct_UnknownProduct(t *testing.T) {
	service := newTestService()
	enter(t, service)

	_, err := service.SelectProduct(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSessionService_SelectProduct_WrongScreen(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.SelectTab(ctx, entities.TabRecipe)
	require.NoError(t, err)

	_, err = service.SelectProduct(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_ClearProduct(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.SelectProduct(ctx, 1)
	require.NoError(t, err)

	state, err := service.ClearProduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenHome, state.Screen.Kind)

	_, err = service.ClearProduct(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_SendToMarket_HandoffConsumedOnce(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	state, err := service.SendToMarket(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenMarketDetail, state.Screen.Kind)
	assert.Equal(t, 2, state.Screen.SelectedProductID)
	assert.Zero(t, state.PendingMarketProductID)

	// Leaving and returning to the market tab lands on the plain listing;
	// the handoff does not replay.
	_, err = service.SelectTab(ctx, entities.TabHome)
	require.NoError(t, err)

	state, err = service.SelectTab(ctx, entities.TabMarket)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenMarket, state.Screen.Kind)
	assert.Zero(t, state.Screen.SelectedProductID)
}

func TestSessionService_SendToMarket_WrongScreen(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.SelectTab(ctx, entities.TabCommunity)
	require.NoError(t, err)

	_, err = service.SendToMarket(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}

func TestSessionService_EvaluationFlow(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	state, err := service.StartEvaluation(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenEvaluateScan, state.Screen.Kind)

	// Reveal before authentication is impossible.
	_, err = service.RevealEvaluation(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	state, err = service.Authenticate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenEvaluateResult, state.Screen.Kind)
	assert.False(t, state.Screen.EvaluationShown)

	// Authentication is one-way; the scan screen is gone.
	_, err = service.Authenticate(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	state, err = service.RevealEvaluation(ctx)
	require.NoError(t, err)
	assert.True(t, state.Screen.EvaluationShown)

	_, err = service.RevealEvaluation(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	state, err = service.ExitEvaluation(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenHome, state.Screen.Kind)
	assert.False(t, state.Screen.EvaluationShown)
}

func TestSessionService_AdFlow(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.OpenAdPage(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	_, err = service.SelectTab(ctx, entities.TabCommunity)
	require.NoError(t, err)

	state, err := service.OpenAdPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenCommunityAd, state.Screen.Kind)

	state, err = service.CloseAdPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenCommunity, state.Screen.Kind)
}

func TestSessionService_SurveyWizard(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.StartSurvey(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)

	_, err = service.SelectTab(ctx, entities.TabProfile)
	require.NoError(t, err)

	state, err := service.StartSurvey(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenProfileSurvey, state.Screen.Kind)
	assert.Zero(t, state.Screen.SurveyStep)

	for step := 1; step <= entities.SurveyStepCount; step++ {
		state, err = service.AdvanceSurvey(ctx)
		require.NoError(t, err)
		assert.Equal(t, step, state.Screen.SurveyStep)
	}

	// Advancing past the result step returns to the profile screen.
	state, err = service.AdvanceSurvey(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenProfile, state.Screen.Kind)
}

func TestSessionService_CloseSurvey_FromAnyStep(t *testing.T) {
	ctx := context.Background()
	service := newTestService()
	enter(t, service)

	_, err := service.SelectTab(ctx, entities.TabProfile)
	require.NoError(t, err)
	_, err = service.StartSurvey(ctx)
	require.NoError(t, err)
	_, err = service.AdvanceSurvey(ctx)
	require.NoError(t, err)

	state, err := service.CloseSurvey(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ScreenProfile, state.Screen.Kind)

	_, err = service.CloseSurvey(ctx)
	assert.ErrorIs(t, err, domain.ErrScreenTransition)
}
