package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogiieum/domain"
	"gogiieum/pkg/point"
)

func validRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username:        "meatlover",
		Nickname:        "고기",
		Password:        "abcdef",
		PasswordConfirm: "abcdef",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RegisterRequest)
		fields []string
	}{
		{
			name:   "valid form",
			mutate: func(r *domain.RegisterRequest) {},
		},
		{
			name:   "username too short",
			mutate: func(r *domain.RegisterRequest) { r.Username = "abc" },
			fields: []string{"username"},
		},
		{
			name:   "nickname too short",
			mutate: func(r *domain.RegisterRequest) { r.Nickname = "김" },
			fields: []string{"nickname"},
		},
		{
			name:   "password too short",
			mutate: func(r *domain.RegisterRequest) { r.Password = "abc"; r.PasswordConfirm = "abc" },
			fields: []string{"password"},
		},
		{
			name:   "password mismatch",
			mutate: func(r *domain.RegisterRequest) { r.PasswordConfirm = "abcdeg" },
			fields: []string{"password_confirm"},
		},
		{
			name: "every rule violated at once",
			mutate: func(r *domain.RegisterRequest) {
				r.Username = "ab"
				r.Nickname = "김"
				r.Password = "abc"
				r.PasswordConfirm = "xyz"
			},
			fields: []string{"username", "nickname", "password", "password_confirm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			fieldErrors := ValidateRegistration(req)
			assert.Len(t, fieldErrors, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, fieldErrors, field)
			}
		})
	}
}

func TestValidateRegistration_CountsRunesNotBytes(t *testing.T) {
	req := validRequest()
	req.Nickname = "고기"

	// Two Hangul syllables are six bytes but two characters; the form passes.
	assert.Empty(t, ValidateRegistration(req))
}

func TestMemberService_Register_AwardsSignupPoints(t *testing.T) {
	ctx := context.Background()
	pointService := point.NewPointService(point.NewPointRepository())
	service := NewMemberService(NewMemberRepository(), pointService)

	resp, err := service.Register(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.MemberID)
	assert.Equal(t, "고기", resp.Nickname)
	assert.Equal(t, domain.SignupReward, resp.AwardedPoints)
	assert.Equal(t, domain.StartingBalance+domain.SignupReward, resp.Balance)
}

func TestMemberService_Register_InvalidFormLeavesBalanceUntouched(t *testing.T) {
	ctx := context.Background()
	pointService := point.NewPointService(point.NewPointRepository())
	service := NewMemberService(NewMemberRepository(), pointService)

	req := validRequest()
	req.Username = "abc"

	_, err := service.Register(ctx, req)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "username")

	balance, err := pointService.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, balance)
}

func TestMemberService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	pointService := point.NewPointService(point.NewPointRepository())
	service := NewMemberService(NewMemberRepository(), pointService)

	_, err := service.Register(ctx, validRequest())
	require.NoError(t, err)

	balanceAfterFirst, err := pointService.GetBalance(ctx)
	require.NoError(t, err)

	req := validRequest()
	req.Nickname = "다른고기"
	_, err = service.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	balance, err := pointService.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, balanceAfterFirst, balance)
}
