package member

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/point"
)

const (
	minUsernameLen = 4
	minNicknameLen = 2
	minPasswordLen = 6
)

type (
	MemberService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
	}

	memberService struct {
		memberRepository MemberRepository
		pointService     point.PointService
	}
)

func NewMemberService(memberRepository MemberRepository, pointService point.PointService) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		pointService:     pointService,
	}
}

// ValidateRegistration applies the four signup rules and reports every
// violation at once, keyed by field, so the form can render them inline.
func ValidateRegistration(req domain.RegisterRequest) domain.FieldErrors {
	fieldErrors := domain.FieldErrors{}

	if len([]rune(req.Username)) < minUsernameLen {
		fieldErrors["username"] = "아이디는 최소 4자 이상이어야 합니다."
	}
	if len([]rune(req.Nickname)) < minNicknameLen {
		fieldErrors["nickname"] = "닉네임은 최소 2자 이상이어야 합니다."
	}
	if len([]rune(req.Password)) < minPasswordLen {
		fieldErrors["password"] = "비밀번호는 최소 6자 이상이어야 합니다."
	}
	if req.Password != req.PasswordConfirm {
		fieldErrors["password_confirm"] = "비밀번호가 일치하지 않습니다."
	}
	return fieldErrors
}

// Register validates the form, stores the member and grants the signup
// reward. Any validation failure leaves the balance untouched.
func (s *memberService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if fieldErrors := ValidateRegistration(req); len(fieldErrors) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrors}
	}

	existing, err := s.memberRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newMember := &entities.Member{
		ID:           uuid.New(),
		Username:     req.Username,
		Nickname:     req.Nickname,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.memberRepository.Create(ctx, newMember); err != nil {
		return nil, err
	}

	balance, err := s.pointService.Award(ctx, domain.SignupReward, "Signup", "회원가입 적립")
	if err != nil {
		return nil, err
	}

	return &domain.RegisterResponse{
		MemberID:      newMember.ID.String(),
		Nickname:      newMember.Nickname,
		AwardedPoints: domain.SignupReward,
		Balance:       balance,
	}, nil
}
