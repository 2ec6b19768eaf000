package session

import (
	"context"

	"gogiieum/domain"
	"gogiieum/entities"
	"gogiieum/pkg/catalog"
)

type (
	SessionService interface {
		GetState(ctx context.Context) (entities.Session, error)
		EnterApp(ctx context.Context) (entities.Session, error)
		SelectTab(ctx context.Context, tab entities.Tab) (entities.Session, error)
		SelectProduct(ctx context.Context, productID int) (entities.Session, error)
		ClearProduct(ctx context.Context) (entities.Session, error)
		SendToMarket(ctx context.Context, productID int) (entities.Session, error)
		StartEvaluation(ctx context.Context) (entities.Session, error)
		Authenticate(ctx context.Context) (entities.Session, error)
		RevealEvaluation(ctx context.Context) (entities.Session, error)
		ExitEvaluation(ctx context.Context) (entities.Session, error)
		OpenAdPage(ctx context.Context) (entities.Session, error)
		CloseAdPage(ctx context.Context) (entities.Session, error)
		StartSurvey(ctx context.Context) (entities.Session, error)
		AdvanceSurvey(ctx context.Context) (entities.Session, error)
		CloseSurvey(ctx context.Context) (entities.Session, error)
	}

	sessionService struct {
		sessionRepository SessionRepository
		catalogRepository catalog.CatalogRepository
	}
)

func NewSessionService(sessionRepository SessionRepository, catalogRepository catalog.CatalogRepository) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		catalogRepository: catalogRepository,
	}
}

func (s *sessionService) GetState(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Get(ctx)
}

// EnterApp leaves the landing screen. The transition is one-way for the
// lifetime of the session.
func (s *sessionService) EnterApp(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Entered {
			return domain.ErrScreenTransition
		}
		session.Entered = true
		session.Screen = entities.Screen{Kind: entities.ScreenHome}
		return nil
	})
}

func (s *sessionService) SelectTab(ctx context.Context, tab entities.Tab) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if !session.Entered {
			return domain.ErrScreenTransition
		}
		return selectTab(session, tab)
	})
}

// selectTab resets the selected product on every switch, except that a
// pending home→market handoff survives into the market tab, where it is
// consumed exactly once.
func selectTab(session *entities.Session, tab entities.Tab) error {
	switch tab {
	case entities.TabHome:
		session.Screen = entities.Screen{Kind: entities.ScreenHome}
	case entities.TabRecipe:
		session.Screen = entities.Screen{Kind: entities.ScreenRecipe}
	case entities.TabCommunity:
		session.Screen = entities.Screen{Kind: entities.ScreenCommunity}
	case entities.TabMarket:
		if session.PendingMarketProductID != 0 {
			session.Screen = entities.Screen{
				Kind:              entities.ScreenMarketDetail,
				SelectedProductID: session.PendingMarketProductID,
			}
			session.PendingMarketProductID = 0
		} else {
			session.Screen = entities.Screen{Kind: entities.ScreenMarket}
		}
	case entities.TabProfile:
		session.Screen = entities.Screen{Kind: entities.ScreenProfile}
	default:
		return domain.ErrScreenTransition
	}
	return nil
}

func (s *sessionService) SelectProduct(ctx context.Context, productID int) (entities.Session, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, productID)
	if err != nil {
		return entities.Session{}, err
	}
	if product == nil {
		return entities.Session{}, domain.ErrProductNotFound
	}

	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		switch session.Screen.Kind {
		case entities.ScreenHome, entities.ScreenProductDetail:
			session.Screen = entities.Screen{
				Kind:              entities.ScreenProductDetail,
				SelectedProductID: productID,
			}
		case entities.ScreenMarket, entities.ScreenMarketDetail:
			session.Screen = entities.Screen{
				Kind:              entities.ScreenMarketDetail,
				SelectedProductID: productID,
			}
		default:
			return domain.ErrScreenTransition
		}
		return nil
	})
}

func (s *sessionService) ClearProduct(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		switch session.Screen.Kind {
		case entities.ScreenProductDetail:
			session.Screen = entities.Screen{Kind: entities.ScreenHome}
		case entities.ScreenMarketDetail:
			session.Screen = entities.Screen{Kind: entities.ScreenMarket}
		default:
			return domain.ErrScreenTransition
		}
		return nil
	})
}

// SendToMarket carries a product from the home feed into the market tab.
func (s *sessionService) SendToMarket(ctx context.Context, productID int) (entities.Session, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, productID)
	if err != nil {
		return entities.Session{}, err
	}
	if product == nil {
		return entities.Session{}, domain.ErrProductNotFound
	}

	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenHome && session.Screen.Kind != entities.ScreenProductDetail {
			return domain.ErrScreenTransition
		}
		session.PendingMarketProductID = productID
		return selectTab(session, entities.TabMarket)
	})
}

func (s *sessionService) StartEvaluation(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		switch session.Screen.Kind {
		case entities.ScreenHome, entities.ScreenProductDetail:
			session.Screen = entities.Screen{Kind: entities.ScreenEvaluateScan}
			return nil
		default:
			return domain.ErrScreenTransition
		}
	})
}

// Authenticate moves scan → result. There is no way back to scan except
// exiting the whole evaluation flow.
func (s *sessionService) Authenticate(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenEvaluateScan {
			return domain.ErrScreenTransition
		}
		session.Screen = entities.Screen{Kind: entities.ScreenEvaluateResult}
		return nil
	})
}

func (s *sessionService) RevealEvaluation(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenEvaluateResult || session.Screen.EvaluationShown {
			return domain.ErrScreenTransition
		}
		session.Screen.EvaluationShown = true
		return nil
	})
}

func (s *sessionService) ExitEvaluation(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		switch session.Screen.Kind {
		case entities.ScreenEvaluateScan, entities.ScreenEvaluateResult:
			session.Screen = entities.Screen{Kind: entities.ScreenHome}
			return nil
		default:
			return domain.ErrScreenTransition
		}
	})
}

func (s *sessionService) OpenAdPage(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenCommunity {
			return domain.ErrScreenTransition
		}
		session.Screen = entities.Screen{Kind: entities.ScreenCommunityAd}
		return nil
	})
}

func (s *sessionService) CloseAdPage(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenCommunityAd {
			return domain.ErrScreenTransition
		}
		session.Screen = entities.Screen{Kind: entities.ScreenCommunity}
		return nil
	})
}

func (s *sessionService) StartSurvey(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenProfile {
			return domain.ErrScreenTransition
		}
		session.Screen = entities.Screen{Kind: entities.ScreenProfileSurvey}
		return nil
	})
}

// AdvanceSurvey walks the wizard one step forward; advancing past the result
// step returns to the profile screen.
func (s *sessionService) AdvanceSurvey(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenProfileSurvey {
			return domain.ErrScreenTransition
		}
		if session.Screen.SurveyStep >= entities.SurveyStepCount {
			session.Screen = entities.Screen{Kind: entities.ScreenProfile}
			return nil
		}
		session.Screen.SurveyStep++
		return nil
	})
}

// CloseSurvey leaves the wizard from any step ("건너뛰기" or completion).
func (s *sessionService) CloseSurvey(ctx context.Context) (entities.Session, error) {
	return s.sessionRepository.Update(ctx, func(session *entities.Session) error {
		if session.Screen.Kind != entities.ScreenProfileSurvey {
			return domain.ErrScreenTransition
		}
		session.Screen = entities.Screen{Kind: entities.ScreenProfile}
		return nil
	})
}
