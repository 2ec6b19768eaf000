package entities

type Tab string

const (
	TabHome      Tab = "home"
	TabRecipe    Tab = "recipe"
	TabCommunity Tab = "community"
	TabMarket    Tab = "market"
	TabProfile   Tab = "profile"
)

type ScreenKind string

const (
	ScreenLanding        ScreenKind = "landing"
	ScreenHome           ScreenKind = "home"
	ScreenProductDetail  ScreenKind = "product_detail"
	ScreenEvaluateScan   ScreenKind = "evaluate_scan"
	ScreenEvaluateResult ScreenKind = "evaluate_result"
	ScreenRecipe         ScreenKind = "recipe"
	ScreenCommunity      ScreenKind = "community"
	ScreenCommunityAd    ScreenKind = "community_ad"
	ScreenMarket         ScreenKind = "market"
	ScreenMarketDetail   ScreenKind = "market_detail"
	ScreenProfile        ScreenKind = "profile"
	ScreenProfileSurvey  ScreenKind = "profile_survey"
)

// SurveyStepCount is the number of wizard questions; step SurveyStepCount is
// the result screen.
const SurveyStepCount = 8

// Screen is the one authoritative screen value of a session. Only the fields
// belonging to the active Kind are meaningful; every transition builds a
// fresh value so stale variant fields cannot leak across screens.
type Screen struct {
	Kind              ScreenKind `json:"kind"`
	SelectedProductID int        `json:"selected_product_id,omitempty"` // ProductDetail, MarketDetail
	EvaluationShown   bool       `json:"evaluation_shown,omitempty"`    // EvaluateResult only
	SurveyStep        int        `json:"survey_step,omitempty"`         // ProfileSurvey only
}

// Session holds all session-scoped mutable state. Nothing here survives a
// process restart.
type Session struct {
	Screen                 Screen `json:"screen"`
	Entered                bool   `json:"entered"`                             // landing passed, one-way
	PendingMarketProductID int    `json:"pending_market_product_id,omitempty"` // home → market handoff, consumed once
}
