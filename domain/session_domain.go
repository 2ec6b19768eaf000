package domain

var (
	MessageSuccessGetSession = "session state retrieved successfully"
	MessageSuccessTransition = "screen transition applied successfully"
	MessageFailedTransition  = "failed to apply screen transition"
)

type (
	SelectTabRequest struct {
		Tab string `json:"tab" validate:"required,oneof=home recipe community market profile"`
	}

	SelectProductRequest struct {
		ProductID int `json:"product_id" validate:"required"`
	}

	ScreenResponse struct {
		Kind              string `json:"kind"`
		SelectedProductID int    `json:"selected_product_id,omitempty"`
		EvaluationShown   bool   `json:"evaluation_shown,omitempty"`
		SurveyStep        int    `json:"survey_step,omitempty"`
	}

	SessionResponse struct {
		Screen                 ScreenResponse `json:"screen"`
		Balance                int            `json:"balance"`
		SurveyCompleted        bool           `json:"survey_completed"`
		PendingMarketProductID int            `json:"pending_market_product_id,omitempty"`
	}
)
