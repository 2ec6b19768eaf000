package domain

var (
	MessageSuccessSubmitEvaluation = "evaluation submitted successfully"
	MessageSuccessAuthenticate     = "receipt recognized successfully"
	MessageFailedSubmitEvaluation  = "failed to submit evaluation"
)

const EvaluationReward = 2000

type (
	// SubmitEvaluationRequest carries the five rating answers. All of them
	// are required; an empty field blocks only this submit.
	SubmitEvaluationRequest struct {
		Satisfaction string `json:"satisfaction" validate:"required"`
		Cut          string `json:"cut" validate:"required"`
		Tenderness   string `json:"tenderness" validate:"required"`
		Flavor       string `json:"flavor" validate:"required"`
		FatAmount    string `json:"fat_amount" validate:"required"`
	}

	SubmitEvaluationResponse struct {
		AwardedPoints int `json:"awarded_points"`
		Balance       int `json:"balance"`
	}

	ReceiptLineItem struct {
		Name  string `json:"name"`
		Price int    `json:"price"`
	}

	// ReceiptResponse is the recognized-receipt payload shown once the scan
	// step succeeds.
	ReceiptResponse struct {
		Merchant          string            `json:"merchant"`
		BusinessNumber    string            `json:"business_number"`
		Phone             string            `json:"phone"`
		TransactionNumber string            `json:"transaction_number"`
		TransactionTime   string            `json:"transaction_time"`
		PaymentMethod     string            `json:"payment_method"`
		CardNumber        string            `json:"card_number"`
		ApprovalNumber    string            `json:"approval_number"`
		Items             []ReceiptLineItem `json:"items"`
		Total             int               `json:"total"`
	}
)
