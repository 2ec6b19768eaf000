package domain

var (
	MessageSuccessQuote    = "checkout quote calculated successfully"
	MessageSuccessCheckout = "purchase completed successfully"
	MessageFailedQuote     = "failed to calculate checkout quote"
	MessageFailedCheckout  = "failed to complete purchase"
)

// Points can cover at most this share of an order total.
const MaxPointShare = 0.6

type (
	CheckoutRequest struct {
		ProductID       int  `json:"product_id" validate:"required"`
		Quantity        int  `json:"quantity" validate:"required,min=1"`
		UsePoints       bool `json:"use_points"`
		RequestedPoints int  `json:"requested_points" validate:"min=0"`
	}

	CheckoutQuote struct {
		ProductID      int    `json:"product_id"`
		ProductName    string `json:"product_name"`
		UnitPrice      int    `json:"unit_price"`
		Quantity       int    `json:"quantity"`
		Total          int    `json:"total"`
		MaxRedeemable  int    `json:"max_redeemable"`
		RedeemedPoints int    `json:"redeemed_points"`
		FinalPrice     int    `json:"final_price"`
		Balance        int    `json:"balance"`
	}

	CheckoutResponse struct {
		Quote   CheckoutQuote `json:"quote"`
		Balance int           `json:"balance"`
	}
)
