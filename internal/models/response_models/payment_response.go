package response_models

type CreateCheckoutResponse struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CheckoutURL string `json:"checkoutUrl"`
}
