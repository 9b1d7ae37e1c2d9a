package payment

// paypalTokenResponse is the OAuth client-credentials response
type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// paypalAmount is a money value with currency
type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// paypalAmountWithBreakdown carries the purchase unit total and its breakdown
type paypalAmountWithBreakdown struct {
	CurrencyCode string           `json:"currency_code"`
	Value        string           `json:"value"`
	Breakdown    *paypalBreakdown `json:"breakdown,omitempty"`
}

type paypalBreakdown struct {
	ItemTotal paypalAmount `json:"item_total"`
}

// paypalItem is a single cart line in a purchase unit
type paypalItem struct {
	Name       string       `json:"name"`
	UnitAmount paypalAmount `json:"unit_amount"`
	Quantity   string       `json:"quantity"`
}

// paypalPurchaseUnit groups the items of one order
type paypalPurchaseUnit struct {
	Amount paypalAmountWithBreakdown `json:"amount"`
	Items  []paypalItem              `json:"items"`
}

// paypalApplicationContext controls the approval page behavior
type paypalApplicationContext struct {
	ShippingPreference string `json:"shipping_preference"`
}

// paypalCreateOrderRequest is the POST /v2/checkout/orders payload
type paypalCreateOrderRequest struct {
	Intent             string                   `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit     `json:"purchase_units"`
	ApplicationContext paypalApplicationContext `json:"application_context"`
}

// paypalCreateOrderResponse is the subset of the create response we read
type paypalCreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
