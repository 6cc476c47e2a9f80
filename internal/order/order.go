package order

// Order represents a submitted purchase. OrderItems is a JSON snapshot of
// the cart captured at submission time; later catalog edits or deletes
// never alter it. Orders are created once and never updated or deleted.
type Order struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	AdditionalInfo  *string `json:"additionalInfo"`
	OrderItems      string  `json:"orderItems"`
	Total           string  `json:"total"`
	CreatedAt       string  `json:"createdAt"`
}

// CreateOrderRequest is the POST /api/orders payload. The total is taken
// as submitted by the client; the store does not recompute it from
// catalog prices. Fulfillment is arranged peer-to-peer, so no payment
// fields exist.
type CreateOrderRequest struct {
	CustomerName    string  `json:"customerName" validate:"required"`
	CustomerPhone   string  `json:"customerPhone" validate:"required"`
	CustomerAddress string  `json:"customerAddress" validate:"required"`
	AdditionalInfo  *string `json:"additionalInfo"`
	OrderItems      string  `json:"orderItems" validate:"required"`
	Total           string  `json:"total" validate:"required"`
}
