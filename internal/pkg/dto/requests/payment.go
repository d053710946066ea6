package requests

// CreatePaymentRequest is the caller-facing payload for initiating a wallet
// payment. Amount is in the smallest currency unit. RedirectURL and IPNURL
// default from configuration when empty; RequestID defaults to partner code +
// timestamp.
type CreatePaymentRequest struct {
	OrderID        string `json:"order_id" validate:"required,max=64"`
	OrderInfo      string `json:"order_info" validate:"max=256"`
	Amount         int64  `json:"amount" validate:"required,gt=0"`
	RedirectURL    string `json:"redirect_url" validate:"required,url"`
	IPNURL         string `json:"ipn_url" validate:"required,url"`
	ExtraData      string `json:"extra_data"`
	RequestID      string `json:"request_id"`
	LinkedEntityID string `json:"linked_entity_id"`
}
