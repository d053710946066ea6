package responses

import "time"

type InitiatePaymentResponse struct {
	OrderID   string `json:"order_id"`
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	PayURL    string `json:"pay_url"`
	Deeplink  string `json:"deeplink,omitempty"`
	QRCodeURL string `json:"qr_code_url,omitempty"`
}

type PaymentStatusResponse struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	ResultCode int       `json:"result_code"`
	TransID    string    `json:"trans_id,omitempty"`
	Amount     int64     `json:"amount"`
	Message    string    `json:"message,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
