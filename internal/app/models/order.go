package models

import (
	"time"
)

type PaymentOrderStatus string

const (
	OrderPending PaymentOrderStatus = "pending"
	OrderSuccess PaymentOrderStatus = "success"
	OrderFailed  PaymentOrderStatus = "failed"
)

// IsTerminal reports whether the status is absorbing. Terminal orders never
// transition again; repeated signals are no-ops.
func (s PaymentOrderStatus) IsTerminal() bool {
	return s == OrderSuccess || s == OrderFailed
}

// StatusForResultCode maps a verified gateway result code to the terminal
// status it produces. Zero is the provider's only success code.
func StatusForResultCode(resultCode int) PaymentOrderStatus {
	if resultCode == 0 {
		return OrderSuccess
	}
	return OrderFailed
}

// PaymentOrder is one payment attempt against the wallet gateway. OrderID is
// caller-generated and immutable; Amount is in the smallest currency unit.
// Terminal orders are retained for audit and duplicate-notification
// suppression, never deleted.
type PaymentOrder struct {
	OrderID        string             `json:"order_id" bson:"order_id"`
	RequestID      string             `json:"request_id" bson:"request_id"`
	Amount         int64              `json:"amount" bson:"amount"`
	OrderInfo      string             `json:"order_info" bson:"order_info"`
	ExtraData      string             `json:"extra_data" bson:"extra_data"`
	LinkedEntityID string             `json:"linked_entity_id,omitempty" bson:"linked_entity_id,omitempty"`
	Status         PaymentOrderStatus `json:"status" bson:"status"`

	PayURL         string `json:"pay_url,omitempty" bson:"pay_url,omitempty"`
	Deeplink       string `json:"deeplink,omitempty" bson:"deeplink,omitempty"`
	QRCodeURL      string `json:"qr_code_url,omitempty" bson:"qr_code_url,omitempty"`
	TransID        string `json:"trans_id,omitempty" bson:"trans_id,omitempty"`
	ResultCode     int    `json:"result_code" bson:"result_code"`
	GatewayMessage string `json:"gateway_message,omitempty" bson:"gateway_message,omitempty"`
	PayType        string `json:"pay_type,omitempty" bson:"pay_type,omitempty"`
	ResponseTime   int64  `json:"response_time,omitempty" bson:"response_time,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// GatewayResult is the authoritative outcome extracted from a verified
// notification or a gateway status query. Status and these fields are written
// together in one atomic update.
type GatewayResult struct {
	ResultCode   int
	TransID      string
	Message      string
	PayType      string
	ResponseTime int64
}

// VerifiedNotification is the value returned by the callback verifier once an
// inbound notification's HMAC checks out.
type VerifiedNotification struct {
	OrderID    string
	RequestID  string
	ResultCode int
	TransID    string
	Amount     int64
	Message    string
	PayType    string
}

// PaymentEvent is published to the outcome queue exactly once per order, by
// whichever signal wins the terminal transition.
type PaymentEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	ResultCode int       `json:"result_code"`
	TransID    string    `json:"trans_id,omitempty"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
