package requests

// WalletCreationRequest is the signed JSON body POSTed to the wallet gateway's
// payment-creation endpoint. The signature covers the ten canonical keys in
// lexicographic order, not the JSON property order below.
type WalletCreationRequest struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Signature   string `json:"signature"`
	Lang        string `json:"lang"`
}

// WalletStatusQueryRequest is the signed body for the gateway's status-query
// endpoint, used by manual sync. Its signature covers the four keys
// accessKey, orderId, partnerCode, requestId.
type WalletStatusQueryRequest struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	OrderID     string `json:"orderId"`
	Signature   string `json:"signature"`
	Lang        string `json:"lang"`
}

// WalletNotification is the asynchronous IPN body delivered by the gateway.
// The numeric fields (amount, resultCode, responseTime) are present in every
// gateway delivery; a payload missing them is malformed and fails signature
// verification, since their zero values never reproduce the gateway's
// canonical string. Only the optional string fields (orderType, transId,
// message, payType, extraData) may be absent, and those sign as empty strings.
type WalletNotification struct {
	PartnerCode  string `json:"partnerCode"`
	AccessKey    string `json:"accessKey"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderID      string `json:"orderId"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      string `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// WalletRedirectQuery carries the browser-redirect query parameters. It is an
// untrusted hint and never drives a state transition by itself.
type WalletRedirectQuery struct {
	OrderID    string `json:"order_id"`
	ResultCode int    `json:"result_code"`
	Message    string `json:"message"`
}
