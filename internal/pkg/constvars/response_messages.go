package constvars

const (
	PaymentSuccessfullyInitiated     = "Payment successfully initiated"
	PaymentNotificationProcessed     = "Payment notification processed"
	PaymentRedirectAcknowledged      = "Payment redirect acknowledged"
	PaymentSuccessfullySynced        = "Payment status synced"
	PaymentStatusSuccessfullyFetched = "Payment status successfully fetched"
)
