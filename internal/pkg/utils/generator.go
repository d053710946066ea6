package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateWalletRequestID builds the default per-call gateway request ID when
// the caller does not supply one: partner code + current unix millis.
func GenerateWalletRequestID(partnerCode string) string {
	return fmt.Sprintf("%s%d", partnerCode, time.Now().UnixMilli())
}
