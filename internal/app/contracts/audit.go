package contracts

import "context"

type AuditTrailService interface {
	// ArchiveNotification stores the raw inbound notification payload for
	// later review. Verdict is "verified" or "rejected"; rejected payloads are
	// kept for security review of forged or corrupted notifications.
	ArchiveNotification(ctx context.Context, orderID, verdict string, payload []byte) error
}
