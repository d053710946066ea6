package auditlog

import (
	"bytes"
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// minioAuditTrail archives raw inbound notifications to object storage. Both
// verified and rejected payloads are kept: rejected ones feed security review
// of forged or corrupted notifications, verified ones back duplicate-delivery
// investigations.
type minioAuditTrail struct {
	client     *minio.Client
	bucketName string
	Log        *zap.Logger
}

func NewMinioAuditTrail(ctx context.Context, client *minio.Client, bucketName string, logger *zap.Logger) (contracts.AuditTrailService, error) {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, exceptions.ErrMinioPrepareBucket(err, bucketName)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, exceptions.ErrMinioPrepareBucket(err, bucketName)
		}
	}

	return &minioAuditTrail{
		client:     client,
		bucketName: bucketName,
		Log:        logger,
	}, nil
}

func (s *minioAuditTrail) ArchiveNotification(ctx context.Context, orderID, verdict string, payload []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := fmt.Sprintf(constvars.PaymentAuditObjectNameFormat, orderID, verdict, time.Now().UTC().Format("20060102T150405.000000000Z"))
	_, err := s.client.PutObject(
		ctx,
		s.bucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		s.Log.Error("minioAuditTrail.ArchiveNotification error storing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, s.bucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}

	s.Log.Info("minioAuditTrail.ArchiveNotification stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return nil
}
