package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// qrDedupTTL bounds how long an identical QR mailing is suppressed before it
// may be sent again.
const qrDedupTTL = time.Hour

// QRDedup suppresses duplicate QR email deliveries, backed by Redis.
// Key format: qr_sent:<patient_id>:<sha256(recipients)>
type QRDedup struct {
	client *redis.Client
}

// NewQRDedup creates a QRDedup wrapping the given Redis client.
func NewQRDedup(client *redis.Client) *QRDedup {
	return &QRDedup{client: client}
}

// AlreadySent reports whether this exact mailing went out within the TTL.
func (d *QRDedup) AlreadySent(ctx context.Context, patientID string, recipients []string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(patientID, recipients)).Result()
	if err != nil {
		return false, fmt.Errorf("qr dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records the mailing (expires after qrDedupTTL).
func (d *QRDedup) MarkSent(ctx context.Context, patientID string, recipients []string) error {
	return d.client.Set(ctx, d.key(patientID, recipients), "1", qrDedupTTL).Err()
}

func (d *QRDedup) key(patientID string, recipients []string) string {
	sum := sha256.Sum256([]byte(strings.Join(recipients, ",")))
	return fmt.Sprintf("qr_sent:%s:%s", patientID, hex.EncodeToString(sum[:8]))
}
