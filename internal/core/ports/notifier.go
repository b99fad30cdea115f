package ports

import (
	"context"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
)

// Notifier sends outbound clinic email. Implementations must be safe for
// concurrent use; callers treat failures as non-fatal.
type Notifier interface {
	// SendPatientQR mails the QR image to the given recipients.
	SendPatientQR(ctx context.Context, patientID string, recipients []string, qrPNG []byte) error
	// SendWelcome mails access instructions to a newly created staff user.
	SendWelcome(ctx context.Context, user *domain.User) error
}

// QREncoder renders a QR code PNG for the given content.
type QREncoder interface {
	Encode(content string, size int) ([]byte, error)
}

// QRDeduper suppresses repeat deliveries of an identical QR mailing within a
// retention window.
type QRDeduper interface {
	AlreadySent(ctx context.Context, patientID string, recipients []string) (bool, error)
	MarkSent(ctx context.Context, patientID string, recipients []string) error
}
