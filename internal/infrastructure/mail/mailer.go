// Package mail delivers clinic email over SMTP. Sends are synchronous and
// best-effort: callers log failures instead of failing the request that
// triggered them.
package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"

	"github.com/nefroclinica/clinic-system/internal/api/metrics"
	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/infrastructure/config"
)

// Mailer sends the clinic's outbound email through a single SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

func NewMailer(cfg config.SMTPConfig, logger zerolog.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendPatientQR mails the QR image to the given recipients with access
// instructions for the patient's record.
func (m *Mailer) SendPatientQR(ctx context.Context, patientID string, recipients []string, qrPNG []byte) error {
	if len(recipients) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", "Código QR de Paciente - Clínica Nefrológica")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Adjunto el código QR para acceder a la información del paciente.\n\n"+
			"Para probar el QR:\n"+
			"1. Escanee el código QR adjunto con su teléfono\n"+
			"2. O ingrese manualmente la URL del paciente en su navegador\n\n"+
			"Nota: el QR contiene la URL completa para acceder directamente al paciente %s.\n"+
			"Desde un móvil necesitará iniciar sesión primero en la aplicación.\n\n"+
			"Atentamente,\nClínica Nefrológica", patientID))
	msg.Attach(
		fmt.Sprintf("qr_paciente_%s.png", patientID),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPNG)
			return err
		}),
	)

	if err := m.send(ctx, msg); err != nil {
		metrics.QRMailsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.QRMailsTotal.WithLabelValues("sent").Inc()

	m.logger.Info().
		Str("message_id", uuid.NewString()).
		Str("patient_id", patientID).
		Strs("recipients", recipients).
		Msg("qr mail delivered")
	return nil
}

// SendWelcome mails access instructions to a newly created staff user. The
// password itself is never mailed; the administrator hands it over.
func (m *Mailer) SendWelcome(ctx context.Context, user *domain.User) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "Bienvenido a la Clínica Nefrológica Integral")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\n"+
			"Somos de la Clínica Nefrológica Integral y le damos la bienvenida a nuestro sistema.\n\n"+
			"Sus datos para acceder a nuestra página web son:\n\n"+
			"Email: %s\n\n"+
			"Por favor, no divulgue estos datos personales. Son exclusivamente para su uso profesional.\n\n"+
			"Para acceder al sistema inicie sesión con su email y la contraseña que le "+
			"proporcionará el administrador.\n\n"+
			"Atentamente,\nClínica Nefrológica Integral",
		user.Nombre, user.Email))

	if err := m.send(ctx, msg); err != nil {
		return err
	}

	m.logger.Info().
		Str("message_id", uuid.NewString()).
		Str("email", user.Email).
		Str("rol", string(user.Rol)).
		Msg("welcome mail delivered")
	return nil
}

// send honors context cancellation around the blocking SMTP dial.
func (m *Mailer) send(ctx context.Context, msg *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
