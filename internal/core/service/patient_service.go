package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

const (
	qrImageSize = 200
	// At most the first two registered addresses receive the QR mail.
	maxQRRecipients = 2
)

// PatientService manages patient records and the QR delivery that accompanies
// them: every new patient gets a QR pointing at their record in the frontend,
// mailed to their registered addresses, and the mail is resent whenever the
// address list changes.
type PatientService struct {
	repo        ports.PatientRepository
	encoder     ports.QREncoder
	notifier    ports.Notifier
	dedup       ports.QRDeduper
	frontendURL string
	logger      zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, encoder ports.QREncoder, notifier ports.Notifier, dedup ports.QRDeduper, frontendURL string, logger zerolog.Logger) *PatientService {
	return &PatientService{
		repo:        repo,
		encoder:     encoder,
		notifier:    notifier,
		dedup:       dedup,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Create inserts the patient, derives the QR payload from the generated id,
// mails the QR and persists the payload on the record.
func (s *PatientService) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	created, err := s.repo.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}

	created.QRCodeData = fmt.Sprintf("%s/pacientes/%s/observar", s.frontendURL, created.ID)
	s.sendQR(ctx, created)

	if err := s.repo.Update(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a field-by-field partial merge onto the stored record and
// resends the QR when the email list changed. ID and QR payload never change.
func (s *PatientService) Update(ctx context.Context, id string, incoming *domain.Patient) (*domain.Patient, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emailsChanged := incoming.Emails != nil && !domain.EmailsEqual(incoming.Emails, existing.Emails)

	domain.MergePatient(existing, incoming)

	if emailsChanged && len(existing.Emails) > 0 {
		s.sendQR(ctx, existing)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// sendQR encodes and mails the patient's QR to the first registered
// addresses. Delivery is best-effort and deduplicated: an identical mailing
// already sent within the retention window is skipped.
func (s *PatientService) sendQR(ctx context.Context, patient *domain.Patient) {
	if len(patient.Emails) == 0 {
		s.logger.Debug().Str("patient_id", patient.ID).Msg("no emails registered, skipping QR delivery")
		return
	}

	recipients := patient.Emails
	if len(recipients) > maxQRRecipients {
		recipients = recipients[:maxQRRecipients]
	}

	if s.dedup != nil {
		dup, err := s.dedup.AlreadySent(ctx, patient.ID, recipients)
		if err != nil {
			s.logger.Warn().Err(err).Str("patient_id", patient.ID).Msg("qr dedup check failed")
		} else if dup {
			s.logger.Info().Str("patient_id", patient.ID).Msg("qr mail already sent, skipping")
			return
		}
	}

	png, err := s.encoder.Encode(patient.QRCodeData, qrImageSize)
	if err != nil {
		s.logger.Error().Err(err).Str("patient_id", patient.ID).Msg("qr encoding failed")
		return
	}

	if err := s.notifier.SendPatientQR(ctx, patient.ID, recipients, png); err != nil {
		s.logger.Error().Err(err).Str("patient_id", patient.ID).Msg("qr email failed")
		return
	}

	if s.dedup != nil {
		if err := s.dedup.MarkSent(ctx, patient.ID, recipients); err != nil {
			s.logger.Warn().Err(err).Str("patient_id", patient.ID).Msg("qr dedup mark failed")
		}
	}

	s.logger.Info().Str("patient_id", patient.ID).Strs("recipients", recipients).Msg("qr sent by email")
}
