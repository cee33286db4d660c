// Package contact accepts "Get Started" form submissions, stores them and
// forwards them to the practice.
package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
)

// Notifier delivers a text message to the practice's chat.
// We define it here to decouple from the messenger client.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Service interface {
	Submit(ctx context.Context, in Input) (*Submission, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	chatID   int64
	logger   *zap.Logger
	onSubmit func(Audience)
}

// NewService stores submissions in repo. notifier may be nil to skip
// forwarding; onSubmit may be nil.
func NewService(repo Repository, notifier Notifier, chatID int64, logger *zap.Logger, onSubmit func(Audience)) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:     repo,
		notifier: notifier,
		chatID:   chatID,
		logger:   logger,
		onSubmit: onSubmit,
	}
}

func (s *service) Submit(ctx context.Context, in Input) (*Submission, error) {
	sub, err := validate(in)
	if err != nil {
		return nil, err
	}
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}
	if s.onSubmit != nil {
		s.onSubmit(sub.Audience)
	}

	// A failed notification does not fail the submission; the record is
	// already stored with notified=false.
	if s.notifier == nil || s.chatID == 0 {
		s.logger.Warn("contact notification skipped, messenger not configured", zap.String("contact.id", sub.ID.String()))
		return sub, nil
	}
	if err := s.notifier.SendMessage(ctx, s.chatID, formatNotification(sub)); err != nil {
		s.logger.Error("failed to notify practice", zap.String("contact.id", sub.ID.String()), zap.Error(err))
		return sub, nil
	}

	sub.Notified = true
	if err := s.repo.Save(ctx, sub); err != nil {
		s.logger.Error("failed to mark contact as notified", zap.String("contact.id", sub.ID.String()), zap.Error(err))
	}
	return sub, nil
}

func validate(in Input) (*Submission, error) {
	sub := &Submission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}

	switch {
	case sub.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case len(sub.Name) > maxNameLen:
		return nil, fmt.Errorf("%w: name is too long", ErrValidation)
	case sub.Email == "":
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	case sub.Message == "":
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	case len(sub.Message) > maxMessageLen:
		return nil, fmt.Errorf("%w: message is too long", ErrValidation)
	}

	addr, err := mail.ParseAddress(sub.Email)
	if err != nil || addr.Name != "" {
		return nil, fmt.Errorf("%w: email is not valid", ErrValidation)
	}
	sub.Email = addr.Address

	switch Audience(in.Type) {
	case AudiencePatient, AudiencePractitioner:
		sub.Audience = Audience(in.Type)
	default:
		return nil, fmt.Errorf("%w: type must be patient or practitioner", ErrValidation)
	}

	return sub, nil
}

func formatNotification(s *Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact request (%s)\n", s.Audience)
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	if s.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	}
	fmt.Fprintf(&b, "\n%s", s.Message)
	return b.String()
}
