// Package audience keeps each visitor's patient/practitioner preference.
package audience

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tmj-platform/internal/content"
	"tmj-platform/internal/platform/kvstore"
)

type Mode string

const (
	ModePatient      Mode = "patient"
	ModePractitioner Mode = "practitioner"

	DefaultMode = ModePatient

	keyPrefix = "audienceMode:"
)

var (
	ErrInvalidMode     = errors.New("mode must be patient or practitioner")
	ErrInvalidClientID = errors.New("client id must be a UUID")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePatient, ModePractitioner:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m Mode) Toggled() Mode {
	if m == ModePractitioner {
		return ModePatient
	}
	return ModePractitioner
}

type State struct {
	ClientID string `json:"clientId"`
	Mode     Mode   `json:"mode"`
	// Mirrors the boolean helpers the UI reads.
	IsPatientMode      bool         `json:"isPatientMode"`
	IsPractitionerMode bool         `json:"isPractitionerMode"`
	Content            AudienceView `json:"content"`
}

// AudienceView is the copy shown for one mode.
type AudienceView struct {
	Title        string                `json:"title"`
	Focus        string                `json:"focus"`
	Benefits     []string              `json:"benefits"`
	CallToAction string                `json:"callToAction"`
	Testimonials []content.Testimonial `json:"testimonials"`
}

type Service interface {
	NewClient(ctx context.Context) (*State, error)
	Get(ctx context.Context, clientID string) (*State, error)
	Set(ctx context.Context, clientID string, mode Mode) (*State, error)
	Toggle(ctx context.Context, clientID string) (*State, error)
}

type service struct {
	store  kvstore.Store
	logger *zap.Logger
	onSet  func(Mode)
}

// NewService persists preferences in store. onSet, if non-nil, is called
// after every successful change.
func NewService(store kvstore.Store, logger *zap.Logger, onSet func(Mode)) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, logger: logger, onSet: onSet}
}

func (s *service) NewClient(ctx context.Context) (*State, error) {
	id := uuid.NewString()
	if err := s.store.Set(ctx, keyPrefix+id, string(DefaultMode)); err != nil {
		return nil, fmt.Errorf("failed to save audience mode: %w", err)
	}
	return newState(id, DefaultMode), nil
}

func (s *service) Get(ctx context.Context, clientID string) (*State, error) {
	mode, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return newState(clientID, mode), nil
}

func (s *service) Set(ctx context.Context, clientID string, mode Mode) (*State, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, keyPrefix+clientID, string(mode)); err != nil {
		return nil, fmt.Errorf("failed to save audience mode: %w", err)
	}
	if s.onSet != nil {
		s.onSet(mode)
	}
	return newState(clientID, mode), nil
}

func (s *service) Toggle(ctx context.Context, clientID string) (*State, error) {
	mode, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.Set(ctx, clientID, mode.Toggled())
}

// load returns the stored mode, or the default when nothing valid is stored.
func (s *service) load(ctx context.Context, clientID string) (Mode, error) {
	if err := validateClientID(clientID); err != nil {
		return "", err
	}
	v, ok, err := s.store.Get(ctx, keyPrefix+clientID)
	if err != nil {
		return "", fmt.Errorf("failed to load audience mode: %w", err)
	}
	if !ok {
		return DefaultMode, nil
	}
	mode, err := ParseMode(v)
	if err != nil {
		s.logger.Warn("ignoring stored audience mode", zap.String("client.id", clientID), zap.String("value", v))
		return DefaultMode, nil
	}
	return mode, nil
}

func validateClientID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidClientID, id)
	}
	return nil
}

func newState(clientID string, mode Mode) *State {
	return &State{
		ClientID:           clientID,
		Mode:               mode,
		IsPatientMode:      mode == ModePatient,
		IsPractitionerMode: mode == ModePractitioner,
		Content:            View(mode),
	}
}

// View selects the audience-specific copy.
func View(mode Mode) AudienceView {
	insights := content.CoreInsights()
	if mode == ModePractitioner {
		p := insights.DualAudience.Practitioners
		return AudienceView{
			Title:        p.Title,
			Focus:        p.Focus,
			Benefits:     p.Benefits,
			CallToAction: insights.CallToAction.Practitioner,
			Testimonials: content.PractitionerTestimonials(),
		}
	}
	p := insights.DualAudience.Patients
	return AudienceView{
		Title:        p.Title,
		Focus:        p.Focus,
		Benefits:     p.Benefits,
		CallToAction: insights.CallToAction.Patient,
		Testimonials: content.Testimonials(),
	}
}
