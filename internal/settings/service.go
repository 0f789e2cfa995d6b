// Package settings manages the back-office key/value configuration,
// currently the WhatsApp number checkout links are sent to.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
)

// WhatsAppNumberDTO is the admin settings payload.
type WhatsAppNumberDTO struct {
	WhatsAppNumber string `json:"whatsapp_number"`
}

// UpdateWhatsAppNumberInput carries the new destination number.
type UpdateWhatsAppNumberInput struct {
	WhatsAppNumber string `json:"whatsapp_number" validate:"required"`
}

// Service defines the behavior needed by the settings controller.
type Service interface {
	WhatsAppNumber(ctx context.Context) (*WhatsAppNumberDTO, error)
	UpdateWhatsAppNumber(ctx context.Context, input UpdateWhatsAppNumberInput) (*WhatsAppNumberDTO, error)
}

type settingsRepository interface {
	Find(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

type service struct {
	repo          settingsRepository
	defaultNumber string
}

// ServiceParams bundles the dependencies required to build a settings service.
type ServiceParams struct {
	Repo          settingsRepository
	DefaultNumber string
}

// NewService constructs a settings service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("settings repository is required")
	}
	return &service{
		repo:          params.Repo,
		defaultNumber: params.DefaultNumber,
	}, nil
}

// WhatsAppNumber returns the stored destination number, falling back to
// the configured default when no row has been written yet.
func (s *service) WhatsAppNumber(ctx context.Context) (*WhatsAppNumberDTO, error) {
	setting, err := s.repo.Find(ctx, models.SettingWhatsAppNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &WhatsAppNumberDTO{WhatsAppNumber: s.defaultNumber}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load whatsapp number")
	}
	return &WhatsAppNumberDTO{WhatsAppNumber: setting.Value}, nil
}

func (s *service) UpdateWhatsAppNumber(ctx context.Context, input UpdateWhatsAppNumberInput) (*WhatsAppNumberDTO, error) {
	number, err := normalizeNumber(input.WhatsAppNumber)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, models.SettingWhatsAppNumber, number); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store whatsapp number")
	}
	return &WhatsAppNumberDTO{WhatsAppNumber: number}, nil
}

// normalizeNumber strips formatting and keeps the digits, which is the
// form wa.me links expect.
func normalizeNumber(raw string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// formatting characters are tolerated and dropped
		default:
			return "", pkgerrors.New(pkgerrors.CodeValidation, "whatsapp number must contain only digits")
		}
	}
	digits := b.String()
	if len(digits) < 8 || len(digits) > 15 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "whatsapp number must have between 8 and 15 digits")
	}
	return digits, nil
}
