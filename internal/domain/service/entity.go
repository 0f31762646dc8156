package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Zolbayar-hub/holisticweb/internal/domain/locale"
)

const (
	MaxNameLength     = 100
	MaxDurationMinute = 24 * 60
)

var (
	ErrInvalidName     = errors.New("service name is required")
	ErrInvalidDuration = errors.New("duration must be between 1 and 1440 minutes")
)

type Service struct {
	id          int64
	name        string
	description string
	price       Money
	durationMin int
	language    locale.Language
	imagePath   *string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name, description string, price Money, durationMin int, language locale.Language, imagePath *string, now time.Time) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	if durationMin < 1 || durationMin > MaxDurationMinute {
		return nil, ErrInvalidDuration
	}
	if !language.IsValid() {
		language = locale.Default
	}
	if imagePath != nil && strings.TrimSpace(*imagePath) == "" {
		imagePath = nil
	}

	return &Service{
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		durationMin: durationMin,
		language:    language,
		imagePath:   imagePath,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructService(id int64, name, description string, price Money, durationMin int, language locale.Language, imagePath *string, isActive bool, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		durationMin: durationMin,
		language:    language,
		imagePath:   imagePath,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable fields, applying the same rules as NewService.
func (s *Service) Update(name, description string, price Money, durationMin int, language locale.Language, imagePath *string, isActive bool, now time.Time) error {
	next, err := NewService(name, description, price, durationMin, language, imagePath, now)
	if err != nil {
		return err
	}
	s.name = next.name
	s.description = next.description
	s.price = next.price
	s.durationMin = next.durationMin
	s.language = next.language
	s.imagePath = next.imagePath
	s.isActive = isActive
	s.updatedAt = now
	return nil
}

func (s *Service) Deactivate(now time.Time) {
	s.isActive = false
	s.updatedAt = now
}

func (s *Service) Activate(now time.Time) {
	s.isActive = true
	s.updatedAt = now
}

func (s *Service) ID() int64                 { return s.id }
func (s *Service) Name() string              { return s.name }
func (s *Service) Description() string       { return s.description }
func (s *Service) Price() Money              { return s.price }
func (s *Service) DurationMin() int          { return s.durationMin }
func (s *Service) Duration() time.Duration   { return time.Duration(s.durationMin) * time.Minute }
func (s *Service) Language() locale.Language { return s.language }
func (s *Service) ImagePath() *string        { return s.imagePath }
func (s *Service) IsActive() bool            { return s.isActive }
func (s *Service) CreatedAt() time.Time      { return s.createdAt }
func (s *Service) UpdatedAt() time.Time      { return s.updatedAt }
