package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amigdala/cms-backend/internal/content"
	"github.com/amigdala/cms-backend/internal/content/repository"
)

var (
	// ErrValidation covers missing/malformed input, rejected before any side effect.
	ErrValidation = errors.New("invalid section payload")
	ErrNotFound   = errors.New("section not found")
)

// Service defines the content operations used by the handler layer.
type Service interface {
	// Upsert validates the payload against the section's typed shape, stamps
	// UpdatedAt server-side and writes the full document keyed by section.
	Upsert(ctx context.Context, section string, payload json.RawMessage) error
	Get(ctx context.Context, section string) (*content.Document, error)
	List(ctx context.Context) ([]*content.Document, error)
	Count(ctx context.Context) (int64, error)
}

type contentService struct {
	repo repository.Repository
	now  func() time.Time
}

func New(repo repository.Repository) Service {
	return &contentService{repo: repo, now: time.Now}
}

func (s *contentService) Upsert(ctx context.Context, section string, payload json.RawMessage) error {
	section = strings.TrimSpace(section)
	if section == "" {
		return fmt.Errorf("%w: section key is required", ErrValidation)
	}
	if !isObject(payload) {
		return fmt.Errorf("%w: content must be a non-null object", ErrValidation)
	}
	body, err := content.DecodeBody(section, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	doc := &content.Document{
		Section:   section,
		UpdatedAt: s.now().UTC(),
		Body:      body,
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("persist section %q: %w", section, err)
	}
	return nil
}

func (s *contentService) Get(ctx context.Context, section string) (*content.Document, error) {
	doc, err := s.repo.Get(ctx, section)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch section %q: %w", section, err)
	}
	return doc, nil
}

func (s *contentService) List(ctx context.Context) ([]*content.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return docs, nil
}

func (s *contentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// isObject reports whether raw is a JSON object (not null, array or scalar).
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
