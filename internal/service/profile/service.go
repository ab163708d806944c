package profile

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"freshbasket/internal/domain"
	"freshbasket/internal/store"
)

// Service owns the persisted visitor profile.
type Service struct {
	kv     kvStore
	logger *log.Logger
}

type kvStore interface {
	Load(ctx context.Context, sessionID, key string) ([]byte, error)
	Save(ctx context.Context, sessionID, key string, value []byte) error
}

func New(kv store.KV, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{kv: kv, logger: logger}
}

// Load returns the persisted profile, falling back to the guest default
// on missing or unparsable data. It never surfaces store errors.
func (s *Service) Load(ctx context.Context, sessionID string) domain.Profile {
	raw, err := s.kv.Load(ctx, sessionID, store.KeyUser)
	if err != nil {
		return domain.DefaultProfile()
	}
	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Printf("profile: session=%s discarding unparsable record: %v", sessionID, err)
		return domain.DefaultProfile()
	}
	return p
}

// LoadForEdit is Load with the guest placeholder normalized to an empty
// name, so an edit form shows blank instead of the literal "Guest".
func (s *Service) LoadForEdit(ctx context.Context, sessionID string) domain.Profile {
	p := s.Load(ctx, sessionID)
	if p.Name == domain.GuestName {
		p.Name = ""
	}
	return p
}

// Save trims both fields, replaces a blank name with the guest
// placeholder, and persists the result. The stored profile is returned.
func (s *Service) Save(ctx context.Context, sessionID, name, email string) (domain.Profile, error) {
	p := domain.Profile{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if p.Name == "" {
		p.Name = domain.GuestName
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := s.kv.Save(ctx, sessionID, store.KeyUser, raw); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
