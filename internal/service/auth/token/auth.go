package service_token_auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Token = string

const adminRole = "admin"

var (
	ErrInternal     = errors.New("internal error")
	ErrWrongCode    = errors.New("wrong code")
	ErrUnknownToken = errors.New("unknown token")
)

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
}

// Service issues two kinds of short-lived tokens backed by the session cache:
// admin tokens for venue management (secret code exchange) and guest tokens
// that bind an anonymous visitor to a stable user id for feedback submission.
type Service struct {
	adminSecret string
	cache       SessionCache
	ttl         time.Duration
}

func New(adminSecret string, cache SessionCache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{
		adminSecret: adminSecret,
		cache:       cache,
		ttl:         ttl,
	}
}

func (s *Service) AuthAdmin(code string) (Token, error) {
	if code != s.adminSecret {
		return "", ErrWrongCode
	}

	t := uuid.New().String()
	if err := s.cache.Set("admin:"+t, adminRole, s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return t, nil
}

func (s *Service) IsAdmin(t Token) (bool, error) {
	v, err := s.cache.Get("admin:" + t)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	return v == adminRole, nil
}

// IssueGuest mints a fresh anonymous identity. The returned user id is what
// keys the one-feedback-per-venue invariant for this visitor.
func (s *Service) IssueGuest() (Token, uuid.UUID, error) {
	userID := uuid.New()
	t := uuid.New().String()

	if err := s.cache.Set("guest:"+t, userID.String(), s.ttl); err != nil {
		return "", uuid.Nil, errors.Join(ErrInternal, err)
	}
	return t, userID, nil
}

func (s *Service) ResolveGuest(t Token) (uuid.UUID, error) {
	v, err := s.cache.Get("guest:" + t)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return uuid.Nil, ErrUnknownToken
	}

	userID, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	return userID, nil
}

func (s *Service) RevokeGuest(t Token) error {
	if err := s.cache.Del("guest:" + t); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}
