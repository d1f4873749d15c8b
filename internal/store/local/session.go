package local

import (
	"context"

	"boulangerie/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the unknown-email path as expensive as a real comparison,
// so response timing does not reveal whether the email exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func newSessionToken() string {
	return "sess-" + uuid.NewString()
}

// SignInWithEmail checks credentials and issues an expiring opaque token.
// Unknown email and wrong password return the same failure.
func (s *Store) SignInWithEmail(_ context.Context, email, password string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record *userRecord
	for i := range s.users {
		if s.users[i].user.Email == email {
			record = &s.users[i]
			break
		}
	}

	hash := dummyHash
	if record != nil {
		hash = record.passwordHash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || record == nil {
		s.logger.Warn().Str("email", email).Msg("sign-in rejected")
		return nil, model.ErrInvalidCredentials
	}

	token := newSessionToken()
	s.sessions[token] = sessionRecord{
		userID:    record.user.ID,
		expiresAt: s.now().Add(sessionTTL),
	}

	s.logger.Info().Str("user_id", record.user.ID).Msg("user signed in")
	return &model.Session{User: record.user, Token: token}, nil
}

// GetCurrentUser resolves a token to its user. Absent, unknown or expired
// tokens yield (nil, nil); expired entries are dropped on access.
func (s *Store) GetCurrentUser(_ context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if s.now().After(session.expiresAt) {
		delete(s.sessions, token)
		return nil, nil
	}

	for i := range s.users {
		if s.users[i].user.ID == session.userID {
			user := s.users[i].user
			return &user, nil
		}
	}
	return nil, nil
}

// SignOut revokes a token; revoking an unknown token is not an error.
func (s *Store) SignOut(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
