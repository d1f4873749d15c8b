package shopify

import (
	"context"

	"boulangerie/internal/model"
)

// Customer accounts are not wired to the Storefront API. Every session
// operation fails loudly instead of pretending an anonymous session exists,
// so a misconfigured deployment cannot silently degrade to mock behaviour.

func (s *Store) SignInWithEmail(_ context.Context, _, _ string) (*model.Session, error) {
	return nil, model.NewNotImplemented("sign-in")
}

func (s *Store) GetCurrentUser(_ context.Context, _ string) (*model.User, error) {
	return nil, model.NewNotImplemented("current-user lookup")
}

func (s *Store) SignOut(_ context.Context, _ string) error {
	return model.NewNotImplemented("sign-out")
}
