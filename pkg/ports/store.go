package ports

import (
	"context"

	"github.com/aretw0/assistant/pkg/domain"
)

// ContactStore defines the interface for holding the shell's contacts.
// Each method is a single atomic mapping operation.
type ContactStore interface {
	// Insert adds a new contact.
	// Returns domain.ErrContactExists if the name is already present; the stored phone is left untouched.
	Insert(ctx context.Context, name, phone string) error

	// Update overwrites the phone of an existing contact.
	// Returns a *domain.NotFoundError if the name is absent.
	Update(ctx context.Context, name, phone string) error

	// Get returns the phone stored for name.
	// Returns a *domain.NotFoundError if the name is absent.
	Get(ctx context.Context, name string) (string, error)

	// List returns every contact. Order is not guaranteed.
	List(ctx context.Context) ([]domain.Contact, error)
}
