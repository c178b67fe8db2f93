package memory

import (
	"context"

	"github.com/aretw0/assistant/pkg/domain"
)

// Store implements ports.ContactStore in memory.
// It is owned by a single shell and is not safe for concurrent use.
type Store struct {
	data map[string]string
}

// NewStore creates a new, empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Insert adds name → phone unless name is already present.
func (s *Store) Insert(ctx context.Context, name, phone string) error {
	if _, ok := s.data[name]; ok {
		return domain.ErrContactExists
	}
	s.data[name] = phone
	return nil
}

// Update overwrites the phone of an existing contact.
func (s *Store) Update(ctx context.Context, name, phone string) error {
	if _, ok := s.data[name]; !ok {
		return &domain.NotFoundError{Name: name}
	}
	s.data[name] = phone
	return nil
}

// Get returns the phone stored for name.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	phone, ok := s.data[name]
	if !ok {
		return "", &domain.NotFoundError{Name: name}
	}
	return phone, nil
}

// List returns every contact in no particular order.
func (s *Store) List(ctx context.Context) ([]domain.Contact, error) {
	contacts := make([]domain.Contact, 0, len(s.data))
	for name, phone := range s.data {
		contacts = append(contacts, domain.Contact{Name: name, Phone: phone})
	}
	return contacts, nil
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.data)
}
