package shell

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/aretw0/assistant/pkg/ports"
)

func addContact(ctx context.Context, args domain.Args, store ports.ContactStore) (string, error) {
	if len(args) != 2 {
		return "", domain.NewUsageError(domain.UsageAdd)
	}
	name, phone, err := nameAndPhone(args)
	if err != nil {
		return "", err
	}

	if err := store.Insert(ctx, name, phone); err != nil {
		if errors.Is(err, domain.ErrContactExists) {
			return fmt.Sprintf("Contact '%s' already exists. Use 'change %s <phone>' to update.", name, name), nil
		}
		return "", err
	}
	return fmt.Sprintf("Added: %s → %s", name, phone), nil
}

func changeContact(ctx context.Context, args domain.Args, store ports.ContactStore) (string, error) {
	if len(args) != 2 {
		return "", domain.NewUsageError(domain.UsageChange)
	}
	name, phone, err := nameAndPhone(args)
	if err != nil {
		return "", err
	}

	if err := store.Update(ctx, name, phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Changed: %s → %s", name, phone), nil
}

func showPhone(ctx context.Context, args domain.Args, store ports.ContactStore) (string, error) {
	if len(args) != 1 {
		return "", domain.NewUsageError(domain.UsagePhone)
	}
	name, err := args.Get(0)
	if err != nil {
		return "", err
	}
	return store.Get(ctx, name)
}

// showAll renders every contact on its own line, sorted by name.
func showAll(ctx context.Context, store ports.ContactStore) (string, error) {
	contacts, err := store.List(ctx)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return domain.MsgNoContacts, nil
	}

	slices.SortFunc(contacts, func(a, b domain.Contact) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	for i, c := range contacts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s → %s", c.Name, c.Phone)
	}
	return b.String(), nil
}

func nameAndPhone(args domain.Args) (string, string, error) {
	name, err := args.Get(0)
	if err != nil {
		return "", "", err
	}
	phone, err := args.Get(1)
	if err != nil {
		return "", "", err
	}
	return name, phone, nil
}
