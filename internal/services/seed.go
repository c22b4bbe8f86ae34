package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type seedUser struct {
	username, email, password, message string
}

var demoUsers = []seedUser{
	{username: "Jessy", email: "jessy@rocket.pkm", password: "jessy123", message: "Prepare for trouble"},
	{username: "James", email: "james@rocket.pkm", password: "james123", message: "Make it double"},
}

// SeedDemoData creates the demo users, one message each, and the demo item.
// It expects an empty schema.
func SeedDemoData(ctx context.Context, users UserServiceProvider, messages MessageServiceProvider, items ItemServiceProvider) error {
	for _, u := range demoUsers {
		user, err := users.CreateUser(ctx, u.username, u.email, u.password)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
		if _, err := messages.CreateMessage(ctx, u.message, user.ID); err != nil {
			return fmt.Errorf("failed to seed message for %s: %w", u.username, err)
		}
	}

	if _, err := items.CreateItem(ctx, "Javel"); err != nil {
		return fmt.Errorf("failed to seed item: %w", err)
	}

	log.Info().Int("users", len(demoUsers)).Msg("Seeded demo data")
	return nil
}
