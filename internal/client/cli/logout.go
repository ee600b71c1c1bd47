package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/studybuddy/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	auth, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	// Сначала завершаем сессию на сервере: история занятий исчезает там
	if err := c.apiClient.Logout(ctx); err != nil {
		// Локальную сессию чистим в любом случае
		c.io.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.authStorage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Printf("✓ Logged out, goodbye %s!\n", auth.Username)

	return nil
}
