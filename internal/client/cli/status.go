package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/studybuddy/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'studybuddy login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	expiresAt := time.Unix(auth.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	if remaining <= 0 {
		c.io.Println("Status: Session expired")
		c.io.Println()
		c.io.Println("Run 'studybuddy login' to authenticate again.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", auth.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))

	return nil
}
