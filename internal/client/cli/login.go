package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/studybuddy/internal/client/storage"
	"github.com/iudanet/studybuddy/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Сохраняем сессию локально, чтобы не логиниться на каждую команду
	authData := &storage.AuthData{
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}

	if err := c.authStorage.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome back, %s!\n", username)

	if resp.Profile.LearningStyle == "" {
		c.io.Println()
		c.io.Println("Complete your profile to get personalized materials:")
		c.io.Println("  studybuddy profile style")
	}

	return nil
}
