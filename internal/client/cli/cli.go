// Package cli implements the interactive study-buddy command line client.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/studybuddy/internal/client/api"
	"github.com/iudanet/studybuddy/internal/client/iocli"
	"github.com/iudanet/studybuddy/internal/client/storage"
)

// Cli связывает команды с API клиентом и локальным хранилищем сессии
type Cli struct {
	apiClient   *api.Client
	authStorage storage.AuthStorage
	io          iocli.IO
}

// New создает новый CLI
func New(apiClient *api.Client, authStorage storage.AuthStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authStorage: authStorage,
		io:          io,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "learn":
		return c.runLearn(ctx, args)
	case "test":
		return c.runTest(ctx, args)
	case "chat":
		return c.runChat(ctx, args)
	case "history":
		return c.runHistory(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func PrintUsage(io iocli.IO) {
	io.Println("StudyBuddy - Personalized AI study assistant")
	io.Println()
	io.Println("Usage: studybuddy [flags] <command> [arguments]")
	io.Println()
	io.Println("Commands:")
	io.Println("  register              Create a new account")
	io.Println("  login                 Log in and save the session")
	io.Println("  logout                Log out and forget the session")
	io.Println("  status                Show session status")
	io.Println("  profile               Show profile")
	io.Println("  profile style         Choose your learning style")
	io.Println("  profile difficulty    Set difficulty: beginner, medium or advanced")
	io.Println("  profile topics        Choose topics of interest")
	io.Println("  learn <topic>         Generate personalized study materials")
	io.Println("  test <topic>          Generate a personalized practice test")
	io.Println("  chat <question>       Ask the AI tutor")
	io.Println("  history               Show recent study sessions")
}

// requireAuth загружает сохраненную сессию и настраивает API клиент.
// Если сессии нет или токен истек, просит пользователя залогиниться.
func (c *Cli) requireAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, fmt.Errorf("not authenticated, please run 'studybuddy login' first")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	ok, err := c.authStorage.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session expired, please run 'studybuddy login' again")
	}

	c.apiClient.SetToken(auth.AccessToken)

	return auth, nil
}
