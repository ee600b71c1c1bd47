package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/studybuddy/internal/models"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return c.showProfile(ctx)
	}

	switch args[0] {
	case "style":
		return c.setLearningStyle(ctx)
	case "difficulty":
		return c.setDifficulty(ctx, args[1:])
	case "topics":
		return c.setTopics(ctx)
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) showProfile(ctx context.Context) error {
	profile, err := c.apiClient.GetProfile(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Your Profile ===")
	c.io.Println()
	c.io.Printf("Username:         %s\n", profile.Username)

	if profile.LearningStyle == "" {
		c.io.Println("Learning style:   not set (run 'studybuddy profile style')")
	} else {
		c.io.Printf("Learning style:   %s\n", profile.LearningStyle)
	}

	c.io.Printf("Difficulty level: %s\n", profile.DifficultyLevel)

	if len(profile.TopicsOfInterest) == 0 {
		c.io.Println("Topics:           none selected")
	} else {
		c.io.Println("Topics:")
		for _, topic := range profile.TopicsOfInterest {
			c.io.Printf("  • %s\n", topic)
		}
	}

	return nil
}

// setLearningStyle проводит мини-анкету и сохраняет выбранный стиль
func (c *Cli) setLearningStyle(ctx context.Context) error {
	c.io.Println("How do you prefer to learn?")
	c.io.Println()
	for i, style := range models.LearningStyles {
		c.io.Printf("  %d. %s\n", i+1, style)
	}
	c.io.Println()

	answer, err := c.io.ReadInput("Your choice (1-4): ")
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(models.LearningStyles) {
		return fmt.Errorf("invalid choice: %s", answer)
	}

	style := models.LearningStyles[choice-1]

	if _, err := c.apiClient.SetLearningStyle(ctx, string(style)); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Learning style saved!")

	return nil
}

func (c *Cli) setDifficulty(ctx context.Context, args []string) error {
	var level string
	if len(args) > 0 {
		level = args[0]
	} else {
		answer, err := c.io.ReadInput("Difficulty level (beginner, medium, advanced): ")
		if err != nil {
			return fmt.Errorf("failed to read level: %w", err)
		}
		level = answer
	}

	if _, err := models.ParseDifficulty(level); err != nil {
		return err
	}

	if _, err := c.apiClient.SetDifficulty(ctx, level); err != nil {
		return err
	}

	c.io.Printf("✓ Difficulty level set to %s\n", level)

	return nil
}

// setTopics показывает каталог и принимает список номеров через запятую
func (c *Cli) setTopics(ctx context.Context) error {
	c.io.Println("Select your topics of interest:")
	c.io.Println()
	for i, topic := range models.TopicCatalog {
		c.io.Printf("  %d. %s\n", i+1, topic)
	}
	c.io.Println()

	answer, err := c.io.ReadInput("Topic numbers, comma-separated (empty to clear): ")
	if err != nil {
		return fmt.Errorf("failed to read topics: %w", err)
	}

	topics := []string{}
	if answer != "" {
		for _, raw := range strings.Split(answer, ",") {
			num, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || num < 1 || num > len(models.TopicCatalog) {
				return fmt.Errorf("invalid topic number: %s", raw)
			}
			topics = append(topics, models.TopicCatalog[num-1])
		}
	}

	if _, err := c.apiClient.SetTopics(ctx, topics); err != nil {
		return err
	}

	if len(topics) == 0 {
		c.io.Println("✓ Topics cleared")
	} else {
		c.io.Printf("✓ %d topics saved\n", len(topics))
	}

	return nil
}
