package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runLearn(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	topic := strings.Join(args, " ")
	if topic == "" {
		input, err := c.io.ReadInput("Enter a topic for study materials: ")
		if err != nil {
			return fmt.Errorf("failed to read topic: %w", err)
		}
		topic = input
	}

	c.io.Println("Generating study materials, this may take a while...")
	c.io.Println()

	resp, err := c.apiClient.GenerateMaterials(ctx, topic)
	if err != nil {
		return err
	}

	c.io.Printf("=== Study Materials: %s ===\n", resp.Topic)
	c.io.Println()
	c.io.Println(resp.Content)

	return nil
}

func (c *Cli) runTest(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	topic := strings.Join(args, " ")
	if topic == "" {
		input, err := c.io.ReadInput("Enter a topic for practice test: ")
		if err != nil {
			return fmt.Errorf("failed to read topic: %w", err)
		}
		topic = input
	}

	c.io.Println("Generating practice test, this may take a while...")
	c.io.Println()

	resp, err := c.apiClient.GeneratePracticeTest(ctx, topic)
	if err != nil {
		return err
	}

	c.io.Printf("=== Practice Test: %s ===\n", resp.Topic)
	c.io.Println()
	c.io.Println(resp.Content)

	return nil
}

func (c *Cli) runChat(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	question := strings.Join(args, " ")
	if question == "" {
		input, err := c.io.ReadInput("Ask your AI tutor: ")
		if err != nil {
			return fmt.Errorf("failed to read question: %w", err)
		}
		question = input
	}

	c.io.Println("Thinking...")
	c.io.Println()

	resp, err := c.apiClient.Chat(ctx, question)
	if err != nil {
		return err
	}

	c.io.Println(resp.Answer)

	return nil
}

func (c *Cli) runHistory(ctx context.Context) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.History(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Recent Study Sessions ===")
	c.io.Println()

	if len(resp.Records) == 0 {
		c.io.Println("Start studying to track your progress!")
		return nil
	}

	for _, record := range resp.Records {
		c.io.Printf("📅 %s - Topic: %s\n", record.Timestamp.Format("2006-01-02 15:04:05"), record.Topic)
	}

	return nil
}
