// Package summary generates an optional prose summary of an analysis with
// an OpenAI-compatible chat completion API. It never influences scoring,
// filtering or ranking.
package summary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/repofolio/repofolio/internal/model"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

// maxProjectsInPrompt bounds how many ranked projects are described to the
// model to keep the prompt small.
const maxProjectsInPrompt = 5

// Client wraps an OpenAI-compatible completion endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a summary client. baseURL may be empty for the default
// OpenAI endpoint; model may be empty for DefaultModel.
func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const systemPrompt = `You are a technical CV writer. Given a developer's GitHub profile statistics, top projects, and skills, write a 3-4 sentence professional summary suitable for the top of a CV. Write in third person, highlight concrete strengths (languages, project scale, activity), and avoid cliches like "passionate" or "results-driven". Return plain text only, no markdown.`

// Summarize produces a profile summary from a finished analysis.
func (c *Client) Summarize(ctx context.Context, analysis *model.Analysis) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(analysis)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("summary request for %s: %w", analysis.Username, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned for %s", analysis.Username)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the analysis facts the model summarizes from.
func BuildPrompt(analysis *model.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Developer: %s\n", analysis.Profile.DisplayName())
	if analysis.Profile.Bio != "" {
		fmt.Fprintf(&b, "Bio: %s\n", analysis.Profile.Bio)
	}

	stats := analysis.Statistics
	fmt.Fprintf(&b, "Years active: %d\n", stats.YearsActive)
	fmt.Fprintf(&b, "Original repositories: %d (total stars %d)\n", stats.OriginalRepos, stats.TotalStars)
	if stats.PrimaryLanguage != "" {
		fmt.Fprintf(&b, "Primary language: %s of %d languages\n", stats.PrimaryLanguage, stats.LanguageCount)
	}

	if len(analysis.Projects) > 0 {
		b.WriteString("\nTop projects:\n")
		for i, p := range analysis.Projects {
			if i >= maxProjectsInPrompt {
				break
			}
			desc := p.ExtractedDescription
			if desc == "" {
				desc = p.Description
			}
			fmt.Fprintf(&b, "- %s (%s, %d stars): %s\n", p.Name, p.Language, p.Stars, desc)
		}
	}

	if len(analysis.Skills) > 0 {
		names := make([]string, 0, len(analysis.Skills))
		for _, s := range analysis.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(names, ", "))
	}

	return b.String()
}
