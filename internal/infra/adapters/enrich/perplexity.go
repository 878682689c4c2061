package enrich

import (
	"context"
	"errors"
	"fmt"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.FounderSource = (*ChatFounderSource)(nil)

const discoverySystemPrompt = "You are a helpful assistant that provides accurate information about company founders and CEOs. " +
	"Return ONLY verified founder/CEO names in a structured format. Each name must be on a new line with their role."

// ChatFounderSource discovers founders through an OpenAI-compatible
// chat-completions gateway. Perplexity's API speaks the same protocol, so the
// default wiring points the client at https://api.perplexity.ai with the
// "sonar" model; a plain OpenAI key works as a fallback.
type ChatFounderSource struct {
	client openai.Client
	model  string
}

func NewChatFounderSource(apiKey, baseURL, model string) (*ChatFounderSource, error) {
	if apiKey == "" {
		return nil, errors.New("discovery api key empty")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &ChatFounderSource{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

func (s *ChatFounderSource) DiscoverFounders(ctx context.Context, companyName string) ([]model.FounderLead, error) {
	userPrompt := fmt.Sprintf(`Find the current founder(s) or CEO of %s. Format each person exactly like this:
Founder: FirstName LastName
CEO: FirstName LastName

Only include people where you are confident of both their role and full name. If no verified information is found, respond with "No verified founder information found."`, companyName)

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(discoverySystemPrompt),
			openai.UserMessage(userPrompt),
		},
		MaxTokens:   openai.Int(150),
		Temperature: openai.Float(0.1),
		TopP:        openai.Float(0.9),
	})
	if err != nil {
		return nil, fmt.Errorf("founder discovery: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("founder discovery: no choice content")
	}

	return parseFounderLines(completion.Choices[0].Message.Content), nil
}
