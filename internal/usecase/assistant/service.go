package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"secdash/internal/bootstrap/config"
)

const remoteErrorPrefix = "Error calling OpenRouter API"

const analystPrompt = "You are a helpful cybersecurity analyst assistant for a university dashboard. " +
	"Explain trends, severity priorities, and risks clearly for a first-year " +
	"computer science student. Be concise and practical.\n"

// Service answers analyst questions. With a credential it makes exactly one
// chat-completion attempt against the configured OpenAI-compatible endpoint;
// without one, or when the attempt fails, it falls back to the rule-based
// offline answer. Answer never returns an error: a broken remote still
// produces usable text.
type Service struct {
	cfg    config.AssistantConfig
	client openai.Client
}

func NewService(cfg config.AssistantConfig) *Service {
	s := &Service{cfg: cfg}
	if strings.TrimSpace(cfg.APIKey) != "" {
		s.client = newClient(cfg)
	}
	return s
}

func newClient(cfg config.AssistantConfig) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.Title))
	}
	return openai.NewClient(opts...)
}

func (s *Service) Answer(ctx context.Context, question string, contextText string) string {
	if ctx == nil {
		ctx = context.Background()
	}

	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return offlineAnswer(question, contextText)
	}

	answer := s.remoteAnswer(ctx, question, contextText)
	if strings.HasPrefix(answer, remoteErrorPrefix) {
		return answer + "\n\n" + offlineAnswer(question, contextText)
	}
	return answer
}

// Health reports whether the remote endpoint is reachable with the
// configured credential, using a minimal probe question.
func (s *Service) Health(ctx context.Context) string {
	if ctx == nil {
		ctx = context.Background()
	}

	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return "Assistant API key is missing. Set SECDASH_ASSISTANT_API_KEY or OPENROUTER_API_KEY."
	}
	return s.remoteAnswer(ctx, "Say 'OK' only.", "Context: test")
}

func (s *Service) remoteAnswer(ctx context.Context, question string, contextText string) string {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(contextText)),
			openai.UserMessage(question),
		},
		Temperature: openai.Float(s.cfg.Temperature),
		MaxTokens:   openai.Int(int64(s.cfg.MaxTokens)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return fmt.Sprintf("%s: HTTP %d | %s", remoteErrorPrefix, apiErr.StatusCode, apiErr.RawJSON())
		}
		return fmt.Sprintf("%s: %v", remoteErrorPrefix, err)
	}

	if len(completion.Choices) == 0 {
		return fmt.Sprintf("AI API returned no choices. Raw: %s", completion.RawJSON())
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "AI API returned an empty message."
	}
	return content
}

func systemPrompt(contextText string) string {
	prompt := analystPrompt
	if contextText != "" {
		prompt += "\nHere is a summary of the current incidents:\n" + contextText + "\n"
	}
	return prompt
}
