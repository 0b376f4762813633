package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wealthai/internal/logging"
)

// GeminiClient implements AIClient against the Google Gemini API. The
// underlying client is created lazily on first use so that constructing the
// advisor never performs network work.
type GeminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  logging.Logger

	client *genai.Client
	gen    *genai.GenerativeModel
}

// NewGeminiClient builds a Gemini-backed AIClient. apiKey must be non-empty;
// callers decide what to do when no credential is available.
func NewGeminiClient(apiKey, model string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// ensureClient initializes the genai client on first use.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	c.gen = client.GenerativeModel(c.model)
	return nil
}

// GenerateAdvice sends the summary to Gemini and returns the advice text.
func (c *GeminiClient) GenerateAdvice(ctx context.Context, summary Summary) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := buildPrompt(summary)

	c.logger.Debug("Requesting advice from Gemini",
		logging.Field{Key: "model", Value: c.model})

	resp, err := c.gen.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// buildPrompt renders the summary into the advisory instruction.
func buildPrompt(summary Summary) string {
	tops := make([]string, 0, len(summary.TopCategories))
	for _, top := range summary.TopCategories {
		tops = append(tops, fmt.Sprintf("%s (%s)", top.Name, top.Amount.String()))
	}

	return fmt.Sprintf(`As a senior financial advisor, analyze the following user's finances and give 3 concrete suggestions:
Total balance: %s
Total income this period: %s
Total expense this period: %s
Highest-volume categories: %s

Reply with clearly itemized advice.`,
		summary.TotalBalance.String(),
		summary.Income.String(),
		summary.Expense.String(),
		strings.Join(tops, ", "))
}
