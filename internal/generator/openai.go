package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travelgateway/internal/config"
	"travelgateway/internal/domain"
	"travelgateway/internal/domain/models"
	"travelgateway/internal/utils"

	"github.com/sashabaranov/go-openai"
)

const serviceName = "content generator"

// OpenAIGenerator implements ContentGenerator on top of the chat completions API.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	prompts config.Prompts
	timeout time.Duration
}

type OpenAIOptions struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Prompts config.Prompts
}

// NewOpenAIGenerator builds a generator. Without an API key the generator is
// still returned, but every call fails with an upstream error.
func NewOpenAIGenerator(opts OpenAIOptions) *OpenAIGenerator {
	g := &OpenAIGenerator{
		model:   opts.Model,
		prompts: opts.Prompts,
		timeout: opts.Timeout,
	}
	if g.model == "" {
		g.model = openai.GPT4oMini
	}
	if strings.TrimSpace(opts.APIKey) != "" {
		cfg := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
		}
		g.client = openai.NewClientWithConfig(cfg)
	}
	return g
}

func (g *OpenAIGenerator) DescribeCity(ctx context.Context, city string) (string, error) {
	content, err := g.complete(ctx, fmt.Sprintf(g.prompts.CityInfo, city), false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

func (g *OpenAIGenerator) ListActivities(ctx context.Context, city string) ([]string, error) {
	content, err := g.complete(ctx, fmt.Sprintf(g.prompts.Activities, city), true)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Activities []string `json:"activities"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err == nil && parsed.Activities != nil {
		out := make([]string, 0, len(parsed.Activities))
		for _, a := range parsed.Activities {
			if a = utils.NormalizeSpace(a); a != "" {
				out = append(out, a)
			}
		}
		return out, nil
	}
	return utils.SplitListLines(content), nil
}

func (g *OpenAIGenerator) GeneratePlan(ctx context.Context, req models.PlanRequest) (any, error) {
	prompt := fmt.Sprintf(g.prompts.TravelPlan,
		req.City, req.StartDate, req.EndDate, req.NumTravelers,
		strings.Join(req.SelectedActivities, ", "))

	content, err := g.complete(ctx, prompt, true)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var plan any
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		// not JSON; keep the text as the plan
		return content, nil
	}
	return plan, nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if g.client == nil {
		return "", domain.UpstreamError{Service: serviceName, Msg: "content generator is not configured"}
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: g.prompts.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   g.prompts.MaxTokens,
		Temperature: g.prompts.Temperature,
	}
	if jsonOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", domain.UpstreamError{Service: serviceName, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", domain.UpstreamError{Service: serviceName, Msg: "content generator returned no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
