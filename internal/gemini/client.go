// Package gemini implements integration with Google's Gemini AI API. It
// generates fresh riddles that the refresh task merges into the riddle bank.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/chatops-ua/workcop/internal/config"
	"github.com/chatops-ua/workcop/internal/content"
)

// Client generates riddle content. Implementations must be safe for use
// from scheduled tasks.
type Client interface {
	GenerateRiddles(ctx context.Context, level, count int) ([]content.Riddle, error)
}

type sdkClient struct {
	genaiClient      *genai.Client
	log              *slog.Logger
	contentConfig    *genai.GenerateContentConfig
	defaultModelName string
	maxRetries       int
	retryDelay       time.Duration
}

// NewClient creates a new Gemini AI client with the provided configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	baseCfg := &genai.GenerateContentConfig{
		Temperature: &cfg.Temperature,

		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized successfully", "model", cfg.ModelName)
	return &sdkClient{
		genaiClient:      gi,
		log:              logger,
		contentConfig:    baseCfg,
		defaultModelName: cfg.ModelName,
		maxRetries:       cfg.MaxRetries,
		retryDelay:       time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil
}

var riddleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question": {Type: genai.TypeString, Description: "The riddle question, in Ukrainian."},
		"answers":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Accepted answers, each a short word or number, lowercase."},
	},
	Required: []string{"question", "answers"},
}

var riddleListSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "A list of trivia riddles of the requested difficulty.",
	Items:       riddleSchema,
}

// GenerateRiddles asks the model for count riddles of the given difficulty
// level using JSON schema mode.
func (c *sdkClient) GenerateRiddles(ctx context.Context, level, count int) ([]content.Riddle, error) {
	c.log.DebugContext(ctx, "Generating riddles", "level", level, "count", count)

	prompt := fmt.Sprintf(RiddleGeneratorInstruction, count, level, content.LevelName(level))
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	copyCfg := *c.contentConfig
	copyCfg.ResponseMIMEType = "application/json"
	copyCfg.ResponseSchema = riddleListSchema

	resp, err := c.generateContentWithRetries(ctx, c.defaultModelName, contents, &copyCfg)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini riddle generation API call failed", "error", err)
		return nil, fmt.Errorf("failed to generate riddles: %w", err)
	}

	jsonText, err := c.extractTextFromResponse(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to extract riddles response: %w", err)
	}

	type generatedRiddle struct {
		Question string   `json:"question"`
		Answers  []string `json:"answers"`
	}

	var raw []generatedRiddle
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse riddles JSON array from Gemini response", "error", err, "response_text", jsonText)
		return nil, fmt.Errorf("invalid riddles JSON array received: %w", err)
	}

	riddles := make([]content.Riddle, 0, len(raw))
	for _, r := range raw {
		question := strings.TrimSpace(r.Question)
		answers := make([]string, 0, len(r.Answers))
		for _, a := range r.Answers {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" {
				answers = append(answers, a)
			}
		}
		if question == "" || len(answers) == 0 {
			c.log.WarnContext(ctx, "Skipping malformed generated riddle", "question", r.Question)
			continue
		}
		riddles = append(riddles, content.Riddle{Question: question, Answers: answers})
	}

	c.log.DebugContext(ctx, "Successfully parsed generated riddles", "received", len(raw), "usable", len(riddles))
	return riddles, nil
}

func (c *sdkClient) generateContentWithRetries(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error

	for i := 0; i <= c.maxRetries; i++ {
		resp, err = c.genaiClient.Models.GenerateContent(ctx, modelName, contents, cfg)
		if err == nil {
			return resp, nil
		}

		c.log.WarnContext(ctx, "Gemini API call failed, checking for retry", "attempt", i+1, "max_retries", c.maxRetries, "error", err)

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == 500 || apiErr.Code == 503) {
			if i < c.maxRetries {
				c.log.InfoContext(ctx, "Retrying Gemini API call due to retriable APIError", "delay", c.retryDelay, "code", apiErr.Code)
				time.Sleep(c.retryDelay)
				continue
			}
			c.log.ErrorContext(ctx, "Gemini API call failed after max retries with APIError", "error", err, "code", apiErr.Code)
			return nil, fmt.Errorf("gemini API call failed after %d retries (APIError code %d): %w", c.maxRetries, apiErr.Code, err)
		}

		c.log.ErrorContext(ctx, "Gemini API call failed with non-retriable error", "error", err)
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	return nil, err
}

func (c *sdkClient) extractTextFromResponse(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		reasonMsg := fmt.Sprintf("%v", resp.PromptFeedback.BlockReason)
		if resp.PromptFeedback.BlockReasonMessage != "" {
			reasonMsg = resp.PromptFeedback.BlockReasonMessage
		}
		c.log.ErrorContext(ctx, "Gemini request blocked", "reason", reasonMsg)
		return "", fmt.Errorf("request blocked by safety filter: %s", reasonMsg)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		finishReason := "unknown"
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != genai.FinishReasonUnspecified {
			finishReason = fmt.Sprintf("%v", resp.Candidates[0].FinishReason)
		}
		c.log.WarnContext(ctx, "Gemini response missing candidates or content", "finish_reason", finishReason)
		return "", fmt.Errorf("gemini returned no content, finish reason: %s", finishReason)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}
