// File: ridelink/services/estimation/gemini.go
package estimation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ridelink/models"
)

const estimatePromptTemplate = `You are an expert in estimating ride durations. Consider the following information to estimate the ride duration in minutes:

Origin: %s
Destination: %s
Traffic Conditions: %s
Time of Travel: %s

Respond with a JSON object containing "estimatedDurationMinutes" (a number) and "explanation" (a string describing how you arrived at the estimate).`

// GeminiEstimator asks a Gemini model for route duration estimates.
type GeminiEstimator struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiEstimator builds an estimator against the given model name.
func NewGeminiEstimator(apiKey, modelName string, timeout time.Duration) (*GeminiEstimator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	return &GeminiEstimator{model: model, timeout: timeout}, nil
}

// Estimate sends the route to the model and validates its structured answer.
// Requests are bounded by the configured timeout; there is no retry or caching.
func (g *GeminiEstimator) Estimate(ctx context.Context, req models.EstimateRequest) (*models.RouteEstimate, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	traffic := req.TrafficConditions
	if traffic == "" {
		traffic = "Normal"
	}
	prompt := fmt.Sprintf(estimatePromptTemplate, req.Origin, req.Destination, traffic, req.TimeOfTravel)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, NewEstimationError(fmt.Sprintf("gemini generate error: %v", err))
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}

	return parseEstimate(sb.String())
}

func validateRequest(req models.EstimateRequest) error {
	if strings.TrimSpace(req.Origin) == "" {
		return NewEstimationError("origin is required")
	}
	if strings.TrimSpace(req.Destination) == "" {
		return NewEstimationError("destination is required")
	}
	if !isClockTime(req.TimeOfTravel) {
		return NewEstimationError("timeOfTravel must be in HH:MM format")
	}
	return nil
}

// isClockTime reports whether s looks like "HH:MM" on a 24-hour clock.
func isClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// parseEstimate decodes the model output and rejects anything that does not
// match the expected shape. Model output is untrusted input.
func parseEstimate(raw string) (*models.RouteEstimate, error) {
	cleaned := strings.TrimSpace(raw)
	// Some models wrap JSON in markdown fences despite the MIME type hint.
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil, NewEstimationError("empty response from model")
	}

	// Pointers distinguish an absent field from a zero value.
	var payload struct {
		EstimatedDurationMinutes *float64 `json:"estimatedDurationMinutes"`
		Explanation              *string  `json:"explanation"`
	}
	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, NewEstimationError(fmt.Sprintf("malformed estimation payload: %v", err))
	}

	if payload.EstimatedDurationMinutes == nil {
		return nil, NewEstimationError("estimatedDurationMinutes is missing")
	}
	if *payload.EstimatedDurationMinutes < 0 {
		return nil, NewEstimationError("estimated duration must be non-negative")
	}
	if payload.Explanation == nil || strings.TrimSpace(*payload.Explanation) == "" {
		return nil, NewEstimationError("estimation explanation is empty")
	}
	return &models.RouteEstimate{
		EstimatedDurationMinutes: *payload.EstimatedDurationMinutes,
		Explanation:              *payload.Explanation,
	}, nil
}
