package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"google.golang.org/genai"

	"vocabcoach/internal/config"
	"vocabcoach/internal/grading"
	"vocabcoach/internal/platform/logger"
)

// Grader implements the grading.Grader interface using Google's Gemini API
// to grade a user's sentence against a target vocabulary word.
type Grader struct {
	logger         *slog.Logger
	promptTemplate *template.Template
	client         *genai.Client
	model          string
}

// Ensure Grader implements the grading boundary at compile time.
var _ grading.Grader = (*Grader)(nil)

// NewGrader creates a Gemini-backed grader from the LLM configuration.
// The prompt template defaults to the built-in grading prompt and can be
// overridden through cfg.PromptTemplatePath.
//
// Returns grading.ErrInvalidConfig when the API key or model name is missing
// or the template cannot be loaded.
func NewGrader(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*Grader, error) {
	if log == nil {
		log = slog.Default()
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", grading.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", grading.ErrInvalidConfig)
	}

	templateText := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		content, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				grading.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateText = string(content)
	}

	promptTemplate, err := template.New("grade_sentence").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			grading.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			grading.ErrInvalidConfig, err)
	}

	return &Grader{
		logger:         log.With(slog.String("component", "gemini_grader")),
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// GradeSentence implements grading.Grader.
//
// It builds the grading prompt, makes exactly one GenerateContent call and
// normalizes the JSON response. Failures are returned to the caller without
// retrying; a failed submission requires an explicit user resubmission.
func (g *Grader) GradeSentence(
	ctx context.Context,
	req grading.GradeRequest,
) (*grading.GradeResult, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	prompt, err := g.buildPrompt(req)
	if err != nil {
		return nil, err
	}

	log.Debug("calling Gemini API",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		log.Error("Gemini API call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", grading.ErrGatewayFailure, err)
	}

	text, err := extractText(resp)
	if err != nil {
		log.Warn("unusable Gemini response", slog.String("error", err.Error()))
		return nil, err
	}

	result, err := parseResult(text)
	if err != nil {
		log.Warn("failed to parse Gemini response",
			slog.String("error", err.Error()),
			slog.Int("response_length", len(text)))
		return nil, err
	}

	log.Debug("Gemini grading succeeded",
		slog.String("verdict", string(result.Verdict)))
	return result, nil
}

// buildPrompt executes the prompt template against the request.
func (g *Grader) buildPrompt(req grading.GradeRequest) (string, error) {
	if strings.TrimSpace(req.Word) == "" || strings.TrimSpace(req.UserSentence) == "" {
		return "", grading.ErrEmptyInput
	}

	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{
		Word:              req.Word,
		DefinitionContext: req.DefinitionContext,
		UserSentence:      req.UserSentence,
	}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// extractText pulls the concatenated text parts out of the API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", grading.ErrMalformedResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", grading.ErrGatewayFailure)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", grading.ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	return sb.String(), nil
}

// parseResult decodes the model's JSON payload into a GradeResult and checks
// that every required field is present.
func parseResult(text string) (*grading.GradeResult, error) {
	var schema responseSchema
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v",
			grading.ErrMalformedResponse, err)
	}

	if schema.CorrectedSentence == "" {
		return nil, fmt.Errorf("%w: missing corrected_sentence", grading.ErrMalformedResponse)
	}
	if schema.BetterVersion == "" {
		return nil, fmt.Errorf("%w: missing better_version", grading.ErrMalformedResponse)
	}
	if schema.Feedback == "" {
		return nil, fmt.Errorf("%w: missing feedback", grading.ErrMalformedResponse)
	}
	if schema.Verdict == "" {
		return nil, fmt.Errorf("%w: missing verdict", grading.ErrMalformedResponse)
	}

	return &grading.GradeResult{
		CorrectedSentence: schema.CorrectedSentence,
		BetterVersion:     schema.BetterVersion,
		Feedback:          schema.Feedback,
		Verdict:           grading.Verdict(schema.Verdict),
	}, nil
}

// stripCodeFences removes a surrounding markdown code fence, which the model
// occasionally emits despite the JSON response MIME type.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
