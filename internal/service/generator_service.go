package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/config"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/model"
	"google.golang.org/api/option"
)

// QuestionGeneratorService drafts quiz questions with Gemini. Drafts are
// returned to the admin for review; nothing is persisted here.
type QuestionGeneratorService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsDTO) ([]dto.QuestionCreateDTO, error)
}

type questionGeneratorService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuestionGeneratorService(cfg *config.Config) (QuestionGeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuestionGeneratorService will be non-functional.")
		return &questionGeneratorService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	generativeModel := client.GenerativeModel("gemini-1.5-flash")
	return &questionGeneratorService{client: generativeModel, cfg: cfg}, nil
}

// generatedQuestion mirrors the JSON schema the prompt asks the model for.
type generatedQuestion struct {
	Type           string   `json:"type"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options"`
	CorrectAnswers []string `json:"correct_answers"`
	Points         int      `json:"points"`
}

func (s *questionGeneratorService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsDTO) ([]dto.QuestionCreateDTO, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	count := req.Count
	if count == 0 {
		count = 5
	}
	questionType := req.Type
	if questionType == "" {
		questionType = model.QuestionTypeMultipleChoice
	}

	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are a quiz author for an assessment platform.\n")
	promptBuilder.WriteString(fmt.Sprintf("Write %d questions of type %q about the topic: %s.\n\n", count, questionType, req.Topic))
	promptBuilder.WriteString("Rules:\n")
	switch questionType {
	case model.QuestionTypeMultipleChoice:
		promptBuilder.WriteString("- Each question has exactly 4 options and one or two correct answers.\n")
		promptBuilder.WriteString("- Every correct answer must be copied verbatim from the options list.\n")
	case model.QuestionTypeTrueFalse:
		promptBuilder.WriteString("- correct_answers contains exactly one value, \"true\" or \"false\". Leave options empty.\n")
	case model.QuestionTypeShortAnswer:
		promptBuilder.WriteString("- correct_answers lists every accepted literal answer (1-3 words each). Leave options empty.\n")
	}
	promptBuilder.WriteString("- points is an integer between 5 and 20 reflecting difficulty.\n\n")
	promptBuilder.WriteString("Respond with a raw JSON array only, no prose and no markdown fences. Each element:\n")
	promptBuilder.WriteString(`{"type":"...","prompt":"...","options":["..."],"correct_answers":["..."],"points":10}`)

	resp, err := s.client.GenerateContent(ctx, genai.Text(promptBuilder.String()))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Gemini API error during question generation")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}

	drafts, err := parseGeneratedQuestions(fullResponseText)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", fullResponseText).Msg("Failed to parse generated questions")
		return nil, err
	}

	out := make([]dto.QuestionCreateDTO, 0, len(drafts))
	for i, draft := range drafts {
		if draft.Prompt == "" || len(draft.CorrectAnswers) == 0 {
			log.Warn().Int("index", i).Msg("Skipping generated question with missing prompt or answers")
			continue
		}
		points := draft.Points
		if points <= 0 {
			points = 10
		}
		out = append(out, dto.QuestionCreateDTO{
			Type:           questionType,
			Prompt:         draft.Prompt,
			Options:        draft.Options,
			CorrectAnswers: draft.CorrectAnswers,
			Points:         points,
			TimeLimit:      30,
			Position:       i + 1,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini produced no usable questions")
	}
	return out, nil
}

// parseGeneratedQuestions tolerates markdown fences around the JSON array,
// which the model emits despite instructions.
func parseGeneratedQuestions(raw string) ([]generatedQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var drafts []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return nil, fmt.Errorf("could not parse generated questions as JSON: %w", err)
	}
	return drafts, nil
}
