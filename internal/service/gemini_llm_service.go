package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/falconakhil/CompeteHub/internal/common"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const oracleTimeout = 30 * time.Second

// GeminiLLMService is the external scoring oracle: given a question, its
// reference answer and a submitted answer, it returns a 0-100 score and a
// short textual remark.
type GeminiLLMService interface {
	EvaluateAnswer(ctx context.Context, question, referenceAnswer, submittedAnswer string) (score int, remarks string, err error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. LLM evaluation will be unavailable.")
		return &geminiLLMService{client: nil}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{client: client.GenerativeModel("gemini-2.0-flash")}, nil
}

// EvaluateAnswer calls the model once with a bounded deadline. Any API
// failure or timeout surfaces as ErrOracleUnavailable so the caller can abort
// the submission without side effects.
func (s *geminiLLMService) EvaluateAnswer(ctx context.Context, question, referenceAnswer, submittedAnswer string) (int, string, error) {
	if s.client == nil {
		return 0, "", fmt.Errorf("%w: gemini client not initialized", common.ErrOracleUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	var prompt strings.Builder
	prompt.WriteString("You are an evaluation assistant. You'll be evaluating a submitted answer against the correct answer for a question.\n")
	prompt.WriteString("Understand the question and the meaning of the correct answer. Do not use or expect information that is not present in the question or the correct answer.\n\n")
	prompt.WriteString("Evaluate the submitted answer based on its correctness and relevance with respect to the correct answer.\n")
	prompt.WriteString("Assign a score between 0 and 100, where 0 means the answer is completely wrong and 100 means the answer is completely correct. The score must be a whole number.\n")
	prompt.WriteString("Write remarks as a paragraph of 20-100 words describing the quality of the submitted answer, missing information and well presented information.\n\n")
	prompt.WriteString("Format your response strictly as:\nScore: [whole number 0-100]\nRemarks: [your remarks]\n\n")
	prompt.WriteString("Question:\n" + question + "\n\n")
	prompt.WriteString("Correct Answer:\n" + referenceAnswer + "\n\n")
	prompt.WriteString("Submitted Answer:\n" + submittedAnswer + "\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during evaluation")
		return 0, "", fmt.Errorf("%w: %v", common.ErrOracleUnavailable, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, "", fmt.Errorf("%w: gemini returned no content", common.ErrOracleUnavailable)
	}

	fullText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullText += string(txt)
		}
	}

	score, remarks, err := parseScoreAndRemarks(fullText)
	if err != nil {
		log.Warn().Err(err).Str("raw_response", fullText).Msg("Failed to parse Gemini response")
		return 0, "", fmt.Errorf("%w: unparseable oracle response", common.ErrOracleUnavailable)
	}
	return score, remarks, nil
}

func parseScoreAndRemarks(raw string) (int, string, error) {
	const scorePrefix = "Score:"
	const remarksPrefix = "Remarks:"

	scoreIdx := strings.Index(raw, scorePrefix)
	if scoreIdx == -1 {
		return 0, "", fmt.Errorf("response does not contain %q prefix", scorePrefix)
	}

	scoreStr := raw[scoreIdx+len(scorePrefix):]
	if nl := strings.Index(scoreStr, "\n"); nl != -1 {
		scoreStr = scoreStr[:nl]
	}
	fields := strings.Fields(scoreStr)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("no score value after %q", scorePrefix)
	}

	score, err := strconv.Atoi(strings.TrimSuffix(fields[0], "."))
	if err != nil {
		return 0, "", fmt.Errorf("could not parse score value %q: %w", fields[0], err)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	remarks := ""
	if remarksIdx := strings.Index(raw, remarksPrefix); remarksIdx != -1 {
		remarks = strings.TrimSpace(raw[remarksIdx+len(remarksPrefix):])
	}
	return score, remarks, nil
}
