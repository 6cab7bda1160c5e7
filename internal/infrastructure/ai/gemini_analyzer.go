package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vizinhanca-ativa/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultAnalyzerModel   = "gemini-2.0-flash"
	defaultAnalyzerTimeout = 15 * time.Second
	maxDescriptionLength   = 10000
)

// GeminiSafetyAnalyzer extracts safety concerns from a demand description
// using the Gemini API.
//
// Errors are returned to the caller; the demand engine decides how to degrade.
type GeminiSafetyAnalyzer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

var _ interfaces.ISafetyAnalyzer = (*GeminiSafetyAnalyzer)(nil)

func NewGeminiSafetyAnalyzer(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiSafetyAnalyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if model == "" {
		model = defaultAnalyzerModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiSafetyAnalyzer{
		client:  client,
		model:   model,
		timeout: defaultAnalyzerTimeout,
		log:     log,
	}, nil
}

func (a *GeminiSafetyAnalyzer) Analyze(ctx context.Context, description string) ([]string, error) {
	if a == nil || a.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Analise esta descrição de um problema de manutenção em um condomínio:

Descrição: "%s"

Identifique riscos de segurança relevantes para moradores ou prestadores
(ex: risco elétrico, estrutural, queda de altura, gás, incêndio, contaminação).

Retorne JSON com:
{
  "concerns": ["risco 1", "risco 2"]
}

Regras:
- concerns: frases curtas em português, max 5
- lista vazia quando não há risco relevante

Retorne APENAS o JSON.`, description)

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	resp, err := a.client.Models.GenerateContent(ctx, a.model, []*genai.Content{content}, nil)
	if err != nil {
		return nil, err
	}
	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty analyzer response")
	}
	jsonStr := extractJSON(text)

	var parsed struct {
		Concerns []string `json:"concerns"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("parse analyzer response: %w", err)
	}

	concerns := make([]string, 0, len(parsed.Concerns))
	for _, c := range parsed.Concerns {
		if c = strings.TrimSpace(c); c != "" {
			concerns = append(concerns, c)
		}
	}

	a.log.Debug("safety analysis completed", zap.Int("concerns", len(concerns)))
	return concerns, nil
}

// responseText concatenates the text parts of the first candidate. Non-text
// parts carry nothing for this prompt and must not pollute the payload.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// extractJSON strips markdown fences the model sometimes wraps around the
// payload.
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "{"); idx != -1 {
		s = s[idx:]
	}
	return strings.TrimSpace(s)
}
