package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mazraa/config"
	"mazraa/internal/domain/entity"

	"github.com/pkg/errors"
)

const diagnosisPrompt = `أنت خبير في علم أمراض النباتات الزراعية. حلل الصورة المرفقة.
حدد أي أمراض موجودة.
يجب أن تكون إجابتك بصيغة JSON فقط بالمفاتيح التالية:
{"diseaseName": "...", "confidence": 0, "symptoms": ["..."], "recommendedTreatment": "...", "preventiveMeasures": "..."}
إذا كانت النبتة سليمة، فاستخدم 'نبتة سليمة' كـ diseaseName بثقة 100% وقدم نصائح رعاية عامة باللغة العربية.`

const advisorInstruction = `أنت خبير زراعي يمني متخصص. مهمتك هي الإجابة على أسئلة المزارعين حول الزراعة في اليمن، أمراض النباتات، أفضل الممارسات الزراعية، والمحاصيل اليمنية. كن ودودًا ومساعدًا. أجب باللغة العربية فقط.`

// generativeClient calls a Gemini-style generateContent endpoint.
type generativeClient struct {
	endpoint string
	apiKey   string
	model    string
	httpc    *http.Client
	logger   *slog.Logger
}

func newGenerativeClient(cfg *config.AIConfig, logger *slog.Logger) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}

	return &generativeClient{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpc:    &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Wire types for the generateContent request/response.
type genPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *genInlineData `json:"inline_data,omitempty"`
}

type genInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genRequest struct {
	Contents          []genContent `json:"contents"`
	SystemInstruction *genContent  `json:"system_instruction,omitempty"`
	GenerationConfig  *genConfig   `json:"generation_config,omitempty"`
}

type genConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// Diagnose sends the image with the diagnosis prompt and parses the
// JSON-only reply into a structured result.
func (c *generativeClient) Diagnose(ctx context.Context, imageBase64 string) (*entity.DiagnosisResult, error) {
	req := genRequest{
		Contents: []genContent{{
			Parts: []genPart{
				{InlineData: &genInlineData{MimeType: "image/jpeg", Data: imageBase64}},
				{Text: diagnosisPrompt},
			},
		}},
		GenerationConfig: &genConfig{ResponseMimeType: "application/json"},
	}

	raw, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		DiseaseName          string   `json:"diseaseName"`
		Confidence           float64  `json:"confidence"`
		Symptoms             []string `json:"symptoms"`
		RecommendedTreatment string   `json:"recommendedTreatment"`
		PreventiveMeasures   string   `json:"preventiveMeasures"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errors.Wrap(err, "parse diagnosis payload")
	}

	confidence := int(payload.Confidence)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	return &entity.DiagnosisResult{
		DiseaseName:          strings.TrimSpace(payload.DiseaseName),
		Confidence:           confidence,
		Symptoms:             payload.Symptoms,
		RecommendedTreatment: strings.TrimSpace(payload.RecommendedTreatment),
		PreventiveMeasures:   strings.TrimSpace(payload.PreventiveMeasures),
	}, nil
}

// Reply continues an advisor conversation.
func (c *generativeClient) Reply(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	contents := make([]genContent, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == "model" {
			role = "model"
		}
		contents = append(contents, genContent{Role: role, Parts: []genPart{{Text: turn.Text}}})
	}
	contents = append(contents, genContent{Role: "user", Parts: []genPart{{Text: message}}})

	req := genRequest{
		Contents:          contents,
		SystemInstruction: &genContent{Parts: []genPart{{Text: advisorInstruction}}},
	}

	return c.generate(ctx, req)
}

// generate performs one generateContent call and returns the first
// candidate's text.
func (c *generativeClient) generate(ctx context.Context, payload genRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "call generateContent")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("generateContent returned status %d", resp.StatusCode)
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode response")
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("blank candidate text")
	}

	return text, nil
}
