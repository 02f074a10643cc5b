package agent

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/protocol"
)

// visionSystemPrompt constrains the model to a machine-readable scene report.
const visionSystemPrompt = `You are the vision module of a wearable assistant for visually impaired users.
Describe what the camera sees and answer the wearer's question when one is given.
Respond with a single JSON object and nothing else, using these keys:
"answer" (direct reply to the wearer, one or two short sentences),
"summary" (one-line scene description),
"objects" (array of visible object names),
"ocr" (array of readable text fragments),
"risk_hints" (array of hazards worth flagging),
"actionable_summary" (one actionable sentence for the wearer),
"risk_level" ("P0" imminent danger, "P1" hazard, "P2" caution, "P3" routine),
"risk_score" (number 0.0-1.0),
"confidence" (number 0.0-1.0).`

// VisionConfig tunes the multimodal analyze call.
type VisionConfig struct {
	Model     string
	MaxTokens int
}

func (c VisionConfig) withDefaults() VisionConfig {
	if c.Model == "" {
		c.Model = "claude-sonnet-4-5"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1024
	}
	return c
}

// VisionReply is one answered image question.
type VisionReply struct {
	Text       string
	Confidence float64
	RiskLevel  string
	Structured map[string]any
}

// VisionAnalyzer produces structured scene reports on the Claude Messages
// API. The same instance serves the lifelog ingest workers (as a
// lifelog.Analyzer) and image_ready turns (via AnalyzePayload).
type VisionAnalyzer struct {
	msg    MessagesClient
	cfg    VisionConfig
	logger *slog.Logger
}

// NewVisionAnalyzer wires the analyzer over a Messages client.
func NewVisionAnalyzer(msg MessagesClient, cfg VisionConfig, logger *slog.Logger) *VisionAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &VisionAnalyzer{
		msg:    msg,
		cfg:    cfg.withDefaults(),
		logger: logger.With("component", "agent.vision"),
	}
}

// NewVisionAnalyzerFromAPIKey builds the analyzer on a real SDK client.
func NewVisionAnalyzerFromAPIKey(apiKey string, cfg VisionConfig, logger *slog.Logger) (*VisionAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewVisionAnalyzer(&client.Messages, cfg, logger), nil
}

// Analyze implements lifelog.Analyzer.
func (v *VisionAnalyzer) Analyze(ctx context.Context, req lifelog.AnalyzeRequest) (map[string]any, error) {
	if len(req.ImageBytes) == 0 {
		return nil, fmt.Errorf("image bytes are required")
	}
	encoded := base64.StdEncoding.EncodeToString(req.ImageBytes)
	return v.analyze(ctx, encoded, normalizeImageMIME(req.MIME), req.Question)
}

// AnalyzePayload answers an image_ready payload carrying image_base64 and an
// optional question. The spoken text prefers the direct answer, then the
// actionable summary, then the scene summary.
func (v *VisionAnalyzer) AnalyzePayload(ctx context.Context, payload map[string]any) (VisionReply, error) {
	encoded := protocol.PayloadString(payload, "image_base64", "imageBase64", "image")
	if encoded == "" {
		return VisionReply{}, fmt.Errorf("payload carries no image_base64")
	}
	mime := normalizeImageMIME(protocol.PayloadString(payload, "mime"))
	question := protocol.PayloadString(payload, "question", "prompt")

	report, err := v.analyze(ctx, encoded, mime, question)
	if err != nil {
		return VisionReply{}, err
	}
	return VisionReply{
		Text:       protocol.PayloadString(report, "answer", "actionable_summary", "summary"),
		Confidence: protocol.PayloadFloat(report, 0, "confidence"),
		RiskLevel:  protocol.PayloadString(report, "risk_level"),
		Structured: report,
	}, nil
}

func (v *VisionAnalyzer) analyze(ctx context.Context, imageB64, mime, question string) (map[string]any, error) {
	prompt := "Describe the scene."
	if q := strings.TrimSpace(question); q != "" {
		prompt = q
	}

	msg, err := v.msg.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(v.cfg.Model),
		MaxTokens: int64(v.cfg.MaxTokens),
		System:    []sdk.TextBlockParam{{Text: visionSystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(
				sdk.NewImageBlockBase64(mime, imageB64),
				sdk.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	raw := strings.TrimSpace(text.String())

	report := parseVisionReport(raw)
	if report == nil {
		// The model answered in prose; keep the text usable for both paths.
		v.logger.Debug("Vision reply was not valid JSON", "chars", len(raw))
		report = map[string]any{"answer": raw, "summary": raw}
	}
	return report, nil
}

// parseVisionReport extracts the JSON object from the model text, tolerating
// markdown fences and prose around it.
func parseVisionReport(text string) map[string]any {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	var report map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &report); err != nil {
		return nil
	}
	return report
}

// normalizeImageMIME clamps to the media types the Messages API accepts.
func normalizeImageMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/png":
		return "image/png"
	case "image/gif":
		return "image/gif"
	case "image/webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
