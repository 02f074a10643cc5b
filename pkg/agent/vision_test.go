package agent

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/lifelog"
)

func TestVisionAnalyzeParsesFencedReport(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{textMessage("```json\n" +
		`{"answer":"A red door is two steps ahead.","summary":"Hallway with a red door","objects":["door"],"risk_level":"P3","risk_score":0.1,"confidence":0.92}` +
		"\n```")}}
	analyzer := NewVisionAnalyzer(stub, VisionConfig{Model: "claude-test"}, nil)

	report, err := analyzer.Analyze(context.Background(), lifelog.AnalyzeRequest{
		SessionID:  "sess-1",
		ImageBytes: []byte("frame-bytes"),
		MIME:       "image/png",
		Question:   "what is ahead",
	})
	require.NoError(t, err)
	assert.Equal(t, "A red door is two steps ahead.", report["answer"])
	assert.Equal(t, "P3", report["risk_level"])
	assert.Equal(t, 0.92, report["confidence"])

	require.Len(t, stub.requests, 1)
	require.Len(t, stub.requests[0].System, 1)
	assert.Equal(t, visionSystemPrompt, stub.requests[0].System[0].Text)
	require.Len(t, stub.requests[0].Messages, 1)

	blocks := stub.requests[0].Messages[0].Content
	require.Len(t, blocks, 2)
	require.NotNil(t, blocks[0].OfImage)
	require.NotNil(t, blocks[1].OfText)
	assert.Equal(t, "what is ahead", blocks[1].OfText.Text)

	// The wire form carries the encoded frame and the declared media type.
	raw, err := json.Marshal(stub.requests[0].Messages[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), base64.StdEncoding.EncodeToString([]byte("frame-bytes")))
	assert.Contains(t, string(raw), "image/png")
}

func TestVisionAnalyzePayloadPrefersDirectAnswer(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{textMessage(
		`{"answer":"A crosswalk is ahead, signal is red.","actionable_summary":"Wait for the signal.","summary":"Street crossing","risk_level":"P2","confidence":0.9}`,
	)}}
	analyzer := NewVisionAnalyzer(stub, VisionConfig{Model: "claude-test"}, nil)

	reply, err := analyzer.AnalyzePayload(context.Background(), map[string]any{
		"image_base64": "ZnJhbWU=",
		"mime":         "image/webp",
		"question":     "can I cross",
	})
	require.NoError(t, err)
	assert.Equal(t, "A crosswalk is ahead, signal is red.", reply.Text)
	assert.Equal(t, 0.9, reply.Confidence)
	assert.Equal(t, "P2", reply.RiskLevel)
	assert.Equal(t, "Street crossing", reply.Structured["summary"])

	raw, err := json.Marshal(stub.requests[0].Messages[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "image/webp")
}

func TestVisionAnalyzePayloadFallsBackThroughSummaries(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		textMessage(`{"actionable_summary":"Turn left at the door.","summary":"Hallway","confidence":0.7}`),
		textMessage(`{"summary":"An empty corridor","confidence":0.6}`),
	}}
	analyzer := NewVisionAnalyzer(stub, VisionConfig{Model: "claude-test"}, nil)

	reply, err := analyzer.AnalyzePayload(context.Background(), map[string]any{"image_base64": "ZnJhbWU="})
	require.NoError(t, err)
	assert.Equal(t, "Turn left at the door.", reply.Text)

	reply, err = analyzer.AnalyzePayload(context.Background(), map[string]any{"image_base64": "ZnJhbWU="})
	require.NoError(t, err)
	assert.Equal(t, "An empty corridor", reply.Text)
}

func TestVisionProseReplyBecomesAnswer(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{textMessage("A quiet street with no traffic.")}}
	analyzer := NewVisionAnalyzer(stub, VisionConfig{Model: "claude-test"}, nil)

	reply, err := analyzer.AnalyzePayload(context.Background(), map[string]any{"image_base64": "ZnJhbWU="})
	require.NoError(t, err)
	assert.Equal(t, "A quiet street with no traffic.", reply.Text)
	assert.Zero(t, reply.Confidence)
	assert.Empty(t, reply.RiskLevel)
	assert.Equal(t, "A quiet street with no traffic.", reply.Structured["answer"])

	// Unknown media types are sent as jpeg.
	raw, err := json.Marshal(stub.requests[0].Messages[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "image/jpeg")
}

func TestVisionRejectsMissingImage(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{textMessage("unused")}}
	analyzer := NewVisionAnalyzer(stub, VisionConfig{Model: "claude-test"}, nil)

	_, err := analyzer.AnalyzePayload(context.Background(), map[string]any{"question": "what is this"})
	require.Error(t, err)

	_, err = analyzer.Analyze(context.Background(), lifelog.AnalyzeRequest{SessionID: "sess-1"})
	require.Error(t, err)

	assert.Empty(t, stub.requests)
}
