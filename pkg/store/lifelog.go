package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opencane/edged/ent"
	"github.com/opencane/edged/ent/lifelogcontext"
	"github.com/opencane/edged/ent/lifelogevent"
	"github.com/opencane/edged/ent/lifelogimage"
)

// Event is one append-only lifelog timeline row.
type Event struct {
	ID         string         `json:"event_id"`
	SessionID  string         `json:"session_id"`
	DeviceID   string         `json:"device_id,omitempty"`
	EventType  string         `json:"event_type"`
	Payload    map[string]any `json:"payload,omitempty"`
	Text       string         `json:"text,omitempty"`
	RiskLevel  string         `json:"risk_level,omitempty"`
	Confidence float64        `json:"confidence"`
	TSMS       int64          `json:"ts_ms"`
}

// Image is one ingested capture row.
type Image struct {
	ID          string `json:"image_id"`
	SessionID   string `json:"session_id"`
	DeviceID    string `json:"device_id,omitempty"`
	ImageURI    string `json:"image_uri"`
	DHash       string `json:"dhash"`
	IsDedup     bool   `json:"is_dedup"`
	ContentType string `json:"content_type"`
	SizeBytes   int    `json:"size_bytes"`
	TSMS        int64  `json:"ts_ms"`
}

// ContextRow is the structured analyzer output joined to its image.
type ContextRow struct {
	ID                string   `json:"context_id"`
	ImageID           string   `json:"image_id"`
	SessionID         string   `json:"session_id"`
	SemanticTitle     string   `json:"semantic_title,omitempty"`
	SemanticSummary   string   `json:"semantic_summary,omitempty"`
	Objects           []string `json:"objects,omitempty"`
	OCR               []string `json:"ocr,omitempty"`
	RiskHints         []string `json:"risk_hints,omitempty"`
	ActionableSummary string   `json:"actionable_summary,omitempty"`
	RiskLevel         string   `json:"risk_level"`
	RiskScore         float64  `json:"risk_score"`
	Confidence        float64  `json:"confidence"`
	CreatedAtMS       int64    `json:"created_at_ms"`
}

// AppendEvent stores one lifelog event and returns its id.
func (s *Store) AppendEvent(ctx context.Context, ev Event) (string, error) {
	if ev.SessionID == "" {
		return "", NewValidationError("session_id", "required")
	}
	if ev.EventType == "" {
		return "", NewValidationError("event_type", "required")
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.TSMS == 0 {
		ev.TSMS = nowMS()
	}
	if ev.Confidence == 0 {
		ev.Confidence = 1.0
	}

	builder := s.client.LifelogEvent.Create().
		SetID(ev.ID).
		SetSessionID(ev.SessionID).
		SetDeviceID(ev.DeviceID).
		SetEventType(ev.EventType).
		SetText(ev.Text).
		SetRiskLevel(ev.RiskLevel).
		SetConfidence(ev.Confidence).
		SetTsMs(ev.TSMS).
		SetCreatedAtMs(nowMS())
	if ev.Payload != nil {
		builder.SetPayload(ev.Payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to append lifelog event: %w", err)
	}
	return ev.ID, nil
}

// SaveImage stores one capture row and returns its id.
func (s *Store) SaveImage(ctx context.Context, img Image) (string, error) {
	if img.SessionID == "" {
		return "", NewValidationError("session_id", "required")
	}
	if img.DHash == "" {
		return "", NewValidationError("dhash", "required")
	}
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	if img.TSMS == 0 {
		img.TSMS = nowMS()
	}
	if img.ContentType == "" {
		img.ContentType = "image/jpeg"
	}

	_, err := s.client.LifelogImage.Create().
		SetID(img.ID).
		SetSessionID(img.SessionID).
		SetDeviceID(img.DeviceID).
		SetImageURI(img.ImageURI).
		SetDhash(img.DHash).
		SetIsDedup(img.IsDedup).
		SetContentType(img.ContentType).
		SetSizeBytes(img.SizeBytes).
		SetTsMs(img.TSMS).
		SetCreatedAtMs(nowMS()).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save lifelog image: %w", err)
	}
	return img.ID, nil
}

// MarkImageURIDeleted blanks the asset URI after garbage collection so
// readers know the bytes are gone while the row remains.
func (s *Store) MarkImageURIDeleted(ctx context.Context, imageURI string) (int, error) {
	n, err := s.client.LifelogImage.Update().
		Where(lifelogimage.ImageURIEQ(imageURI)).
		SetImageURI("").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark image uri deleted: %w", err)
	}
	return n, nil
}

// RecentImageHashes returns multi-hash keys of recent captures for one
// session, newest first. Feeds the dedup gate.
func (s *Store) RecentImageHashes(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.LifelogImage.Query().
		Where(lifelogimage.SessionIDEQ(sessionID)).
		Order(lifelogimage.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent image hashes: %w", err)
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Dhash)
	}
	return out, nil
}

// SaveContext stores the analyzer output for one image.
func (s *Store) SaveContext(ctx context.Context, cr ContextRow) (string, error) {
	if cr.ImageID == "" {
		return "", NewValidationError("image_id", "required")
	}
	if cr.SessionID == "" {
		return "", NewValidationError("session_id", "required")
	}
	if cr.ID == "" {
		cr.ID = uuid.New().String()
	}
	if cr.RiskLevel == "" {
		cr.RiskLevel = "P3"
	}
	if cr.Confidence == 0 {
		cr.Confidence = 1.0
	}

	builder := s.client.LifelogContext.Create().
		SetID(cr.ID).
		SetImageID(cr.ImageID).
		SetSessionID(cr.SessionID).
		SetSemanticTitle(cr.SemanticTitle).
		SetSemanticSummary(cr.SemanticSummary).
		SetActionableSummary(cr.ActionableSummary).
		SetRiskLevel(cr.RiskLevel).
		SetRiskScore(cr.RiskScore).
		SetConfidence(cr.Confidence).
		SetCreatedAtMs(nowMS())
	if cr.Objects != nil {
		builder.SetObjects(cr.Objects)
	}
	if cr.OCR != nil {
		builder.SetOcr(cr.OCR)
	}
	if cr.RiskHints != nil {
		builder.SetRiskHints(cr.RiskHints)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save lifelog context: %w", err)
	}
	return cr.ID, nil
}

// GetContextByImage returns the context row for one image.
func (s *Store) GetContextByImage(ctx context.Context, imageID string) (ContextRow, error) {
	row, err := s.client.LifelogContext.Query().
		Where(lifelogcontext.ImageIDEQ(imageID)).
		Only(ctx)
	if err != nil {
		if isEntNotFound(err) {
			return ContextRow{}, ErrNotFound
		}
		return ContextRow{}, fmt.Errorf("failed to get context: %w", err)
	}
	return contextFromRow(row), nil
}

// RecentContexts returns analyzer contexts for one session, newest first.
func (s *Store) RecentContexts(ctx context.Context, sessionID string, limit int) ([]ContextRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.client.LifelogContext.Query().
		Where(lifelogcontext.SessionIDEQ(sessionID)).
		Order(lifelogcontext.ByCreatedAtMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query contexts: %w", err)
	}
	out := make([]ContextRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, contextFromRow(row))
	}
	return out, nil
}

// Timeline returns lifelog events for one session in a time window, newest
// first. eventTypes filters when non-empty.
func (s *Store) Timeline(ctx context.Context, sessionID string, fromMS, toMS int64, eventTypes []string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 200
	}
	q := s.client.LifelogEvent.Query().
		Where(lifelogevent.SessionIDEQ(sessionID))
	if fromMS > 0 {
		q = q.Where(lifelogevent.TsMsGTE(fromMS))
	}
	if toMS > 0 {
		q = q.Where(lifelogevent.TsMsLTE(toMS))
	}
	if len(eventTypes) > 0 {
		q = q.Where(lifelogevent.EventTypeIn(eventTypes...))
	}
	rows, err := q.
		Order(lifelogevent.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}
	out := make([]Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

// SafetyQuery returns events at or above a risk level, newest first.
// Risk bands order P0 highest; P0 alone matches only P0.
func (s *Store) SafetyQuery(ctx context.Context, sessionID, maxRiskLevel string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	levels := riskLevelsUpTo(maxRiskLevel)
	q := s.client.LifelogEvent.Query().
		Where(lifelogevent.RiskLevelIn(levels...))
	if sessionID != "" {
		q = q.Where(lifelogevent.SessionIDEQ(sessionID))
	}
	rows, err := q.
		Order(lifelogevent.ByTsMs(orderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query safety events: %w", err)
	}
	out := make([]Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

// SafetyStats returns a risk_level -> count breakdown.
func (s *Store) SafetyStats(ctx context.Context, sessionID string) (map[string]int, error) {
	q := s.client.LifelogEvent.Query().
		Where(lifelogevent.RiskLevelNEQ(""))
	if sessionID != "" {
		q = q.Where(lifelogevent.SessionIDEQ(sessionID))
	}
	var rows []struct {
		RiskLevel string `json:"risk_level"`
		Count     int    `json:"count"`
	}
	err := q.
		GroupBy(lifelogevent.FieldRiskLevel).
		Aggregate(entCount()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate safety stats: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.RiskLevel] = row.Count
	}
	return out, nil
}

func riskLevelsUpTo(max string) []string {
	switch max {
	case "P0":
		return []string{"P0"}
	case "P1":
		return []string{"P0", "P1"}
	case "P2":
		return []string{"P0", "P1", "P2"}
	default:
		return []string{"P0", "P1", "P2", "P3"}
	}
}

func eventFromRow(row *ent.LifelogEvent) Event {
	return Event{
		ID:         row.ID,
		SessionID:  row.SessionID,
		DeviceID:   row.DeviceID,
		EventType:  row.EventType,
		Payload:    row.Payload,
		Text:       row.Text,
		RiskLevel:  row.RiskLevel,
		Confidence: row.Confidence,
		TSMS:       row.TsMs,
	}
}

func contextFromRow(row *ent.LifelogContext) ContextRow {
	return ContextRow{
		ID:                row.ID,
		ImageID:           row.ImageID,
		SessionID:         row.SessionID,
		SemanticTitle:     row.SemanticTitle,
		SemanticSummary:   row.SemanticSummary,
		Objects:           row.Objects,
		OCR:               row.Ocr,
		RiskHints:         row.RiskHints,
		ActionableSummary: row.ActionableSummary,
		RiskLevel:         row.RiskLevel,
		RiskScore:         row.RiskScore,
		Confidence:        row.Confidence,
		CreatedAtMS:       row.CreatedAtMs,
	}
}
