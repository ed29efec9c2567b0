package models

import "time"

// WorkerMessage is the envelope handed to a worker's Process call.
// CorrelationID propagates through every downstream call and log line.
type WorkerMessage struct {
	ID            string         `json:"id"`
	CorrelationID string         `json:"correlation_id"`
	Sender        string         `json:"sender"`
	Recipient     string         `json:"recipient"`
	Action        string         `json:"action"`
	Payload       map[string]any `json:"payload"`
	Deadline      time.Time      `json:"deadline,omitempty"`
	Priority      int            `json:"priority"` // 0..9, higher is more urgent
}

// ResponseStatus classifies a worker response.
type ResponseStatus string

const (
	ResponseOK       ResponseStatus = "ok"
	ResponseDegraded ResponseStatus = "degraded"
	ResponseFailed   ResponseStatus = "failed"
)

// WorkerResponse is the result envelope produced by a worker.
// QualityScore is in [0,1] and drives the reflection loop.
type WorkerResponse struct {
	CorrelationID string             `json:"correlation_id"`
	Status        ResponseStatus     `json:"status"`
	Findings      []Finding          `json:"findings,omitempty"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
	Summary       string             `json:"summary,omitempty"`
	Error         string             `json:"error,omitempty"`
	QualityScore  float64            `json:"quality_score"`
}

// Reflection is the output of a worker's Reflect call: a revised quality
// assessment and an optional hint merged into the next Process payload.
// GiveUp signals that further iterations cannot improve the response.
type Reflection struct {
	QualityScore    float64 `json:"quality_score"`
	ImprovementHint string  `json:"improvement_hint,omitempty"`
	GiveUp          bool    `json:"give_up,omitempty"`
}
