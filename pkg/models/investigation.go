// Package models defines the request/response and domain types shared by
// the service, orchestration and API layers. Persistence entities live in
// ent/schema; these types are the transport-independent shapes.
package models

import "time"

// Query is an immutable user request entering the pipeline.
type Query struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IntentKind classifies what the user wants.
type IntentKind string

const (
	IntentInvestigate IntentKind = "investigate"
	IntentAnalyze     IntentKind = "analyze"
	IntentReport      IntentKind = "report"
	IntentExplain     IntentKind = "explain"
	IntentGreet       IntentKind = "greet"
	IntentHelp        IntentKind = "help"
	IntentAbout       IntentKind = "about"
)

// Intent is a classified query with a confidence score in [0,1].
// Confidence below 0.6 forces the help path.
type Intent struct {
	Kind       IntentKind `json:"kind"`
	Confidence float64    `json:"confidence"`
}

// EntityType enumerates the typed values extracted from query text.
type EntityType string

const (
	EntityYear         EntityType = "year"
	EntityState        EntityType = "state"
	EntityMunicipality EntityType = "municipality"
	EntityAgency       EntityType = "agency"
	EntityAmount       EntityType = "amount"
	EntityDateRange    EntityType = "date_range"
	EntityDataSource   EntityType = "data_source"
	EntityIdentifier   EntityType = "identifier"
)

// Entity is one extracted value. The same type may repeat (a multimap).
// Span records the [start,end) byte offsets in the query text when known.
type Entity struct {
	Type  EntityType `json:"type"`
	Value string     `json:"value"`
	Span  [2]int     `json:"span,omitempty"`
}

// Severity grades a finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Finding is one atomic analytical output produced by a worker.
type Finding struct {
	ID               string         `json:"id"`
	Kind             string         `json:"kind"`
	Severity         Severity       `json:"severity"`
	Confidence       float64        `json:"confidence"`
	Description      string         `json:"description"`
	Evidence         map[string]any `json:"evidence,omitempty"`
	ProducedByWorker string         `json:"produced_by_worker"`
	ProducedAt       time.Time      `json:"produced_at"`
	SourceRestricted bool           `json:"source_restricted,omitempty"`
}

// CreateInvestigationRequest is the service-layer input for a new
// investigation record.
type CreateInvestigationRequest struct {
	InvestigationID      string
	UserID               string
	SessionID            string
	QueryText            string
	DataSource           string
	Filters              map[string]any
	RequestedWorkerKinds []string
	CorrelationID        string
	Metadata             map[string]any
}

// InvestigationFilter narrows List queries.
type InvestigationFilter struct {
	UserID string
	Status string
	Limit  int
	Offset int
}

// InvestigationStats summarizes a user's investigation history.
type InvestigationStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	AvgConfidence float64        `json:"avg_confidence"`
	TotalFindings int            `json:"total_findings"`
}
