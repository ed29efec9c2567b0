// Package events implements the streaming event backbone: transactional
// publishing through Postgres (events row + pg_notify in one commit), a
// LISTEN-based intake, and an in-process subscription manager with
// catch-up replay for reconnecting clients.
package events

import "fmt"

// NotifyChannel is the single Postgres NOTIFY channel all envelopes ride
// on. Logical per-investigation channels are multiplexed inside the
// envelope, which keeps LISTEN management static.
const NotifyChannel = "veritas_events"

// Postgres caps NOTIFY payloads at 8000 bytes. Envelopes above this
// threshold drop their inline payload; subscribers dereference the row.
const maxNotifyBytes = 7500

// Event types carried in payloads.
const (
	TypeInvestigationCreated   = "investigation.created"
	TypeInvestigationProgress  = "investigation.progress"
	TypeStepStarted            = "step.started"
	TypeStepCompleted          = "step.completed"
	TypeStepFailed             = "step.failed"
	TypeInvestigationCompleted = "investigation.completed"
	TypeInvestigationFailed    = "investigation.failed"
	TypeInvestigationCancelled = "investigation.cancelled"
)

// ChannelFor returns the logical channel carrying one investigation's
// events.
func ChannelFor(investigationID string) string {
	return fmt.Sprintf("investigation:%s", investigationID)
}

// Envelope is the JSON shape sent through pg_notify. When Truncated is
// set the payload was too large for NOTIFY and must be loaded from the
// events row identified by DBEventID.
type Envelope struct {
	DBEventID       int            `json:"db_event_id"`
	Channel         string         `json:"channel"`
	InvestigationID string         `json:"investigation_id"`
	Type            string         `json:"type"`
	Payload         map[string]any `json:"payload,omitempty"`
	Truncated       bool           `json:"truncated,omitempty"`
}

// StreamEvent is the unit delivered to subscribers. ID is the database
// event id and doubles as the resume cursor for catch-up.
type StreamEvent struct {
	ID      int            `json:"id"`
	Channel string         `json:"channel"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}
