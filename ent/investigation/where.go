// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/transparencia-ai/veritas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldSessionID, v))
}

// QueryText applies equality check predicate on the "query_text" field. It's identical to QueryTextEQ.
func QueryText(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldQueryText, v))
}

// DataSource applies equality check predicate on the "data_source" field. It's identical to DataSourceEQ.
func DataSource(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDataSource, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCurrentPhase, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldProgress, v))
}

// SummaryText applies equality check predicate on the "summary_text" field. It's identical to SummaryTextEQ.
func SummaryText(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldSummaryText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldConfidence, v))
}

// RecordsAnalyzed applies equality check predicate on the "records_analyzed" field. It's identical to RecordsAnalyzedEQ.
func RecordsAnalyzed(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldRecordsAnalyzed, v))
}

// FindingsCount applies equality check predicate on the "findings_count" field. It's identical to FindingsCountEQ.
func FindingsCount(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldFindingsCount, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCorrelationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldSessionID, v))
}

// QueryTextEQ applies the EQ predicate on the "query_text" field.
func QueryTextEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldQueryText, v))
}

// QueryTextNEQ applies the NEQ predicate on the "query_text" field.
func QueryTextNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldQueryText, v))
}

// QueryTextIn applies the In predicate on the "query_text" field.
func QueryTextIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldQueryText, vs...))
}

// QueryTextNotIn applies the NotIn predicate on the "query_text" field.
func QueryTextNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldQueryText, vs...))
}

// QueryTextGT applies the GT predicate on the "query_text" field.
func QueryTextGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldQueryText, v))
}

// QueryTextGTE applies the GTE predicate on the "query_text" field.
func QueryTextGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldQueryText, v))
}

// QueryTextLT applies the LT predicate on the "query_text" field.
func QueryTextLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldQueryText, v))
}

// QueryTextLTE applies the LTE predicate on the "query_text" field.
func QueryTextLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldQueryText, v))
}

// QueryTextContains applies the Contains predicate on the "query_text" field.
func QueryTextContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldQueryText, v))
}

// QueryTextHasPrefix applies the HasPrefix predicate on the "query_text" field.
func QueryTextHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldQueryText, v))
}

// QueryTextHasSuffix applies the HasSuffix predicate on the "query_text" field.
func QueryTextHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldQueryText, v))
}

// QueryTextEqualFold applies the EqualFold predicate on the "query_text" field.
func QueryTextEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldQueryText, v))
}

// QueryTextContainsFold applies the ContainsFold predicate on the "query_text" field.
func QueryTextContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldQueryText, v))
}

// DataSourceEQ applies the EQ predicate on the "data_source" field.
func DataSourceEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDataSource, v))
}

// DataSourceNEQ applies the NEQ predicate on the "data_source" field.
func DataSourceNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDataSource, v))
}

// DataSourceIn applies the In predicate on the "data_source" field.
func DataSourceIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDataSource, vs...))
}

// DataSourceNotIn applies the NotIn predicate on the "data_source" field.
func DataSourceNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDataSource, vs...))
}

// DataSourceGT applies the GT predicate on the "data_source" field.
func DataSourceGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDataSource, v))
}

// DataSourceGTE applies the GTE predicate on the "data_source" field.
func DataSourceGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDataSource, v))
}

// DataSourceLT applies the LT predicate on the "data_source" field.
func DataSourceLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDataSource, v))
}

// DataSourceLTE applies the LTE predicate on the "data_source" field.
func DataSourceLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDataSource, v))
}

// DataSourceContains applies the Contains predicate on the "data_source" field.
func DataSourceContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldDataSource, v))
}

// DataSourceHasPrefix applies the HasPrefix predicate on the "data_source" field.
func DataSourceHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldDataSource, v))
}

// DataSourceHasSuffix applies the HasSuffix predicate on the "data_source" field.
func DataSourceHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldDataSource, v))
}

// DataSourceIsNil applies the IsNil predicate on the "data_source" field.
func DataSourceIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldDataSource))
}

// DataSourceNotNil applies the NotNil predicate on the "data_source" field.
func DataSourceNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldDataSource))
}

// DataSourceEqualFold applies the EqualFold predicate on the "data_source" field.
func DataSourceEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldDataSource, v))
}

// DataSourceContainsFold applies the ContainsFold predicate on the "data_source" field.
func DataSourceContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldDataSource, v))
}

// FiltersIsNil applies the IsNil predicate on the "filters" field.
func FiltersIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldFilters))
}

// FiltersNotNil applies the NotNil predicate on the "filters" field.
func FiltersNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldFilters))
}

// RequestedWorkerKindsIsNil applies the IsNil predicate on the "requested_worker_kinds" field.
func RequestedWorkerKindsIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldRequestedWorkerKinds))
}

// RequestedWorkerKindsNotNil applies the NotNil predicate on the "requested_worker_kinds" field.
func RequestedWorkerKindsNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldRequestedWorkerKinds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseIsNil applies the IsNil predicate on the "current_phase" field.
func CurrentPhaseIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCurrentPhase))
}

// CurrentPhaseNotNil applies the NotNil predicate on the "current_phase" field.
func CurrentPhaseNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCurrentPhase))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldProgress, v))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldFindings))
}

// SummaryTextEQ applies the EQ predicate on the "summary_text" field.
func SummaryTextEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldSummaryText, v))
}

// SummaryTextNEQ applies the NEQ predicate on the "summary_text" field.
func SummaryTextNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldSummaryText, v))
}

// SummaryTextIn applies the In predicate on the "summary_text" field.
func SummaryTextIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldSummaryText, vs...))
}

// SummaryTextNotIn applies the NotIn predicate on the "summary_text" field.
func SummaryTextNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldSummaryText, vs...))
}

// SummaryTextGT applies the GT predicate on the "summary_text" field.
func SummaryTextGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldSummaryText, v))
}

// SummaryTextGTE applies the GTE predicate on the "summary_text" field.
func SummaryTextGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldSummaryText, v))
}

// SummaryTextLT applies the LT predicate on the "summary_text" field.
func SummaryTextLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldSummaryText, v))
}

// SummaryTextLTE applies the LTE predicate on the "summary_text" field.
func SummaryTextLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldSummaryText, v))
}

// SummaryTextContains applies the Contains predicate on the "summary_text" field.
func SummaryTextContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldSummaryText, v))
}

// SummaryTextHasPrefix applies the HasPrefix predicate on the "summary_text" field.
func SummaryTextHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldSummaryText, v))
}

// SummaryTextHasSuffix applies the HasSuffix predicate on the "summary_text" field.
func SummaryTextHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldSummaryText, v))
}

// SummaryTextIsNil applies the IsNil predicate on the "summary_text" field.
func SummaryTextIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldSummaryText))
}

// SummaryTextNotNil applies the NotNil predicate on the "summary_text" field.
func SummaryTextNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldSummaryText))
}

// SummaryTextEqualFold applies the EqualFold predicate on the "summary_text" field.
func SummaryTextEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldSummaryText, v))
}

// SummaryTextContainsFold applies the ContainsFold predicate on the "summary_text" field.
func SummaryTextContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldSummaryText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldConfidence))
}

// RecordsAnalyzedEQ applies the EQ predicate on the "records_analyzed" field.
func RecordsAnalyzedEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldRecordsAnalyzed, v))
}

// RecordsAnalyzedNEQ applies the NEQ predicate on the "records_analyzed" field.
func RecordsAnalyzedNEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldRecordsAnalyzed, v))
}

// RecordsAnalyzedIn applies the In predicate on the "records_analyzed" field.
func RecordsAnalyzedIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldRecordsAnalyzed, vs...))
}

// RecordsAnalyzedNotIn applies the NotIn predicate on the "records_analyzed" field.
func RecordsAnalyzedNotIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldRecordsAnalyzed, vs...))
}

// RecordsAnalyzedGT applies the GT predicate on the "records_analyzed" field.
func RecordsAnalyzedGT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldRecordsAnalyzed, v))
}

// RecordsAnalyzedGTE applies the GTE predicate on the "records_analyzed" field.
func RecordsAnalyzedGTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldRecordsAnalyzed, v))
}

// RecordsAnalyzedLT applies the LT predicate on the "records_analyzed" field.
func RecordsAnalyzedLT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldRecordsAnalyzed, v))
}

// RecordsAnalyzedLTE applies the LTE predicate on the "records_analyzed" field.
func RecordsAnalyzedLTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldRecordsAnalyzed, v))
}

// FindingsCountEQ applies the EQ predicate on the "findings_count" field.
func FindingsCountEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldFindingsCount, v))
}

// FindingsCountNEQ applies the NEQ predicate on the "findings_count" field.
func FindingsCountNEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldFindingsCount, v))
}

// FindingsCountIn applies the In predicate on the "findings_count" field.
func FindingsCountIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldFindingsCount, vs...))
}

// FindingsCountNotIn applies the NotIn predicate on the "findings_count" field.
func FindingsCountNotIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldFindingsCount, vs...))
}

// FindingsCountGT applies the GT predicate on the "findings_count" field.
func FindingsCountGT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldFindingsCount, v))
}

// FindingsCountGTE applies the GTE predicate on the "findings_count" field.
func FindingsCountGTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldFindingsCount, v))
}

// FindingsCountLT applies the LT predicate on the "findings_count" field.
func FindingsCountLT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldFindingsCount, v))
}

// FindingsCountLTE applies the LTE predicate on the "findings_count" field.
func FindingsCountLTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldFindingsCount, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldCorrelationID, v))
}

// InvestigationMetadataIsNil applies the IsNil predicate on the "investigation_metadata" field.
func InvestigationMetadataIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldInvestigationMetadata))
}

// InvestigationMetadataNotNil applies the NotNil predicate on the "investigation_metadata" field.
func InvestigationMetadataNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldInvestigationMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldDeletedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.NotPredicates(p))
}
