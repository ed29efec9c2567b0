// Code generated by ent, DO NOT EDIT.

package cacheentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/transparencia-ai/veritas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldID, id))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldValue, v))
}

// TTLClass applies equality check predicate on the "ttl_class" field. It's identical to TTLClassEQ.
func TTLClass(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldTTLClass, v))
}

// OriginAPI applies equality check predicate on the "origin_api" field. It's identical to OriginAPIEQ.
func OriginAPI(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldOriginAPI, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldSizeBytes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldExpiresAt, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...[]byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...[]byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v []byte) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldValue, v))
}

// TTLClassEQ applies the EQ predicate on the "ttl_class" field.
func TTLClassEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldTTLClass, v))
}

// TTLClassNEQ applies the NEQ predicate on the "ttl_class" field.
func TTLClassNEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldTTLClass, v))
}

// TTLClassIn applies the In predicate on the "ttl_class" field.
func TTLClassIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldTTLClass, vs...))
}

// TTLClassNotIn applies the NotIn predicate on the "ttl_class" field.
func TTLClassNotIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldTTLClass, vs...))
}

// TTLClassGT applies the GT predicate on the "ttl_class" field.
func TTLClassGT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldTTLClass, v))
}

// TTLClassGTE applies the GTE predicate on the "ttl_class" field.
func TTLClassGTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldTTLClass, v))
}

// TTLClassLT applies the LT predicate on the "ttl_class" field.
func TTLClassLT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldTTLClass, v))
}

// TTLClassLTE applies the LTE predicate on the "ttl_class" field.
func TTLClassLTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldTTLClass, v))
}

// TTLClassContains applies the Contains predicate on the "ttl_class" field.
func TTLClassContains(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContains(FieldTTLClass, v))
}

// TTLClassHasPrefix applies the HasPrefix predicate on the "ttl_class" field.
func TTLClassHasPrefix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasPrefix(FieldTTLClass, v))
}

// TTLClassHasSuffix applies the HasSuffix predicate on the "ttl_class" field.
func TTLClassHasSuffix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasSuffix(FieldTTLClass, v))
}

// TTLClassEqualFold applies the EqualFold predicate on the "ttl_class" field.
func TTLClassEqualFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldTTLClass, v))
}

// TTLClassContainsFold applies the ContainsFold predicate on the "ttl_class" field.
func TTLClassContainsFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldTTLClass, v))
}

// OriginAPIEQ applies the EQ predicate on the "origin_api" field.
func OriginAPIEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldOriginAPI, v))
}

// OriginAPINEQ applies the NEQ predicate on the "origin_api" field.
func OriginAPINEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldOriginAPI, v))
}

// OriginAPIIn applies the In predicate on the "origin_api" field.
func OriginAPIIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldOriginAPI, vs...))
}

// OriginAPINotIn applies the NotIn predicate on the "origin_api" field.
func OriginAPINotIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldOriginAPI, vs...))
}

// OriginAPIGT applies the GT predicate on the "origin_api" field.
func OriginAPIGT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldOriginAPI, v))
}

// OriginAPIGTE applies the GTE predicate on the "origin_api" field.
func OriginAPIGTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldOriginAPI, v))
}

// OriginAPILT applies the LT predicate on the "origin_api" field.
func OriginAPILT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldOriginAPI, v))
}

// OriginAPILTE applies the LTE predicate on the "origin_api" field.
func OriginAPILTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldOriginAPI, v))
}

// OriginAPIContains applies the Contains predicate on the "origin_api" field.
func OriginAPIContains(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContains(FieldOriginAPI, v))
}

// OriginAPIHasPrefix applies the HasPrefix predicate on the "origin_api" field.
func OriginAPIHasPrefix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasPrefix(FieldOriginAPI, v))
}

// OriginAPIHasSuffix applies the HasSuffix predicate on the "origin_api" field.
func OriginAPIHasSuffix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasSuffix(FieldOriginAPI, v))
}

// OriginAPIEqualFold applies the EqualFold predicate on the "origin_api" field.
func OriginAPIEqualFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldOriginAPI, v))
}

// OriginAPIContainsFold applies the ContainsFold predicate on the "origin_api" field.
func OriginAPIContainsFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldOriginAPI, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldSizeBytes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.NotPredicates(p))
}
