// Code generated by ent, DO NOT EDIT.

package playbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kakezan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldToken, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldKind, v))
}

// Dan applies equality check predicate on the "dan" field. It's identical to DanEQ.
func Dan(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldDan, v))
}

// Multiplier applies equality check predicate on the "multiplier" field. It's identical to MultiplierEQ.
func Multiplier(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldMultiplier, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSource, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldToken, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldKind, v))
}

// DanEQ applies the EQ predicate on the "dan" field.
func DanEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldDan, v))
}

// DanNEQ applies the NEQ predicate on the "dan" field.
func DanNEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldDan, v))
}

// DanIn applies the In predicate on the "dan" field.
func DanIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldDan, vs...))
}

// DanNotIn applies the NotIn predicate on the "dan" field.
func DanNotIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldDan, vs...))
}

// DanGT applies the GT predicate on the "dan" field.
func DanGT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldDan, v))
}

// DanGTE applies the GTE predicate on the "dan" field.
func DanGTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldDan, v))
}

// DanLT applies the LT predicate on the "dan" field.
func DanLT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldDan, v))
}

// DanLTE applies the LTE predicate on the "dan" field.
func DanLTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldDan, v))
}

// MultiplierEQ applies the EQ predicate on the "multiplier" field.
func MultiplierEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldMultiplier, v))
}

// MultiplierNEQ applies the NEQ predicate on the "multiplier" field.
func MultiplierNEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldMultiplier, v))
}

// MultiplierIn applies the In predicate on the "multiplier" field.
func MultiplierIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldMultiplier, vs...))
}

// MultiplierNotIn applies the NotIn predicate on the "multiplier" field.
func MultiplierNotIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldMultiplier, vs...))
}

// MultiplierGT applies the GT predicate on the "multiplier" field.
func MultiplierGT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldMultiplier, v))
}

// MultiplierGTE applies the GTE predicate on the "multiplier" field.
func MultiplierGTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldMultiplier, v))
}

// MultiplierLT applies the LT predicate on the "multiplier" field.
func MultiplierLT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldMultiplier, v))
}

// MultiplierLTE applies the LTE predicate on the "multiplier" field.
func MultiplierLTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldMultiplier, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldSource, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.NotPredicates(p))
}
