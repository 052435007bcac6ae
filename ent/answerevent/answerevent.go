// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldItemKey holds the string denoting the item_key field in the database.
	FieldItemKey = "item_key"
	// FieldExpected holds the string denoting the expected field in the database.
	FieldExpected = "expected"
	// FieldGiven holds the string denoting the given field in the database.
	FieldGiven = "given"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldHintLevel holds the string denoting the hint_level field in the database.
	FieldHintLevel = "hint_level"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldMode,
	FieldPosition,
	FieldItemKey,
	FieldExpected,
	FieldGiven,
	FieldCorrect,
	FieldHintLevel,
	FieldTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	ItemKeyValidator func(string) error
	// DefaultHintLevel holds the default value on creation for the "hint_level" field.
	DefaultHintLevel int
	// HintLevelValidator is a validator for the "hint_level" field. It is called by the builders before save.
	HintLevelValidator func(int) error
	// TimeMsValidator is a validator for the "time_ms" field. It is called by the builders before save.
	TimeMsValidator func(int) error
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByItemKey orders the results by the item_key field.
func ByItemKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemKey, opts...).ToFunc()
}

// ByExpected orders the results by the expected field.
func ByExpected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpected, opts...).ToFunc()
}

// ByGiven orders the results by the given field.
func ByGiven(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGiven, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByHintLevel orders the results by the hint_level field.
func ByHintLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintLevel, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
