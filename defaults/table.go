// Package defaults holds the fixed table of canonical default values the
// mock builder assigns to primitive and well-known property types.
//
// Lookup runs in two stages:
//  1. Exact match on a well-known reflect.Type (string, the numeric kinds,
//     bool, time.Time, time.Duration, inf.Dec).
//  2. Ordered substring match of the lower-cased fully-qualified type name
//     against a fragment list, so named types such as "payroll.TinyInt"
//     still resolve. Fragments are ordered most-specific first so that no
//     fragment shadows a longer one ("tinyint" is checked before "int").
//
// A miss on both stages tells the builder to treat the type as a nested
// composite and build it recursively.
package defaults

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/inf.v0"
)

// PlaceholderString is the canonical default for string-like properties.
const PlaceholderString = "string"

// Entry binds a type-name fragment to a canonical value constructor.
type Entry struct {
	// Fragment is matched as a substring of the lower-cased fully-qualified
	// type name.
	Fragment string
	// Make produces the canonical value. It is called per lookup, so
	// time-dependent defaults (current date) are fresh for every build.
	Make func() any
}

// Table is an ordered fragment lookup list. It is never mutated after
// construction and is safe for unsynchronized concurrent readers.
type Table struct {
	entries []Entry
}

// NewTable returns a table with the canonical entries, with extra entries
// checked before them. Extras let callers teach the builder about well-known
// types of their own domain without touching the canonical set.
func NewTable(extra ...Entry) *Table {
	t := &Table{entries: make([]Entry, 0, len(extra)+len(canonical))}
	t.entries = append(t.entries, extra...)
	t.entries = append(t.entries, canonical...)

	return t
}

var shared = NewTable()

// Canonical returns the shared process-wide table. It is initialized once
// and never changes, so concurrent builds read it without locking.
func Canonical() *Table { return shared }

// Lookup resolves the canonical default value for rtype. The second return
// is false when the type is not covered by the table, signaling the caller
// to fall through to nested-type recursion.
func (t *Table) Lookup(rtype reflect.Type) (any, bool) {
	if v, ok := wellKnown(rtype); ok {
		return v, true
	}

	name := strings.ToLower(TypeName(rtype))
	for _, e := range t.entries {
		if strings.Contains(name, e.Fragment) {
			return e.Make(), true
		}
	}

	return nil, false
}

var canonical = []Entry{
	{"string", func() any { return PlaceholderString }},
	{"tinyint", func() any { return int8(0) }},
	{"bigdecimal", func() any { return inf.NewDec(0, 1) }},
	{"localdate", func() any { return Today() }},
	{"long", func() any { return int64(0) }},
	{"double", func() any { return float64(0) }},
	{"float", func() any { return float32(0) }},
	{"bool", func() any { return false }},
	{"char", func() any { return rune(' ') }},
	{"byte", func() any { return byte(0) }},
	{"int", func() any { return 0 }},
}

func wellKnown(rtype reflect.Type) (any, bool) {
	switch rtype {
	default:
		return nil, false
	case reflect.TypeFor[string]():
		return PlaceholderString, true
	case reflect.TypeFor[int]():
		return int(0), true
	case reflect.TypeFor[int8]():
		return int8(0), true
	case reflect.TypeFor[int16]():
		return int16(0), true
	case reflect.TypeFor[int32]():
		return int32(0), true
	case reflect.TypeFor[int64]():
		return int64(0), true
	case reflect.TypeFor[uint]():
		return uint(0), true
	case reflect.TypeFor[uint8]():
		return uint8(0), true
	case reflect.TypeFor[uint16]():
		return uint16(0), true
	case reflect.TypeFor[uint32]():
		return uint32(0), true
	case reflect.TypeFor[uint64]():
		return uint64(0), true
	case reflect.TypeFor[float32]():
		return float32(0), true
	case reflect.TypeFor[float64]():
		return float64(0), true
	case reflect.TypeFor[bool]():
		return false, true
	case reflect.TypeFor[time.Time]():
		return Today(), true
	case reflect.TypeFor[time.Duration]():
		return time.Duration(0), true
	case reflect.TypeFor[inf.Dec]():
		return *inf.NewDec(0, 1), true
	case reflect.TypeFor[*inf.Dec]():
		return inf.NewDec(0, 1), true
	}
}

// Today returns the current calendar date at midnight in the local zone.
// Date-valued defaults carry no time-of-day component.
func Today() time.Time {
	year, month, day := time.Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// TypeName renders the fully qualified name of a type. Named types keep
// their package path even when their underlying shape is a pointer, slice or
// array, so fragment matching sees "github.com/google/uuid.UUID" rather than
// "[16]uint8".
func TypeName(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	default:
		return t.String()
	}
}
