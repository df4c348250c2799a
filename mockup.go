// Package mockup builds fully populated test fixtures from bean-style types.
//
// Given a struct type with "Set" + CapitalizedName mutator methods, the
// builder instantiates it and assigns every single-argument setter either a
// caller-supplied override or a canonical default, recursing into nested
// composite properties:
//  1. Instantiate the target struct.
//  2. For each qualifying setter, derive the property name ("SetName" ->
//     "name") and its dotted path within the override map ("job.salary").
//  3. Resolve the value: override map first, then the default value table,
//     then a recursive build of the nested type.
//  4. Invoke the setter; any failure aborts the whole build.
//
// Overrides are keyed by dotted path and take priority over defaults; keys
// without a matching property are silently ignored.
package mockup

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/developerRafu/easy-mockup/defaults"
)

// Make builds an instance of T populated with canonical defaults only.
func Make[T any]() (*T, error) {
	return MakeWith[T](nil)
}

// MakeWith builds an instance of T with override values layered over the
// canonical defaults. Values are keyed by dotted property path, e.g.
// "name" or "job.salary". T may be the struct type or a pointer to it.
func MakeWith[T any](values map[string]any) (*T, error) {
	rtype := reflect.TypeFor[T]()

	out, err := defaultBuilder.Build(rtype, values)
	if err != nil {
		return nil, err
	}

	if rtype.Kind() == reflect.Ptr {
		// Build returns the base struct pointer, which for pointer T is a T
		// value; wrap it one more level so the result is a *T.
		t := out.(T)

		return &t, nil
	}

	return out.(*T), nil
}

// Build is the non-generic form of MakeWith over a type descriptor. The
// returned instance is a pointer to the base struct behind rtype.
func Build(rtype reflect.Type, values map[string]any) (any, error) {
	return defaultBuilder.Build(rtype, values)
}

var defaultBuilder = NewBuilder(nil, nil)

// Builder populates fixture instances using a default value table and
// reports aborted builds to a diagnostics logger. A Builder is immutable
// after construction and safe for concurrent use; every Build call keeps
// its working state on its own stack.
type Builder struct {
	table  *defaults.Table
	logger *zap.Logger
}

// NewBuilder creates a Builder. A nil table selects the canonical default
// table, a nil logger discards diagnostics.
func NewBuilder(table *defaults.Table, logger *zap.Logger) *Builder {
	if table == nil {
		table = defaults.Canonical()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{table: table, logger: logger}
}

// Build constructs and populates an instance of rtype, which must be a
// struct type or pointer to one. On failure it returns a *BuildError naming
// the failure kind and the offending dotted path; no partial instance is
// ever returned.
func (b *Builder) Build(rtype reflect.Type, values map[string]any) (any, error) {
	w := &walker{
		table:    b.table,
		values:   values,
		visiting: map[reflect.Type]struct{}{},
	}

	inst, err := w.build(rtype, "")
	if err != nil {
		b.logger.Error("mock build failed",
			zap.String("target", defaults.TypeName(rtype)),
			zap.Error(err))

		return nil, err
	}

	return inst.Interface(), nil
}
