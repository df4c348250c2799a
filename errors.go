package mockup

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotConstructible = errors.New("type cannot be constructed without arguments")
	ErrCyclicType       = errors.New("cyclic type graph")
	ErrBadValue         = errors.New("value does not fit the setter parameter")
	ErrDoublePointer    = errors.New("double pointers are not supported")
)

// FailKindEnum classifies why a build was aborted.
type FailKindEnum int

const (
	_ FailKindEnum = iota // skip zero value, use it as a default (invalid) value for FailKindEnum

	// FailConstruction - the target or a nested type cannot be instantiated.
	FailConstruction
	// FailPopulation - a setter rejected the resolved value or panicked.
	FailPopulation
	// FailRecursion - a nested composite build failed; the cause carries the deeper failure.
	FailRecursion
	// FailCycle - the type graph loops back onto a type already under construction.
	FailCycle

	// FailTotal is a constant that represents the total number of failure kinds defined
	FailTotal = int(iota)
)

// String returns a human-readable kind name.
func (k FailKindEnum) String() string {
	switch k {
	case FailConstruction:
		return "construction"
	case FailPopulation:
		return "population"
	case FailRecursion:
		return "recursion"
	case FailCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// BuildError reports why a build produced no instance. Builds are
// all-or-nothing: a failure at any depth aborts the whole build and no
// partially populated instance escapes to the caller.
type BuildError struct {
	// Kind classifies the failure.
	Kind FailKindEnum
	// Path is the dotted path of the offending property, empty for the root.
	Path string
	// Type is the property (or target) type the failure occurred on.
	Type reflect.Type
	// Err is the underlying cause.
	Err error
}

func (e *BuildError) Error() string {
	at := e.Path
	if at == "" {
		at = "(root)"
	}

	return fmt.Sprintf("%s failure at %s (%s): %v", e.Kind, at, e.Type, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

func failure(kind FailKindEnum, path string, rtype reflect.Type, err error) *BuildError {
	return &BuildError{Kind: kind, Path: path, Type: rtype, Err: err}
}
