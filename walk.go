package mockup

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/developerRafu/easy-mockup/defaults"
)

const setterPrefix = "Set"

// walker holds the per-build working state: the override map, the table to
// resolve defaults from, and the set of struct types on the current
// recursion path for cycle detection.
type walker struct {
	table    *defaults.Table
	values   map[string]any
	visiting map[reflect.Type]struct{}
}

// build returns a pointer to a freshly populated instance of the struct
// behind rtype. path is the dotted path of the property the instance is
// built for, empty at the root.
func (w *walker) build(rtype reflect.Type, path string) (reflect.Value, error) {
	base := rtype
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}

	if base.Kind() == reflect.Ptr {
		return reflect.Value{}, failure(FailConstruction, path, rtype, ErrDoublePointer)
	}

	if base.Kind() != reflect.Struct {
		return reflect.Value{}, failure(FailConstruction, path, rtype, ErrNotConstructible)
	}

	if _, ok := w.visiting[base]; ok {
		return reflect.Value{}, failure(FailCycle, path, rtype, ErrCyclicType)
	}

	w.visiting[base] = struct{}{}
	defer delete(w.visiting, base)

	inst := reflect.New(base)
	ptype := inst.Type()

	for i := 0; i < ptype.NumMethod(); i++ {
		method := ptype.Method(i)
		if !isSetter(method) {
			continue
		}

		param := method.Type.In(1)
		propPath := joinPath(path, propertyName(method.Name))

		arg, err := w.resolve(param, propPath)
		if err != nil {
			return reflect.Value{}, err
		}

		if err := callSetter(inst.Method(i), arg); err != nil {
			return reflect.Value{}, failure(FailPopulation, propPath, param, err)
		}
	}

	return inst, nil
}

// resolve picks the value for one property, in strict priority order:
// override map, default value table, recursive build of the nested type.
func (w *walker) resolve(param reflect.Type, path string) (reflect.Value, error) {
	if v, ok := w.values[path]; ok {
		arg, err := fit(v, param)
		if err != nil {
			return reflect.Value{}, failure(FailPopulation, path, param, err)
		}

		return arg, nil
	}

	if v, ok := w.lookupDefault(param); ok {
		arg, err := fit(v, param)
		if err != nil {
			return reflect.Value{}, failure(FailPopulation, path, param, err)
		}

		return arg, nil
	}

	nested, err := w.build(param, path)
	if err != nil {
		var berr *BuildError
		if errors.As(err, &berr) && berr.Path == path {
			// the property itself could not be constructed, keep its kind
			return reflect.Value{}, err
		}

		return reflect.Value{}, failure(FailRecursion, path, param, err)
	}

	if param.Kind() == reflect.Ptr {
		return nested, nil
	}

	return nested.Elem(), nil
}

// lookupDefault resolves a table default for the parameter type, unwrapping
// one pointer level so *time.Time properties get a date as well.
func (w *walker) lookupDefault(param reflect.Type) (any, bool) {
	if v, ok := w.table.Lookup(param); ok {
		return v, true
	}

	if param.Kind() == reflect.Ptr {
		if v, ok := w.table.Lookup(param.Elem()); ok {
			return v, true
		}
	}

	return nil, false
}

// isSetter reports whether the method follows the "Set" + CapitalizedName
// convention and takes exactly one argument. Methods obtained from a
// reflect.Type carry the receiver as the first input, so a single-argument
// setter has two inputs. Non-conforming methods are skipped, not errors.
func isSetter(m reflect.Method) bool {
	if !strings.HasPrefix(m.Name, setterPrefix) || len(m.Name) == len(setterPrefix) {
		return false
	}

	return m.Type.NumIn() == 2
}

// propertyName derives the property name from a setter name: strip the
// prefix, lower-case the first rune ("SetFirstName" -> "firstName").
func propertyName(method string) string {
	name := strings.TrimPrefix(method, setterPrefix)
	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToLower(r)) + name[size:]
}

func joinPath(ancestor, name string) string {
	if ancestor == "" {
		return name
	}

	return ancestor + "." + name
}

// fit adapts a resolved value to the setter's parameter type: direct
// assignment, lossless numeric conversion, same-kind named-type conversion,
// or single pointer allocation. Anything else is rejected, surfacing as a
// population failure at the property's path.
func fit(v any, param reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(param), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(param) {
		return rv, nil
	}

	if converted, ok := convert(rv, param); ok {
		return converted, nil
	}

	if param.Kind() == reflect.Ptr {
		if elem, err := fit(v, param.Elem()); err == nil {
			ptr := reflect.New(param.Elem())
			ptr.Elem().Set(elem)

			return ptr, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %s does not fit %s", ErrBadValue, rv.Type(), param)
}

// convert performs the conversions the builder considers safe: named types
// over the same kind, and numeric conversions that keep the value intact.
// A narrowing that would wrap or truncate is rejected instead of applied,
// and unrestricted ConvertibleTo surprises like int -> string rune
// conversion never qualify.
func convert(rv reflect.Value, param reflect.Type) (reflect.Value, bool) {
	if !rv.Type().ConvertibleTo(param) {
		return reflect.Value{}, false
	}

	if rv.Kind() == param.Kind() {
		return rv.Convert(param), true
	}

	if !isNumeric(rv.Kind()) || !isNumeric(param.Kind()) {
		return reflect.Value{}, false
	}

	if isSigned(rv.Kind()) && isUnsigned(param.Kind()) && rv.Int() < 0 {
		return reflect.Value{}, false
	}

	converted := rv.Convert(param)
	if isUnsigned(rv.Kind()) && isSigned(param.Kind()) && converted.Int() < 0 {
		return reflect.Value{}, false
	}

	// round trip catches wrapped integers and truncated fractions
	if !converted.Convert(rv.Type()).Equal(rv) {
		return reflect.Value{}, false
	}

	return converted, true
}

func isSigned(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || k == reflect.Float32 || k == reflect.Float64
}

// callSetter invokes the mutator, converting a panicking setter into an
// error so the build aborts instead of the caller's test.
func callSetter(fn reflect.Value, arg reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setter panicked: %v", r)
		}
	}()

	fn.Call([]reflect.Value{arg})

	return nil
}
