package defaults_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/developerRafu/easy-mockup/defaults"
)

type TinyIntColumn int8
type LongCounter int64
type NameString string
type Invoice struct{}

func Example() {
	table := defaults.Canonical()

	fmt.Println(table.Lookup(reflect.TypeFor[string]()))
	fmt.Println(table.Lookup(reflect.TypeFor[int64]()))
	fmt.Println(table.Lookup(reflect.TypeFor[*inf.Dec]()))
	fmt.Println(table.Lookup(reflect.TypeFor[TinyIntColumn]()))
	fmt.Println(table.Lookup(reflect.TypeFor[Invoice]()))
	// Output:
	// string true
	// 0 true
	// 0.0 true
	// 0 true
	// <nil> false
}

func TestLookup(t *testing.T) {
	t.Parallel()

	table := defaults.Canonical()

	t.Run("well known types", func(t *testing.T) {
		t.Parallel()

		v, ok := table.Lookup(reflect.TypeFor[string]())
		require.True(t, ok)
		assert.Equal(t, defaults.PlaceholderString, v)

		v, ok = table.Lookup(reflect.TypeFor[uint16]())
		require.True(t, ok)
		assert.Equal(t, uint16(0), v)

		v, ok = table.Lookup(reflect.TypeFor[float32]())
		require.True(t, ok)
		assert.Equal(t, float32(0), v)

		v, ok = table.Lookup(reflect.TypeFor[bool]())
		require.True(t, ok)
		assert.Equal(t, false, v)

		v, ok = table.Lookup(reflect.TypeFor[*inf.Dec]())
		require.True(t, ok)
		assert.Equal(t, inf.NewDec(0, 1), v)

		v, ok = table.Lookup(reflect.TypeFor[time.Duration]())
		require.True(t, ok)
		assert.Equal(t, time.Duration(0), v)
	})

	t.Run("fragment fallback for named types", func(t *testing.T) {
		t.Parallel()

		v, ok := table.Lookup(reflect.TypeFor[LongCounter]())
		require.True(t, ok)
		assert.Equal(t, int64(0), v)

		v, ok = table.Lookup(reflect.TypeFor[NameString]())
		require.True(t, ok)
		assert.Equal(t, defaults.PlaceholderString, v)
	})

	t.Run("tinyint is not eaten by int", func(t *testing.T) {
		t.Parallel()

		v, ok := table.Lookup(reflect.TypeFor[TinyIntColumn]())
		require.True(t, ok)
		assert.Equal(t, int8(0), v)
	})

	t.Run("date defaults are computed per call", func(t *testing.T) {
		t.Parallel()

		v, ok := table.Lookup(reflect.TypeFor[time.Time]())
		require.True(t, ok)

		date := v.(time.Time)
		assert.True(t, date.Equal(defaults.Today()))
		assert.Equal(t, 0, date.Hour())
		assert.Equal(t, 0, date.Minute())
	})

	t.Run("miss signals nested recursion", func(t *testing.T) {
		t.Parallel()

		v, ok := table.Lookup(reflect.TypeFor[Invoice]())
		assert.False(t, ok)
		assert.Nil(t, v)
	})
}

func TestNewTableExtras(t *testing.T) {
	t.Parallel()

	table := defaults.NewTable(defaults.Entry{
		Fragment: "uuid",
		Make:     func() any { return uuid.Nil },
	})

	v, ok := table.Lookup(reflect.TypeFor[uuid.UUID]())
	require.True(t, ok)
	assert.Equal(t, uuid.Nil, v)

	// canonical entries still resolve behind the extras
	v, ok = table.Lookup(reflect.TypeFor[int]())
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", defaults.TypeName(reflect.TypeFor[int]()))
	assert.Equal(t, "*int", defaults.TypeName(reflect.TypeFor[*int]()))
	assert.Equal(t, "map[string]int", defaults.TypeName(reflect.TypeFor[map[string]int]()))
	assert.Equal(t, "[]string", defaults.TypeName(reflect.TypeFor[[]string]()))

	// named types keep their package path even over non-struct shapes
	assert.Equal(t, "github.com/google/uuid.UUID", defaults.TypeName(reflect.TypeFor[uuid.UUID]()))
	assert.Equal(t, "gopkg.in/inf.v0.Dec", defaults.TypeName(reflect.TypeFor[inf.Dec]()))
	assert.Equal(t, "*gopkg.in/inf.v0.Dec", defaults.TypeName(reflect.TypeFor[*inf.Dec]()))
}
