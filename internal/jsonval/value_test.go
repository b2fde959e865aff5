package jsonval

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, payload string) Object {
	t.Helper()
	obj, err := Parse([]byte(payload))
	require.NoError(t, err)
	return obj
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestObjectString(t *testing.T) {
	obj := mustParse(t, `{"name":"IBM","count":"3","nothing":null}`)

	assert.Equal(t, "IBM", obj.String("name", ""))
	assert.Equal(t, "fallback", obj.String("missing", "fallback"))
	assert.Equal(t, "fallback", obj.String("nothing", "fallback"))
}

func TestObjectDecimal(t *testing.T) {
	obj := mustParse(t, `{"price":"125.0000","junk":"n/a","num":125.0,"nothing":null}`)

	def := decimal.Zero
	assert.True(t, obj.Decimal("price", def).Equal(decimal.RequireFromString("125")))
	assert.True(t, obj.Decimal("junk", def).Equal(def))
	assert.True(t, obj.Decimal("missing", def).Equal(def))
	assert.True(t, obj.Decimal("nothing", def).Equal(def))
	// raw JSON numbers are not the upstream convention and fall back too
	assert.True(t, obj.Decimal("num", def).Equal(def))
}

func TestObjectFloatLongInt(t *testing.T) {
	obj := mustParse(t, `{"score":"0.7273","volume":"2914275","bad":"many"}`)

	assert.Equal(t, 0.7273, obj.Float("score", 0))
	assert.Equal(t, 1.5, obj.Float("bad", 1.5))
	assert.Equal(t, int64(2914275), obj.Long("volume", 0))
	assert.Equal(t, int64(-1), obj.Long("bad", -1))
	assert.Equal(t, 7, obj.Int("missing", 7))
}

// Long parsing is strict: a decimal-formatted count is not a long.
func TestObjectLongRejectsDecimalString(t *testing.T) {
	obj := mustParse(t, `{"count":"21.0000"}`)
	assert.Equal(t, int64(0), obj.Long("count", 0))
}

func TestObjectNullableInt(t *testing.T) {
	obj := mustParse(t, `{"count":"21.0000","junk":"n/a","empty":null}`)

	got := obj.NullableInt("count")
	require.NotNil(t, got)
	assert.Equal(t, 21, *got)

	// explicit null and missing key both mean "no figure reported"
	assert.Nil(t, obj.NullableInt("empty"))
	assert.Nil(t, obj.NullableInt("missing"))

	// unparsable non-null input collapses to a present zero, never nil
	got = obj.NullableInt("junk")
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestObjectDate(t *testing.T) {
	obj := mustParse(t, `{"day":"2025-12-09","bad":"yesterday"}`)

	want := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, obj.Date("day", time.Time{}))
	assert.True(t, obj.Date("bad", time.Time{}).IsZero())
	assert.True(t, obj.Date("missing", time.Time{}).IsZero())
}

func TestObjectClock(t *testing.T) {
	obj := mustParse(t, `{"open":"09:30","bad":"morning"}`)

	got := obj.Clock("open", time.Time{})
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.True(t, obj.Clock("bad", time.Time{}).IsZero())
}

func TestObjectStructure(t *testing.T) {
	obj := mustParse(t, `{"meta":{"a":"1"},"rows":[{"b":"2"}],"flat":"x"}`)

	meta, ok := obj.Object("meta")
	require.True(t, ok)
	assert.Equal(t, "1", meta.String("a", ""))

	_, ok = obj.Object("flat")
	assert.False(t, ok)
	_, ok = obj.Object("missing")
	assert.False(t, ok)

	rows, ok := obj.Array("rows")
	require.True(t, ok)
	require.Len(t, rows, 1)
	row, ok := AsObject(rows[0])
	require.True(t, ok)
	assert.Equal(t, "2", row.String("b", ""))

	_, ok = obj.Array("flat")
	assert.False(t, ok)

	assert.True(t, obj.Has("flat"))
	assert.False(t, obj.Has("missing"))
}
