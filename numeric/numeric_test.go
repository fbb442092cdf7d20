package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFloat(t *testing.T) {
	require.True(t, IsFloat[float32]())
	require.True(t, IsFloat[float64]())
	require.False(t, IsFloat[int]())
	require.False(t, IsFloat[int8]())
	require.False(t, IsFloat[uint16]())
	require.False(t, IsFloat[uint64]())
}

func TestOverflowPolicy_String(t *testing.T) {
	require.Equal(t, "Checked", Checked.String())
	require.Equal(t, "Wrapping", Wrapping.String())
	require.Equal(t, "Unknown", OverflowPolicy(9).String())
	require.True(t, Checked.Valid())
	require.True(t, Wrapping.Valid())
	require.False(t, OverflowPolicy(9).Valid())

	var zero OverflowPolicy
	require.Equal(t, Checked, zero)
}

func TestSub_Signed(t *testing.T) {
	tests := []struct {
		name string
		x, y int8
		want int8
		ok   bool
	}{
		{"in range", 10, 3, 7, true},
		{"negative result", 3, 10, -7, true},
		{"lower bound exact", -127, 1, -128, true},
		{"underflow", -128, 1, 127, false},
		{"overflow", 127, -1, -128, false},
		{"extremes", 127, -128, -1, false},
		{"reverse extremes", -128, 127, 1, false},
		{"zero", 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sub(tt.x, tt.y, Checked)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)

			wrapped, ok := Sub(tt.x, tt.y, Wrapping)
			require.True(t, ok)
			require.Equal(t, tt.want, wrapped)
		})
	}
}

func TestSub_Unsigned(t *testing.T) {
	got, ok := Sub[uint8](5, 3, Checked)
	require.True(t, ok)
	require.Equal(t, uint8(2), got)

	got, ok = Sub[uint8](3, 5, Checked)
	require.False(t, ok)
	require.Equal(t, uint8(254), got)

	got, ok = Sub[uint8](3, 5, Wrapping)
	require.True(t, ok)
	require.Equal(t, uint8(254), got)
}

func TestAdd_Signed(t *testing.T) {
	got, ok := Add[int16](math.MaxInt16-1, 1, Checked)
	require.True(t, ok)
	require.Equal(t, int16(math.MaxInt16), got)

	_, ok = Add[int16](math.MaxInt16, 1, Checked)
	require.False(t, ok)

	_, ok = Add[int16](math.MinInt16, -1, Checked)
	require.False(t, ok)

	got, ok = Add[int16](math.MaxInt16, 1, Wrapping)
	require.True(t, ok)
	require.Equal(t, int16(math.MinInt16), got)
}

func TestAdd_Unsigned(t *testing.T) {
	_, ok := Add[uint32](math.MaxUint32, 1, Checked)
	require.False(t, ok)

	got, ok := Add[uint32](math.MaxUint32, 1, Wrapping)
	require.True(t, ok)
	require.Equal(t, uint32(0), got)
}

func TestWrappingInvertsWrapping(t *testing.T) {
	values := []int8{-128, 127, 0, -1, 100, -100}
	for _, a := range values {
		for _, b := range values {
			d, _ := Sub(a, b, Wrapping)
			back, _ := Add(b, d, Wrapping)
			require.Equal(t, a, back, "a=%d b=%d", a, b)
		}
	}
}

func TestFloatOverflow(t *testing.T) {
	_, ok := Sub(math.MaxFloat64, -math.MaxFloat64, Checked)
	require.False(t, ok)

	d, ok := Sub(math.MaxFloat64, -math.MaxFloat64, Wrapping)
	require.True(t, ok)
	require.True(t, math.IsInf(d, 1))

	_, ok = Add(float32(math.MaxFloat32), float32(math.MaxFloat32), Checked)
	require.False(t, ok)

	got, ok := Sub(1.5, 0.25, Checked)
	require.True(t, ok)
	require.Equal(t, 1.25, got)
}

func TestFloatSpecialValues(t *testing.T) {
	inf := math.Inf(1)

	got, ok := Sub(inf, 1.0, Checked)
	require.True(t, ok, "infinite operands are not an overflow")
	require.True(t, math.IsInf(got, 1))

	got, ok = Add(math.NaN(), 1.0, Checked)
	require.True(t, ok)
	require.True(t, math.IsNaN(got))
}

func TestRatio(t *testing.T) {
	require.InDelta(t, 0.881, Ratio(881, 1000), 1e-12)
	require.Equal(t, 1.0, Ratio[int16](1000, 1000))
	require.Equal(t, 0.0, Ratio[uint8](0, 3))
	require.True(t, math.IsInf(Ratio(1, 0), 1))
	require.True(t, math.IsNaN(Ratio(0.0, 0.0)))
}

func TestBitsFunc(t *testing.T) {
	intBits := BitsFunc[int32]()
	require.Equal(t, uint64(7), intBits(7))
	require.Equal(t, uint64(math.MaxUint64), intBits(-1))

	floatBits := BitsFunc[float64]()
	require.Equal(t, math.Float64bits(1.5), floatBits(1.5))
	require.NotEqual(t, floatBits(0.0), floatBits(math.Copysign(0, -1)))

	f32Bits := BitsFunc[float32]()
	require.Equal(t, math.Float64bits(0.5), f32Bits(0.5))
}
