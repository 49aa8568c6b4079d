package scale_test

import (
	"testing"

	"swimtrack/training-tracker/internal/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestToFiveScale_Nil(t *testing.T) {
	assert.Nil(t, scale.ToFiveScale(nil))
}

func TestToFiveScale_RangeAndMonotonic(t *testing.T) {
	// Monotone within each branch; values up to 5 pass through, larger
	// values are halved, so the curve drops at the 5/6 boundary (5 -> 5,
	// 6 -> 3). That dip is the documented branching, pinned here.
	for _, branch := range [][2]int{{1, 5}, {6, 10}} {
		prev := 0
		for v := branch[0]; v <= branch[1]; v++ {
			got := scale.ToFiveScale(fptr(float64(v)))
			require.NotNil(t, got)
			assert.GreaterOrEqual(t, *got, 1, "v=%d", v)
			assert.LessOrEqual(t, *got, 5, "v=%d", v)
			assert.GreaterOrEqual(t, *got, prev, "monotonicity broken at v=%d", v)
			prev = *got
		}
	}
	assert.Equal(t, 5, *scale.ToFiveScale(fptr(5)))
	assert.Equal(t, 3, *scale.ToFiveScale(fptr(6)))
}

func TestToFiveScale_Clamping(t *testing.T) {
	assert.Equal(t, 1, *scale.ToFiveScale(fptr(0)))
	assert.Equal(t, 1, *scale.ToFiveScale(fptr(-3)))
	assert.Equal(t, 5, *scale.ToFiveScale(fptr(42)))
}

func TestRoundTrip_FiveToTenToFive(t *testing.T) {
	// 5 -> 10 -> 5 is an identity only from 3 up: ratings 1 and 2 double to
	// 2 and 4, which ToFiveScale reads as already-5-scale values and passes
	// through unhalved. Pinned, not fixed.
	for v := 3; v <= 5; v++ {
		ten := scale.ToTenScale(fptr(float64(v)))
		require.NotNil(t, ten)
		assert.Equal(t, v*2, *ten)
		back := scale.ToFiveScale(fptr(float64(*ten)))
		require.NotNil(t, back)
		assert.Equal(t, v, *back, "round trip broken for %d", v)
	}
	assert.Equal(t, 2, *scale.ToFiveScale(fptr(2)))
	assert.Equal(t, 4, *scale.ToFiveScale(fptr(4)))
}

func TestRoundTrip_TenScaleOddValues(t *testing.T) {
	// Pin the inherited asymmetry: odd 10-scale values do not survive a
	// 10 -> 5 -> 10 round trip (7 -> 4 -> 8, 9 -> 5 -> 10).
	cases := map[float64]struct{ five, backToTen int }{
		7: {4, 8},
		9: {5, 10},
	}
	for in, want := range cases {
		five := scale.ToFiveScale(fptr(in))
		require.NotNil(t, five)
		assert.Equal(t, want.five, *five)
		ten := scale.ToTenScale(fptr(float64(*five)))
		require.NotNil(t, ten)
		assert.Equal(t, want.backToTen, *ten)
	}
}

func TestToTenScale_PassThroughAboveFive(t *testing.T) {
	assert.Equal(t, 8, *scale.ToTenScale(fptr(8)))
	assert.Equal(t, 7, *scale.ToTenScale(fptr(7.3)))
}

func TestIntConversions(t *testing.T) {
	four := 4
	assert.Equal(t, 8, *scale.FiveToTen(&four))
	eight := 8
	assert.Equal(t, 4, *scale.TenToFive(&eight))
	assert.Nil(t, scale.FiveToTen(nil))
	assert.Nil(t, scale.TenToFive(nil))
}

func TestDistanceConversions(t *testing.T) {
	assert.Equal(t, 2.0, scale.MetersToKm(2000))
	assert.Equal(t, 2.35, scale.MetersToKm(2345))
	assert.Equal(t, 2000, scale.KmToMeters(2.0))
	assert.Equal(t, 2350, scale.KmToMeters(2.35))
}
