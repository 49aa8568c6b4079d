// Package scale holds the rating-scale and distance-unit normalizers.
//
// Athlete-facing ratings live on a 1-5 scale; the backend persists them on a
// 1-10 scale. Both conversion directions are total functions over optional
// inputs. They are deliberately NOT exact inverses of each other: odd 1-10
// values lose their ones digit on a 10 -> 5 -> 10 round trip. That asymmetry
// is inherited behavior and is pinned by tests rather than "fixed".
package scale

import "math"

// ToFiveScale normalizes a rating onto the 1-5 scale.
// Values already at or below 5 are rounded and clamped; larger values are
// assumed to be on the 10-scale and halved first. Nil stays nil.
func ToFiveScale(v *float64) *int {
	if v == nil {
		return nil
	}
	x := *v
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	if x > 5 {
		x = x / 2
	}
	r := clamp(int(math.Round(x)), 1, 5)
	return &r
}

// ToTenScale converts a rating to the 1-10 scale the backend stores.
// Values at or below 5 are doubled; larger values pass through rounded,
// so already-10-scale input is preserved. Nil stays nil.
func ToTenScale(v *float64) *int {
	if v == nil {
		return nil
	}
	x := *v
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	var r int
	if x <= 5 {
		r = int(math.Round(x)) * 2
	} else {
		r = int(math.Round(x))
	}
	return &r
}

// FiveToTen converts a known 1-5 integer rating to its stored 1-10 value.
func FiveToTen(v *int) *int {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return ToTenScale(&f)
}

// TenToFive converts a stored 1-10 integer rating back to the 1-5 scale.
func TenToFive(v *int) *int {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return ToFiveScale(&f)
}

// MetersToKm converts meters to kilometers, rounded to two decimals.
func MetersToKm(m int) float64 {
	return math.Round(float64(m)/1000*100) / 100
}

// KmToMeters converts kilometers to whole meters.
func KmToMeters(km float64) int {
	return int(math.Round(km * 1000))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
