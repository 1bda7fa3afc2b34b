package ray

import (
	"math"
	"testing"

	"depthtrace/vmath/vec3"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewNormalizesSlope(t *testing.T) {
	r := New(vec3.T{1, 2, 3}, vec3.T{0, 3, 4})
	if diff := cmp.Diff(r.Slope, vec3.T{0, 0.6, 0.8}, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Bad slope; diff (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(r.Point, vec3.T{1, 2, 3}); diff != "" {
		t.Errorf("Point changed; diff (-got +want)\n%s", diff)
	}
}

func TestEval(t *testing.T) {
	r := New(vec3.T{5, 5, 5}, vec3.T{-2, 0, 0})

	testCases := []struct {
		t    float64
		want vec3.T
	}{
		{0, vec3.T{5, 5, 5}},
		{1, vec3.T{4, 5, 5}},
		{2.5, vec3.T{2.5, 5, 5}},
		{-1, vec3.T{6, 5, 5}},
	}

	for _, tc := range testCases {
		if diff := cmp.Diff(r.Eval(tc.t), tc.want); diff != "" {
			t.Errorf("Eval(%v); diff (-got +want)\n%s", tc.t, diff)
		}
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		x, want float64
	}{
		{-3, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tc := range testCases {
		if got := Clamp(tc.x, 0, 1); got != tc.want {
			t.Errorf("Clamp(%v, 0, 1) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestSpanFraction(t *testing.T) {
	s := Span{Lo: -1, Hi: 10}

	testCases := []struct {
		t, want float64
	}{
		{-5, 0},
		{-1, 0},
		{4.5, 0.5},
		{10, 1},
		{100, 1},
	}

	for _, tc := range testCases {
		if got := s.Fraction(tc.t); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Fraction(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}
