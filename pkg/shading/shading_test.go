package shading

import (
	"math"
	"testing"
)

func TestComputeAngle_NilBox(t *testing.T) {
	points := [][2]float64{{0, 0}, {100, -50}, {-1e9, 1e9}, {math.NaN(), 3}}
	for _, p := range points {
		if got := ComputeAngle(nil, p[0], p[1]); got != 0 {
			t.Errorf("ComputeAngle(nil, %v, %v) = %v, want 0", p[0], p[1], got)
		}
	}
}

func TestComputeAngle_Directions(t *testing.T) {
	box := &BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
	// 视觉中心 (50, 62.5)
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"视觉中心", 50, 62.5, 0},
		{"正下方", 50, 200, 0},
		{"正上方", 50, -100, math.Pi},
		{"右侧", 300, 62.5, math.Pi / 2},
		{"左侧", -300, 62.5, -math.Pi / 2},
		{"右下 45°", 150, 162.5, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAngle(box, tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ComputeAngle(box, %v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestComputeAngle_RangeAndFinite(t *testing.T) {
	boxes := []BoundingBox{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: -40, Y: 25, Width: 0, Height: 0},
		{X: 300, Y: 10, Width: 320, Height: 600},
	}

	for _, box := range boxes {
		b := box
		for x := -1000.0; x <= 1000; x += 37.5 {
			for y := -1000.0; y <= 1000; y += 41.25 {
				got := ComputeAngle(&b, x, y)
				if math.IsNaN(got) || math.IsInf(got, 0) {
					t.Fatalf("ComputeAngle(%+v, %v, %v) = %v, want finite", b, x, y, got)
				}
				if got <= -math.Pi || got > math.Pi {
					t.Fatalf("ComputeAngle(%+v, %v, %v) = %v, want in (-π, π]", b, x, y, got)
				}
			}
		}
	}
}

func TestComputeAngle_NegativeZeroFolded(t *testing.T) {
	box := &BoundingBox{}
	got := ComputeAngle(box, math.Copysign(0, -1), -5)
	if got != math.Pi {
		t.Errorf("ComputeAngle(zero box, -0, -5) = %v, want π", got)
	}
}

func TestComputeAngle_ZeroSizeBox(t *testing.T) {
	box := &BoundingBox{X: 10, Y: 10}
	got := ComputeAngle(box, 20, 10)
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("ComputeAngle(zero size, 20, 10) = %v, want π/2", got)
	}
}

func TestComputeShade_Values(t *testing.T) {
	tests := []struct {
		name       string
		angle, rot float64
		want       float64
	}{
		{"零相位取下限", 0, 0, 0.5},
		{"视觉中心右侧", 0, RotationOffset, 0.63},
		{"视觉中心左侧", 0, -RotationOffset, 0.63},
		{"半周期取上限", math.Pi, 0, 1},
		{"远离左侧-右半", -math.Pi / 2, RotationOffset, 0.52},
		{"远离左侧-左半", -math.Pi / 2, -RotationOffset, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeShade(tt.angle, tt.rot); got != tt.want {
				t.Errorf("ComputeShade(%v, %v) = %v, want %v", tt.angle, tt.rot, got, tt.want)
			}
		})
	}
}

func TestComputeShade_RangeAndRounding(t *testing.T) {
	for a := -4 * math.Pi; a <= 4*math.Pi; a += 0.0173 {
		for _, rot := range []float64{-RotationOffset, 0, RotationOffset, 1.234} {
			got := ComputeShade(a, rot)
			if got < 0.5 || got > 1 {
				t.Fatalf("ComputeShade(%v, %v) = %v, want in [0.5, 1]", a, rot, got)
			}
			if scaled := got * 100; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Fatalf("ComputeShade(%v, %v) = %v, not rounded to 2 decimals", a, rot, got)
			}
		}
	}
}

func TestComputeShade_SignSymmetry(t *testing.T) {
	for a := -3.0; a <= 3.0; a += 0.11 {
		for b := -2.0; b <= 2.0; b += 0.37 {
			if ComputeShade(a, b) != ComputeShade(-a, -b) {
				t.Fatalf("ComputeShade(%v, %v) != ComputeShade(%v, %v)", a, b, -a, -b)
			}
		}
	}
}

func TestComputeShade_Idempotent(t *testing.T) {
	first := ComputeShade(1.2345, RotationOffset)
	for i := 0; i < 10; i++ {
		if got := ComputeShade(1.2345, RotationOffset); got != first {
			t.Fatalf("call %d: ComputeShade = %v, want %v", i, got, first)
		}
	}
}

func TestCompute_OpticalCenterIsSymmetric(t *testing.T) {
	box := &BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
	for _, pol := range []Polarity{Dark, Light} {
		got := Compute(box, PointerPosition{X: 50, Y: 62.5}, pol)
		if got.Left != got.Right {
			t.Errorf("%v: Left=%v Right=%v, want equal", pol, got.Left, got.Right)
		}
		if got.Left != 0.63 {
			t.Errorf("%v: Left=%v, want 0.63", pol, got.Left)
		}
	}
}

func TestCompute_PolarityFlipsOrdering(t *testing.T) {
	box := &BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
	far := PointerPosition{X: -10000, Y: 62.5}

	dark := Compute(box, far, Dark)
	light := Compute(box, far, Light)

	if dark.Left != 1 || dark.Right != 0.52 {
		t.Errorf("dark = %+v, want {Left:1 Right:0.52}", dark)
	}
	if light.Left != 0.52 || light.Right != 1 {
		t.Errorf("light = %+v, want {Left:0.52 Right:1}", light)
	}
	if (dark.Left > dark.Right) == (light.Left > light.Right) {
		t.Errorf("polarity did not flip ordering: dark=%+v light=%+v", dark, light)
	}
}

func TestCompute_UnequalWhenAngleNonZero(t *testing.T) {
	box := &BoundingBox{X: 0, Y: 0, Width: 100, Height: 100}
	pointers := []PointerPosition{{X: -200, Y: 62.5}, {X: 400, Y: 62.5}, {X: 0, Y: 0}, {X: 100, Y: 300}}
	for _, p := range pointers {
		for _, pol := range []Polarity{Dark, Light} {
			got := Compute(box, p, pol)
			if got.Left == got.Right {
				t.Errorf("Compute(%+v, %v) = %+v, want unequal sides", p, pol, got)
			}
		}
	}
}

func TestCompute_NilBoxFallsBackToCenter(t *testing.T) {
	got := Compute(nil, PointerPosition{X: -500, Y: 900}, Light)
	want := ShadeResult{Left: 0.63, Right: 0.63}
	if got != want {
		t.Errorf("Compute(nil) = %+v, want %+v", got, want)
	}
}

func TestPolarity(t *testing.T) {
	if Dark.Sign() != 1 || Light.Sign() != -1 {
		t.Errorf("Sign: dark=%v light=%v, want 1 / -1", Dark.Sign(), Light.Sign())
	}
	for _, name := range []string{"dark", "light"} {
		p, ok := ParsePolarity(name)
		if !ok || p.String() != name {
			t.Errorf("ParsePolarity(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := ParsePolarity("sepia"); ok {
		t.Error("ParsePolarity(\"sepia\") should fail")
	}
}

func TestEvaluate_RereadsCollaborators(t *testing.T) {
	layout := &StaticBounds{}
	pointer := FixedPointer{X: -10000, Y: 62.5}
	theme := FixedTheme(Dark)

	// 尚未布局：退化为角度 0
	if got := Evaluate(layout, pointer, theme); got.Left != got.Right {
		t.Errorf("before layout: %+v, want equal sides", got)
	}

	layout.Box = BoundingBox{Width: 100, Height: 100}
	layout.Ready = true
	dark := Evaluate(layout, pointer, theme)

	theme = FixedTheme(Light)
	light := Evaluate(layout, pointer, theme)

	if dark == light {
		t.Errorf("theme switch not observed: dark=%+v light=%+v", dark, light)
	}
}
