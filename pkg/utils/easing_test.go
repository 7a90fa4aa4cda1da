package utils

import (
	"math"
	"testing"
)

// TestEaseInOutCubic 测试三次方缓入缓出
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.0625},
		{"中点", 0.5, 0.5},
		{"四分之三", 0.75, 0.9375},
		{"终点", 1.0, 1.0},
		{"小于 0 截断", -1, 0},
		{"大于 1 截断", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(0, 180, 0.5); got != 90 {
		t.Errorf("Lerp(0, 180, 0.5) = %v, 期望 90", got)
	}
	if got := Lerp(1, 0, 1); got != 0 {
		t.Errorf("Lerp(1, 0, 1) = %v, 期望 0", got)
	}
}

// TestTransition 测试过渡进度
func TestTransition(t *testing.T) {
	tr := Transition{Duration: 0.5}
	if tr.Running() || tr.Progress() != 1 {
		t.Fatalf("未开始时 Running=%v Progress=%v", tr.Running(), tr.Progress())
	}

	tr.Start()
	if !tr.Running() || tr.Progress() != 0 {
		t.Fatalf("开始后 Running=%v Progress=%v", tr.Running(), tr.Progress())
	}

	tr.Update(0.25)
	if math.Abs(tr.Progress()-0.5) > 0.001 {
		t.Errorf("进行到一半 Progress=%v, 期望 0.5", tr.Progress())
	}

	tr.Update(0.25)
	if tr.Running() || tr.Progress() != 1 {
		t.Errorf("结束后 Running=%v Progress=%v", tr.Running(), tr.Progress())
	}
}

// TestTransitionZeroDuration 测试时长为 0 的过渡立即完成
func TestTransitionZeroDuration(t *testing.T) {
	tr := Transition{}
	tr.Start()
	if tr.Running() || tr.Progress() != 1 {
		t.Errorf("Running=%v Progress=%v", tr.Running(), tr.Progress())
	}
}
