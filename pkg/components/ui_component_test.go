package components

import (
	"testing"

	"github.com/decker502/beauty/pkg/config"
)

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
		str   string
	}{
		{"UINormal should be 0", UINormal, 0, "normal"},
		{"UIHovered should be 1", UIHovered, 1, "hovered"},
		{"UIClicked should be 2", UIClicked, 2, "clicked"},
		{"UIDisabled should be 3", UIDisabled, 3, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.str {
				t.Errorf("Expected String() %q, got %q", tt.str, tt.state.String())
			}
		})
	}

	if UIState(42).String() != "unknown" {
		t.Errorf("Expected unknown state name, got %q", UIState(42).String())
	}
}

// TestBoundsSlot tests that a slot reads its rect from the layout.
func TestBoundsSlot(t *testing.T) {
	bounds := BoundsComponent{
		Slot: func(l *config.Layout) (config.Rect, bool) {
			return l.ResetButton, true
		},
	}

	layout := config.ComputeLayout(960, 600)
	rect, visible := bounds.Slot(&layout)
	if !visible {
		t.Fatal("Expected slot to be visible")
	}
	if rect != layout.ResetButton {
		t.Errorf("Expected %+v, got %+v", layout.ResetButton, rect)
	}
}
