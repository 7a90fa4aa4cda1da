package utils

import "testing"

func TestApplyTextEdit(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		ev     TextInputEvent
		maxLen int
		want   string
	}{
		{"追加字符", "#7f", TextInputEvent{Chars: []rune("7f")}, 7, "#7f7f"},
		{"退格", "#7f7f7f", TextInputEvent{Backspace: true}, 7, "#7f7f7"},
		{"空文本退格", "", TextInputEvent{Backspace: true}, 7, ""},
		{"先退格再追加", "#7f7f7f", TextInputEvent{Backspace: true, Chars: []rune("0")}, 7, "#7f7f70"},
		{"超出长度被截断", "#7f7f7f", TextInputEvent{Chars: []rune("00")}, 7, "#7f7f7f"},
		{"忽略控制字符", "#", TextInputEvent{Chars: []rune{'a', '\t', 'b'}}, 7, "#ab"},
		{"不限长度", "abc", TextInputEvent{Chars: []rune("defgh")}, 0, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyTextEdit(tt.value, tt.ev, tt.maxLen); got != tt.want {
				t.Errorf("ApplyTextEdit(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
