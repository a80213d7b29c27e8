package sanitize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "nul byte dropped",
			input: "a\x00b",
			want:  "ab",
		},
		{
			name:  "low control range dropped",
			input: "a\x01\x02\x03\x04\x05\x06\x07\x08b",
			want:  "ab",
		},
		{
			name:  "vertical tab and form feed dropped",
			input: "a\x0b\x0cb",
			want:  "ab",
		},
		{
			name:  "tab newline carriage return dropped with category C",
			input: "a\tb\nc\rd",
			want:  "abcd",
		},
		{
			name:  "upper control range dropped",
			input: "a\x0e\x1fb",
			want:  "ab",
		},
		{
			name:  "unicode format chars dropped",
			input: "a​b‍c", // zero-width space, zero-width joiner
			want:  "abc",
		},
		{
			name:  "multibyte text preserved",
			input: "café 日本語 🙂",
			want:  "café 日本語 🙂",
		},
		{
			name:  "json body with embedded nul",
			input: `{"url":"https://example.com/a` + "\x00" + `.png"}`,
			want:  `{"url":"https://example.com/a.png"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// Cleaning an already clean string must change nothing.
			again := Clean(got)
			if again != got {
				t.Errorf("Clean not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestCleanPtr(t *testing.T) {
	if got := CleanPtr(nil); got != nil {
		t.Errorf("CleanPtr(nil) = %v, want nil", got)
	}

	dirty := "a\x00b"
	got := CleanPtr(&dirty)
	if got == nil || *got != "ab" {
		t.Errorf("CleanPtr(&%q) = %v, want ab", dirty, got)
	}
}
