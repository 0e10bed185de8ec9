package config

import "testing"

func TestParseOutputFmt(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFmt
		wantErr  bool
	}{
		{"css", OutputFmtCSS, false},
		{"list", OutputFmtList, false},
		{" CSS ", OutputFmtCSS, false},
		{"xml", OutputFmtCSS, true},
		{"", OutputFmtCSS, true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFmt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFmt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseOutputFmt(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestOutputFmt_String(t *testing.T) {
	for _, name := range OutputFmtNames() {
		if _, err := ParseOutputFmt(name); err != nil {
			t.Errorf("OutputFmtNames() entry %q does not parse back: %v", name, err)
		}
	}
}
