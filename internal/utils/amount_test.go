package utils_test

import (
	"testing"

	"github.com/hance08/bankist/internal/utils"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"150", "150", false},
		{" 150.5 ", "150.5", false},
		{"-20", "-20", false},
		{"0", "0", false},
		{"", "", true},
		{"abc", "", true},
		{"1.2.3", "", true},
		{"1e3", "", true},
		{"1,000", "", true},
	}

	for _, tt := range tests {
		got, err := utils.ParseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) = %s, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatPlain(t *testing.T) {
	if got := utils.FormatPlain(decimal.RequireFromString("-306.5")); got != "-306.50" {
		t.Errorf("FormatPlain = %q, want -306.50", got)
	}
}
