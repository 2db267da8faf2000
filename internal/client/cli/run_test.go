package cli

import "testing"

func TestParseSUDS(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"7", 7, false},
		{"10", 10, false},
		{"11", 0, true},
		{"70", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSUDS(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseSUDS(%q) = %d, expected error", tt.input, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseSUDS(%q) = %d, err=%v, want %d", tt.input, got, err, tt.want)
		}
	}
}
