package main

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"250", 250, false},
		{"3000000000", 3_000_000_000, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseID(%q) = %d, %v; want %d, err=%v", tt.arg, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"2015", 2015, false},
		{"1", 1, false},
		{"9999", 9999, false},
		{"0", 0, true},
		{"10000", 0, true},
		{"twenty", 0, true},
	}

	for _, tt := range tests {
		got, err := parseYear(tt.arg)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseYear(%q) = %d, %v; want %d, err=%v", tt.arg, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestQueryCommandsRejectBadArgumentsBeforeConnecting(t *testing.T) {
	tests := [][]string{
		{"director", "abc"},
		{"business", "0"},
		{"businesses-in-year", "20150"},
	}

	for _, args := range tests {
		cmd := newQueryCmd()
		cmd.SetArgs(args)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		if err := cmd.Execute(); err == nil {
			t.Errorf("query %v succeeded, want argument error", args)
		}
	}
}
