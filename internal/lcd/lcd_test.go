package lcd

import "testing"

func TestFitLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Temp: 72.5 F", "Temp: 72.5 F"},
		{"exactly sixteen!", "exactly sixteen!"},
		{"this line is longer than the display", "this line is lon"},
	}
	for _, tt := range tests {
		if got := FitLine(tt.in); got != tt.want {
			t.Errorf("FitLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFakeDisplayRecords(t *testing.T) {
	f := NewFakeDisplay()

	f.WriteLines("Feb 19  08:00:00", "Temp: 72.5 F")
	f.WriteLines("Feb 19  08:00:01", "HEAT SP: 72 F")

	if len(f.Lines) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(f.Lines))
	}
	l1, l2 := f.Last()
	if l1 != "Feb 19  08:00:01" || l2 != "HEAT SP: 72 F" {
		t.Errorf("unexpected last lines: %q / %q", l1, l2)
	}
}

func TestFakeDisplayTruncates(t *testing.T) {
	f := NewFakeDisplay()
	f.WriteLines("a line far wider than sixteen chars", "ok")
	l1, _ := f.Last()
	if len(l1) != Columns {
		t.Errorf("expected %d chars, got %d (%q)", Columns, len(l1), l1)
	}
}
