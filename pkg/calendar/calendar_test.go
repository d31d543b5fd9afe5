package calendar

import "testing"

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		delta    int
		expected string
	}{
		{"Forward across year boundary", "2024-11", 3, "2025-02"},
		{"Backward within year", "2024-03", -2, "2024-01"},
		{"Backward across year boundary", "2024-01", -1, "2023-12"},
		{"Forward within year", "2024-01", 5, "2024-06"},
		{"Zero delta", "2024-07", 0, "2024-07"},
		{"Full year forward", "2024-06", 12, "2025-06"},
		{"Multiple years forward", "2020-01", 359, "2049-12"},
		{"Multiple years backward", "2024-02", -26, "2021-12"},
		{"December forward", "2024-12", 1, "2025-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParse(tt.start).AddMonths(tt.delta)
			if result.String() != tt.expected {
				t.Errorf("AddMonths(%s, %d) = %s, expected %s", tt.start, tt.delta, result, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		year    int
		month   int
	}{
		{"Valid date", "2024-05", false, 2024, 5},
		{"Invalid month", "2024-13", true, 0, 0},
		{"Missing month", "2024", true, 0, 0},
		{"Garbage", "not-a-date", true, 0, 0},
		{"Empty", "", true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, ym)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if ym.Year != tt.year || ym.Month != tt.month {
				t.Errorf("Parse(%q) = %v, expected %04d-%02d", tt.input, ym, tt.year, tt.month)
			}
		})
	}
}

func TestBefore(t *testing.T) {
	a := MustParse("2024-05")
	b := MustParse("2024-06")
	if !a.Before(b) {
		t.Error("expected 2024-05 to be before 2024-06")
	}
	if b.Before(a) {
		t.Error("expected 2024-06 not to be before 2024-05")
	}
	if a.Before(a) {
		t.Error("expected a date not to be before itself")
	}
	if !MustParse("2023-12").Before(MustParse("2024-01")) {
		t.Error("expected 2023-12 to be before 2024-01")
	}
}
