package projectcode

import (
	"testing"

	"timesheet-backend/internal/models"
)

func TestMake(t *testing.T) {
	pc := Make("7", 1, "A")
	if pc.Code != "0007.0001A" {
		t.Errorf("expected code '0007.0001A', got '%s'", pc.Code)
	}
	if pc.CustomerCode != "0007" {
		t.Errorf("expected customer code '0007', got '%s'", pc.CustomerCode)
	}
	if pc.Serial != 1 || pc.Suffix != "A" {
		t.Errorf("unexpected serial/suffix: %d/%s", pc.Serial, pc.Suffix)
	}
}

func TestMake_AlreadyPadded(t *testing.T) {
	pc := Make("0012", 305, "Z")
	if pc.Code != "0012.0305Z" {
		t.Errorf("expected code '0012.0305Z', got '%s'", pc.Code)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	pc := Make("42", 27, SuffixFor(27))
	cust, serial, suffix, err := Parse(pc.Code)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cust != "0042" || serial != 27 || suffix != "A" {
		t.Errorf("round trip mismatch: %s/%d/%s", cust, serial, suffix)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, code := range []string{"", "0001", "0001.001A", "00010001A", "0001.0001a", "0001.00011"} {
		if _, _, _, err := Parse(code); err == nil {
			t.Errorf("expected error for %q", code)
		}
	}
}

func TestSuffixFor_WrapsAround(t *testing.T) {
	cases := map[int]string{1: "A", 2: "B", 25: "Y", 26: "Z", 27: "A", 52: "Z", 53: "A"}
	for serial, want := range cases {
		if got := SuffixFor(serial); got != want {
			t.Errorf("SuffixFor(%d) = %s, want %s", serial, got, want)
		}
	}
}

func TestSuffixFor_Period26(t *testing.T) {
	// N обновлений от serial=1 проходят A..Z и начинают сначала
	for serial := 1; serial <= 100; serial++ {
		if SuffixFor(serial) != SuffixFor(serial+26) {
			t.Fatalf("suffix period broken at serial %d", serial)
		}
	}
}

func TestTotals(t *testing.T) {
	assignments := []models.Assignment{
		{Hours: 10, HourlyRate: 50},
		{Hours: 5, HourlyRate: 100},
	}
	hours, cost, avg := Totals(assignments)
	if hours != 15 {
		t.Errorf("expected 15 hours, got %v", hours)
	}
	if cost != 1000 {
		t.Errorf("expected cost 1000, got %v", cost)
	}
	if avg != 1000.0/15.0 {
		t.Errorf("unexpected average rate %v", avg)
	}
}

func TestTotals_Empty(t *testing.T) {
	hours, cost, avg := Totals(nil)
	if hours != 0 || cost != 0 || avg != 0 {
		t.Errorf("expected zeros, got %v/%v/%v", hours, cost, avg)
	}
}
