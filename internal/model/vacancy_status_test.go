package model

import "testing"

func TestParseVacancyState(t *testing.T) {
	cases := []struct {
		in   string
		want VacancyState
		ok   bool
	}{
		{"VACANT", StatusVacant, true},
		{" vacant_soon ", StatusVacantSoon, true},
		{"Closed", StatusClosed, true},
		{"NOT_SET", StatusNotSet, true},
		{"BOGUS_STATUS", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseVacancyState(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseVacancyState(%q) ok=%v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseVacancyState(%q)=%s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestUnitCategory_Valid(t *testing.T) {
	if !Category5PlusBHK.Valid() {
		t.Error("5+BHK should be valid")
	}
	if UnitCategory("PENTHOUSE").Valid() {
		t.Error("PENTHOUSE should not be valid")
	}
	if UnitCategory("studio").Valid() {
		t.Error("categories are case sensitive")
	}
}
