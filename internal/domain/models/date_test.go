package models

import "testing"

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		in     Date
		months int
		want   string
	}{
		{NewDate(2021, 1, 31), 1, "2021-02-28"},
		{NewDate(2020, 1, 31), 1, "2020-02-29"}, // leap year
		{NewDate(2021, 1, 31), 3, "2021-04-30"},
		{NewDate(2021, 3, 15), 0, "2021-03-15"},
		{NewDate(2021, 11, 30), 3, "2022-02-28"},
		{NewDate(2021, 12, 1), 1, "2022-01-01"},
		{NewDate(2021, 1, 1), 24, "2023-01-01"},
	}
	for _, c := range cases {
		if got := c.in.AddMonths(c.months); got.String() != c.want {
			t.Errorf("%s + %d months: expected %s, got %s", c.in, c.months, c.want, got)
		}
	}
}

func TestAddMonthsNegativeUsesFloorSemantics(t *testing.T) {
	cases := []struct {
		in     Date
		months int
		want   string
	}{
		{NewDate(2021, 3, 31), -1, "2021-02-28"},
		{NewDate(2021, 1, 15), -1, "2020-12-15"},
		{NewDate(2021, 1, 15), -13, "2019-12-15"},
	}
	for _, c := range cases {
		if got := c.in.AddMonths(c.months); got.String() != c.want {
			t.Errorf("%s + %d months: expected %s, got %s", c.in, c.months, c.want, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-06-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2021 || d.Month != 6 || d.Day != 9 {
		t.Fatalf("unexpected date %+v", d)
	}
	if _, err := ParseDate("09/06/2021"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2021, 1, 31)
	b := NewDate(2021, 2, 1)
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("ordering broken for %s vs %s", a, b)
	}
	if !a.Equal(NewDate(2021, 1, 31)) {
		t.Fatalf("expected equality")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2021, 2, 28},
		{2020, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2021, 4, 30},
		{2021, 12, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("%d-%02d: expected %d days, got %d", c.year, c.month, c.want, got)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2021, 2, 28)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2021-02-28"` {
		t.Fatalf("unexpected JSON %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s", back)
	}
}
