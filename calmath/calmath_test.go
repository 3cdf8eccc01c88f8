package calmath

import (
	"testing"
	"time"

	// The tests reference zones by name and must not depend on the
	// host's zoneinfo database.
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-chrono/date"
	"github.com/ngrash/go-chrono/tsparse"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

// sameWall reports whether two times show the same wall clock reading in
// the same zone and denote the same instant.
func sameWall(a, b time.Time) bool {
	return a.Equal(b) && a.Format(time.RFC3339Nano) == b.Format(time.RFC3339Nano)
}

func TestDayStart(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")
	got := DayStart(date.Date{Year: 2017, Month: time.November, Day: 12}, hki)
	want := time.Date(2017, 11, 12, 0, 0, 0, 0, hki)
	if !sameWall(got, want) {
		t.Errorf("DayStart() = %v, want %v", got, want)
	}
}

func TestDayEnd(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")
	got := DayEnd(date.Date{Year: 2017, Month: time.November, Day: 12}, hki)
	want := time.Date(2017, 11, 12, 23, 59, 59, 0, hki)
	if !sameWall(got, want) {
		t.Errorf("DayEnd() = %v, want %v", got, want)
	}
}

func TestMonthStart(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")
	got := MonthStart(2018, time.November, hki)
	want := time.Date(2018, 11, 1, 0, 0, 0, 0, hki)
	if !sameWall(got, want) {
		t.Errorf("MonthStart() = %v, want %v", got, want)
	}
}

func TestMonthEnd(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")

	tests := []struct {
		year  int
		month time.Month
		want  time.Time
	}{
		{2018, time.November, time.Date(2018, 11, 30, 23, 59, 59, 0, hki)},
		{2018, time.February, time.Date(2018, 2, 28, 23, 59, 59, 0, hki)},
		{2016, time.February, time.Date(2016, 2, 29, 23, 59, 59, 0, hki)},
		{2018, time.December, time.Date(2018, 12, 31, 23, 59, 59, 0, hki)},
	}
	for _, tt := range tests {
		got := MonthEnd(tt.year, tt.month, hki)
		if !sameWall(got, tt.want) {
			t.Errorf("MonthEnd(%d, %v) = %v, want %v", tt.year, tt.month, got, tt.want)
		}
	}
}

// Localize discards whatever zone the input carried; the target zone
// always wins.
func TestLocalize(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")
	sgp := mustLoc(t, "Asia/Singapore")

	in := time.Date(2017, 11, 12, 3, 5, 4, 0, sgp)
	got := Localize(in, hki)
	want := time.Date(2017, 11, 12, 3, 5, 4, 0, hki)
	if !sameWall(got, want) {
		t.Errorf("Localize() = %v, want %v", got, want)
	}
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		d    date.Date
		want date.Date
	}{
		{date.Date{Year: 2018, Month: time.February, Day: 14}, date.Date{Year: 2018, Month: time.February, Day: 15}}, // Wed -> Thu
		{date.Date{Year: 2018, Month: time.February, Day: 16}, date.Date{Year: 2018, Month: time.February, Day: 19}}, // Fri -> Mon
		{date.Date{Year: 2018, Month: time.February, Day: 17}, date.Date{Year: 2018, Month: time.February, Day: 19}}, // Sat -> Mon
		{date.Date{Year: 2018, Month: time.February, Day: 18}, date.Date{Year: 2018, Month: time.February, Day: 19}}, // Sun -> Mon
	}
	for _, tt := range tests {
		got := NextBusinessDay(tt.d)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("NextBusinessDay(%v) mismatch (-want +got):\n%s", tt.d, diff)
		}
	}
}

func TestPreviousBusinessDay(t *testing.T) {
	tests := []struct {
		d    date.Date
		want date.Date
	}{
		{date.Date{Year: 2018, Month: time.February, Day: 14}, date.Date{Year: 2018, Month: time.February, Day: 13}}, // Wed -> Tue
		{date.Date{Year: 2018, Month: time.February, Day: 12}, date.Date{Year: 2018, Month: time.February, Day: 9}},  // Mon -> Fri
		{date.Date{Year: 2018, Month: time.February, Day: 11}, date.Date{Year: 2018, Month: time.February, Day: 9}},  // Sun -> Fri
		{date.Date{Year: 2018, Month: time.February, Day: 10}, date.Date{Year: 2018, Month: time.February, Day: 9}},  // Sat -> Fri
	}
	for _, tt := range tests {
		got := PreviousBusinessDay(tt.d)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PreviousBusinessDay(%v) mismatch (-want +got):\n%s", tt.d, diff)
		}
	}
}

// Stepping never lands on a weekend and strictly advances across them.
func TestBusinessDay_NeverWeekend(t *testing.T) {
	d := date.Date{Year: 2018, Month: time.January, Day: 1}
	for i := 0; i < 30; i++ {
		next := NextBusinessDay(d)
		if wd := next.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("NextBusinessDay(%v) = %v, a %v", d, next, wd)
		}
		d = next
	}
	for i := 0; i < 30; i++ {
		prev := PreviousBusinessDay(d)
		if wd := prev.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("PreviousBusinessDay(%v) = %v, a %v", d, prev, wd)
		}
		d = prev
	}
}

func TestCeil(t *testing.T) {
	grid := 15 * time.Minute
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2018, 2, 15, 12, 38, 0, 0, time.UTC), time.Date(2018, 2, 15, 12, 45, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 12, 45, 0, 0, time.UTC), time.Date(2018, 2, 15, 12, 45, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 12, 46, 0, 0, time.UTC), time.Date(2018, 2, 15, 13, 0, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 13, 14, 0, 0, time.UTC), time.Date(2018, 2, 15, 13, 15, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 13, 22, 0, 0, time.UTC), time.Date(2018, 2, 15, 13, 30, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 23, 48, 0, 0, time.UTC), time.Date(2018, 2, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := Ceil(tt.in, grid)
		if !sameWall(got, tt.want) {
			t.Errorf("Ceil(%v, %v) = %v, want %v", tt.in, grid, got, tt.want)
		}
	}
}

// The grid is local to the instant's zone.
func TestCeil_ZoneLocal(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")
	grid := 15 * time.Minute

	got := Ceil(time.Date(2018, 2, 15, 12, 38, 0, 0, hki), grid)
	want := time.Date(2018, 2, 15, 12, 45, 0, 0, hki)
	if !sameWall(got, want) {
		t.Errorf("Ceil() = %v, want %v", got, want)
	}

	unchanged := time.Date(2018, 2, 15, 12, 45, 0, 0, hki)
	if got := Ceil(unchanged, grid); !sameWall(got, unchanged) {
		t.Errorf("Ceil() = %v, want unchanged %v", got, unchanged)
	}
}

func TestFloor(t *testing.T) {
	grid := 15 * time.Minute
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2018, 2, 15, 12, 38, 0, 0, time.UTC), time.Date(2018, 2, 15, 12, 30, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 12, 45, 0, 0, time.UTC), time.Date(2018, 2, 15, 12, 45, 0, 0, time.UTC)},
		{time.Date(2018, 2, 15, 0, 7, 12, 0, time.UTC), time.Date(2018, 2, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := Floor(tt.in, grid)
		if !sameWall(got, tt.want) {
			t.Errorf("Floor(%v, %v) = %v, want %v", tt.in, grid, got, tt.want)
		}
	}
}

// On-grid instants are fixed points of both roundings.
func TestCeilFloor_Idempotent(t *testing.T) {
	grids := []time.Duration{time.Minute, 15 * time.Minute, time.Hour, 24 * time.Hour, 500 * time.Millisecond}
	x := time.Date(2018, 2, 15, 12, 38, 13, 123456000, time.UTC)
	for _, grid := range grids {
		f := Floor(x, grid)
		c := Ceil(x, grid)
		if got := Ceil(f, grid); !got.Equal(f) {
			t.Errorf("Ceil(Floor(x), %v) = %v, want %v", grid, got, f)
		}
		if got := Floor(c, grid); !got.Equal(c) {
			t.Errorf("Floor(Ceil(x), %v) = %v, want %v", grid, got, c)
		}
	}
}

func TestCeilFloor_NonPositiveGrid(t *testing.T) {
	x := time.Date(2018, 2, 15, 12, 38, 0, 0, time.UTC)
	if got := Ceil(x, 0); !got.Equal(x) {
		t.Errorf("Ceil(x, 0) = %v, want x", got)
	}
	if got := Floor(x, -time.Minute); !got.Equal(x) {
		t.Errorf("Floor(x, -1m) = %v, want x", got)
	}
}

func TestCommonZone(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")

	naive := tsparse.Instant{Time: time.Date(2014, 12, 3, 9, 0, 0, 0, time.UTC)}
	zoned := time.Date(2014, 12, 3, 5, 0, 0, 0, hki)

	if got := CommonZone(date.Date{Year: 2018, Month: time.November, Day: 3}, naive); got != time.UTC {
		t.Errorf("CommonZone() = %v, want UTC", got)
	}
	if got := CommonZone(date.Date{Year: 2018, Month: time.November, Day: 3}, zoned); got != hki {
		t.Errorf("CommonZone() = %v, want Europe/Helsinki", got)
	}
	if got := CommonZone(naive, zoned); got != hki {
		t.Errorf("CommonZone() = %v, want Europe/Helsinki", got)
	}
}

func TestNormalize(t *testing.T) {
	hki := mustLoc(t, "Europe/Helsinki")

	d1 := date.Date{Year: 2018, Month: time.November, Day: 3}
	d2 := time.Date(2014, 12, 3, 5, 0, 0, 0, hki)
	d3 := tsparse.Instant{Time: time.Date(2014, 12, 3, 9, 0, 0, 0, time.UTC)} // naive
	d4 := time.Date(2014, 12, 3, 5, 0, 0, 0, time.UTC)

	got, err := Normalize(d1, d2, d3, d4)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Time{
		time.Date(2018, 11, 3, 0, 0, 0, 0, hki),
		d2,
		time.Date(2014, 12, 3, 9, 0, 0, 0, hki),
		d4,
	}
	if len(got) != len(want) {
		t.Fatalf("Normalize() returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if !sameWall(got[i], want[i]) {
			t.Errorf("Normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNormalize_UnknownType(t *testing.T) {
	if _, err := Normalize("2018-11-03"); err == nil {
		t.Error("Normalize(string) = nil error, want error")
	}
}

func TestMinMaxTime(t *testing.T) {
	if got := MinTime; !got.Equal(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MinTime = %v", got)
	}
	if got := MaxTime; !got.Equal(time.Date(9999, 12, 31, 23, 59, 59, 999999000, time.UTC)) {
		t.Errorf("MaxTime = %v", got)
	}
	if !MinTime.Before(MaxTime) {
		t.Error("MinTime is not before MaxTime")
	}
}
