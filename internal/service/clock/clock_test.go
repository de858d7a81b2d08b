package clock

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.Local)
}

func TestRoundToMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "tuesday rounds to following monday",
			in:   date(2019, time.January, 1, 0, 0, 0),
			want: date(2019, time.January, 7, 0, 0, 0),
		},
		{
			name: "wednesday rounds to following monday",
			in:   date(2019, time.January, 2, 0, 0, 0),
			want: date(2019, time.January, 7, 0, 0, 0),
		},
		{
			name: "monday rounds to the next monday, not itself",
			in:   date(2019, time.January, 7, 0, 0, 0),
			want: date(2019, time.January, 14, 0, 0, 0),
		},
		{
			name: "saturday rounds to monday",
			in:   date(2019, time.January, 5, 13, 37, 0),
			want: date(2019, time.January, 7, 0, 0, 0),
		},
		{
			name: "sunday rounds to monday",
			in:   date(2019, time.January, 6, 23, 59, 59),
			want: date(2019, time.January, 7, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundToMonday(tt.in); !got.Equal(tt.want) {
				t.Errorf("RoundToMonday(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name            string
		a, b            time.Time
		excludeWeekends bool
		want            time.Duration
	}{
		{
			name: "full week, wall clock",
			a:    date(2019, time.January, 1, 0, 0, 0), // Tue
			b:    date(2019, time.January, 8, 0, 0, 0), // Tue
			want: 7 * day,
		},
		{
			name:            "full week, business days",
			a:               date(2019, time.January, 1, 0, 0, 0),
			b:               date(2019, time.January, 8, 0, 0, 0),
			excludeWeekends: true,
			want:            5 * day,
		},
		{
			name: "same instant, wall clock",
			a:    date(2019, time.January, 1, 0, 0, 0),
			b:    date(2019, time.January, 1, 0, 0, 0),
			want: 0,
		},
		{
			name:            "same instant, business days",
			a:               date(2019, time.January, 1, 0, 0, 0),
			b:               date(2019, time.January, 1, 0, 0, 0),
			excludeWeekends: true,
			want:            0,
		},
		{
			name: "sub-day remainder, wall clock",
			a:    date(2018, time.December, 31, 23, 59, 59),
			b:    date(2019, time.January, 8, 0, 0, 0),
			want: 7*day + time.Second,
		},
		{
			name:            "sub-day remainder survives weekend skipping",
			a:               date(2018, time.December, 31, 23, 59, 59),
			b:               date(2019, time.January, 8, 0, 0, 0),
			excludeWeekends: true,
			want:            5*day + time.Second,
		},
		{
			name: "saturday to sunday, wall clock",
			a:    date(2019, time.January, 5, 0, 0, 0),
			b:    date(2019, time.January, 6, 0, 0, 0),
			want: day,
		},
		{
			name:            "saturday to sunday collapses onto the same monday",
			a:               date(2019, time.January, 5, 0, 0, 0),
			b:               date(2019, time.January, 6, 0, 0, 0),
			excludeWeekends: true,
			want:            0,
		},
		{
			name: "saturday to monday morning, wall clock",
			a:    date(2019, time.January, 5, 0, 0, 0),
			b:    date(2019, time.January, 7, 0, 0, 1),
			want: 2*day + time.Second,
		},
		{
			name:            "saturday to monday morning, business days",
			a:               date(2019, time.January, 5, 0, 0, 0),
			b:               date(2019, time.January, 7, 0, 0, 1),
			excludeWeekends: true,
			want:            time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Diff(tt.a, tt.b, tt.excludeWeekends); got != tt.want {
				t.Errorf("Diff(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.excludeWeekends, got, tt.want)
			}
		})
	}
}

// Antisymmetry must hold for every pair of instants and both flag
// values, including pairs that start or end inside a weekend.
func TestDiff_Antisymmetry(t *testing.T) {
	instants := []time.Time{
		date(2019, time.January, 1, 0, 0, 0),    // Tue
		date(2019, time.January, 4, 17, 30, 12), // Fri
		date(2019, time.January, 5, 8, 0, 0),    // Sat
		date(2019, time.January, 6, 23, 59, 59), // Sun
		date(2019, time.January, 7, 0, 0, 0),    // Mon
		date(2019, time.February, 28, 12, 0, 0),
	}

	for _, a := range instants {
		for _, b := range instants {
			for _, excl := range []bool{false, true} {
				got := Diff(a, b, excl)
				neg := Diff(b, a, excl)
				if got != -neg {
					t.Errorf("Diff(%v, %v, %v) = %v, but Diff reversed = %v", a, b, excl, got, neg)
				}
				if a.Equal(b) && got != 0 {
					t.Errorf("Diff(%v, %v, %v) = %v, want 0", a, b, excl, got)
				}
			}
		}
	}
}
