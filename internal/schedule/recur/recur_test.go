package recur

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestDates(t *testing.T) {
	tests := []struct {
		name    string
		anchor  time.Time
		end     time.Time
		weekday time.Weekday
		want    []time.Time
	}{
		{
			name:    "four mondays in january",
			anchor:  date(2024, time.January, 1, 9, 0), // Monday
			end:     date(2024, time.January, 22, 0, 0),
			weekday: time.Monday,
			want: []time.Time{
				date(2024, time.January, 1, 9, 0),
				date(2024, time.January, 8, 9, 0),
				date(2024, time.January, 15, 9, 0),
				date(2024, time.January, 22, 9, 0),
			},
		},
		{
			name:    "end before anchor yields nothing",
			anchor:  date(2024, time.March, 10, 18, 30),
			end:     date(2024, time.March, 3, 0, 0),
			weekday: time.Sunday,
			want:    nil,
		},
		{
			name:    "end equal to anchor yields nothing",
			anchor:  date(2024, time.March, 10, 18, 30),
			end:     date(2024, time.March, 10, 18, 30),
			weekday: time.Sunday,
			want:    nil,
		},
		{
			name:    "end day excludes the next occurrence",
			anchor:  date(2024, time.February, 2, 14, 0), // Friday
			end:     date(2024, time.February, 15, 0, 0), // Thursday
			weekday: time.Friday,
			want: []time.Time{
				date(2024, time.February, 2, 14, 0),
				date(2024, time.February, 9, 14, 0),
			},
		},
		{
			name:    "single occurrence window",
			anchor:  date(2024, time.June, 5, 8, 0), // Wednesday
			end:     date(2024, time.June, 6, 0, 0),
			weekday: time.Wednesday,
			want: []time.Time{
				date(2024, time.June, 5, 8, 0),
			},
		},
		{
			name:    "crosses a month boundary",
			anchor:  date(2024, time.January, 27, 10, 0), // Saturday
			end:     date(2024, time.February, 10, 0, 0),
			weekday: time.Saturday,
			want: []time.Time{
				date(2024, time.January, 27, 10, 0),
				date(2024, time.February, 3, 10, 0),
				date(2024, time.February, 10, 10, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dates(tt.anchor, tt.end, tt.weekday)
			if len(got) != len(tt.want) {
				t.Fatalf("Dates() returned %d dates, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("Dates()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDatesProperties(t *testing.T) {
	anchor := date(2024, time.May, 7, 16, 45) // Tuesday
	end := date(2024, time.August, 1, 0, 0)

	got := Dates(anchor, end, anchor.Weekday())
	if len(got) == 0 {
		t.Fatal("expected at least one date")
	}

	if !got[0].Equal(anchor) {
		t.Errorf("first date = %v, want anchor %v", got[0], anchor)
	}

	for i, d := range got {
		if d.Weekday() != time.Tuesday {
			t.Errorf("date %v falls on %v, want Tuesday", d, d.Weekday())
		}
		if d.Before(anchor) {
			t.Errorf("date %v is before anchor", d)
		}
		if d.Year() == end.Year() && d.YearDay() > end.YearDay() {
			t.Errorf("date %v is past the end date", d)
		}
		if i > 0 {
			if diff := d.Sub(got[i-1]); diff != 7*24*time.Hour {
				t.Errorf("gap between %v and %v = %v, want 168h", got[i-1], d, diff)
			}
		}
	}
}
