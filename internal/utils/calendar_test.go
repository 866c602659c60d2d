package utils

import (
	"testing"
	"time"
)

func TestBusinessCalendar_AddBusinessDays(t *testing.T) {
	bc := NewBusinessCalendar()

	tests := []struct {
		name string
		from time.Time
		n    int
		want string
	}{
		{
			name: "midweek",
			from: time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC),
			n:    3,
			want: "2026-03-16",
		},
		{
			name: "skips weekend",
			from: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: "2026-03-16",
		},
		{
			name: "skips christmas",
			from: time.Date(2026, 12, 24, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: "2026-12-28",
		},
		{
			name: "skips observed independence day",
			from: time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: "2026-07-06",
		},
		{
			name: "spans a weekend and a holiday",
			from: time.Date(2026, 12, 23, 16, 0, 0, 0, time.UTC),
			n:    3,
			want: "2026-12-29",
		},
		{
			name: "negative days",
			from: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
			n:    -2,
			want: "2026-03-11",
		},
		{
			name: "zero days",
			from: time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
			n:    0,
			want: "2026-03-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bc.AddBusinessDays(tt.from, tt.n)
			if FormatDate(got) != tt.want {
				t.Errorf("AddBusinessDays() = %s, want %s", FormatDate(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("AddBusinessDays() = %v, want midnight", got)
			}
		})
	}
}

func TestBusinessCalendar_IsBusinessDay(t *testing.T) {
	bc := NewBusinessCalendar()

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"weekday", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"saturday", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"sunday", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"new year", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"thanksgiving", time.Date(2026, 11, 26, 0, 0, 0, 0, time.UTC), false},
		{"day after thanksgiving", time.Date(2026, 11, 27, 0, 0, 0, 0, time.UTC), true},
		{"observed independence day", time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC), false},
		{"afternoon of a weekday", time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bc.IsBusinessDay(tt.day); got != tt.want {
				t.Errorf("IsBusinessDay(%s) = %v, want %v", FormatDate(tt.day), got, tt.want)
			}
		})
	}
}
