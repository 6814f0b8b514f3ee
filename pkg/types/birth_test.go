package types

import (
	"errors"
	"testing"
	"time"
)

func TestNewBirthInput(t *testing.T) {
	date := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		weekday string
		wantErr error
	}{
		{
			name:    "zero date returns ErrDateZero",
			date:    time.Time{},
			weekday: "",
			wantErr: ErrDateZero,
		},
		{
			name:    "unknown weekday label rejected",
			date:    date,
			weekday: "someday",
			wantErr: ErrUnknownWeekday,
		},
		{
			name:    "empty weekday label accepted",
			date:    date,
			weekday: "",
			wantErr: nil,
		},
		{
			name:    "known Thai weekday label accepted",
			date:    date,
			weekday: WeekdayTuesday,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewBirthInput(tt.date, tt.weekday)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				if !in.Date.Equal(tt.date) || in.WeekdayLabel != tt.weekday {
					t.Errorf("input = %+v, want date %v label %q", in, tt.date, tt.weekday)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
