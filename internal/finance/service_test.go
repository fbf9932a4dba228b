package finance

import (
	"errors"
	"testing"
	"time"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{
			name:     "mid year",
			month:    "2025-06",
			wantFrom: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			month:    "2024-12",
			wantFrom: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing month part",
			month:   "2025",
			wantErr: true,
		},
		{
			name:    "full date rejected",
			month:   "2025-06-15",
			wantErr: true,
		},
		{
			name:    "empty",
			month:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := monthWindow(tt.month)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMonth) {
					t.Fatalf("expected ErrInvalidMonth, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !from.Equal(tt.wantFrom) {
				t.Errorf("expected from %v, got %v", tt.wantFrom, from)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("expected to %v, got %v", tt.wantTo, to)
			}
		})
	}
}
