package aiscan

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, got *ScanResult)
	}{
		{
			name:    "plain json",
			content: `{"items":[{"name":"Burger","quantity":2,"unit_price":5.50,"total_price":11.00}],"tax":1.65,"service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if len(got.Items) != 1 {
					t.Fatalf("expected 1 item, got %d", len(got.Items))
				}
				if got.Items[0].Name != "Burger" || got.Items[0].Quantity != 2 || got.Items[0].TotalPrice != 11.00 {
					t.Errorf("unexpected item: %+v", got.Items[0])
				}
				if got.Tax != 1.65 {
					t.Errorf("expected tax 1.65, got %v", got.Tax)
				}
			},
		},
		{
			name: "fenced json",
			content: "```json\n" +
				`{"items":[{"name":"Tea","quantity":1,"unit_price":3,"total_price":3}],"tax":0,"service":0,"tip":0}` +
				"\n```",
			check: func(t *testing.T, got *ScanResult) {
				if len(got.Items) != 1 || got.Items[0].Name != "Tea" {
					t.Errorf("expected Tea item, got %+v", got.Items)
				}
			},
		},
		{
			name:    "string amounts coerced",
			content: `{"items":[{"name":"Rice","quantity":"2","unit_price":"4.25","total_price":"8.50"}],"tax":"0.85","service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if got.Items[0].Quantity != 2 || got.Items[0].TotalPrice != 8.50 {
					t.Errorf("unexpected item: %+v", got.Items[0])
				}
				if got.Tax != 0.85 {
					t.Errorf("expected tax 0.85, got %v", got.Tax)
				}
			},
		},
		{
			name:    "junk amounts become zero",
			content: `{"items":[{"name":"Salad","quantity":1,"unit_price":"n/a","total_price":"abc"}],"tax":"-","service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if got.Items[0].UnitPrice != 0 || got.Items[0].TotalPrice != 0 {
					t.Errorf("expected zeroed prices, got %+v", got.Items[0])
				}
				if got.Tax != 0 {
					t.Errorf("expected tax 0, got %v", got.Tax)
				}
			},
		},
		{
			name:    "negative amounts clamped",
			content: `{"items":[{"name":"Discount","quantity":1,"unit_price":-2,"total_price":-2}],"tax":-1,"service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if got.Items[0].TotalPrice != 0 || got.Tax != 0 {
					t.Errorf("expected clamped values, got %+v tax=%v", got.Items[0], got.Tax)
				}
			},
		},
		{
			name:    "nameless items dropped",
			content: `{"items":[{"name":"  ","quantity":1,"unit_price":5,"total_price":5},{"name":"Juice","quantity":1,"unit_price":2,"total_price":2}],"tax":0,"service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if len(got.Items) != 1 || got.Items[0].Name != "Juice" {
					t.Errorf("expected only Juice, got %+v", got.Items)
				}
			},
		},
		{
			name:    "zero quantity defaults to one",
			content: `{"items":[{"name":"Bread","quantity":0,"unit_price":1.5,"total_price":1.5}],"tax":0,"service":0,"tip":0}`,
			check: func(t *testing.T, got *ScanResult) {
				if got.Items[0].Quantity != 1 {
					t.Errorf("expected quantity 1, got %v", got.Items[0].Quantity)
				}
			},
		},
		{
			name:    "not json",
			content: "Sorry, I can't read this receipt.",
			wantErr: ErrUnparsable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}
