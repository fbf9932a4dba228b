package allocate

import (
	"math"
	"testing"
)

func findSummary(t *testing.T, summaries []ParticipantSummary, name string) ParticipantSummary {
	t.Helper()
	for _, s := range summaries {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no summary for %s", name)
	return ParticipantSummary{}
}

func TestSummaries(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		participants []string
		extras       Extras
		validateFunc func(t *testing.T, summaries []ParticipantSummary)
	}{
		{
			name: "pizza and soda with proportional tax",
			items: []LineItem{
				{Name: "Pizza", Quantity: 1, TotalPrice: 20.00, Assignees: []string{"Alice", "Bob"}},
				{Name: "Soda", Quantity: 1, TotalPrice: 5.00, Assignees: []string{"Alice"}},
			},
			participants: []string{"Alice", "Bob"},
			extras:       Extras{Tax: 2.50},
			validateFunc: func(t *testing.T, summaries []ParticipantSummary) {
				alice := findSummary(t, summaries, "Alice")
				if alice.ItemsSubtotal != 15.00 {
					t.Errorf("Alice subtotal = %v, want 15.00", alice.ItemsSubtotal)
				}
				if alice.TaxShare != 1.50 {
					t.Errorf("Alice tax = %v, want 1.50", alice.TaxShare)
				}
				if alice.Total != 16.50 {
					t.Errorf("Alice total = %v, want 16.50", alice.Total)
				}
				if len(alice.Breakdown) != 2 {
					t.Fatalf("Alice breakdown has %d entries, want 2", len(alice.Breakdown))
				}
				if alice.Breakdown[0].Amount != 10.00 || alice.Breakdown[0].Percent != 50.00 {
					t.Errorf("Alice pizza share = %+v, want 10.00 at 50%%", alice.Breakdown[0])
				}

				bob := findSummary(t, summaries, "Bob")
				if bob.ItemsSubtotal != 10.00 {
					t.Errorf("Bob subtotal = %v, want 10.00", bob.ItemsSubtotal)
				}
				if bob.TaxShare != 1.00 {
					t.Errorf("Bob tax = %v, want 1.00", bob.TaxShare)
				}
				if bob.Total != 11.00 {
					t.Errorf("Bob total = %v, want 11.00", bob.Total)
				}
			},
		},
		{
			name: "three-way item rounds to cents per person",
			items: []LineItem{
				{Name: "Appetizer", Quantity: 1, TotalPrice: 10.00, Assignees: []string{"A", "B", "C"}},
			},
			participants: []string{"A", "B", "C"},
			validateFunc: func(t *testing.T, summaries []ParticipantSummary) {
				for _, s := range summaries {
					if s.ItemsSubtotal != 3.33 {
						t.Errorf("%s subtotal = %v, want 3.33", s.Name, s.ItemsSubtotal)
					}
				}
			},
		},
		{
			name: "unassigned item contributes to nobody",
			items: []LineItem{
				{Name: "Pasta", Quantity: 1, TotalPrice: 12.00, Assignees: []string{"Alice"}},
				{Name: "Water", Quantity: 1, TotalPrice: 3.00},
			},
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, summaries []ParticipantSummary) {
				alice := findSummary(t, summaries, "Alice")
				if alice.ItemsSubtotal != 12.00 {
					t.Errorf("Alice subtotal = %v, want 12.00", alice.ItemsSubtotal)
				}
				bob := findSummary(t, summaries, "Bob")
				if bob.ItemsSubtotal != 0 {
					t.Errorf("Bob subtotal = %v, want 0", bob.ItemsSubtotal)
				}
			},
		},
		{
			name:         "zero subtotal yields zero extras",
			items:        []LineItem{{Name: "Freebie", Quantity: 1, TotalPrice: 0, Assignees: []string{"Alice"}}},
			participants: []string{"Alice", "Bob"},
			extras:       Extras{Tax: 5.00, Service: 2.00, Tip: 3.00},
			validateFunc: func(t *testing.T, summaries []ParticipantSummary) {
				for _, s := range summaries {
					if s.TaxShare != 0 || s.ServiceShare != 0 || s.TipShare != 0 || s.Total != 0 {
						t.Errorf("%s has nonzero shares: %+v", s.Name, s)
					}
				}
			},
		},
		{
			name:         "no items yields empty summaries per participant",
			items:        nil,
			participants: []string{"Alice"},
			extras:       Extras{Tax: 4.00},
			validateFunc: func(t *testing.T, summaries []ParticipantSummary) {
				alice := findSummary(t, summaries, "Alice")
				if alice.Total != 0 {
					t.Errorf("Alice total = %v, want 0", alice.Total)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := Summaries(tt.items, tt.participants, tt.extras)
			if len(summaries) != len(tt.participants) {
				t.Fatalf("got %d summaries, want %d", len(summaries), len(tt.participants))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, summaries)
			}
		})
	}
}

// Subtotals across participants must reconcile with the bill subtotal, and
// each extra must distribute fully, within a cent per participant.
func TestSummariesReconcile(t *testing.T) {
	items := []LineItem{
		{Name: "Mixed grill", Quantity: 1, TotalPrice: 47.35, Assignees: []string{"Alice", "Bob", "Charlie"}},
		{Name: "Hummus", Quantity: 2, TotalPrice: 11.10, Assignees: []string{"Alice", "Charlie"}},
		{Name: "Lemonade", Quantity: 3, TotalPrice: 9.75, Assignees: []string{"Bob"}},
		{Name: "Knafeh", Quantity: 1, TotalPrice: 8.99, Assignees: []string{"Alice", "Bob", "Charlie"}},
	}
	participants := []string{"Alice", "Bob", "Charlie"}
	extras := Extras{Tax: 6.33, Service: 4.00, Tip: 10.00}

	summaries := Summaries(items, participants, extras)

	var billSubtotal float64
	for _, item := range items {
		billSubtotal += item.TotalPrice
	}

	tolerance := 0.01 * float64(len(participants))

	var gotSubtotal, gotTax, gotService, gotTip float64
	for _, s := range summaries {
		gotSubtotal += s.ItemsSubtotal
		gotTax += s.TaxShare
		gotService += s.ServiceShare
		gotTip += s.TipShare

		if want := roundToCents(s.ItemsSubtotal + s.TaxShare + s.ServiceShare + s.TipShare); s.Total != want {
			t.Errorf("%s total = %v, want %v", s.Name, s.Total, want)
		}
	}

	if math.Abs(gotSubtotal-billSubtotal) > tolerance {
		t.Errorf("sum of subtotals = %v, want %v ± %v", gotSubtotal, billSubtotal, tolerance)
	}
	if math.Abs(gotTax-extras.Tax) > tolerance {
		t.Errorf("sum of tax shares = %v, want %v ± %v", gotTax, extras.Tax, tolerance)
	}
	if math.Abs(gotService-extras.Service) > tolerance {
		t.Errorf("sum of service shares = %v, want %v ± %v", gotService, extras.Service, tolerance)
	}
	if math.Abs(gotTip-extras.Tip) > tolerance {
		t.Errorf("sum of tip shares = %v, want %v ± %v", gotTip, extras.Tip, tolerance)
	}
}

func TestAllAssigned(t *testing.T) {
	assigned := []LineItem{
		{Name: "Pizza", Assignees: []string{"Alice"}},
		{Name: "Soda", Assignees: []string{"Bob"}},
	}
	if !AllAssigned(assigned) {
		t.Error("AllAssigned = false, want true")
	}

	withGap := append(assigned, LineItem{Name: "Fries"})
	if AllAssigned(withGap) {
		t.Error("AllAssigned = true, want false")
	}

	unassigned := Unassigned(withGap)
	if len(unassigned) != 1 || unassigned[0].Name != "Fries" {
		t.Errorf("Unassigned = %+v, want just Fries", unassigned)
	}
}
