package allocate

import "math"

// LineItem is a single row on a bill. TotalPrice may come straight from
// receipt extraction and is not reconciled against Quantity * UnitPrice.
type LineItem struct {
	Name       string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
	Assignees  []string
}

// Extras are bill-wide charges distributed proportionally to each
// participant's item subtotal
type Extras struct {
	Tax     float64
	Service float64
	Tip     float64
}

// ItemShare is one line of a participant's breakdown
type ItemShare struct {
	Item    string  `json:"item"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// ParticipantSummary is the computed amount one participant owes
type ParticipantSummary struct {
	Name          string      `json:"name"`
	ItemsSubtotal float64     `json:"items_subtotal"`
	TaxShare      float64     `json:"tax_share"`
	ServiceShare  float64     `json:"service_share"`
	TipShare      float64     `json:"tip_share"`
	Total         float64     `json:"total"`
	Breakdown     []ItemShare `json:"breakdown"`
}

// Summaries computes what every participant owes. Each item is split evenly
// among its assignees; extras are distributed in proportion to each
// participant's share of the bill subtotal. Every amount is rounded to cents
// (half away from zero) as it is computed, not once at the end, so committed
// rows match what a reviewer sees item by item.
//
// Inputs are trusted: validation (negative prices, unassigned items, empty
// participant lists) is the caller's job. An item with no assignees simply
// contributes nothing to anyone. A zero bill subtotal yields zero extras for
// every participant.
func Summaries(items []LineItem, participants []string, extras Extras) []ParticipantSummary {
	var billSubtotal float64
	for _, item := range items {
		billSubtotal += item.TotalPrice
	}

	summaries := make([]ParticipantSummary, len(participants))
	for i, name := range participants {
		summary := ParticipantSummary{Name: name}

		for _, item := range items {
			if !assignedTo(item, name) {
				continue
			}

			share := roundToCents(item.TotalPrice / float64(len(item.Assignees)))
			percent := roundToCents(100.0 / float64(len(item.Assignees)))

			summary.ItemsSubtotal = roundToCents(summary.ItemsSubtotal + share)
			summary.Breakdown = append(summary.Breakdown, ItemShare{
				Item:    item.Name,
				Amount:  share,
				Percent: percent,
			})
		}

		if billSubtotal > 0 {
			proportion := summary.ItemsSubtotal / billSubtotal
			summary.TaxShare = roundToCents(extras.Tax * proportion)
			summary.ServiceShare = roundToCents(extras.Service * proportion)
			summary.TipShare = roundToCents(extras.Tip * proportion)
		}

		summary.Total = roundToCents(summary.ItemsSubtotal + summary.TaxShare + summary.ServiceShare + summary.TipShare)
		summaries[i] = summary
	}

	return summaries
}

// AllAssigned reports whether every item has at least one assignee. The
// caller uses this to block finalizing a bill; Summaries itself does not
// enforce it.
func AllAssigned(items []LineItem) bool {
	for _, item := range items {
		if len(item.Assignees) == 0 {
			return false
		}
	}
	return true
}

// Unassigned returns the items that have no assignees
func Unassigned(items []LineItem) []LineItem {
	var out []LineItem
	for _, item := range items {
		if len(item.Assignees) == 0 {
			out = append(out, item)
		}
	}
	return out
}

func assignedTo(item LineItem, name string) bool {
	for _, a := range item.Assignees {
		if a == name {
			return true
		}
	}
	return false
}

// roundToCents rounds a currency amount to 2 decimal places, half away from zero
func roundToCents(value float64) float64 {
	return math.Round(value*100) / 100
}
