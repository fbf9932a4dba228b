package splitbill

import "time"

// Bill represents a split bill and its bill-wide extra charges
type Bill struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Title         string    `json:"title"`
	TaxAmount     float64   `json:"tax_amount"`
	ServiceAmount float64   `json:"service_amount"`
	TipAmount     float64   `json:"tip_amount"`
	ShareToken    string    `json:"share_token"`
	CreatedAt     time.Time `json:"created_at"`
}

// Item represents one line on a bill. TotalPrice is stored as supplied (it
// may come from receipt extraction) and is not reconciled against
// Quantity * UnitPrice.
type Item struct {
	ID         int64   `json:"id"`
	BillID     int64   `json:"bill_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Participant represents a person on a bill. Names are free text, not user
// accounts; the committed share columns are written once the split is
// calculated.
type Participant struct {
	ID            int64   `json:"id"`
	BillID        int64   `json:"bill_id"`
	Name          string  `json:"name"`
	ItemsSubtotal float64 `json:"items_subtotal"`
	TaxShare      float64 `json:"tax_share"`
	ServiceShare  float64 `json:"service_share"`
	TipShare      float64 `json:"tip_share"`
	TotalAmount   float64 `json:"total_amount"`
}

// Assignment links one item to one participant sharing its cost
type Assignment struct {
	ID            int64 `json:"id"`
	ItemID        int64 `json:"item_id"`
	ParticipantID int64 `json:"participant_id"`
}

// BillDetail bundles a bill with all of its rows
type BillDetail struct {
	Bill         *Bill
	Items        []*Item
	Participants []*Participant
	Assignments  []*Assignment
}
