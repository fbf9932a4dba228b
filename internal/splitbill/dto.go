package splitbill

import "github.com/hishamq/yawmi/internal/splitbill/allocate"

// ItemInput is one bill line in a create request. Assignees are participant
// names from the request's participants list.
type ItemInput struct {
	Name       string   `json:"name" validate:"required,min=1,max=255"`
	Quantity   int      `json:"quantity" validate:"required,min=1"`
	UnitPrice  float64  `json:"unit_price" validate:"min=0"`
	TotalPrice float64  `json:"total_price" validate:"min=0"`
	Assignees  []string `json:"assignees"`
}

// CreateBillRequest represents the request to create and finalize a split bill
type CreateBillRequest struct {
	Title         string       `json:"title" validate:"required,min=1,max=255"`
	Items         []*ItemInput `json:"items" validate:"required,min=1"`
	Participants  []string     `json:"participants" validate:"required,min=1"`
	TaxAmount     float64      `json:"tax_amount" validate:"min=0"`
	ServiceAmount float64      `json:"service_amount" validate:"min=0"`
	TipAmount     float64      `json:"tip_amount" validate:"min=0"`
}

// ItemResponse represents one bill line with its assignees
type ItemResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price"`
	Assignees  []string `json:"assignees"`
}

// BillResponse represents a bill with its computed participant summaries
type BillResponse struct {
	ID            int64                         `json:"id"`
	Title         string                        `json:"title"`
	TaxAmount     float64                       `json:"tax_amount"`
	ServiceAmount float64                       `json:"service_amount"`
	TipAmount     float64                       `json:"tip_amount"`
	ShareToken    string                        `json:"share_token"`
	CreatedAt     string                        `json:"created_at"`
	Items         []*ItemResponse               `json:"items"`
	Summaries     []allocate.ParticipantSummary `json:"summaries"`
}

// BillListItem is the compact form used when listing bills
type BillListItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	ShareToken string `json:"share_token"`
	CreatedAt  string `json:"created_at"`
}

// ToListItem converts a Bill model to its list representation
func (b *Bill) ToListItem() *BillListItem {
	return &BillListItem{
		ID:         b.ID,
		Title:      b.Title,
		ShareToken: b.ShareToken,
		CreatedAt:  b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
