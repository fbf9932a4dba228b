package grocery

import "time"

// Item represents a grocery list entry
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
}
