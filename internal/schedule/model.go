package schedule

import "time"

// Category classifies a schedule event
type Category string

const (
	CategoryActivity Category = "activity"
	CategoryExam     Category = "exam"
	CategoryClass    Category = "class"
	CategoryOther    Category = "other"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c Category) bool {
	switch c {
	case CategoryActivity, CategoryExam, CategoryClass, CategoryOther:
		return true
	}
	return false
}

// ScheduleEvent represents a single calendar entry. Events created by a
// recurring request share their template fields at creation time but are
// independent rows afterwards: editing or deleting one does not touch its
// siblings.
type ScheduleEvent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Category    Category  `json:"category"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
}
