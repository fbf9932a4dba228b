package schedule

// CreateEventRequest represents the request to create a single event
type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required,oneof=activity exam class other"`
	StartsAt    string  `json:"starts_at" validate:"required"` // RFC 3339
}

// CreateRecurringRequest represents the request to create one event per week
// from starts_at through repeat_until
type CreateRecurringRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required,oneof=activity exam class other"`
	StartsAt    string  `json:"starts_at" validate:"required"`     // RFC 3339, first occurrence
	RepeatUntil string  `json:"repeat_until" validate:"required"`  // YYYY-MM-DD, inclusive
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=activity exam class other"`
	StartsAt    *string `json:"starts_at,omitempty"`
}

// EventResponse represents the response for a single event
type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	StartsAt    string  `json:"starts_at"`
	CreatedAt   string  `json:"created_at"`
}

// RecurringResponse reports the outcome of a recurring bulk create. Failed
// counts the dates that could not be persisted; created events keep their
// generation order.
type RecurringResponse struct {
	Created []*EventResponse `json:"created"`
	Failed  int              `json:"failed"`
}

// ToResponse converts a ScheduleEvent model to an EventResponse DTO
func (e *ScheduleEvent) ToResponse() *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    string(e.Category),
		StartsAt:    e.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
