package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hishamq/yawmi/internal/schedule/recur"
)

// Common errors
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidCategory = errors.New("invalid event category")
	ErrEmptyWindow     = errors.New("repeat window ends before it starts; no events would be created")
)

// EventStore is the persistence contract the service depends on
type EventStore interface {
	Create(ctx context.Context, event *ScheduleEvent) (*ScheduleEvent, error)
	GetByID(ctx context.Context, id, userID int64) (*ScheduleEvent, error)
	ListByRange(ctx context.Context, userID int64, from, to time.Time) ([]*ScheduleEvent, error)
	Update(ctx context.Context, id, userID int64, req *UpdateEventRequest, startsAt *time.Time) (*ScheduleEvent, error)
	Delete(ctx context.Context, id, userID int64) error
}

// RecurringResult reports a recurring bulk create: the successfully persisted
// events in generation order, and the number of dates that failed
type RecurringResult struct {
	Created []*ScheduleEvent
	Failed  int
}

// Service handles schedule business logic
type Service struct {
	store EventStore
}

// NewService creates a new schedule service with the store dependency injected
func NewService(store EventStore) *Service {
	return &Service{store: store}
}

// CreateEvent creates a single schedule event
func (s *Service) CreateEvent(ctx context.Context, userID int64, req *CreateEventRequest) (*ScheduleEvent, error) {
	if !ValidCategory(Category(req.Category)) {
		return nil, ErrInvalidCategory
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, &ScheduleEvent{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    Category(req.Category),
		StartsAt:    startsAt,
	})
}

// CreateRecurring creates one event per generated weekly date. Creation is
// sequential and every attempt is independent: a failed date is counted and
// the loop moves on, with no rollback of already-created events. If the
// context is cancelled mid-loop the remaining dates are counted as failed.
//
// Returns ErrEmptyWindow when repeat_until is not after the anchor, since
// silently creating zero events would read as success to the caller.
func (s *Service) CreateRecurring(ctx context.Context, userID int64, req *CreateRecurringRequest) (*RecurringResult, error) {
	if !ValidCategory(Category(req.Category)) {
		return nil, ErrInvalidCategory
	}

	anchor, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, err
	}

	until, err := time.ParseInLocation("2006-01-02", req.RepeatUntil, anchor.Location())
	if err != nil {
		return nil, err
	}
	// The end date is an inclusive calendar boundary.
	until = until.Add(24*time.Hour - time.Second)

	dates := recur.Dates(anchor, until, anchor.Weekday())
	if len(dates) == 0 {
		return nil, ErrEmptyWindow
	}

	result := &RecurringResult{}
	for i, date := range dates {
		if ctx.Err() != nil {
			result.Failed += len(dates) - i
			break
		}

		event, err := s.store.Create(ctx, &ScheduleEvent{
			UserID:      userID,
			Title:       req.Title,
			Description: req.Description,
			Category:    Category(req.Category),
			StartsAt:    date,
		})
		if err != nil {
			slog.Warn("failed to create recurring event occurrence",
				"user_id", userID, "date", date, "error", err)
			result.Failed++
			continue
		}
		result.Created = append(result.Created, event)
	}

	return result, nil
}

// GetByID retrieves a single event
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*ScheduleEvent, error) {
	event, err := s.store.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListByRange retrieves a user's events within [from, to)
func (s *Service) ListByRange(ctx context.Context, userID int64, from, to time.Time) ([]*ScheduleEvent, error) {
	return s.store.ListByRange(ctx, userID, from, to)
}

// Update modifies a single event
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateEventRequest) (*ScheduleEvent, error) {
	if req.Category != nil && !ValidCategory(Category(*req.Category)) {
		return nil, ErrInvalidCategory
	}

	var startsAt *time.Time
	if req.StartsAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.StartsAt)
		if err != nil {
			return nil, err
		}
		startsAt = &parsed
	}

	event, err := s.store.Update(ctx, id, userID, req, startsAt)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Delete removes a single event
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.store.Delete(ctx, id, userID)
}
