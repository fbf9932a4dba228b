package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore implements EventStore in memory. failOn holds zero-based indexes
// of Create calls that should fail.
type fakeStore struct {
	events  []*ScheduleEvent
	calls   int
	failOn  map[int]bool
	nextID  int64
}

func newFakeStore(failOn ...int) *fakeStore {
	m := make(map[int]bool)
	for _, i := range failOn {
		m[i] = true
	}
	return &fakeStore{failOn: m}
}

func (f *fakeStore) Create(ctx context.Context, event *ScheduleEvent) (*ScheduleEvent, error) {
	call := f.calls
	f.calls++
	if f.failOn[call] {
		return nil, errors.New("insert failed")
	}
	f.nextID++
	created := *event
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.events = append(f.events, &created)
	return &created, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id, userID int64) (*ScheduleEvent, error) {
	for _, e := range f.events {
		if e.ID == id && e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListByRange(ctx context.Context, userID int64, from, to time.Time) ([]*ScheduleEvent, error) {
	var out []*ScheduleEvent
	for _, e := range f.events {
		if e.UserID == userID && !e.StartsAt.Before(from) && e.StartsAt.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id, userID int64, req *UpdateEventRequest, startsAt *time.Time) (*ScheduleEvent, error) {
	return nil, nil
}

func (f *fakeStore) Delete(ctx context.Context, id, userID int64) error {
	return nil
}

func TestCreateRecurring(t *testing.T) {
	req := &CreateRecurringRequest{
		Title:       "Math class",
		Category:    "class",
		StartsAt:    "2024-01-01T09:00:00Z", // Monday
		RepeatUntil: "2024-01-22",
	}

	t.Run("creates one event per weekly date", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)

		result, err := svc.CreateRecurring(context.Background(), 1, req)
		if err != nil {
			t.Fatalf("CreateRecurring failed: %v", err)
		}

		if len(result.Created) != 4 {
			t.Fatalf("created %d events, want 4", len(result.Created))
		}
		if result.Failed != 0 {
			t.Errorf("failed = %d, want 0", result.Failed)
		}

		wantDates := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}
		for i, e := range result.Created {
			if got := e.StartsAt.Format("2006-01-02"); got != wantDates[i] {
				t.Errorf("event %d starts on %s, want %s", i, got, wantDates[i])
			}
			if hour := e.StartsAt.Hour(); hour != 9 {
				t.Errorf("event %d starts at hour %d, want 9", i, hour)
			}
			if e.Category != CategoryClass {
				t.Errorf("event %d category = %s, want class", i, e.Category)
			}
		}
	})

	t.Run("counts one failure without aborting the rest", func(t *testing.T) {
		store := newFakeStore(1) // second date fails
		svc := NewService(store)

		result, err := svc.CreateRecurring(context.Background(), 1, req)
		if err != nil {
			t.Fatalf("CreateRecurring failed: %v", err)
		}

		if len(result.Created) != 3 {
			t.Errorf("created %d events, want 3", len(result.Created))
		}
		if result.Failed != 1 {
			t.Errorf("failed = %d, want 1", result.Failed)
		}

		// Successes keep generation order with the failed date skipped.
		wantDates := []string{"2024-01-01", "2024-01-15", "2024-01-22"}
		for i, e := range result.Created {
			if got := e.StartsAt.Format("2006-01-02"); got != wantDates[i] {
				t.Errorf("event %d starts on %s, want %s", i, got, wantDates[i])
			}
		}
	})

	t.Run("empty window is a validation error", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)

		_, err := svc.CreateRecurring(context.Background(), 1, &CreateRecurringRequest{
			Title:       "Math class",
			Category:    "class",
			StartsAt:    "2024-01-22T09:00:00Z",
			RepeatUntil: "2024-01-01",
		})
		if !errors.Is(err, ErrEmptyWindow) {
			t.Fatalf("err = %v, want ErrEmptyWindow", err)
		}
		if store.calls != 0 {
			t.Errorf("store was called %d times, want 0", store.calls)
		}
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		store := newFakeStore()
		svc := NewService(store)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := svc.CreateRecurring(ctx, 1, req)
		if err != nil {
			t.Fatalf("CreateRecurring failed: %v", err)
		}
		if len(result.Created) != 0 {
			t.Errorf("created %d events, want 0", len(result.Created))
		}
		if result.Failed != 4 {
			t.Errorf("failed = %d, want 4", result.Failed)
		}
	})

	t.Run("invalid category is rejected", func(t *testing.T) {
		svc := NewService(newFakeStore())

		_, err := svc.CreateRecurring(context.Background(), 1, &CreateRecurringRequest{
			Title:       "Math class",
			Category:    "meeting",
			StartsAt:    "2024-01-01T09:00:00Z",
			RepeatUntil: "2024-01-22",
		})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("err = %v, want ErrInvalidCategory", err)
		}
	})
}
