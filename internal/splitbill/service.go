package splitbill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hishamq/yawmi/internal/splitbill/allocate"
)

// Common errors
var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrUnassignedItems = errors.New("every item must be assigned to at least one participant")
	ErrUnknownAssignee = errors.New("item assigned to a name not in the participants list")
)

// Service handles split bill business logic. The allocator only produces
// numbers; all persistence happens here, as a sequence of independent
// creates (bill, participants, items, assignments) followed by writing the
// computed totals back.
type Service struct {
	repo *Repository
}

// NewService creates a new split bill service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// toLineItems converts request items to the allocator's input type
func toLineItems(items []*ItemInput) []allocate.LineItem {
	out := make([]allocate.LineItem, len(items))
	for i, item := range items {
		out[i] = allocate.LineItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Assignees:  item.Assignees,
		}
	}
	return out
}

// Create finalizes a split bill: it checks the assignment precondition,
// computes every participant's share, and persists the rows step by step
func (s *Service) Create(ctx context.Context, userID int64, req *CreateBillRequest) (*BillResponse, error) {
	lineItems := toLineItems(req.Items)

	if !allocate.AllAssigned(lineItems) {
		return nil, ErrUnassignedItems
	}

	known := make(map[string]bool, len(req.Participants))
	for _, name := range req.Participants {
		known[name] = true
	}
	for _, item := range req.Items {
		for _, assignee := range item.Assignees {
			if !known[assignee] {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAssignee, assignee)
			}
		}
	}

	extras := allocate.Extras{Tax: req.TaxAmount, Service: req.ServiceAmount, Tip: req.TipAmount}
	summaries := allocate.Summaries(lineItems, req.Participants, extras)

	bill, err := s.repo.CreateBill(ctx, userID, req.Title, req.TaxAmount, req.ServiceAmount, req.TipAmount, uuid.NewString())
	if err != nil {
		return nil, err
	}

	participantIDs := make(map[string]int64, len(req.Participants))
	for _, name := range req.Participants {
		p, err := s.repo.CreateParticipant(ctx, bill.ID, name)
		if err != nil {
			return nil, err
		}
		participantIDs[name] = p.ID
	}

	itemResponses := make([]*ItemResponse, len(req.Items))
	for i, input := range req.Items {
		item, err := s.repo.CreateItem(ctx, bill.ID, input.Name, input.Quantity, input.UnitPrice, input.TotalPrice)
		if err != nil {
			return nil, err
		}

		for _, assignee := range input.Assignees {
			if err := s.repo.CreateAssignment(ctx, item.ID, participantIDs[assignee]); err != nil {
				return nil, err
			}
		}

		itemResponses[i] = &ItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Assignees:  input.Assignees,
		}
	}

	for _, summary := range summaries {
		err := s.repo.UpdateParticipantTotals(ctx, participantIDs[summary.Name],
			summary.ItemsSubtotal, summary.TaxShare, summary.ServiceShare, summary.TipShare, summary.Total)
		if err != nil {
			return nil, err
		}
	}

	return &BillResponse{
		ID:            bill.ID,
		Title:         bill.Title,
		TaxAmount:     bill.TaxAmount,
		ServiceAmount: bill.ServiceAmount,
		TipAmount:     bill.TipAmount,
		ShareToken:    bill.ShareToken,
		CreatedAt:     bill.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Items:         itemResponses,
		Summaries:     summaries,
	}, nil
}

// GetByID retrieves a bill with its recomputed participant summaries
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*BillResponse, error) {
	bill, err := s.repo.GetBill(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return s.buildResponse(ctx, bill)
}

// GetShared retrieves a bill by its public share token
func (s *Service) GetShared(ctx context.Context, token string) (*BillResponse, error) {
	bill, err := s.repo.GetBillByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	return s.buildResponse(ctx, bill)
}

// buildResponse loads a bill's rows and recomputes the summaries from them.
// The allocation is deterministic, so this always matches the committed
// participant totals.
func (s *Service) buildResponse(ctx context.Context, bill *Bill) (*BillResponse, error) {
	items, err := s.repo.GetItems(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	participants, err := s.repo.GetParticipants(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.repo.GetAssignments(ctx, bill.ID)
	if err != nil {
		return nil, err
	}

	nameByID := make(map[int64]string, len(participants))
	names := make([]string, len(participants))
	for i, p := range participants {
		nameByID[p.ID] = p.Name
		names[i] = p.Name
	}

	assigneesByItem := make(map[int64][]string)
	for _, a := range assignments {
		assigneesByItem[a.ItemID] = append(assigneesByItem[a.ItemID], nameByID[a.ParticipantID])
	}

	lineItems := make([]allocate.LineItem, len(items))
	itemResponses := make([]*ItemResponse, len(items))
	for i, item := range items {
		assignees := assigneesByItem[item.ID]
		lineItems[i] = allocate.LineItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Assignees:  assignees,
		}
		itemResponses[i] = &ItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Assignees:  assignees,
		}
	}

	extras := allocate.Extras{Tax: bill.TaxAmount, Service: bill.ServiceAmount, Tip: bill.TipAmount}

	return &BillResponse{
		ID:            bill.ID,
		Title:         bill.Title,
		TaxAmount:     bill.TaxAmount,
		ServiceAmount: bill.ServiceAmount,
		TipAmount:     bill.TipAmount,
		ShareToken:    bill.ShareToken,
		CreatedAt:     bill.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Items:         itemResponses,
		Summaries:     allocate.Summaries(lineItems, names, extras),
	}, nil
}

// List retrieves a user's bills with pagination
func (s *Service) List(ctx context.Context, userID int64, page, perPage int) ([]*Bill, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListBills(ctx, userID, perPage, offset)
}

// Delete removes a bill and all of its rows
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.DeleteBill(ctx, id, userID)
}
