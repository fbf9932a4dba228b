package aiscan

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoImage = errors.New("image is required")

// Scanner abstracts the vision model call
type Scanner interface {
	Scan(ctx context.Context, imageRef string) (string, error)
}

// Service handles receipt scanning business logic
type Service struct {
	scanner Scanner
}

// NewService creates a new scan service
func NewService(scanner Scanner) *Service {
	return &Service{scanner: scanner}
}

// ScanRequest is the request to extract items from a receipt image
type ScanRequest struct {
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// ScanReceipt extracts line items and extras from a receipt image.
// The result is for client-side review only; nothing is persisted.
func (s *Service) ScanReceipt(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	imageRef := req.ImageURL
	if imageRef == "" {
		if req.ImageBase64 == "" {
			return nil, ErrNoImage
		}
		imageRef = fmt.Sprintf("data:image/jpeg;base64,%s", req.ImageBase64)
	}

	content, err := s.scanner.Scan(ctx, imageRef)
	if err != nil {
		return nil, err
	}

	return Parse(content)
}
