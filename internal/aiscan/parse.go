package aiscan

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrUnparsable = errors.New("could not parse receipt scan output")

// amount tolerates the model returning numbers as strings or junk;
// anything non-numeric decodes to zero instead of failing the scan.
type amount float64

func (a *amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = amount(v)
	return nil
}

type rawItem struct {
	Name       string `json:"name"`
	Quantity   amount `json:"quantity"`
	UnitPrice  amount `json:"unit_price"`
	TotalPrice amount `json:"total_price"`
}

type rawResult struct {
	Items   []rawItem `json:"items"`
	Tax     amount    `json:"tax"`
	Service amount    `json:"service"`
	Tip     amount    `json:"tip"`
}

// Parse normalizes raw model output into a ScanResult. Code fences are
// stripped, negative amounts are clamped to zero, and items without a
// name are dropped.
func Parse(content string) (*ScanResult, error) {
	cleaned := stripFences(content)

	var raw rawResult
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, ErrUnparsable
	}

	result := &ScanResult{
		Items:   make([]ScanItem, 0, len(raw.Items)),
		Tax:     clamp(raw.Tax),
		Service: clamp(raw.Service),
		Tip:     clamp(raw.Tip),
	}

	for _, item := range raw.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		qty := clamp(item.Quantity)
		if qty == 0 {
			qty = 1
		}
		result.Items = append(result.Items, ScanItem{
			Name:       name,
			Quantity:   qty,
			UnitPrice:  clamp(item.UnitPrice),
			TotalPrice: clamp(item.TotalPrice),
		})
	}

	return result, nil
}

func clamp(a amount) float64 {
	if a < 0 {
		return 0
	}
	return float64(a)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
