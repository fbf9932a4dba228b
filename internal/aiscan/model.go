package aiscan

// ScanItem is a single line item extracted from a receipt image
type ScanItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// ScanResult is the extracted receipt content returned for user review
type ScanResult struct {
	Items   []ScanItem `json:"items"`
	Tax     float64    `json:"tax"`
	Service float64    `json:"service"`
	Tip     float64    `json:"tip"`
}
