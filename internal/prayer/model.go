package prayer

// Timings holds one day of prayer times for a location, as "HH:MM" strings
type Timings struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// TimingsResponse is the API response for a timings lookup
type TimingsResponse struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Date    string  `json:"date"`
	Timings Timings `json:"timings"`
}
