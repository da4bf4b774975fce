package demo

import "time"

// Report collects every value a run computed.
type Report struct {
	Area        float64   `json:"area"`
	Fibonacci   int64     `json:"fibonacci"`
	Sum         float64   `json:"sum"`
	Product     float64   `json:"product"`
	Total       int       `json:"total"`
	Squares     []int     `json:"squares"`
	CaughtError bool      `json:"caught_division_by_zero"`
	CompletedAt time.Time `json:"completed_at"`
	History     []string  `json:"history"`
}
