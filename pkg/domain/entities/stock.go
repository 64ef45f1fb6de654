package entities

// StockDay is one entry of a StockEvolution: the projected stock level at
// the end of a given calendar day, after arrivals and demand for that day.
type StockDay struct {
	Date  Date    `json:"date"`
	Stock float64 `json:"stock"`
}

// StockEvolution is the ordered, day-by-day stock trace produced by the
// Stock Simulator (C7) for every day of the planning period. It is a slice
// rather than a map so that JSON output and iteration order are
// deterministic (spec §5 requires byte-identical replay).
type StockEvolution []StockDay

// CriticalPoint flags a day whose stock level crossed into a risk band,
// per §4.7.
type CriticalPoint struct {
	Date           Date     `json:"date"`
	Stock          float64  `json:"stock"`
	DaysOfCoverage float64  `json:"days_of_coverage"`
	Severity       Severity `json:"severity"`
}
