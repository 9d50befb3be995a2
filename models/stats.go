package models

// StatusTotals counts pickups by lifecycle status.
type StatusTotals struct {
	Total     int `json:"total"`
	Collected int `json:"collected"`
	Missed    int `json:"missed"`
	Scheduled int `json:"scheduled"`
}

// WasteTypeCount is one slice of the waste-type breakdown, shaped for the
// client's pie chart (name/value pairs).
type WasteTypeCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AreaStats is the per-area status breakdown.
type AreaStats struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Collected int    `json:"collected"`
	Missed    int    `json:"missed"`
	Scheduled int    `json:"scheduled"`
}

// CollectionStats is the aggregate over all pickup schedules. Derived on
// demand from the schedule collection, never stored.
type CollectionStats struct {
	Collections   StatusTotals     `json:"collections"`
	WasteTypeData []WasteTypeCount `json:"wasteTypeData"`
	AreaData      []AreaStats      `json:"areaData"`
}

// IssueTotals is the resolved/pending split over all issues.
type IssueTotals struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
}
