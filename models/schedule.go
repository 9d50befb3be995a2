package models

import "time"

// WasteType enum
type WasteType string

const (
	General   WasteType = "general"
	Recycling WasteType = "recycling"
	Compost   WasteType = "compost"
	Hazardous WasteType = "hazardous"
)

// Valid reports whether w is one of the defined waste types.
func (w WasteType) Valid() bool {
	switch w {
	case General, Recycling, Compost, Hazardous:
		return true
	}
	return false
}

// PickupStatus enum
type PickupStatus string

const (
	Scheduled PickupStatus = "scheduled"
	Collected PickupStatus = "collected"
	Missed    PickupStatus = "missed"
)

// Terminal reports whether s is a status a pickup can be transitioned to.
// Only collected and missed are reachable from the transition command;
// nothing moves a pickup back to scheduled.
func (s PickupStatus) Terminal() bool {
	return s == Collected || s == Missed
}

// PickupSchedule represents a planned waste-collection event for one
// area/address/date/time/waste-type tuple. Date is an ISO date (YYYY-MM-DD)
// and Time is HH:MM; both are kept as strings so the persisted form stays
// byte-compatible with what the web client wrote.
type PickupSchedule struct {
	ID          string       `json:"id"`
	Area        string       `json:"area"`
	Address     string       `json:"address"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	WasteType   WasteType    `json:"wasteType"`
	Status      PickupStatus `json:"status"`
	CollectedBy string       `json:"collectedBy,omitempty"`
	CollectedAt *time.Time   `json:"collectedAt,omitempty"`
}
