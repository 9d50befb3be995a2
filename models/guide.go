package models

// WasteGuideItem is one entry of the static disposal guide shown to
// residents. Reference data only; never persisted.
type WasteGuideItem struct {
	Category       string   `json:"category"`
	Items          []string `json:"items"`
	Description    string   `json:"description"`
	DisposalMethod string   `json:"disposalMethod"`
}
