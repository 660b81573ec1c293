package model

// Zone is one selectable timezone in the catalog.
type Zone struct {
	ID            string `json:"id"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offsetSeconds"`
}
