package models

// Category is static reference data: a classification of events that
// carries its own requirement thresholds per checkpoint.
type Category struct {
	ID    int          `json:"id"`
	Key   string       `json:"key"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Unit  CategoryUnit `json:"unit"`
}

// MissingUnit is the unit label shown next to a remaining amount.
func (c *Category) MissingUnit() string {
	if c.Unit == ServiceHours {
		return "hrs"
	}
	return "events"
}
