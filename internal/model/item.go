package model

// Item is a single selectable entry in a catalog.
// ID is the identity; everything else is display metadata the controller never reads.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Badge    string `json:"badge,omitempty"` // short trailing text, e.g. a price
	Color    string `json:"color,omitempty"` // "#RRGGBB", empty = theme accent
}

// NewItemParams holds parameters for creating a new Item.
type NewItemParams struct {
	Title    string
	Subtitle string
	Badge    string
	Color    string
}

// NewItem creates an Item with a generated UUID.
func NewItem(params NewItemParams) Item {
	return Item{
		ID:       generateUUID(),
		Title:    params.Title,
		Subtitle: params.Subtitle,
		Badge:    params.Badge,
		Color:    params.Color,
	}
}

// Label returns the accessible label used for the item's index indicator.
func (i Item) Label() string {
	return "Select " + i.Title
}
