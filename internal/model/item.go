package model

// Item is a leaf entry on the board. It is owned by exactly one Container.
type Item struct {
	ID    ID     `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Container is a named, ordered group of items (a board column).
// The order of Items is what the user sees.
type Container struct {
	ID          ID     `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []Item `json:"items" yaml:"items"`
}

// Clone returns a copy whose item slice does not alias c.Items.
func (c Container) Clone() Container {
	out := c
	out.Items = make([]Item, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
