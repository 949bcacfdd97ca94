// Package dnd turns a stream of drag events into board mutations.
//
// A gesture is Start, any number of Move, then exactly one End. Each event
// names the dragged element (active) and the element under it (over). Classify
// decides what kind of move that pair describes, Resolve applies it to a
// board, and Session ties the two to the gesture lifecycle.
//
// Item moves are applied while the pointer moves; End commits container
// reorders and also lands an item dropped on a target it never hovered.
package dnd

import "github.com/idilsaglam/kanban/internal/model"

// MoveKind is the classification of an (active, over) pair.
type MoveKind int

const (
	None MoveKind = iota
	ContainerOverContainer
	ItemOverItem
	ItemOverContainer
)

func (k MoveKind) String() string {
	switch k {
	case ContainerOverContainer:
		return "container-over-container"
	case ItemOverItem:
		return "item-over-item"
	case ItemOverContainer:
		return "item-over-container"
	default:
		return "none"
	}
}

// IsItemMove reports whether k relocates an item.
func (k MoveKind) IsItemMove() bool { return k == ItemOverItem || k == ItemOverContainer }

// Classify looks only at id prefixes. An empty over, a self-hover and a
// container hovering an item all classify as None.
func Classify(active, over model.ID) MoveKind {
	if over == "" || active == over {
		return None
	}
	switch a, o := active.Kind(), over.Kind(); {
	case a == model.KindContainer && o == model.KindContainer:
		return ContainerOverContainer
	case a == model.KindItem && o == model.KindItem:
		return ItemOverItem
	case a == model.KindItem && o == model.KindContainer:
		return ItemOverContainer
	default:
		return None
	}
}
