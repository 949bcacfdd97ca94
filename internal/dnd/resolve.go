package dnd

import (
	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

// Phase says whether a resolution is live feedback or the final drop.
type Phase int

const (
	Speculative Phase = iota
	Terminal
)

func (p Phase) String() string {
	if p == Terminal {
		return "terminal"
	}
	return "speculative"
}

// Resolve applies one classified move to b and returns the resulting board.
// Positions are looked up in b on every call. Anything that cannot be
// resolved returns b unchanged.
//
// Container reorders only happen in the Terminal phase so the column layout
// stays put while the pointer is still moving.
func Resolve(b *board.Board, kind MoveKind, active, over model.ID, phase Phase) *board.Board {
	switch kind {
	case ContainerOverContainer:
		if phase != Terminal {
			return b
		}
		return resolveContainers(b, active, over)
	case ItemOverItem:
		return resolveItemOverItem(b, active, over)
	case ItemOverContainer:
		return resolveItemOverContainer(b, active, over)
	default:
		return b
	}
}

func resolveContainers(b *board.Board, active, over model.ID) *board.Board {
	from, ok := b.IndexOfContainer(active)
	if !ok {
		return b
	}
	to, ok := b.IndexOfContainer(over)
	if !ok {
		return b
	}
	return b.MoveContainer(from, to)
}

func resolveItemOverItem(b *board.Board, active, over model.ID) *board.Board {
	srcCi, srcIi, ok := b.LocateItem(active)
	if !ok {
		return b
	}
	dstCi, dstIi, ok := b.LocateItem(over)
	if !ok {
		return b
	}
	if srcCi == dstCi {
		return b.MoveItemWithinContainer(srcCi, srcIi, dstIi)
	}
	// The hovered item and everything after it shift down one slot.
	return b.MoveItemAcrossContainers(srcCi, srcIi, dstCi, dstIi)
}

func resolveItemOverContainer(b *board.Board, active, over model.ID) *board.Board {
	srcCi, srcIi, ok := b.LocateItem(active)
	if !ok {
		return b
	}
	dstCi, ok := b.IndexOfContainer(over)
	if !ok {
		return b
	}
	// Over its own container the item goes to the end; already last is a no-op.
	return b.MoveItemAcrossContainers(srcCi, srcIi, dstCi, board.Append)
}
