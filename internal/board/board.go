// Package board holds the ordered containers and items of a board.
//
// A *Board is treated as an immutable value. Every mutation returns a new
// *Board and leaves the receiver untouched, so observers can tell whether
// anything changed by comparing pointers. A mutation that changes nothing
// returns the receiver itself.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/kanban/internal/model"
)

// Append as a destination item index means "after the last item".
const Append = -1

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrWrongKind   = errors.New("id has the wrong kind")
)

type location struct {
	container int
	item      int
}

// Board is the authoritative state: containers in display order, each with
// its items in display order.
type Board struct {
	containers []model.Container

	// id -> position, rebuilt whenever a new Board is produced.
	containerAt map[model.ID]int
	itemAt      map[model.ID]location
}

// Empty returns a board with no containers.
func Empty() *Board { return build(nil) }

// New builds a board from existing containers, copying them. Ids must be
// unique and carry the right prefix.
func New(containers ...model.Container) (*Board, error) {
	cs := make([]model.Container, len(containers))
	seen := make(map[model.ID]bool)
	for i, c := range containers {
		if !c.ID.IsContainer() {
			return nil, fmt.Errorf("container %q: %w", c.ID, ErrWrongKind)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("container %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
		for _, it := range c.Items {
			if !it.ID.IsItem() {
				return nil, fmt.Errorf("item %q in %q: %w", it.ID, c.ID, ErrWrongKind)
			}
			if seen[it.ID] {
				return nil, fmt.Errorf("item %q in %q: %w", it.ID, c.ID, ErrDuplicateID)
			}
			seen[it.ID] = true
		}
		cs[i] = c.Clone()
	}
	return build(cs), nil
}

// build takes ownership of containers and indexes them.
func build(containers []model.Container) *Board {
	b := &Board{
		containers:  containers,
		containerAt: make(map[model.ID]int, len(containers)),
		itemAt:      make(map[model.ID]location),
	}
	for ci, c := range containers {
		b.containerAt[c.ID] = ci
		for ii, it := range c.Items {
			b.itemAt[it.ID] = location{container: ci, item: ii}
		}
	}
	return b
}

// Len is the number of containers.
func (b *Board) Len() int { return len(b.containers) }

// ItemCount is the number of items across all containers.
func (b *Board) ItemCount() int { return len(b.itemAt) }

// Containers returns a deep copy of the containers in order.
func (b *Board) Containers() []model.Container {
	out := make([]model.Container, len(b.containers))
	for i, c := range b.containers {
		out[i] = c.Clone()
	}
	return out
}

// ContainerAt returns a copy of the container at index i.
func (b *Board) ContainerAt(i int) (model.Container, bool) {
	if i < 0 || i >= len(b.containers) {
		return model.Container{}, false
	}
	return b.containers[i].Clone(), true
}

// FindContainer looks a container up by its own id.
func (b *Board) FindContainer(id model.ID) (model.Container, bool) {
	ci, ok := b.containerAt[id]
	if !ok {
		return model.Container{}, false
	}
	return b.containers[ci].Clone(), true
}

// FindContainerOwningItem returns the container whose items include id.
func (b *Board) FindContainerOwningItem(id model.ID) (model.Container, bool) {
	loc, ok := b.itemAt[id]
	if !ok {
		return model.Container{}, false
	}
	return b.containers[loc.container].Clone(), true
}

// Item looks an item up by id.
func (b *Board) Item(id model.ID) (model.Item, bool) {
	loc, ok := b.itemAt[id]
	if !ok {
		return model.Item{}, false
	}
	return b.containers[loc.container].Items[loc.item], true
}

// IndexOfContainer returns the position of container id.
func (b *Board) IndexOfContainer(id model.ID) (int, bool) {
	ci, ok := b.containerAt[id]
	return ci, ok
}

// IndexOfItem returns the index of item id inside the container at
// containerIndex. It reports false when the item lives elsewhere.
func (b *Board) IndexOfItem(containerIndex int, id model.ID) (int, bool) {
	loc, ok := b.itemAt[id]
	if !ok || loc.container != containerIndex {
		return 0, false
	}
	return loc.item, true
}

// LocateItem returns the container and item index of id.
func (b *Board) LocateItem(id model.ID) (containerIndex, itemIndex int, ok bool) {
	loc, ok := b.itemAt[id]
	return loc.container, loc.item, ok
}

// MoveContainer repositions one container. Contents are untouched.
func (b *Board) MoveContainer(from, to int) *Board {
	n := len(b.containers)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return b
	}
	return build(arrayMove(b.containers, from, to))
}

// MoveItemWithinContainer reorders items inside the container at ci.
func (b *Board) MoveItemWithinContainer(ci, from, to int) *Board {
	if ci < 0 || ci >= len(b.containers) {
		return b
	}
	items := b.containers[ci].Items
	n := len(items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return b
	}
	cs := b.shallow()
	cs[ci].Items = arrayMove(items, from, to)
	return build(cs)
}

// MoveItemAcrossContainers removes the item at (srcCi, srcIi) and inserts it
// into container dstCi at dstIi, clamped to the destination length after
// removal. dstIi == Append puts it last.
func (b *Board) MoveItemAcrossContainers(srcCi, srcIi, dstCi, dstIi int) *Board {
	n := len(b.containers)
	if srcCi < 0 || srcCi >= n || dstCi < 0 || dstCi >= n {
		return b
	}
	src := b.containers[srcCi].Items
	if srcIi < 0 || srcIi >= len(src) {
		return b
	}
	if srcCi == dstCi {
		to := dstIi
		if to == Append || to >= len(src) {
			to = len(src) - 1
		}
		if to < 0 {
			to = 0
		}
		return b.MoveItemWithinContainer(srcCi, srcIi, to)
	}

	moved := src[srcIi]
	dst := b.containers[dstCi].Items
	at := dstIi
	if at == Append || at > len(dst) {
		at = len(dst)
	}
	if at < 0 {
		at = 0
	}

	cs := b.shallow()
	cs[srcCi].Items = removeAt(src, srcIi)
	cs[dstCi].Items = insertAt(dst, at, moved)
	return build(cs)
}

// AppendContainer adds an empty container at the end. An empty title is
// rejected and the receiver is returned with ok == false.
func (b *Board) AppendContainer(title, description string) (*Board, model.ID, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return b, "", false
	}
	id := model.NewContainerID()
	cs := make([]model.Container, len(b.containers), len(b.containers)+1)
	copy(cs, b.containers)
	cs = append(cs, model.Container{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(description),
		Items:       []model.Item{},
	})
	return build(cs), id, true
}

// AppendItem adds an item at the end of the container identified by
// containerID. Empty titles and unknown containers are rejected.
func (b *Board) AppendItem(containerID model.ID, title string) (*Board, model.ID, bool) {
	title = strings.TrimSpace(title)
	ci, ok := b.containerAt[containerID]
	if title == "" || !ok {
		return b, "", false
	}
	id := model.NewItemID()
	cs := b.shallow()
	cs[ci].Items = insertAt(cs[ci].Items, len(cs[ci].Items), model.Item{ID: id, Title: title})
	return build(cs), id, true
}

// shallow copies the container slice. Item slices are still shared with b
// and must be replaced, never written, by the caller.
func (b *Board) shallow() []model.Container {
	cs := make([]model.Container, len(b.containers))
	copy(cs, b.containers)
	return cs
}

// arrayMove returns a new slice with s[from] removed and reinserted at to.
func arrayMove[T any](s []T, from, to int) []T {
	v := s[from]
	return insertAt(removeAt(s, from), to, v)
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func insertAt[T any](s []T, i int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}
