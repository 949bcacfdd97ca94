package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
)

func items(ids ...string) []model.Item {
	out := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Item{ID: model.ID(id), Title: id})
	}
	return out
}

func newBoard(t *testing.T, cs ...model.Container) *board.Board {
	t.Helper()
	b, err := board.New(cs...)
	require.NoError(t, err)
	return b
}

func twoColumns(t *testing.T) *board.Board {
	return newBoard(t,
		model.Container{ID: "container-1", Items: items("item-1", "item-2", "item-3")},
		model.Container{ID: "container-2", Items: items("item-4", "item-5")},
	)
}

// layout renders a board as container id -> item ids, in order.
func layout(b *board.Board) [][]model.ID {
	var out [][]model.ID
	for _, c := range b.Containers() {
		row := []model.ID{c.ID}
		for _, it := range c.Items {
			row = append(row, it.ID)
		}
		out = append(out, row)
	}
	return out
}

func TestResolve_ContainerOverContainer_TerminalOnly(t *testing.T) {
	b := twoColumns(t)

	assert.Same(t, b, Resolve(b, ContainerOverContainer, "container-2", "container-1", Speculative))

	next := Resolve(b, ContainerOverContainer, "container-2", "container-1", Terminal)
	assert.Equal(t, [][]model.ID{
		{"container-2", "item-4", "item-5"},
		{"container-1", "item-1", "item-2", "item-3"},
	}, layout(next))
}

func TestResolve_ItemOverItem_SameContainer(t *testing.T) {
	b := twoColumns(t)

	next := Resolve(b, ItemOverItem, "item-1", "item-3", Speculative)

	assert.Equal(t, []model.ID{"container-1", "item-2", "item-3", "item-1"}, layout(next)[0])
}

func TestResolve_ItemOverItem_OtherContainerInsertsAtHovered(t *testing.T) {
	b := twoColumns(t)

	next := Resolve(b, ItemOverItem, "item-2", "item-5", Speculative)

	assert.Equal(t, [][]model.ID{
		{"container-1", "item-1", "item-3"},
		{"container-2", "item-4", "item-2", "item-5"},
	}, layout(next))
}

func TestResolve_ItemOverContainer_Appends(t *testing.T) {
	b := twoColumns(t)

	next := Resolve(b, ItemOverContainer, "item-1", "container-2", Speculative)

	assert.Equal(t, [][]model.ID{
		{"container-1", "item-2", "item-3"},
		{"container-2", "item-4", "item-5", "item-1"},
	}, layout(next))
}

func TestResolve_ItemOverOwnContainer_MovesToEnd(t *testing.T) {
	b := newBoard(t, model.Container{ID: "container-1", Items: items("item-1", "item-2")})

	next := Resolve(b, ItemOverContainer, "item-1", "container-1", Speculative)

	assert.Equal(t, [][]model.ID{{"container-1", "item-2", "item-1"}}, layout(next))
	assert.Same(t, next, Resolve(next, ItemOverContainer, "item-1", "container-1", Speculative),
		"an item already last stays put")
}

func TestResolve_UnresolvableIsNoOp(t *testing.T) {
	b := twoColumns(t)

	cases := []struct {
		kind   MoveKind
		active model.ID
		over   model.ID
	}{
		{ContainerOverContainer, "container-9", "container-1"},
		{ContainerOverContainer, "container-1", "container-9"},
		{ItemOverItem, "item-9", "item-1"},
		{ItemOverItem, "item-1", "item-9"},
		{ItemOverContainer, "item-9", "container-2"},
		{ItemOverContainer, "item-1", "container-9"},
		{None, "item-1", "item-2"},
	}
	for _, c := range cases {
		assert.NotPanics(t, func() {
			assert.Same(t, b, Resolve(b, c.kind, c.active, c.over, Terminal), "%v %s %s", c.kind, c.active, c.over)
		})
	}
}

func TestResolve_CrossContainerReapplyIsStable(t *testing.T) {
	b := twoColumns(t)

	once := Resolve(b, ItemOverContainer, "item-1", "container-2", Speculative)
	twice := Resolve(once, ItemOverContainer, "item-1", "container-2", Terminal)

	assert.Same(t, once, twice)
}
