package boardfile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/dnd"
	"github.com/idilsaglam/kanban/internal/model"
)

const sampleYAML = `
containers:
  - id: container-1
    title: Todo
    description: things to do
    items:
      - {id: item-1, title: Buy milk}
      - {id: item-2, title: Walk dog}
  - id: container-2
    title: Done
    items: []
`

func TestDecode_YAML(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleYAML), YAML)
	require.NoError(t, err)

	want := []model.Container{
		{ID: "container-1", Title: "Todo", Description: "things to do", Items: []model.Item{
			{ID: "item-1", Title: "Buy milk"},
			{ID: "item-2", Title: "Walk dog"},
		}},
		{ID: "container-2", Title: "Done", Items: []model.Item{}},
	}
	if diff := cmp.Diff(want, b.Containers()); diff != "" {
		t.Fatalf("decoded board mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_GeneratesMissingIDs(t *testing.T) {
	b, err := Decode(strings.NewReader(`{"containers":[{"title":"Todo","items":[{"title":"a"}]}]}`), JSON)
	require.NoError(t, err)

	c, ok := b.ContainerAt(0)
	require.True(t, ok)
	assert.True(t, c.ID.IsContainer())
	require.Len(t, c.Items, 1)
	assert.True(t, c.Items[0].ID.IsItem())
}

func TestDecode_RejectsDuplicates(t *testing.T) {
	_, err := Decode(strings.NewReader(`
containers:
  - {id: container-1, title: a, items: [{id: item-1, title: x}]}
  - {id: container-2, title: b, items: [{id: item-1, title: y}]}
`), YAML)
	assert.True(t, errors.Is(err, board.ErrDuplicateID), "got %v", err)
}

func TestDecode_EmptyYAMLIsEmptyBoard(t *testing.T) {
	b, err := Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestEncodeDecode_KeepsOrderAndIDs(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleYAML), YAML)
	require.NoError(t, err)

	for _, format := range []Format{JSON, YAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, b, format))
		got, err := Decode(&buf, format)
		require.NoError(t, err, "format %s", format)
		if diff := cmp.Diff(b.Containers(), got.Containers()); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", format, diff)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	b, err := Decode(strings.NewReader(sampleYAML), YAML)
	require.NoError(t, err)

	path := filepath.Join(dir, "board.json")
	require.NoError(t, Save(path, b))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, b.Containers(), got.Containers())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = FormatFromPath("board.toml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = FormatFromPath("board")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDecodeScript_Replay(t *testing.T) {
	b, err := Decode(strings.NewReader(sampleYAML), YAML)
	require.NoError(t, err)
	script, err := DecodeScript(strings.NewReader(`
- {event: start, active: item-1}
- {event: move, active: item-1, over: container-2}
- {event: end, active: item-1, over: container-2}
- {event: start, active: container-2}
- {event: move, active: container-2, over: container-1}
- {event: end, active: container-2, over: container-1}
`), YAML)
	require.NoError(t, err)
	require.Len(t, script, 6)

	s := dnd.NewSession(b)
	script.Replay(s)

	got := s.Board().Containers()
	require.Len(t, got, 2)
	assert.Equal(t, model.ID("container-2"), got[0].ID)
	assert.Equal(t, []model.Item{{ID: "item-1", Title: "Buy milk"}}, got[0].Items)
	assert.Equal(t, []model.Item{{ID: "item-2", Title: "Walk dog"}}, got[1].Items)
}

func TestDecodeScript_Invalid(t *testing.T) {
	_, err := DecodeScript(strings.NewReader(`[{"event":"hover","active":"item-1"}]`), JSON)
	assert.ErrorContains(t, err, "unknown event")

	_, err = DecodeScript(strings.NewReader(`[{"event":"start"}]`), JSON)
	assert.ErrorContains(t, err, "missing active")
}
