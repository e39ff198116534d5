package puzzle

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateJSONShape(t *testing.T) {
	data := sortedData(t, 1, 2)

	b, err := EncodeState(StateOf(data))
	require.NoError(t, err)

	var raw struct {
		Rows  int                 `json:"rows"`
		Cols  int                 `json:"cols"`
		Pairs [][]json.RawMessage `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, 1, raw.Rows)
	assert.Equal(t, 2, raw.Cols)
	require.Len(t, raw.Pairs, 2)
	require.Len(t, raw.Pairs[1], 2, "a pair is encoded as [cell, item]")

	var item map[string]float64
	require.NoError(t, json.Unmarshal(raw.Pairs[1][1], &item))
	assert.Equal(t, 1.0, item["position"])
	assert.Equal(t, -24.0, item["bgX"])
}

func TestStateDecodeRestoresPairs(t *testing.T) {
	p := newTestPuzzle(4)
	data, err := p.Run(Data{Image: image48x24(), Rows: 3, Cols: 3})
	require.NoError(t, err)

	b, err := EncodeState(p.State())
	require.NoError(t, err)

	s, err := DecodeState(b)
	require.NoError(t, err)
	if diff := cmp.Diff(data.Pairs, s.Pairs); diff != "" {
		t.Errorf("decoded pairs differ (-want +got):\n%s", diff)
	}
}

func TestDecodeStateRejectsInconsistent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad grid", `{"rows":0,"cols":2,"pairs":[]}`, ErrConfiguration},
		{"too few pairs", `{"rows":1,"cols":2,"pairs":[[{"row":0,"col":0},{"position":0}]]}`, ErrState},
		{"duplicate position", `{"rows":1,"cols":2,"pairs":[[{"row":0,"col":0},{"position":1}],[{"row":0,"col":1},{"position":1}]]}`, ErrState},
		{"position out of range", `{"rows":1,"cols":2,"pairs":[[{"row":0,"col":0},{"position":0}],[{"row":0,"col":1},{"position":5}]]}`, ErrState},
		{"column out of range", `{"rows":2,"cols":2,"pairs":[[{"row":0,"col":0},{"position":0}],[{"row":0,"col":1},{"position":1}],[{"row":0,"col":2},{"position":2}],[{"row":1,"col":1},{"position":3}]]}`, ErrState},
		{"cells out of order", `{"rows":1,"cols":2,"pairs":[[{"row":0,"col":1},{"position":0}],[{"row":0,"col":0},{"position":1}]]}`, ErrState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState([]byte(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := DecodeState([]byte(`{"rows":1,"cols":1,"pairs":[[{}]]}`))
	require.Error(t, err)
}

func TestRestoreRelayoutsForImage(t *testing.T) {
	p := newTestPuzzle(8)
	_, err := p.Run(Data{Image: image48x24(), Rows: 2, Cols: 2})
	require.NoError(t, err)
	saved := p.State()

	bigger := Image{Source: "big", Width: 96, Height: 48}
	q := newTestPuzzle(1)
	data, err := q.Restore(saved, bigger)
	require.NoError(t, err)

	assert.Equal(t, Positions(saved.Pairs), Positions(data.Pairs))
	assert.Equal(t, 48.0, data.Pairs[1].Cell.X)
	for _, pair := range data.Pairs {
		col := pair.Item.Position % 2
		assert.Equal(t, -48.0*float64(col), pair.Item.BgX)
	}
}
