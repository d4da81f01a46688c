package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleCellScenario(t *testing.T) {
	e := New(Config{Rows: 1, Cols: 1, ChanceLightStartsOn: 0.5}, AlwaysOn(), nil)
	assert.False(t, e.HasWon())
	assert.Equal(t, Playing, e.Status())

	require.NoError(t, e.Toggle(Coord{X: 0, Y: 0}))
	assert.False(t, e.State.Board.IsLit(Coord{X: 0, Y: 0}))
	assert.True(t, e.HasWon())
	assert.Equal(t, Won, e.Status())
}

func TestAllOffStartsWon(t *testing.T) {
	e := New(Config{Rows: 3, Cols: 3, ChanceLightStartsOn: 0.5}, AlwaysOff(), nil)
	assert.True(t, e.HasWon())
	assert.Equal(t, 0, e.State.Moves)
}

func TestTwoByTwoScenario(t *testing.T) {
	e := NewFromBoard(MustParseBoard("OO", "OO"), nil)
	require.NoError(t, e.Toggle(Coord{X: 0, Y: 0}))
	assert.Equal(t, "..\n.O", e.State.Board.String())
	assert.False(t, e.HasWon())
}

func TestToggleReplacesState(t *testing.T) {
	e := NewFromBoard(MustParseBoard("O..", "...", "..."), nil)
	before := e.State.Board

	require.NoError(t, e.Toggle(Coord{X: 1, Y: 1}))
	assert.Equal(t, 1, e.State.Moves)
	assert.Equal(t, "OO.\nOOO\n.O.", e.State.Board.String())
	assert.Equal(t, "O..\n...\n...", before.String())
}

func TestToggleOutOfBounds(t *testing.T) {
	e := NewFromBoard(MustParseBoard("O.", ".."), nil)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		err := e.Toggle(c)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, 0, e.State.Moves)
	assert.Equal(t, "O.\n..", e.State.Board.String())
}

func TestToggleAfterWin(t *testing.T) {
	e := NewFromBoard(MustParseBoard("O"), nil)
	require.NoError(t, e.Toggle(Coord{X: 0, Y: 0}))
	require.True(t, e.HasWon())

	err := e.Toggle(Coord{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrGameWon)
	assert.True(t, e.HasWon())
	assert.Equal(t, 1, e.State.Moves)
}

func TestToggleCallbacks(t *testing.T) {
	e := NewFromBoard(MustParseBoard("OO."), nil)

	var toggled [][]Coord
	won := 0
	e.OnToggled = func(state State, flipped []Coord) {
		toggled = append(toggled, flipped)
	}
	e.OnWon = func(state State) {
		won++
		assert.True(t, state.Board.AllOff())
	}

	require.NoError(t, e.Toggle(Coord{X: 2, Y: 0}))
	assert.Equal(t, 0, won)
	assert.Equal(t, "O.O", e.State.Board.String())

	require.NoError(t, e.Toggle(Coord{X: 0, Y: 0}))
	assert.Equal(t, ".OO", e.State.Board.String())

	require.NoError(t, e.Toggle(Coord{X: 2, Y: 0}))
	assert.Equal(t, "...", e.State.Board.String())
	assert.Equal(t, 1, won)
	assert.Len(t, toggled, 3)
	assert.ElementsMatch(t, []Coord{{2, 0}, {1, 0}}, toggled[2])
}

func TestShapeHoldsAcrossToggles(t *testing.T) {
	cfg := Config{Rows: 4, Cols: 3, ChanceLightStartsOn: 0.5}
	e := New(cfg, NewSource(99), nil)
	rnd := NewSource(100)
	for i := 0; i < 50 && !e.HasWon(); i++ {
		c := Coord{X: rnd.IntN(cfg.Cols), Y: rnd.IntN(cfg.Rows)}
		require.NoError(t, e.Toggle(c))
		assertShape(t, e.State.Board, cfg.Rows, cfg.Cols)
	}
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() {
		New(Config{Rows: 0, Cols: 3, ChanceLightStartsOn: 0.5}, AlwaysOn(), nil)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{Rows: 1, Cols: 1, ChanceLightStartsOn: 1}.Validate())

	for _, cfg := range []Config{
		{Rows: 0, Cols: 5, ChanceLightStartsOn: 0.5},
		{Rows: 5, Cols: -1, ChanceLightStartsOn: 0.5},
		{Rows: 5, Cols: 5, ChanceLightStartsOn: 1.5},
		{Rows: 5, Cols: 5, ChanceLightStartsOn: -0.1},
	} {
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Playing", Playing.String())
	assert.Equal(t, "Won", Won.String())
}
