package input

import (
	"testing"

	"VoxelSandbox/shared/mapdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldKeys(t *testing.T) {
	s := NewState()
	s.Apply(Event{Kind: EventKeyDown, Key: KeyForward})
	s.Apply(Event{Kind: EventKeyDown, Key: KeyJump})

	assert.True(t, s.Held(KeyForward))
	assert.True(t, s.Held(KeyJump))
	assert.False(t, s.Held(KeyBack))

	s.Apply(Event{Kind: EventKeyUp, Key: KeyForward})
	assert.False(t, s.Held(KeyForward))

	// Teclas fora da faixa são ignoradas
	s.Apply(Event{Kind: EventKeyDown, Key: Key(99)})
	assert.False(t, s.Held(Key(99)))
}

func TestMouseDeltaNeedsCapture(t *testing.T) {
	s := NewState()
	s.Apply(Event{Kind: EventMouseMove, DX: 10, DY: 5})
	dx, dy := s.ConsumeMouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	s.Apply(Event{Kind: EventPointerLock})
	require.True(t, s.PointerCaptured())
	s.Apply(Event{Kind: EventMouseMove, DX: 10, DY: 5})
	s.Apply(Event{Kind: EventMouseMove, DX: -3, DY: 1})
	dx, dy = s.ConsumeMouseDelta()
	assert.Equal(t, float32(7), dx)
	assert.Equal(t, float32(6), dy)

	// Consumir zera o acumulador
	dx, dy = s.ConsumeMouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	s.Apply(Event{Kind: EventMouseMove, DX: 4})
	s.Apply(Event{Kind: EventPointerUnlock})
	assert.False(t, s.PointerCaptured())
	dx, _ = s.ConsumeMouseDelta()
	assert.Zero(t, dx)
}

func TestClicksKeepOrder(t *testing.T) {
	s := NewState()
	assert.Nil(t, s.ConsumeClicks())

	s.Apply(Event{Kind: EventMouseDown, Button: ButtonSecondary})
	s.Apply(Event{Kind: EventMouseDown, Button: ButtonPrimary})
	assert.Equal(t, []Button{ButtonSecondary, ButtonPrimary}, s.ConsumeClicks())
	assert.Nil(t, s.ConsumeClicks())
}

func TestSelectDigit(t *testing.T) {
	tests := []struct {
		digit int
		want  mapdata.BlockType
	}{
		{1, mapdata.Grass},
		{2, mapdata.Dirt},
		{3, mapdata.Stone},
		{4, mapdata.Wood},
		{5, mapdata.Sand},
	}

	for _, tt := range tests {
		s := NewState()
		s.Apply(Event{Kind: EventDigit, Digit: tt.digit})
		assert.Equal(t, tt.want, s.SelectedBlockType(), "dígito %d", tt.digit)
	}

	// Dígitos fora de 1..5 não mudam a seleção
	s := NewState()
	s.SelectDigit(4)
	for _, d := range []int{0, 6, 9, -1} {
		s.SelectDigit(d)
	}
	assert.Equal(t, mapdata.Wood, s.SelectedBlockType())
}

func TestSelectedSlotOutOfRange(t *testing.T) {
	s := NewState()
	s.Selected = 12
	assert.Equal(t, mapdata.Grass, s.SelectedBlockType())
	assert.Equal(t, 0, s.Selected)
}

func TestQueue(t *testing.T) {
	q := NewQueue(4)
	for i := 1; i <= 6; i++ {
		q.Push(Event{Kind: EventDigit, Digit: i})
	}
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 2, q.Dropped())

	var got []int
	n := q.Drain(func(ev Event) { got = append(got, ev.Digit) })
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, q.Drain(func(Event) { t.Fatal("fila deveria estar vazia") }))
}
