package input

import (
	"log"

	"VoxelSandbox/shared/mapdata"
	"VoxelSandbox/shared/util"
)

// Key é uma tecla lógica do jogo (o host traduz os códigos físicos).
type Key int

const (
	KeyForward Key = iota // W
	KeyBack               // S
	KeyLeft               // A
	KeyRight              // D
	KeyJump               // Espaço

	keyCount
)

// Button é um botão do mouse.
type Button int

const (
	ButtonPrimary   Button = iota // Esquerdo: quebrar
	ButtonSecondary               // Direito: colocar
)

// EventKind diferencia os eventos vindos do host.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseDown
	EventMouseMove
	EventDigit         // Tecla numérica 1..5 (seleção de slot)
	EventPointerLock   // Captura do ponteiro obtida
	EventPointerUnlock // Captura perdida/liberada
)

// Event é um evento discreto de entrada entregue pelo host entre dois ticks.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	DX, DY float32 // EventMouseMove: deslocamento relativo em pixels
	Digit  int     // EventDigit: 1..5
}

// State é o retrato da entrada lido uma vez por tick.
// Teclas pressionadas persistem entre ticks; o delta do mouse acumula até ser consumido.
type State struct {
	held            [keyCount]bool
	mouseDX         float32
	mouseDY         float32
	pointerCaptured bool

	// Selected é o slot ativo do inventário (0..4).
	Selected int

	clicks []Button
}

// NewState cria um estado vazio com o primeiro slot selecionado.
func NewState() *State {
	return &State{clicks: make([]Button, 0, 4)}
}

// Apply incorpora um evento ao estado.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		if ev.Key >= 0 && ev.Key < keyCount {
			s.held[ev.Key] = true
		}
	case EventKeyUp:
		if ev.Key >= 0 && ev.Key < keyCount {
			s.held[ev.Key] = false
		}
	case EventMouseMove:
		// Sem captura o movimento é posição absoluta do cursor, não serve para olhar
		if s.pointerCaptured {
			s.mouseDX += ev.DX
			s.mouseDY += ev.DY
		}
	case EventMouseDown:
		s.clicks = append(s.clicks, ev.Button)
	case EventDigit:
		s.SelectDigit(ev.Digit)
	case EventPointerLock:
		s.pointerCaptured = true
	case EventPointerUnlock:
		s.pointerCaptured = false
		s.mouseDX, s.mouseDY = 0, 0
	}
}

// Held indica se a tecla está pressionada.
func (s *State) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// PointerCaptured indica se o mouse está capturado (modo olhar).
func (s *State) PointerCaptured() bool {
	return s.pointerCaptured
}

// ConsumeMouseDelta retorna o deslocamento acumulado e zera o acumulador.
func (s *State) ConsumeMouseDelta() (dx, dy float32) {
	dx, dy = s.mouseDX, s.mouseDY
	s.mouseDX, s.mouseDY = 0, 0
	return dx, dy
}

// ConsumeClicks retorna os cliques pendentes na ordem de chegada e limpa a lista.
func (s *State) ConsumeClicks() []Button {
	if len(s.clicks) == 0 {
		return nil
	}
	out := make([]Button, len(s.clicks))
	copy(out, s.clicks)
	s.clicks = s.clicks[:0]
	return out
}

// SelectDigit trata a tecla numérica 1..5. Outros dígitos são ignorados.
func (s *State) SelectDigit(digit int) {
	if digit < 1 || digit > mapdata.SlotCount() {
		return
	}
	s.Selected = digit - 1
}

// SelectedBlockType retorna o tipo de bloco do slot ativo.
// Um slot fora da faixa é corrigido para o primeiro, com aviso no log.
func (s *State) SelectedBlockType() mapdata.BlockType {
	t, err := mapdata.BlockTypeForSlot(s.Selected)
	if err != nil {
		log.Printf("[Input] %v, voltando para o slot 0", err)
		s.Selected = 0
	}
	return t
}

// Queue é a fila de eventos entre o host e o tick.
type Queue struct {
	buf     *util.RingBuffer[Event]
	dropped int
}

// NewQueue cria uma fila com a capacidade dada.
func NewQueue(capacity int) *Queue {
	return &Queue{buf: util.NewRingBuffer[Event](capacity)}
}

// Push enfileira um evento; se a fila estiver cheia o evento é descartado.
func (q *Queue) Push(ev Event) {
	if err := q.buf.Enqueue(ev); err != nil {
		q.dropped++
		log.Printf("[Input] Evento descartado (%v), total descartados: %d", err, q.dropped)
	}
}

// Drain entrega todos os eventos pendentes, em ordem, para fn.
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		ev, err := q.buf.Dequeue()
		if err != nil {
			return n
		}
		fn(ev)
		n++
	}
}

// Len retorna o número de eventos pendentes.
func (q *Queue) Len() int {
	return q.buf.Len()
}

// Dropped retorna quantos eventos foram descartados por fila cheia.
func (q *Queue) Dropped() int {
	return q.dropped
}
