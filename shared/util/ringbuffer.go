package util

import (
	"errors"
	"sync/atomic"
)

var (
	ErrQueueFull  = errors.New("buffer circular cheio")
	ErrQueueEmpty = errors.New("buffer circular vazio")
)

// RingBuffer é um buffer circular de baixa alocação com um produtor e um consumidor.
// Usado para os eventos de entrada que chegam entre dois ticks.
type RingBuffer[T any] struct {
	entries    []T
	mask       uint64
	producerID uint64
	consumerID uint64
}

// NewRingBuffer cria um novo buffer circular com a capacidade dada (será arredondada para potência de 2).
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	actualCap := nextPowerOfTwo(capacity)
	return &RingBuffer[T]{
		entries: make([]T, actualCap),
		mask:    uint64(actualCap - 1),
	}
}

// Enqueue adiciona um item ao buffer. Retorna ErrQueueFull se estiver cheio.
func (r *RingBuffer[T]) Enqueue(item T) error {
	next := atomic.LoadUint64(&r.producerID)
	consumer := atomic.LoadUint64(&r.consumerID)

	if next-consumer >= uint64(len(r.entries)) {
		return ErrQueueFull
	}

	r.entries[next&r.mask] = item
	atomic.AddUint64(&r.producerID, 1)
	return nil
}

// Dequeue remove um item do buffer. Retorna ErrQueueEmpty se estiver vazio.
func (r *RingBuffer[T]) Dequeue() (T, error) {
	var zero T
	consumer := atomic.LoadUint64(&r.consumerID)
	producer := atomic.LoadUint64(&r.producerID)

	if consumer >= producer {
		return zero, ErrQueueEmpty
	}

	item := r.entries[consumer&r.mask]
	r.entries[consumer&r.mask] = zero
	atomic.AddUint64(&r.consumerID, 1)
	return item, nil
}

// Len retorna quantos itens aguardam consumo.
func (r *RingBuffer[T]) Len() int {
	return int(atomic.LoadUint64(&r.producerID) - atomic.LoadUint64(&r.consumerID))
}

// Cap retorna a capacidade real (potência de 2).
func (r *RingBuffer[T]) Cap() int {
	return len(r.entries)
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
