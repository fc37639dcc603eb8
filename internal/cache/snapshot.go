// Package cache guarda o último resultado de uma busca e descarta respostas obsoletas
package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrStaleResponse indica que uma busca terminou depois de outra mais recente e foi descartada
var ErrStaleResponse = errors.New("resposta obsoleta descartada")

// Snapshot guarda o último valor buscado de uma fonte externa.
//
// Cada busca pede um token com Begin antes de começar e só grava o resultado
// com Commit se o token ainda for o mais recente. Uma busca lenta iniciada
// antes de outra, ou antes de uma invalidação, nunca sobrescreve o valor novo.
type Snapshot[T any] struct {
	mu         sync.RWMutex
	value      T
	hasValue   bool
	storedAt   time.Time
	generation uint64
	ttl        time.Duration
	now        func() time.Time
}

// NewSnapshot cria um snapshot vazio. ttl <= 0 significa que o valor não expira.
func NewSnapshot[T any](ttl time.Duration) *Snapshot[T] {
	return &Snapshot[T]{
		ttl: ttl,
		now: time.Now,
	}
}

// Get retorna o valor guardado, se existir e não estiver expirado
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if !s.hasValue {
		return zero, false
	}
	if s.ttl > 0 && s.now().Sub(s.storedAt) > s.ttl {
		return zero, false
	}
	return s.value, true
}

// Begin emite um novo token de requisição; tokens anteriores deixam de valer
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	return s.generation
}

// Commit grava o valor se o token ainda for o mais recente.
// Retorna false quando a resposta é obsoleta e foi descartada.
func (s *Snapshot[T]) Commit(token uint64, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation {
		return false
	}

	s.value = value
	s.hasValue = true
	s.storedAt = s.now()
	return true
}

// Fill grava um valor lido de uma fonte secundária sem emitir token.
// Só grava com o snapshot vazio e se nenhum token foi emitido desde generation,
// assim uma leitura nunca invalida uma busca em andamento.
func (s *Snapshot[T]) Fill(generation uint64, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasValue || generation != s.generation {
		return false
	}

	s.value = value
	s.hasValue = true
	s.storedAt = s.now()
	return true
}

// Invalidate descarta o valor guardado e invalida buscas em andamento
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.hasValue = false
	s.storedAt = time.Time{}
	s.generation++
}

// StoredAt retorna quando o valor atual foi gravado
func (s *Snapshot[T]) StoredAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.storedAt
}

// Generation retorna o token mais recente emitido
func (s *Snapshot[T]) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.generation
}
