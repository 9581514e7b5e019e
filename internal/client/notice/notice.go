// Package notice keeps the single status banner shown by a screen.
//
// The most recent notice always wins. Success and info notices dismiss
// themselves after a delay; error notices stay until replaced or dismissed.
// A timer armed for an older notice never clears a newer one.
package notice

import (
	"sync"
	"time"
)

type Kind int

const (
	KindNone Kind = iota
	KindInfo
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "none"
	}
}

type Notice struct {
	Kind Kind
	Text string
}

func (n Notice) Empty() bool { return n.Kind == KindNone }

// Board holds the current notice. The zero value is not usable; use NewBoard.
type Board struct {
	dismissAfter time.Duration

	mu      sync.Mutex
	current Notice
	gen     uint64
	timer   *time.Timer
}

// NewBoard returns a board whose success and info notices vanish after
// dismissAfter. A non-positive value keeps them until replaced.
func NewBoard(dismissAfter time.Duration) *Board {
	return &Board{dismissAfter: dismissAfter}
}

func (b *Board) Info(text string)    { b.post(Notice{Kind: KindInfo, Text: text}, true) }
func (b *Board) Success(text string) { b.post(Notice{Kind: KindSuccess, Text: text}, true) }
func (b *Board) Error(text string)   { b.post(Notice{Kind: KindError, Text: text}, false) }

func (b *Board) Current() Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Dismiss clears the board.
func (b *Board) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.stopTimer()
	b.current = Notice{}
}

func (b *Board) post(n Notice, selfDismiss bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	b.stopTimer()
	b.current = n

	if !selfDismiss || b.dismissAfter <= 0 {
		return
	}

	gen := b.gen
	b.timer = time.AfterFunc(b.dismissAfter, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.current = Notice{}
		}
	})
}

// stopTimer must be called with mu held.
func (b *Board) stopTimer() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
