package controller

import (
	"errors"
	"sync"

	"audioshelf/internal/tui/model"
)

// ErrStopped is returned when an action is sent after the dispatcher has
// stopped.
var ErrStopped = errors.New("dispatcher stopped")

const externalQueueSize = 256

// actionSender carries actions from background goroutines into the loop.
// Send blocks while the buffer is full.
type actionSender struct {
	ch   chan model.Action
	done chan struct{}
	once sync.Once
}

func newActionSender() *actionSender {
	return &actionSender{
		ch:   make(chan model.Action, externalQueueSize),
		done: make(chan struct{}),
	}
}

func (s *actionSender) Send(action model.Action) error {
	select {
	case <-s.done:
		return ErrStopped
	default:
	}
	select {
	case s.ch <- action:
		return nil
	case <-s.done:
		return ErrStopped
	}
}

// drainInto appends every action waiting in the channel to queue.
func (s *actionSender) drainInto(queue []model.Action) []model.Action {
	for {
		select {
		case action := <-s.ch:
			if !action.IsNone() {
				queue = append(queue, action)
			}
		default:
			return queue
		}
	}
}

func (s *actionSender) close() {
	s.once.Do(func() { close(s.done) })
}
