package game

import (
	"context"
	"sync"

	"github.com/KirkDiggler/jeopardy/internal/models"
)

type fetchFunc func(ctx context.Context) ([]*models.Game, error)

// Subscription is a live view of a teacher's games. It emits the current list
// once on start and again after every change to the teacher's games.
type Subscription struct {
	teacherID string
	updates   chan []*models.Game
	errs      chan error
	notify    chan struct{}
	fetch     fetchFunc
	release   func()

	mu      sync.Mutex
	pending int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newSubscription(ctx context.Context, teacherID string, fetch fetchFunc) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	return &Subscription{
		teacherID: teacherID,
		updates:   make(chan []*models.Game),
		errs:      make(chan error, 1),
		notify:    make(chan struct{}, 1),
		fetch:     fetch,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
}

// TeacherID returns the teacher the subscription follows
func (s *Subscription) TeacherID() string {
	return s.teacherID
}

// Updates delivers the full list of the teacher's games on every change.
// The channel is closed when the subscription ends.
func (s *Subscription) Updates() <-chan []*models.Game {
	return s.updates
}

// Errors reports failures to refresh the list. The subscription keeps running
// after an error; only the most recent unread error is kept.
func (s *Subscription) Errors() <-chan error {
	return s.errs
}

// Done is closed once the subscription has stopped
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close stops the subscription. When Close returns no further emissions will
// be delivered. Safe to call more than once.
func (s *Subscription) Close() error {
	s.cancel()
	<-s.done
	return nil
}

func (s *Subscription) start(release func()) {
	s.release = release
	go s.run()
}

// changed records one change; each recorded change produces one emission
func (s *Subscription) changed() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Subscription) takePending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.pending
	s.pending = 0
	return n
}

func (s *Subscription) run() {
	defer close(s.done)
	defer func() {
		if s.release != nil {
			s.release()
		}
	}()
	defer close(s.updates)

	if !s.emit() {
		return
	}

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.notify:
			for n := s.takePending(); n > 0; n-- {
				if !s.emit() {
					return
				}
			}
		}
	}
}

// emit fetches and delivers the current list; it returns false once the
// subscription has been cancelled
func (s *Subscription) emit() bool {
	games, err := s.fetch(s.ctx)
	if s.ctx.Err() != nil {
		return false
	}
	if err != nil {
		select {
		case <-s.errs:
		default:
		}
		s.errs <- err
		return true
	}

	select {
	case s.updates <- games:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// registry tracks open subscriptions per teacher so writes can notify them
// and Dispose can close them
type registry struct {
	mu       sync.Mutex
	subs     map[string]map[*Subscription]struct{}
	disposed bool
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

func (r *registry) add(sub *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return ErrDisposed
	}
	set, ok := r.subs[sub.teacherID]
	if !ok {
		set = make(map[*Subscription]struct{})
		r.subs[sub.teacherID] = set
	}
	set[sub] = struct{}{}
	return nil
}

func (r *registry) remove(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[sub.teacherID]
	if !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(r.subs, sub.teacherID)
	}
}

func (r *registry) isDisposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disposed
}

// publish notifies every subscription following one of the teachers
func (r *registry) publish(teacherIDs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(teacherIDs))
	for _, id := range teacherIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		for sub := range r.subs[id] {
			sub.changed()
		}
	}
}

// dispose marks the registry closed and stops every open subscription
func (r *registry) dispose() {
	r.mu.Lock()
	r.disposed = true
	open := make([]*Subscription, 0)
	for _, set := range r.subs {
		for sub := range set {
			open = append(open, sub)
		}
	}
	r.mu.Unlock()

	for _, sub := range open {
		sub.Close()
	}
}
