package orderform

import (
	"sync"
	"time"
)

// Timer is a pending redirect. Stop reports whether it was still pending.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	ScheduleRedirect(url string, delay time.Duration) Timer
}

type Navigator interface {
	Navigate(url string)
}

type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) {
	f(url)
}

type clockScheduler struct {
	navigator Navigator
}

// NewClockScheduler navigates in process once the delay has elapsed.
func NewClockScheduler(navigator Navigator) Scheduler {
	return &clockScheduler{navigator: navigator}
}

func (s *clockScheduler) ScheduleRedirect(url string, delay time.Duration) Timer {
	return time.AfterFunc(delay, func() {
		s.navigator.Navigate(url)
	})
}

// PageScheduler hands the redirect to the browser. It only records what was scheduled;
// the page it belongs to renders the pending redirect, if any, as a refresh directive.
type PageScheduler struct {
	mu      sync.Mutex
	pending *PageRedirect
}

type PageRedirect struct {
	URL   string
	Delay time.Duration

	owner *PageScheduler
}

func NewPageScheduler() *PageScheduler {
	return &PageScheduler{}
}

func (s *PageScheduler) ScheduleRedirect(url string, delay time.Duration) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &PageRedirect{URL: url, Delay: delay, owner: s}
	return s.pending
}

// Pending returns the redirect still waiting to be rendered.
func (s *PageScheduler) Pending() (url string, delay time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return "", 0, false
	}
	return s.pending.URL, s.pending.Delay, true
}

func (r *PageRedirect) Stop() bool {
	s := r.owner
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != r {
		return false
	}
	s.pending = nil
	return true
}
