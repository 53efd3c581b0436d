// Package views holds the client's page models. A page loads its data
// through the services, keeps what is on screen and the last error message,
// and navigates when an action completes. Pages know nothing about the
// terminal; the cli package renders them.
package views

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrSubmitting is returned when an action is started while another one on
// the same page is still running.
var ErrSubmitting = errors.New("already submitting")

// page is embedded by every page model. A page is mounted from construction
// until Unmount; results that arrive later are dropped.
type page struct {
	mounted    atomic.Bool
	submitting atomic.Bool

	mu  sync.Mutex
	err string
}

func (p *page) mount() { p.mounted.Store(true) }

func (p *page) Unmount() { p.mounted.Store(false) }

func (p *page) Mounted() bool { return p.mounted.Load() }

func (p *page) Submitting() bool { return p.submitting.Load() }

// Err is the message of the last failed action, or "".
func (p *page) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *page) begin() error {
	if !p.submitting.CompareAndSwap(false, true) {
		return ErrSubmitting
	}
	return nil
}

func (p *page) end() { p.submitting.Store(false) }

// apply runs fn under the page lock if the page is still mounted.
func (p *page) apply(fn func()) bool {
	if !p.mounted.Load() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
	return true
}

// settle records the outcome of an action: err's message on failure, a
// cleared message on success. It returns err unchanged.
func (p *page) settle(err error) error {
	p.apply(func() {
		if err != nil {
			p.err = err.Error()
		} else {
			p.err = ""
		}
	})
	return err
}
