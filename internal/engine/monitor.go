package engine

import "sync"

// State is the run state shared between callers and the simulation goroutine.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// command mutates loop-owned state. Commands run on the simulation goroutine
// between ticks, in the order they were issued.
type command func(*simulation)

// monitor guards the run state, the selected mode and the queue of pending
// commands. The simulation goroutine parks on cond while there is nothing to
// do; every mutation broadcasts.
type monitor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	mode    Mode
	rule    string
	pending []command
	closed  bool
	started bool
}

func newMonitor(mode Mode, rule string) *monitor {
	m := &monitor{mode: mode, rule: rule}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// enqueueLocked appends a command. Caller holds mu.
func (m *monitor) enqueueLocked(c command) {
	m.pending = append(m.pending, c)
	m.cond.Broadcast()
}

// setStateLocked changes the run state and reports the previous one. Caller
// holds mu.
func (m *monitor) setStateLocked(s State) State {
	prev := m.state
	if prev != s {
		m.state = s
		m.cond.Broadcast()
	}
	return prev
}

// await blocks until the loop has work: the state is Running, commands are
// pending, the monitor is closed, or flush asks for one more pass. It drains
// the queue and returns the state observed at that instant. ok is false once
// closed.
func (m *monitor) await(flush bool) (cmds []command, state State, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for !flush && m.state != Running && len(m.pending) == 0 && !m.closed {
		m.cond.Wait()
	}
	if m.closed {
		return nil, Stopped, false
	}
	cmds, m.pending = m.pending, nil
	return cmds, m.state, true
}

// close marks the monitor closed and wakes the loop. It reports false when
// already closed.
func (m *monitor) close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.closed = true
	m.state = Stopped
	m.pending = nil
	m.cond.Broadcast()
	return true
}
