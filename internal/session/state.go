// Package session tracks the processing lifecycle of one uploaded CSV as an
// explicit state machine.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"briefs-processor/internal/model"
)

// State is one phase of the processing lifecycle
type State string

// Processing states
const (
	StateIdle             State = "idle"
	StateAwaitingFile     State = "awaiting_file"
	StateAwaitingResponse State = "awaiting_response"
	StateShowingResults   State = "showing_results"
	StateShowingError     State = "showing_error"
)

// Event triggers a state transition
type Event string

// Transition events
const (
	EventFileSelected  Event = "file_selected"
	EventSubmit        Event = "submit"
	EventResponseOK    Event = "response_ok"
	EventResponseError Event = "response_error"
	EventReset         Event = "reset"
)

// transitions defines the allowed moves. Anything absent is an error; an
// export against a session that never reached results fails here rather
// than deep in a handler.
var transitions = map[State]map[Event]State{
	StateIdle: {
		EventFileSelected: StateAwaitingFile,
	},
	StateAwaitingFile: {
		EventSubmit: StateAwaitingResponse,
		EventReset:  StateIdle,
	},
	StateAwaitingResponse: {
		EventResponseOK:    StateShowingResults,
		EventResponseError: StateShowingError,
	},
	StateShowingResults: {
		EventReset: StateIdle,
	},
	StateShowingError: {
		EventReset: StateIdle,
	},
}

// Session is the lifecycle of one upload: its current state, the completed
// briefing once results are in, and the error message when processing
// failed.
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	briefing *model.Briefing
	errMsg   string
}

// New creates a Session in the idle state
func New() *Session {
	return &Session{
		ID:    uuid.NewString(),
		state: StateIdle,
	}
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fire applies an event. Invalid transitions leave the session unchanged
// and return an error.
func (s *Session) Fire(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := transitions[s.state][event]
	if !ok {
		return fmt.Errorf("invalid transition: %s cannot accept %s", s.state, event)
	}
	s.state = next
	if next == StateIdle {
		s.briefing = nil
		s.errMsg = ""
	}
	return nil
}

// SetBriefing attaches the completed briefing alongside the response_ok
// transition.
func (s *Session) SetBriefing(b *model.Briefing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.briefing = b
}

// Briefing returns the completed briefing, or nil before results are in
func (s *Session) Briefing() *model.Briefing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.briefing
}

// SetError records the error message alongside the response_error
// transition.
func (s *Session) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// Err returns the recorded error message, empty outside showing_error
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Store is an in-memory session registry keyed by session ID
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers and returns a new idle session
func (st *Store) Create() *Session {
	s := New()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
