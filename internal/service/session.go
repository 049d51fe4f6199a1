package service

import (
	"sync"
	"time"

	"github.com/adislens/medpgprep/internal/model"
)

const (
	// A session holds at most this many questions, drawn from a shuffled
	// subject pool.
	maxSessionQuestions = 20
	// Allotted countdown per question, in seconds.
	secondsPerQuestion = 63
)

// testSession is the ephemeral state of one timed attempt. It lives only in
// memory; submission transforms it into a persisted TestResult and discards
// it. All mutation happens under mu so a manual submit and the auto-submit
// timer cannot both win.
type testSession struct {
	id              string
	userID          uint
	subject         string
	questions       []model.Question
	currentIndex    int
	answers         map[uint]string
	timePerQuestion []int
	allottedSeconds int
	startedAt       time.Time
	lastNavAt       time.Time
	submitted       bool
	timer           *time.Timer

	mu sync.Mutex
}

// remainingSeconds is clamped to zero; the countdown never goes negative.
func (s *testSession) remainingSeconds(now time.Time) int {
	remaining := s.allottedSeconds - int(now.Sub(s.startedAt).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// flushElapsed attributes wall-clock time since the last navigation to the
// question currently being left. Caller must hold mu.
func (s *testSession) flushElapsed(now time.Time) {
	elapsed := int(now.Sub(s.lastNavAt).Seconds())
	if elapsed > 0 {
		s.timePerQuestion[s.currentIndex] += elapsed
	}
	s.lastNavAt = now
}

// sessionStore is the in-memory registry of live sessions, keyed by id.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*testSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*testSession)}
}

func (st *sessionStore) put(s *testSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *sessionStore) get(id string) (*testSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
