package state

// Mode selects how the console loop behaves.
type Mode int

const (
	Interactive Mode = iota
	Batch
)

func (m Mode) String() string {
	if m == Batch {
		return "batch"
	}
	return "interactive"
}

// Session holds per-console state that is fixed before the loop starts.
type Session struct {
	mode Mode
}

func NewSession() *Session {
	return &Session{mode: Interactive}
}

// ForceBatch switches the session to batch mode. There is no way back.
func (s *Session) ForceBatch() {
	s.mode = Batch
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) IsBatch() bool {
	return s.mode == Batch
}
