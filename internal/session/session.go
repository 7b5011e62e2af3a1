package session

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-shot notice shown on the next rendered page
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Data is the persisted part of a session
type Data struct {
	UserID   uint    `json:"user_id,omitempty"`
	UserName string  `json:"user_name,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

func (d Data) empty() bool {
	return d.UserID == 0 && d.UserName == "" && len(d.Flashes) == 0
}

// Session is the request-scoped view of one visitor's session. It is not safe
// for concurrent use; each request gets its own.
type Session struct {
	id         string
	data       Data
	stored     bool   // a record exists in the store under id
	previousID string // stored record to drop on commit after a rotation
	dirty      bool
	committed  bool
}

func newSession(id string) *Session {
	return &Session{id: id}
}

// New returns an empty anonymous session with a fresh id
func New() *Session {
	return newSession(newID())
}

func (s *Session) ID() string { return s.id }

// LoggedIn reports whether an identity is attached to the session
func (s *Session) LoggedIn() bool { return s.data.UserID != 0 }

func (s *Session) UserID() uint { return s.data.UserID }

func (s *Session) UserName() string { return s.data.UserName }

// AddFlash queues a notice for the next render
func (s *Session) AddFlash(f Flash) {
	s.data.Flashes = append(s.data.Flashes, f)
	s.dirty = true
}

// PopFlashes returns queued notices and removes them from the session
func (s *Session) PopFlashes() []Flash {
	flashes := s.data.Flashes
	if len(flashes) > 0 {
		s.data.Flashes = nil
		s.dirty = true
	}
	return flashes
}

// Apply performs a session change decided by the account flow. Both
// identity changes issue a new session id.
func (s *Session) Apply(d Delta) {
	switch d.kind {
	case deltaSetIdentity:
		s.rotate()
		s.data.UserID = d.userID
		s.data.UserName = d.userName
		s.dirty = true
	case deltaClear:
		s.rotate()
		s.data = Data{}
		s.dirty = true
	}
}

func (s *Session) rotate() {
	if s.stored && s.previousID == "" {
		s.previousID = s.id
	}
	s.id = newID()
	s.stored = false
}

// Dirty reports whether the session has changes not yet committed
func (s *Session) Dirty() bool { return s.dirty }

type deltaKind int

const (
	deltaNone deltaKind = iota
	deltaSetIdentity
	deltaClear
)

// Delta is an explicit session change returned by the account flow. The zero
// value changes nothing.
type Delta struct {
	kind     deltaKind
	userID   uint
	userName string
}

// SetIdentity logs the given user in
func SetIdentity(userID uint, userName string) Delta {
	return Delta{kind: deltaSetIdentity, userID: userID, userName: userName}
}

// Clear drops every value held by the session
func Clear() Delta {
	return Delta{kind: deltaClear}
}

// IsZero reports whether d leaves the session untouched
func (d Delta) IsZero() bool { return d.kind == deltaNone }
