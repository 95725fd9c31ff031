// Package transcript holds recorded command/output sessions and turns them
// into reproducible text.
//
// Output blocks are stored and returned exactly as given. Nothing in this
// package trims, wraps or normalises them.
package transcript

// Command is one input line and the literal output it produced.
type Command struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
}

// Session is a titled, ordered run of commands.
type Session struct {
	Title    string    `yaml:"title" json:"title"`
	Commands []Command `yaml:"commands" json:"commands"`
}

// CommandList returns the commands in stored order. The slice is a copy.
func (s Session) CommandList() []Command {
	return append([]Command(nil), s.Commands...)
}

func (s Session) clone() Session {
	return Session{Title: s.Title, Commands: s.CommandList()}
}

// Collection is an immutable, ordered list of sessions.
type Collection struct {
	sessions []Session
}

// NewCollection copies sessions so later changes by the caller are not
// visible through the collection.
func NewCollection(sessions ...Session) Collection {
	c := Collection{sessions: make([]Session, len(sessions))}
	for i, s := range sessions {
		c.sessions[i] = s.clone()
	}
	return c
}

func (c Collection) Len() int { return len(c.sessions) }

// Sessions returns every session in stored order.
func (c Collection) Sessions() []Session {
	out := make([]Session, len(c.sessions))
	for i, s := range c.sessions {
		out[i] = s.clone()
	}
	return out
}

func (c Collection) At(i int) (Session, bool) {
	if i < 0 || i >= len(c.sessions) {
		return Session{}, false
	}
	return c.sessions[i].clone(), true
}

// Find returns the first session with the given title.
func (c Collection) Find(title string) (Session, bool) {
	for _, s := range c.sessions {
		if s.Title == title {
			return s.clone(), true
		}
	}
	return Session{}, false
}

func (c Collection) Titles() []string {
	titles := make([]string, len(c.sessions))
	for i, s := range c.sessions {
		titles[i] = s.Title
	}
	return titles
}
