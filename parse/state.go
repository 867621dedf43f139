package parse

// State is a cursor over an argument list. The position of the current argument is its
// index in the original list.
type State interface {
	Pos() int            // Get the current position
	SetPos(pos int)      // Set the current position
	CurrentArg() string  // Get the current argument
	Peek() string        // Peek at the next argument
	HasNext() bool       // Report whether an argument follows the current one
	Advance() bool       // Advance to the next argument
	Remaining() []string // Get the arguments after the current one
	Len() int            // Gets the length of the argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// SetPos sets the current position in the argument list
func (s *DefaultState) SetPos(pos int) {
	s.pos = pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// HasNext reports whether an argument follows the current one
func (s *DefaultState) HasNext() bool {
	return s.pos+1 < len(s.args)
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.HasNext() {
		s.pos++
		return true
	}

	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() string {
	if s.HasNext() {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns the arguments after the current one
func (s *DefaultState) Remaining() []string {
	if !s.HasNext() {
		return nil
	}

	return s.args[s.pos+1:]
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
