// Package compile: the owned program-text buffer crossing the service
// boundary.
package compile

// Program is the textual rendering of a generated instruction program. The
// service transfers ownership to the caller, who must release it exactly
// once; Release is idempotent, and a released Program reads as empty.
type Program struct {
	text     string
	released bool
}

// NewProgram wraps program text in an owned buffer.
func NewProgram(text string) *Program {
	return &Program{text: text}
}

// String returns the program text, or "" once released.
func (p *Program) String() string {
	if p == nil || p.released {
		return ""
	}
	return p.text
}

// Len returns the text length in bytes, 0 once released.
func (p *Program) Len() int {
	if p == nil || p.released {
		return 0
	}
	return len(p.text)
}

// Release drops the buffer. Releasing again (or releasing a nil Program) is
// a no-op.
func (p *Program) Release() {
	if p == nil {
		return
	}
	p.released = true
	p.text = ""
}
