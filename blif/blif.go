package blif

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/memlogic/logic"
)

// Sentinel errors of the reader.
var (
	// ErrSyntax indicates malformed BLIF input.
	ErrSyntax = errors.New("blif: syntax error")

	// ErrUnsupported indicates a construct outside the combinational
	// subset, such as .latch.
	ErrUnsupported = errors.New("blif: unsupported construct")
)

// cover is one .names table: the fanin net names and the cover rows.
type cover struct {
	inputs []string
	rows   []coverRow
	line   int
}

type coverRow struct {
	pattern string
	value   byte
}

// Parse reads a combinational BLIF model and builds it as a network of
// the given flavor.
func Parse(r io.Reader, flavor logic.Flavor) (*logic.Network, error) {
	lines, err := logicalLines(r)
	if err != nil {
		return nil, err
	}

	var (
		inputs  []string
		outputs []string
		covers  = map[string]*cover{}
		current *cover
		ended   bool
	)
	for _, ln := range lines {
		fields := strings.Fields(ln.text)
		if len(fields) == 0 {
			continue
		}
		if ended {
			return nil, fmt.Errorf("%w: line %d: content after .end", ErrSyntax, ln.num)
		}
		if !strings.HasPrefix(fields[0], ".") {
			// A cover row of the open .names block.
			if current == nil {
				return nil, fmt.Errorf("%w: line %d: cover row outside .names", ErrSyntax, ln.num)
			}
			row, err := parseRow(fields, len(current.inputs), ln.num)
			if err != nil {
				return nil, err
			}
			current.rows = append(current.rows, row)
			continue
		}
		current = nil
		switch fields[0] {
		case ".model":
			// Model name is informational.
		case ".inputs":
			inputs = append(inputs, fields[1:]...)
		case ".outputs":
			outputs = append(outputs, fields[1:]...)
		case ".names":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: line %d: .names without a target", ErrSyntax, ln.num)
			}
			target := fields[len(fields)-1]
			if _, dup := covers[target]; dup {
				return nil, fmt.Errorf("%w: line %d: net %q defined twice", ErrSyntax, ln.num, target)
			}
			current = &cover{inputs: fields[1 : len(fields)-1], line: ln.num}
			covers[target] = current
		case ".end":
			ended = true
		case ".latch":
			return nil, fmt.Errorf("%w: line %d: .latch", ErrUnsupported, ln.num)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown directive %s", ErrSyntax, ln.num, fields[0])
		}
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("%w: no outputs", ErrSyntax)
	}

	b := &builder{
		n:        logic.NewNetwork(flavor),
		covers:   covers,
		signals:  map[string]logic.Signal{},
		visiting: map[string]bool{},
	}
	for _, name := range inputs {
		if _, dup := b.signals[name]; dup {
			return nil, fmt.Errorf("%w: input %q declared twice", ErrSyntax, name)
		}
		b.signals[name] = b.n.AddPI()
	}
	for _, name := range outputs {
		s, err := b.resolve(name)
		if err != nil {
			return nil, err
		}
		b.n.AddPO(s)
	}
	return b.n, nil
}

// ParseFile reads a BLIF benchmark from a file.
func ParseFile(path string, flavor logic.Flavor) (*logic.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blif: %w", err)
	}
	defer f.Close()
	n, err := Parse(f, flavor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

type builder struct {
	n        *logic.Network
	covers   map[string]*cover
	signals  map[string]logic.Signal
	visiting map[string]bool
}

// resolve builds the net by name, recursing into its fanin covers. BLIF
// permits covers in any order, so resolution is demand driven.
func (b *builder) resolve(name string) (logic.Signal, error) {
	if s, ok := b.signals[name]; ok {
		return s, nil
	}
	c, ok := b.covers[name]
	if !ok {
		return 0, fmt.Errorf("%w: net %q is never defined", ErrSyntax, name)
	}
	if b.visiting[name] {
		return 0, fmt.Errorf("%w: combinational loop through %q", ErrSyntax, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	fanins := make([]logic.Signal, len(c.inputs))
	for i, in := range c.inputs {
		s, err := b.resolve(in)
		if err != nil {
			return 0, err
		}
		fanins[i] = s
	}

	s, err := b.build(c, fanins)
	if err != nil {
		return 0, err
	}
	b.signals[name] = s
	return s, nil
}

// build materializes one cover as a sum of products. Offset covers (rows
// with output 0) yield the complement of the sum; an empty cover is
// constant false.
func (b *builder) build(c *cover, fanins []logic.Signal) (logic.Signal, error) {
	if len(c.rows) == 0 {
		return logic.Const0, nil
	}
	value := c.rows[0].value
	sum := logic.Const0
	for _, row := range c.rows {
		if row.value != value {
			return 0, fmt.Errorf("%w: line %d: mixed onset and offset rows", ErrSyntax, c.line)
		}
		term := logic.Const1
		for i, ch := range []byte(row.pattern) {
			switch ch {
			case '1':
				term = b.n.And(term, fanins[i])
			case '0':
				term = b.n.And(term, fanins[i].Not())
			case '-':
			}
		}
		sum = b.n.Or(sum, term)
	}
	if value == '0' {
		sum = sum.Not()
	}
	return sum, nil
}

func parseRow(fields []string, arity int, line int) (coverRow, error) {
	var pattern, out string
	switch len(fields) {
	case 1:
		// Constant cover of a zero-input .names.
		pattern, out = "", fields[0]
	case 2:
		pattern, out = fields[0], fields[1]
	default:
		return coverRow{}, fmt.Errorf("%w: line %d: malformed cover row", ErrSyntax, line)
	}
	if len(pattern) != arity {
		return coverRow{}, fmt.Errorf("%w: line %d: pattern width %d, expected %d",
			ErrSyntax, line, len(pattern), arity)
	}
	for _, ch := range []byte(pattern) {
		if ch != '0' && ch != '1' && ch != '-' {
			return coverRow{}, fmt.Errorf("%w: line %d: bad pattern char %q", ErrSyntax, line, ch)
		}
	}
	if out != "0" && out != "1" {
		return coverRow{}, fmt.Errorf("%w: line %d: cover output must be 0 or 1", ErrSyntax, line)
	}
	return coverRow{pattern: pattern, value: out[0]}, nil
}

type numberedLine struct {
	text string
	num  int
}

// logicalLines scans physical lines into logical ones: # comments are
// stripped and a trailing backslash joins the next line.
func logicalLines(r io.Reader) ([]numberedLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var (
		out     []numberedLine
		pending string
		start   int
		num     int
	)
	for sc.Scan() {
		num++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if pending == "" {
			start = num
		}
		if strings.HasSuffix(text, "\\") {
			pending += strings.TrimSuffix(text, "\\") + " "
			continue
		}
		out = append(out, numberedLine{text: pending + text, num: start})
		pending = ""
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("blif: %w", err)
	}
	if pending != "" {
		out = append(out, numberedLine{text: pending, num: start})
	}
	return out, nil
}
