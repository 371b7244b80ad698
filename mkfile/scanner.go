package mkfile

import (
	"strings"
	"unicode"
)

type scannerState int

const (
	segmentNotDefined scannerState = iota // accumulating free content
	segmentStarts                         // header parsed, indentation not yet known
	segmentContinued                      // indentation known, body growing line by line
)

// Scanner walks a document once and produces Nodes lazily. It is a cursor
// over an immutable input string; emitted nodes borrow from that string,
// no text is copied.
type Scanner struct {
	input  string
	cursor int

	state        scannerState
	name         string
	deps         []string
	bodyStart    int // byte just past the header line
	contentStart int // start of pending free content
	indentation  string

	node Node
}

func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// ScanAll collects every node of input.
func ScanAll(input string) []Node {
	var nodes []Node
	s := NewScanner(input)
	for s.Scan() {
		nodes = append(nodes, s.Node())
	}
	return nodes
}

// Node returns the node found by the last call to Scan.
func (s *Scanner) Node() Node {
	return s.node
}

// The cursor deliberately runs one byte past the end of input: the final
// line has no terminating newline to consume, so every line-consuming step
// advances past an imaginary one.
func (s *Scanner) done() bool {
	return s.cursor > len(s.input)
}

// Scan advances to the next node. It returns false once the input is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.done() {
		return s.scanTrailing()
	}
	for {
		initial := s.cursor
		switch s.state {
		case segmentNotDefined:
			if s.startSegment() && initial > s.contentStart {
				s.node = Content(s.input[s.contentStart:initial])
				return true
			}
		case segmentStarts:
			if !s.continueSegment() {
				s.node = Segment(s.name, "", "", s.deps)
				s.finishSegment(initial)
				return true
			}
		case segmentContinued:
			s.completeSegment()
			end := s.cursor
			s.node = Segment(s.name, s.input[s.bodyStart:end], s.indentation, s.deps)
			s.finishSegment(end)
			return true
		}
		if s.done() {
			if s.state == segmentNotDefined {
				s.node = Content(s.input[s.contentStart:])
				return true
			}
			return s.scanTrailing()
		}
	}
}

// scanTrailing emits the segment whose header was parsed but whose body
// ran into the end of input.
func (s *Scanner) scanTrailing() bool {
	if s.state == segmentNotDefined {
		return false
	}
	s.node = Segment(s.name, s.tailBody(), s.indentation, s.deps)
	s.finishSegment(s.cursor)
	return true
}

// tailBody is the rest of the input from the body start; the body start
// may sit past the end when the header line had no newline.
func (s *Scanner) tailBody() string {
	if s.bodyStart > len(s.input) {
		return ""
	}
	return s.input[s.bodyStart:]
}

// startSegment tries to parse a segment header at the cursor. A header
// starts at column 0 with a letter and runs over segment-name characters
// up to a colon; the rest of the header line is the dependency list. Any
// other shape skips the whole line as free content.
func (s *Scanner) startSegment() bool {
	rest := s.input[s.cursor:]
	for i, c := range rest {
		if i == 0 && !unicode.IsLetter(c) {
			s.skipLine(rest)
			return false
		}
		if c == '\n' {
			s.cursor += i + 1
			return false
		}
		if c == ':' {
			s.cursor += i + 1
			consumed, deps := collectDependencies(s.input[s.cursor:])
			s.cursor += consumed
			s.state = segmentStarts
			s.name = rest[:i]
			s.deps = deps
			s.bodyStart = s.cursor
			return true
		}
		if !isSegmentNameChar(c) {
			s.skipLine(rest)
			return false
		}
	}
	s.cursor += len(rest) + 1
	return false
}

func (s *Scanner) skipLine(rest string) {
	if p := findNewline(rest); p >= 0 {
		s.cursor += p + 1
	} else {
		s.cursor += len(rest) + 1
	}
}

// continueSegment inspects what follows a freshly parsed header. Leading
// whitespace up to the first non-whitespace rune becomes the segment's
// indentation; a line starting at column 0 means the segment has no body.
func (s *Scanner) continueSegment() bool {
	rest := s.input[s.cursor:]
	i := findNotWhitespace(rest)
	if i < 0 {
		s.cursor += len(rest) + 1
		return false
	}
	// Column 0: no body. The cursor stays put so the line can start the
	// next segment.
	if i == 0 {
		return false
	}
	s.state = segmentContinued
	s.indentation = rest[:i]
	if p := findNewline(rest[i:]); p >= 0 {
		s.cursor += i + p + 1
	} else {
		s.cursor += len(rest) + 1
	}
	return true
}

// completeSegment consumes body lines while they keep the indentation
// prefix.
func (s *Scanner) completeSegment() {
	for !s.done() {
		rest := s.input[s.cursor:]
		if !strings.HasPrefix(rest, s.indentation) {
			break
		}
		if p := findNewline(rest); p >= 0 {
			s.cursor += p + 1
		} else {
			s.cursor += len(rest) + 1
		}
	}
}

func (s *Scanner) finishSegment(contentStart int) {
	s.state = segmentNotDefined
	s.name = ""
	s.deps = nil
	s.indentation = ""
	s.contentStart = contentStart
}
