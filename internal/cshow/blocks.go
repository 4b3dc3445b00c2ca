package cshow

import (
	"strconv"
	"strings"

	"github.com/banshee-data/adcp-config/internal/adcp"
)

// Block is one "[<i>] <csv>" group of an indexed command line.
type Block struct {
	Index  int
	Values adcp.Values
}

// Line is one command line of a dump split into its name and payload.
type Line struct {
	Name string
	// Indexed lines carry Blocks; global lines carry Values.
	Indexed bool
	Blocks  []Block
	Values  adcp.Values
}

// ParseLine splits a trimmed line. Global lines look like "CWSS 1490";
// indexed lines look like "CWPBL[0] 0.10 [1] 0.11". It reports false when
// the line does not start with a command name.
func ParseLine(line string) (Line, bool) {
	sc := &scanner{s: strings.TrimSpace(line)}
	name := sc.name()
	if name == "" {
		return Line{}, false
	}
	sc.skipSpace()
	if sc.peek() == '[' {
		return Line{Name: name, Indexed: true, Blocks: sc.blocks()}, true
	}
	return Line{Name: name, Values: adcp.SplitValues(sc.rest())}, true
}

// ParseBlocks tokenizes the "[<i>] <csv> [<i+1>] <csv> ..." tail of an
// indexed line. Parsing stops at the first malformed bracket; the blocks
// read so far are returned.
func ParseBlocks(s string) []Block {
	sc := &scanner{s: s}
	return sc.blocks()
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func isNameByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}

// name reads a command name.
func (sc *scanner) name() string {
	start := sc.pos
	for !sc.eof() && isNameByte(sc.s[sc.pos]) {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

func (sc *scanner) rest() string {
	r := sc.s[sc.pos:]
	sc.pos = len(sc.s)
	return r
}

// blocks := { index values }
func (sc *scanner) blocks() []Block {
	var out []Block
	for {
		sc.skipSpace()
		if sc.eof() {
			return out
		}
		idx, ok := sc.index()
		if !ok {
			return out
		}
		out = append(out, Block{Index: idx, Values: adcp.SplitValues(sc.values())})
	}
}

// index := '[' digits ']'
func (sc *scanner) index() (int, bool) {
	if sc.peek() != '[' {
		return 0, false
	}
	end := strings.IndexByte(sc.s[sc.pos:], ']')
	if end < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.s[sc.pos+1 : sc.pos+end]))
	if err != nil || n < 0 {
		return 0, false
	}
	sc.pos += end + 1
	return n, true
}

// values runs up to the next '[' or the end of the line.
func (sc *scanner) values() string {
	start := sc.pos
	for !sc.eof() && sc.s[sc.pos] != '[' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}
