package raster

import (
	"fmt"
	"strconv"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

func isWS(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t'
}

func skipWS(b []byte, i int) int {
	for i < len(b) && isWS(b[i]) {
		i++
	}
	return i
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isCommandLetter(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// parseNumber scans one numeric token starting at b[i], which must not be
// whitespace. It special-cases a lone leading '0' immediately followed by
// another digit (and not a '.'): that is a complete number by itself, so
// that flag- and coordinate-runs such as "0010" parse as "0", "0", "10"
// rather than swallowing the whole run as one token.
func parseNumber(b []byte, i int) (float64, int, error) {
	start := i
	j := i
	if j < len(b) && (b[j] == '+' || b[j] == '-') {
		j++
	}
	if j < len(b) && b[j] == '0' && j+1 < len(b) && isDigit(b[j+1]) {
		// lone stray zero: number ends right after it
		f, n := tstrconv.ParseFloat(b[start : j+1])
		if n != j+1-start {
			return 0, 0, fmt.Errorf("raster: invalid number %q", string(b[start:j+1]))
		}
		return f, j + 1 - start, nil
	}
	f, n := tstrconv.ParseFloat(b[start:])
	if n <= 0 {
		return 0, 0, fmt.Errorf("raster: invalid number at %q", string(b[start:]))
	}
	return f, n, nil
}

// parseFlag scans a single-digit SVG arc flag (0 or 1).
func parseFlag(b []byte, i int) (float64, int, error) {
	if i >= len(b) || (b[i] != '0' && b[i] != '1') {
		return 0, 0, fmt.Errorf("raster: expected arc flag (0 or 1)")
	}
	if b[i] == '0' {
		return 0.0, 1, nil
	}
	return 1.0, 1, nil
}

// letterArity returns the number of numeric fields a command letter's batch
// carries (Z/z takes none).
func letterArity(c byte) int {
	switch c {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'S', 's', 'Q', 'q':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

func letterToKind(c byte) CommandKind {
	switch c {
	case 'M':
		return MoveAbs
	case 'm':
		return MoveRel
	case 'L':
		return LineAbs
	case 'l':
		return LineRel
	case 'H':
		return HLineAbs
	case 'h':
		return HLineRel
	case 'V':
		return VLineAbs
	case 'v':
		return VLineRel
	case 'C':
		return CubeAbs
	case 'c':
		return CubeRel
	case 'S':
		return SmoothCubeAbs
	case 's':
		return SmoothCubeRel
	case 'Q':
		return QuadAbs
	case 'q':
		return QuadRel
	case 'T':
		return SmoothQuadAbs
	case 't':
		return SmoothQuadRel
	case 'A':
		return ArcAbs
	case 'a':
		return ArcRel
	case 'Z', 'z':
		return Close
	}
	panic("raster: unknown command letter")
}

// ParsePath parses SVG-style path syntax into a Path. The data must begin
// with an M or m command. After each command letter, further parameter
// batches of the declared arity implicitly repeat the
// same command, except that repeats of M/m become L/l. Arc flags (the
// fourth and fifth numbers of every A/a batch) parse as single digits.
func ParsePath(s string) (*Path, error) {
	b := []byte(s)
	p := &Path{}

	i := skipWS(b, 0)
	var letter byte
	for i < len(b) {
		if isCommandLetter(b[i]) {
			letter = b[i]
			if len(p.cmds) == 0 && letter != 'M' && letter != 'm' {
				return nil, &Error{Op: "ParsePath", Msg: fmt.Sprintf("path must start with a move command, got %q at position %d", letter, i)}
			}
			i++
			i = skipWS(b, i)
		} else if letter == 0 {
			return nil, &Error{Op: "ParsePath", Msg: fmt.Sprintf("expected command letter at position %d", i)}
		}

		arity := letterArity(letter)
		args := make([]float64, 0, arity)
		for k := 0; k < arity; k++ {
			i = skipWS(b, i)
			if i >= len(b) {
				return nil, &Error{Op: "ParsePath", Msg: "unexpected end of path data"}
			}
			var v float64
			var n int
			var err error
			isArcFlag := (letter == 'A' || letter == 'a') && (k == 3 || k == 4)
			if isArcFlag {
				v, n, err = parseFlag(b, i)
			} else {
				v, n, err = parseNumber(b, i)
			}
			if err != nil {
				return nil, &Error{Op: "ParsePath", Msg: err.Error()}
			}
			i += n
			args = append(args, v)
		}

		kind := letterToKind(letter)
		p.append(cmd(kind, args...))

		// implicit repetition: subsequent batches with no command letter
		// continue with the same command, except M/m degrades to L/l.
		// Close takes no arguments, so it never implicitly repeats -- the
		// next token must be an explicit command letter.
		if letter == 'M' {
			letter = 'L'
		} else if letter == 'm' {
			letter = 'l'
		} else if letter == 'Z' || letter == 'z' {
			letter = 0
		}

		i = skipWS(b, i)
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on error; intended for
// compile-time-constant path literals.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String serializes the path back to SVG-style path syntax, one explicit
// command letter per command. Round-tripping through ParsePath compares
// equal at the command level, though not necessarily byte-for-byte (e.g.
// implicit repeated batches are written out with their own letter).
func (p *Path) String() string {
	var buf []byte
	for _, c := range p.cmds {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c.Kind.String()...)
		for i := 0; i < c.Kind.Arity(); i++ {
			buf = append(buf, ' ')
			buf = appendNumber(buf, c.Args[i])
		}
	}
	return string(buf)
}

func appendNumber(buf []byte, f float64) []byte {
	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}
