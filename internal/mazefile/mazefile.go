// Package mazefile reads and writes the plain-text maze description format.
//
// The format is:
//
//	rows cols
//	startRow startCol
//	exitRow exitCol
//	<rows lines; '*' is a wall, anything else (or nothing) is open>
package mazefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// WallChar marks a wall cell in a maze description.
const WallChar = '*'

// MaxCells caps rows*cols in a description.
const MaxCells = 1 << 22

// maxLineBytes bounds one grid line: a single row of MaxCells cells of up to
// four bytes each, plus a CRLF.
const maxLineBytes = 4*MaxCells + 2

// ErrSyntax is returned when a header line is malformed.
var ErrSyntax = errors.New("mazefile: syntax error")

// LoadFile reads a maze description from the named file.
func LoadFile(ctx context.Context, path string) (*maze.Grid, error) {
	tracer := telemetry.Tracer("mazefile")
	_, span := tracer.Start(ctx, "mazefile.load")
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze file %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to parse maze file %s: %w", path, err)
	}

	span.SetAttributes(
		attribute.String("mazefile.path", path),
		attribute.Int("maze.rows", g.Rows()),
		attribute.Int("maze.cols", g.Cols()),
		attribute.Int("maze.walls", g.Count(maze.Wall)),
	)
	return g, nil
}

// ParseString parses a maze description held in a string.
func ParseString(s string) (*maze.Grid, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a maze description. Short or missing grid lines are open cells;
// lines past the last row are ignored.
func Parse(r io.Reader) (*maze.Grid, error) {
	sc := &scanner{Scanner: bufio.NewScanner(r)}
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	rows, cols, err := sc.pair("size")
	if err != nil {
		return nil, err
	}
	if rows > 0 && cols > 0 && rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: line %d: %dx%d exceeds %d cells", ErrSyntax, sc.line, rows, cols, MaxCells)
	}
	g, err := maze.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", sc.line, err)
	}

	startRow, startCol, err := sc.pair("start")
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(maze.Pos(startRow, startCol)); err != nil {
		return nil, fmt.Errorf("line %d: start: %w", sc.line, err)
	}

	exitRow, exitCol, err := sc.pair("exit")
	if err != nil {
		return nil, err
	}
	if err := g.SetExit(maze.Pos(exitRow, exitCol)); err != nil {
		return nil, fmt.Errorf("line %d: exit: %w", sc.line, err)
	}

	for row := 0; row < rows && sc.Scan(); row++ {
		sc.line++
		for col, ch := range []byte(sc.Text()) {
			if ch != WallChar {
				continue
			}
			if err := g.SetWall(maze.Pos(row, col)); err != nil {
				return nil, fmt.Errorf("line %d: wall: %w", sc.line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}

	return g, nil
}

// scanner tracks the current line number for error messages.
type scanner struct {
	*bufio.Scanner
	line int
}

// pair reads the next line as two integers.
func (s *scanner) pair(what string) (int, int, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to read maze: %w", err)
		}
		return 0, 0, fmt.Errorf("%w: line %d: missing %s line", ErrSyntax, s.line+1, what)
	}
	s.line++

	fields := strings.Fields(s.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line %d: %s needs two integers, got %q", ErrSyntax, s.line, what, s.Text())
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %s: %v", ErrSyntax, s.line, what, err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %d: %s: %v", ErrSyntax, s.line, what, err)
	}
	return a, b, nil
}

// Encode writes g in the description format. Search marks are written as open
// cells and trailing open cells on a row are omitted.
func Encode(w io.Writer, g *maze.Grid) error {
	start, okStart := g.Start()
	exit, okExit := g.Exit()
	if !okStart || !okExit {
		return fmt.Errorf("encode maze: %w", maze.ErrNotConfigured)
	}

	bw := bufio.NewWriter(w)
	rows, cols := g.Dimensions()
	fmt.Fprintf(bw, "%d %d\n", rows, cols)
	fmt.Fprintf(bw, "%d %d\n", start.Row, start.Col)
	fmt.Fprintf(bw, "%d %d\n", exit.Row, exit.Col)

	line := make([]byte, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m, err := g.At(maze.Pos(r, c))
			if err != nil {
				return err
			}
			if m == maze.Wall {
				line[c] = WallChar
			} else {
				line[c] = ' '
			}
		}
		bw.WriteString(strings.TrimRight(string(line), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
