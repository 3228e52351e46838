// Package dialogue parses the line-oriented chat script into a graph of
// blocks addressed by integer id.
//
// Script format, one directive per line:
//
//	[start] 3         begin (or continue) block 3
//	[choice] 4,Text   offer block 4 as a choice labelled Text
//	[next] 5          continue with block 5 after the last line
//	[end]             ignored
//
// Blank lines are skipped and every other line is dialogue text of the
// current block.
package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// StartID is the block every conversation begins with.
const StartID = 0

var (
	ErrBadID         = errors.New("invalid block id")
	ErrOutsideBlock  = errors.New("directive before any [start]")
	ErrMalformed     = errors.New("malformed directive")
	ErrNoStart       = errors.New("no start block")
	ErrEmptyStart    = errors.New("start block has no lines")
	ErrUnknownTarget = errors.New("reference to undefined block")
)

const (
	prefixStart  = "[start]"
	prefixChoice = "[choice]"
	prefixNext   = "[next]"
	prefixEnd    = "[end]"
)

// Block is one node of the conversation. A block named by a [choice]
// directive has IsChoice set and carries the choice text in Label; Lines
// holds only its body.
type Block struct {
	ID       int
	Label    string
	Lines    []string
	Next     *int
	Choices  []int
	IsChoice bool
}

// Script is a parsed dialogue file.
type Script struct {
	Blocks map[int]*Block
}

// Block returns the block with the given id, or nil.
func (s *Script) Block(id int) *Block { return s.Blocks[id] }

// IDs returns every block id in ascending order.
func (s *Script) IDs() []int {
	ids := make([]int, 0, len(s.Blocks))
	for id := range s.Blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Parse reads a script. Unknown lines are dialogue text; bad ids, directives
// outside a block and dangling references are errors.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{Blocks: make(map[int]*Block)}
	var (
		cur  *Block
		refs = map[int]int{} // next target -> line it was named on
	)

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, prefixStart):
			id, err := parseID(strings.TrimPrefix(line, prefixStart))
			if err != nil {
				return nil, fmt.Errorf("dialogue: line %d: %w", n, err)
			}
			cur = s.ensure(id)

		case strings.HasPrefix(line, prefixChoice):
			if cur == nil {
				return nil, fmt.Errorf("dialogue: line %d: %w", n, ErrOutsideBlock)
			}
			idText, label, ok := strings.Cut(strings.TrimPrefix(line, prefixChoice), ",")
			if !ok {
				return nil, fmt.Errorf("dialogue: line %d: choice needs id,text: %w", n, ErrMalformed)
			}
			id, err := parseID(idText)
			if err != nil {
				return nil, fmt.Errorf("dialogue: line %d: %w", n, err)
			}
			choice := s.ensure(id)
			choice.IsChoice = true
			if choice.Label == "" {
				choice.Label = strings.TrimSpace(label)
			}
			cur.Choices = append(cur.Choices, id)

		case strings.HasPrefix(line, prefixNext):
			if cur == nil {
				return nil, fmt.Errorf("dialogue: line %d: %w", n, ErrOutsideBlock)
			}
			id, err := parseID(strings.TrimPrefix(line, prefixNext))
			if err != nil {
				return nil, fmt.Errorf("dialogue: line %d: %w", n, err)
			}
			cur.Next = &id
			refs[id] = n

		case strings.HasPrefix(line, prefixEnd):

		case strings.TrimSpace(line) == "":

		default:
			if cur == nil {
				return nil, fmt.Errorf("dialogue: line %d: text %q: %w", n, line, ErrOutsideBlock)
			}
			cur.Lines = append(cur.Lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dialogue: read: %w", err)
	}

	for id, at := range refs {
		if s.Blocks[id] == nil {
			return nil, fmt.Errorf("dialogue: line %d: next %d: %w", at, id, ErrUnknownTarget)
		}
	}
	start := s.Blocks[StartID]
	if start == nil {
		return nil, fmt.Errorf("dialogue: line %d: %w", n, ErrNoStart)
	}
	if len(start.Lines) == 0 {
		return nil, fmt.Errorf("dialogue: line %d: %w", n, ErrEmptyStart)
	}
	return s, nil
}

// ensure returns block id, creating it if needed. Blocks may be named by a
// [choice] before or after their own [start].
func (s *Script) ensure(id int) *Block {
	b := s.Blocks[id]
	if b == nil {
		b = &Block{ID: id}
		s.Blocks[id] = b
	}
	return b
}

func parseID(text string) (int, error) {
	text = strings.TrimSpace(text)
	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadID, text)
	}
	return id, nil
}
