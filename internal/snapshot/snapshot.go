package snapshot

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// headerLines is the number of leading lines every snapshot file
	// carries; they are discarded regardless of content.
	headerLines = 2

	// sizeFieldWidth is the fixed width, in characters, of the size
	// column at the start of each snapshot line.
	sizeFieldWidth = 12

	// indentWidth is the number of display characters per nesting level.
	indentWidth = 4
)

// branchGlyphs are the tree-drawing prefix sequences produced by the
// snapshot generator. Each one is exactly indentWidth display characters
// wide, so every occurrence stands for one nesting level.
var branchGlyphs = []string{"├── ", "└── ", "│   "}

// Snapshot maps a full slash-joined path to the node's size in bytes.
type Snapshot map[string]int64

// Load reads and parses the snapshot file at path.
func Load(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	defer file.Close()

	snap, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Parse converts snapshot text into a Snapshot in a single linear pass.
//
// The first two lines are always skipped and blank lines are ignored.
// Every other line is split at character position 12 into a size field
// and a tree field. A local stack of ancestor names is truncated to the
// line's depth and the decoded name appended; the stack joined with "/"
// is the node's full path. A duplicate full path silently overwrites the
// earlier entry, and names containing "/" merge with the path separator
// as-is.
func Parse(r io.Reader) (Snapshot, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	snap := make(Snapshot)
	var stack []string
	lineNum := 0

	for sc.Scan() {
		lineNum++
		if lineNum <= headerLines {
			continue
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		sizeField, treeField := splitFields(line)
		treeField = strings.TrimRight(treeField, " \t\r")

		depth := decodeDepth(treeField)
		name := decodeName(treeField)

		if depth < len(stack) {
			stack = stack[:depth]
		}
		stack = append(stack, name)

		snap[strings.Join(stack, "/")] = ParseSize(sizeField)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan snapshot text: %w", err)
	}

	return snap, nil
}

// splitFields cuts a line into the fixed-width size field and the tree
// field. Lines shorter than the size field yield an empty tree field.
func splitFields(line string) (sizeField, treeField string) {
	runes := []rune(line)
	if len(runes) <= sizeFieldWidth {
		return line, ""
	}
	return string(runes[:sizeFieldWidth]), string(runes[sizeFieldWidth:])
}

// decodeDepth derives the nesting level of a tree field. Each branch
// glyph sequence is replaced with one indentation unit of spaces, then
// the leading space run is counted. Switching glyph type mid-tree does
// not change the arithmetic since all sequences share the same width.
func decodeDepth(treeField string) int {
	expanded := treeField
	for _, glyph := range branchGlyphs {
		expanded = strings.ReplaceAll(expanded, glyph, strings.Repeat(" ", indentWidth))
	}

	leading := 0
	for _, r := range expanded {
		if r != ' ' {
			break
		}
		leading++
	}
	return leading / indentWidth
}

// decodeName strips every branch glyph sequence and surrounding
// whitespace from the tree field, leaving the node's display name.
func decodeName(treeField string) string {
	name := treeField
	for _, glyph := range branchGlyphs {
		name = strings.ReplaceAll(name, glyph, "")
	}
	return strings.TrimSpace(name)
}

// Fingerprint returns a hex xxhash of the snapshot's sorted entries.
// Two snapshots with identical paths and sizes share a fingerprint.
func (s Snapshot) Fingerprint() string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	h := xxhash.New()
	var buf [8]byte
	for _, path := range paths {
		h.WriteString(path)
		h.Write([]byte{0})
		binary.BigEndian.PutUint64(buf[:], uint64(s[path]))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
