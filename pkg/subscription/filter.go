package subscription

import (
	"strings"
)

// DefaultMarker is the line prefix that opens a subscription entry.
const DefaultMarker = "- recipients:"

// Block is one subscription entry, marker line included, with its original line terminators.
type Block struct {
	Text string
}

// Matches reports whether the block mentions target anywhere in its text.
// An empty target never matches.
func (b Block) Matches(target string) bool {
	if target == "" {
		return false
	}

	return strings.Contains(b.Text, target)
}

// List is a parsed subscriptions value.
//
// Preamble holds any content that precedes the first marker line. It is never
// matched against a target and is always written back.
type List struct {
	Preamble string
	Blocks   []Block
}

// Result summarises a filter pass.
type Result struct {
	// Total is the number of blocks found in the input.
	Total int
	// Removed is the number of blocks dropped because they matched the target.
	Removed int
}

// Changed reports whether the filter removed anything.
func (r Result) Changed() bool {
	return r.Removed > 0
}

// IsMarker reports whether line opens a new block.
//
// Leading spaces and tabs are ignored, so a marker nested inside a block is a
// boundary as well.
func IsMarker(line, marker string) bool {
	if marker == "" {
		marker = DefaultMarker
	}

	return strings.HasPrefix(strings.TrimLeft(line, " \t"), marker)
}

// Parse splits text into a preamble and marker-delimited blocks.
// An empty marker selects DefaultMarker.
func Parse(text, marker string) List {
	var (
		list    List
		current strings.Builder
		inBlock bool
	)

	closeBlock := func() {
		if inBlock {
			list.Blocks = append(list.Blocks, Block{Text: current.String()})
		} else {
			list.Preamble = current.String()
		}

		current.Reset()
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}

		if IsMarker(line, marker) {
			closeBlock()

			inBlock = true
		}

		current.WriteString(line)
	}

	closeBlock()

	return list
}

// Len returns the number of blocks.
func (l List) Len() int {
	return len(l.Blocks)
}

// Without returns a copy of the list minus every block that matches target,
// and the number of blocks removed. Block order is preserved.
func (l List) Without(target string) (List, int) {
	kept := make([]Block, 0, len(l.Blocks))

	for _, block := range l.Blocks {
		if block.Matches(target) {
			continue
		}

		kept = append(kept, block)
	}

	return List{Preamble: l.Preamble, Blocks: kept}, len(l.Blocks) - len(kept)
}

// String joins the preamble and blocks back into a subscriptions value.
func (l List) String() string {
	var builder strings.Builder

	builder.WriteString(l.Preamble)

	for _, block := range l.Blocks {
		builder.WriteString(block.Text)
	}

	return builder.String()
}

// Filter removes every block of text that contains target.
//
// Text without any marker line is returned unchanged, as is text filtered
// with an empty target.
func Filter(text, marker, target string) (string, Result) {
	list := Parse(text, marker)
	filtered, removed := list.Without(target)

	result := Result{Total: list.Len(), Removed: removed}
	if !result.Changed() {
		return text, result
	}

	return filtered.String(), result
}
