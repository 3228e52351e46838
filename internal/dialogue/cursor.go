package dialogue

// Cursor walks a Script one line at a time.
type Cursor struct {
	script *Script
	block  *Block
	line   int
}

// NewCursor returns a cursor on the first line of the start block.
func NewCursor(s *Script) *Cursor {
	c := &Cursor{script: s}
	c.Reset()
	return c
}

// Reset rewinds to the start of the conversation.
func (c *Cursor) Reset() {
	c.block = c.script.Blocks[StartID]
	c.line = 0
}

func (c *Cursor) Block() *Block  { return c.block }
func (c *Cursor) LineIndex() int { return c.line }

// Line returns the current line of text.
func (c *Cursor) Line() string {
	if c.line >= len(c.block.Lines) {
		return ""
	}
	return c.block.Lines[c.line]
}

// AtLast reports whether the current line is the block's last.
func (c *Cursor) AtLast() bool { return c.line >= len(c.block.Lines)-1 }

// Choices returns the blocks on offer. Choices are only offered once the last
// line of the block has been reached.
func (c *Cursor) Choices() []*Block {
	if !c.AtLast() || len(c.block.Choices) == 0 {
		return nil
	}
	out := make([]*Block, 0, len(c.block.Choices))
	for _, id := range c.block.Choices {
		out = append(out, c.script.Blocks[id])
	}
	return out
}

// Done reports whether the conversation has nowhere left to go.
func (c *Cursor) Done() bool {
	return c.AtLast() && c.block.Next == nil && len(c.block.Choices) == 0
}

// Advance moves to the next line, following the block's next link after its
// last line. It reports false when a choice is pending or the conversation is
// over.
func (c *Cursor) Advance() bool {
	if !c.AtLast() {
		c.line++
		return true
	}
	if len(c.block.Choices) > 0 || c.block.Next == nil {
		return false
	}
	return c.jump(*c.block.Next)
}

// Choose picks choice i from Choices and continues with the chosen block's
// body. A block that is only a label follows its next link straight away.
func (c *Cursor) Choose(i int) bool {
	choices := c.Choices()
	if i < 0 || i >= len(choices) {
		return false
	}
	b := choices[i]
	if !c.jump(b.ID) {
		return false
	}
	if len(b.Lines) == 0 && b.Next != nil && len(b.Choices) == 0 {
		return c.jump(*b.Next)
	}
	return true
}

func (c *Cursor) jump(id int) bool {
	b := c.script.Blocks[id]
	if b == nil {
		return false
	}
	c.block = b
	c.line = 0
	return true
}
