package snake

// Segment is one block of the snake.
// Last is where the segment was before the most recent advance; the segment
// behind it moves there.
type Segment struct {
	Pos  Vec
	Last Vec
}

// Chain is the snake body, head at index 0.
type Chain struct {
	segments []Segment
	heading  Direction // Direction of the most recent advance
	next     Direction // Direction the next advance will use
}

// NewChain builds a straight chain of length segments with the head at head.
// The body trails behind the head, opposite to dir.
func NewChain(head Vec, dir Direction, length, block int) *Chain {
	if length < 1 {
		length = 1
	}

	back := dir.Opposite().Delta().Scale(block)
	segments := make([]Segment, length)
	pos := head
	for i := range segments {
		segments[i] = Segment{Pos: pos, Last: pos}
		pos = pos.Add(back)
	}

	return &Chain{
		segments: segments,
		heading:  dir,
		next:     dir,
	}
}

// Len returns the number of segments.
func (c *Chain) Len() int {
	return len(c.segments)
}

// Head returns the head position.
func (c *Chain) Head() Vec {
	return c.segments[0].Pos
}

// Segment returns the i-th segment, head first.
func (c *Chain) Segment(i int) Segment {
	return c.segments[i]
}

// Positions returns a copy of all segment positions, head first.
func (c *Chain) Positions() []Vec {
	out := make([]Vec, len(c.segments))
	for i, s := range c.segments {
		out[i] = s.Pos
	}
	return out
}

// Direction returns the direction the next advance will use.
func (c *Chain) Direction() Direction {
	return c.next
}

// Heading returns the direction of the most recent advance.
func (c *Chain) Heading() Direction {
	return c.heading
}

// ChangeDirection requests a new direction for the next advance.
// A request to reverse the current heading is ignored. Later requests before
// the same advance overwrite earlier ones.
func (c *Chain) ChangeDirection(d Direction) bool {
	if d == c.heading.Opposite() {
		return false
	}
	c.next = d
	return true
}

// Advance moves the chain one block.
// Every Last is captured before any Pos is overwritten, so each body segment
// takes the pre-advance position of the segment ahead of it.
func (c *Chain) Advance(block int) {
	for i := range c.segments {
		c.segments[i].Last = c.segments[i].Pos
	}

	c.heading = c.next
	c.segments[0].Pos = c.segments[0].Pos.Add(c.heading.Delta().Scale(block))
	for i := 1; i < len(c.segments); i++ {
		c.segments[i].Pos = c.segments[i-1].Last
	}
}

// Append grows the chain by one segment placed on the tail's last position.
func (c *Chain) Append() {
	tail := c.segments[len(c.segments)-1]
	c.segments = append(c.segments, Segment{Pos: tail.Last, Last: tail.Last})
}

// Occupies reports whether any segment sits at p.
func (c *Chain) Occupies(p Vec) bool {
	for _, s := range c.segments {
		if s.Pos == p {
			return true
		}
	}
	return false
}
