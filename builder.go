package zippedrange

// Builder accumulates sequences one at a time and zips them in the order
// they were added. It suits callers that only know the number of inputs at
// run time.
/* Example:
	b := zippedrange.NewBuilder()
	for _, col := range columns {
		b.Add(zippedrange.Slice(col))
	}
	r, err := b.Build()
*/
type Builder struct {
	seqs []Sequence
	opts []Option
}

// NewBuilder returns an empty builder. opts are applied to the built range.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// Add appends s as the next slot.
//
// Add panics if s is nil.
func (b *Builder) Add(s Sequence) *Builder {
	if s == nil {
		panic("zippedrange: Builder.Add requires non-nil sequence")
	}
	b.seqs = append(b.seqs, s)
	return b
}

// Len returns the number of sequences added so far.
func (b *Builder) Len() int { return len(b.seqs) }

// Build zips the added sequences. It returns an [*ArityError] if fewer than
// [MinArity] sequences were added.
func (b *Builder) Build() (*Range, error) {
	if len(b.seqs) < MinArity {
		return nil, &ArityError{Got: len(b.seqs)}
	}
	seqs := make([]Sequence, len(b.seqs))
	copy(seqs, b.seqs)
	return newRange(seqs, buildConfig(b.opts)), nil
}
