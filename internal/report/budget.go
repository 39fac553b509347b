// Package report renders parsed agent transcripts into bounded-size
// operator reports in markdown, plain-text and terminal styles.
package report

// DefaultBudgetLimit is the report size ceiling in bytes, matching the
// hard limit imposed by the platform report sink.
const DefaultBudgetLimit = 1024000

// Budget is a latched byte counter consulted before appending report
// content. Once a single append is rejected, every later append is
// rejected too, so a tripped render stops at a well-defined point
// instead of truncating mid-element. A Budget belongs to exactly one
// render pass and must not be shared or reused across renders.
type Budget struct {
	used    int
	limit   int
	tripped bool
}

// NewBudget returns a budget with the given byte ceiling. A limit <= 0
// selects DefaultBudgetLimit.
func NewBudget(limit int) *Budget {
	if limit <= 0 {
		limit = DefaultBudgetLimit
	}
	return &Budget{limit: limit}
}

// TryAppend records n candidate bytes. It returns false and latches the
// budget when the append would exceed the ceiling; once latched, all
// later calls return false regardless of size.
func (b *Budget) TryAppend(n int) bool {
	if b.tripped {
		return false
	}
	if b.used+n > b.limit {
		b.tripped = true
		return false
	}
	b.used += n
	return true
}

// Tripped reports whether the ceiling was hit.
func (b *Budget) Tripped() bool {
	return b.tripped
}

// Used returns the bytes recorded so far.
func (b *Budget) Used() int {
	return b.used
}

// Reset clears the counter and the latch for a fresh render pass.
func (b *Budget) Reset() {
	b.used = 0
	b.tripped = false
}
