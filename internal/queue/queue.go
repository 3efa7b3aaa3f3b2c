// Package queue provides a bounded candidate queue for nearest-neighbor
// selection.
package queue

// Candidate is one scored neighbor candidate.
// Value-based (no pointers) for cache locality and zero allocations per push.
type Candidate struct {
	ID       int     // Absolute index of the candidate.
	Distance float64 // Squared distance to the query.
}

// Bounded keeps the k smallest candidates seen so far.
// Internally it is a max-heap over Distance, so the current worst retained
// candidate is always at the root and can be evicted in O(log k).
// Ties on Distance are broken toward the smaller ID, which makes the retained
// set deterministic for deterministic input.
type Bounded struct {
	k     int
	items []Candidate
}

// NewBounded creates a queue retaining at most k candidates.
func NewBounded(k int) *Bounded {
	if k < 0 {
		k = 0
	}
	return &Bounded{k: k, items: make([]Candidate, 0, k)}
}

// Len returns the number of retained candidates.
func (b *Bounded) Len() int { return len(b.items) }

// Push offers a candidate. It is retained if the queue is not yet full or if
// it beats the current worst retained candidate.
func (b *Bounded) Push(c Candidate) {
	if b.k <= 0 {
		return
	}
	if len(b.items) < b.k {
		b.items = append(b.items, c)
		b.siftUp(len(b.items) - 1)
		return
	}
	if !worse(b.items[0], c) {
		return
	}
	b.items[0] = c
	b.siftDown(0)
}

// Drain removes all retained candidates and returns them ordered by
// (Distance, ID) ascending. The queue is empty afterwards.
func (b *Bounded) Drain() []Candidate {
	out := make([]Candidate, len(b.items))
	for i := len(b.items) - 1; i >= 0; i-- {
		out[i] = b.pop()
	}
	return out
}

func (b *Bounded) pop() Candidate {
	n := len(b.items)
	root := b.items[0]
	last := b.items[n-1]
	b.items[n-1] = Candidate{}
	b.items = b.items[:n-1]
	if n-1 > 0 {
		b.items[0] = last
		b.siftDown(0)
	}
	return root
}

// worse reports whether a should be evicted before c.
func worse(a, c Candidate) bool {
	if a.Distance != c.Distance {
		return a.Distance > c.Distance
	}
	return a.ID > c.ID
}

func (b *Bounded) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !worse(b.items[i], b.items[p]) {
			return
		}
		b.items[i], b.items[p] = b.items[p], b.items[i]
		i = p
	}
}

func (b *Bounded) siftDown(i int) {
	n := len(b.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		top := l
		if r := l + 1; r < n && worse(b.items[r], b.items[l]) {
			top = r
		}
		if !worse(b.items[top], b.items[i]) {
			return
		}
		b.items[i], b.items[top] = b.items[top], b.items[i]
		i = top
	}
}
