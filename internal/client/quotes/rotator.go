package quotes

import (
	"math/rand/v2"
	"sync"
)

// Source picks a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Reaction is the like/dislike state of the quote on screen. It is never
// persisted and resets with every new quote.
type Reaction struct {
	Liked    bool
	Disliked bool
}

// Rotator walks a random permutation of the catalog. Each quote is served
// once per cycle; a new permutation is drawn when the cycle is used up.
type Rotator struct {
	mu       sync.Mutex
	catalog  []Quote
	order    []int
	cursor   int
	current  *Quote
	reaction Reaction
	rnd      Source
}

// NewRotator copies catalog. A nil rnd uses the global generator.
func NewRotator(catalog []Quote, rnd Source) (*Rotator, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rnd == nil {
		rnd = globalSource{}
	}
	r := &Rotator{
		catalog: append([]Quote{}, catalog...),
		order:   make([]int, len(catalog)),
		rnd:     rnd,
	}
	r.shuffle()
	return r, nil
}

// shuffle is Fisher-Yates over the identity permutation.
func (r *Rotator) shuffle() {
	for i := range r.order {
		r.order[i] = i
	}
	for i := len(r.order) - 1; i > 0; i-- {
		j := r.rnd.IntN(i + 1)
		r.order[i], r.order[j] = r.order[j], r.order[i]
	}
	r.cursor = 0
}

// Next serves the following quote and clears the reaction.
func (r *Rotator) Next() Quote {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cursor >= len(r.order) {
		r.shuffle()
	}
	q := r.catalog[r.order[r.cursor]]
	r.cursor++
	r.current = &q
	r.reaction = Reaction{}
	return q
}

// Current returns the quote last served by Next.
func (r *Rotator) Current() (Quote, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return Quote{}, false
	}
	return *r.current, true
}

// React toggles like (liked) or dislike. The two are exclusive.
func (r *Rotator) React(liked bool) Reaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	if liked {
		r.reaction = Reaction{Liked: !r.reaction.Liked}
	} else {
		r.reaction = Reaction{Disliked: !r.reaction.Disliked}
	}
	return r.reaction
}

func (r *Rotator) Reaction() Reaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reaction
}

func (r *Rotator) Len() int {
	return len(r.catalog)
}
