package quotes

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(n int) []Quote {
	out := make([]Quote, n)
	for i := range out {
		out[i] = Quote{Text: string(rune('a' + i)), Author: "x"}
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	qs := DefaultCatalog()
	require.Len(t, qs, 65)

	seen := map[Quote]bool{}
	for _, q := range qs {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
		assert.False(t, seen[q], "duplicate %q", q.Text)
		seen[q] = true
	}
}

func TestParseCatalog(t *testing.T) {
	qs, err := ParseCatalog([]byte("quotes:\n  - quote: ' hi '\n  - quote: ''\n    author: nobody\n  - quote: yo\n    author: me\n"))
	require.NoError(t, err)
	assert.Equal(t, []Quote{{Text: "hi", Author: "Unknown"}, {Text: "yo", Author: "me"}}, qs)

	_, err = ParseCatalog([]byte("quotes: []"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = ParseCatalog([]byte("quotes: [oops"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	qs, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, qs, 65)

	p := filepath.Join(t.TempDir(), "q.yaml")
	require.NoError(t, os.WriteFile(p, []byte("quotes:\n  - quote: one\n    author: me\n"), 0o600))
	qs, err = LoadCatalog(p)
	require.NoError(t, err)
	assert.Equal(t, []Quote{{Text: "one", Author: "me"}}, qs)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewRotator_RejectsEmpty(t *testing.T) {
	_, err := NewRotator(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestRotator_EachCycleCoversCatalogOnce(t *testing.T) {
	cat := catalogOf(10)
	r, err := NewRotator(cat, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	var cycles [][]Quote
	for c := 0; c < 5; c++ {
		seen := map[Quote]int{}
		var order []Quote
		for i := 0; i < len(cat); i++ {
			q := r.Next()
			seen[q]++
			order = append(order, q)
		}
		assert.Len(t, seen, len(cat))
		for q, n := range seen {
			assert.Equal(t, 1, n, "quote %q served twice in one cycle", q.Text)
		}
		cycles = append(cycles, order)
	}

	differ := false
	for _, c := range cycles[1:] {
		if !assert.ObjectsAreEqual(cycles[0], c) {
			differ = true
		}
	}
	assert.True(t, differ, "each cycle draws a new permutation")
}

// scripted returns queued values, then zeros.
type scripted struct {
	vals  []int
	calls []int
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func TestRotator_FisherYatesBounds(t *testing.T) {
	src := &scripted{}
	_, err := NewRotator(catalogOf(4), src)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2}, src.calls)
}

func TestRotator_ReshufflesAfterExhaustion(t *testing.T) {
	// identity first, then all zeros: [a b c] -> j=0 for i=2,1 gives [b c a]
	src := &scripted{vals: []int{2, 1}}
	r, err := NewRotator(catalogOf(3), src)
	require.NoError(t, err)

	var got []string
	for i := 0; i < 6; i++ {
		got = append(got, r.Next().Text)
	}
	assert.Equal(t, []string{"a", "b", "c", "b", "c", "a"}, got)
	assert.Len(t, src.calls, 4)
}

func TestRotator_CurrentAndReactions(t *testing.T) {
	r, err := NewRotator(catalogOf(2), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	_, ok := r.Current()
	assert.False(t, ok)

	q := r.Next()
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, q, cur)

	assert.Equal(t, Reaction{Liked: true}, r.React(true))
	assert.Equal(t, Reaction{Disliked: true}, r.React(false), "dislike clears like")
	assert.Equal(t, Reaction{}, r.React(false), "toggles off")
	assert.Equal(t, Reaction{Liked: true}, r.React(true))
	assert.Equal(t, Reaction{}, r.React(true))

	r.React(true)
	r.Next()
	assert.Equal(t, Reaction{}, r.Reaction(), "new quote resets reactions")
	assert.Equal(t, 2, r.Len())
}

type fakeCreator struct {
	LastDraft models.Draft
	calls     int
	err       error
}

func (f *fakeCreator) Create(_ context.Context, d models.Draft) error {
	f.calls++
	f.LastDraft = d
	return f.err
}

func TestSaveReflection(t *testing.T) {
	fc := &fakeCreator{}
	q := Quote{Text: "Stay hungry", Author: "Steve Jobs"}

	require.NoError(t, SaveReflection(context.Background(), fc, q, "  so true  "))
	assert.Equal(t, models.Draft{
		Title:       "Quote Reflection",
		Content:     "so true",
		Category:    "Quote",
		Tags:        []string{"inspiration", "quote"},
		Quote:       "Stay hungry",
		QuoteAuthor: "Steve Jobs",
	}, fc.LastDraft)
}

func TestSaveReflection_EmptyCommentNeverSent(t *testing.T) {
	fc := &fakeCreator{}
	err := SaveReflection(context.Background(), fc, Quote{Text: "x"}, " \n ")

	require.ErrorIs(t, err, common.ErrValidation)
	var ve *common.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, MsgCommentEmpty, ve.Message)
	assert.Zero(t, fc.calls)
}

func TestSaveReflection_PropagatesStoreError(t *testing.T) {
	fc := &fakeCreator{err: common.ErrNotLoggedIn}
	err := SaveReflection(context.Background(), fc, Quote{Text: "x"}, "c")
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
}
