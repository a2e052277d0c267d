package entries

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/client/session"
	"github.com/dmitrijs2005/gophjournal/internal/common"
)

// fakeAPI keeps a server-side list, newest first.
type fakeAPI struct {
	list   []models.Entry
	nextID int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// onList runs before ListEntries answers, to simulate events while
	// the request is in flight.
	onList func()

	calls       int
	LastPayload models.EntryPayload
	LastID      string
}

func (f *fakeAPI) ListEntries(context.Context) ([]models.Entry, error) {
	f.calls++
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Entry, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeAPI) CreateEntry(_ context.Context, p models.EntryPayload) (*models.Entry, error) {
	f.calls++
	f.LastPayload = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	e := fromPayload(strconv.Itoa(f.nextID), p)
	f.list = append([]models.Entry{e}, f.list...)
	return &e, nil
}

func (f *fakeAPI) UpdateEntry(_ context.Context, id string, p models.EntryPayload) (*models.Entry, error) {
	f.calls++
	f.LastID, f.LastPayload = id, p
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.list {
		if f.list[i].ID == id {
			f.list[i] = fromPayload(id, p)
			return &f.list[i], nil
		}
	}
	return nil, &common.ServerError{Status: 404, Message: "Entry not found"}
}

func (f *fakeAPI) DeleteEntry(_ context.Context, id string) error {
	f.calls++
	f.LastID = id
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return nil
}

func fromPayload(id string, p models.EntryPayload) models.Entry {
	return models.Entry{
		ID: id, Title: p.Title, Content: p.Content, Category: p.Category,
		Tags: p.Tags, Mood: p.Mood, Date: p.Date, Time: p.Time,
		Quote: p.Quote, QuoteAuthor: p.QuoteAuthor,
	}
}

type fakeSession struct {
	mu      sync.Mutex
	token   string
	gen     uint64
	expired []uint64
}

func loggedIn() *fakeSession {
	return &fakeSession{token: "tok", gen: 1}
}

func (f *fakeSession) Snapshot() session.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := session.Snapshot{Token: f.token, Generation: f.gen}
	if f.token != "" {
		s.User = &models.User{ID: "u1", Username: "ann"}
	}
	return s
}

func (f *fakeSession) Current(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return gen == f.gen
}

func (f *fakeSession) Expire(_ context.Context, gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired = append(f.expired, gen)
	if gen != f.gen {
		return false
	}
	f.token = ""
	f.gen++
	return true
}

// switchUser simulates logout followed by another login.
func (f *fakeSession) switchUser() {
	f.mu.Lock()
	f.gen += 2
	f.mu.Unlock()
}

func seed(n int) []models.Entry {
	out := make([]models.Entry, n)
	for i := range out {
		out[i] = models.Entry{ID: fmt.Sprint(n - i), Title: fmt.Sprintf("e%d", n-i), Content: "x", Tags: []string{}}
	}
	return out
}
