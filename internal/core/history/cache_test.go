package history

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestCache(t *testing.T) {
	t.Parallel()

	c := NewCache()
	u := uuid.New()
	if _, ok := c.Get(u); ok {
		t.Fatalf("empty cache hit")
	}

	c.Put(u, Snapshot{View: View{Message: "one"}, LoadedAt: base})
	c.Put(u, Snapshot{View: View{Message: "two"}, LoadedAt: at(1)})
	s, ok := c.Get(u)
	if !ok || s.View.Message != "two" || !s.LoadedAt.Equal(at(1)) {
		t.Fatalf("snapshot = %+v %v", s, ok)
	}

	c.Drop(u)
	if _, ok := c.Get(u); ok || c.Len() != 0 {
		t.Fatalf("drop did not forget the user")
	}
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewCache()
	users := make([]uuid.UUID, 8)
	for i := range users {
		users[i] = uuid.New()
	}
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := users[i%len(users)]
			c.Put(u, Snapshot{LoadedAt: at(i)})
			c.Get(u)
			if i%5 == 0 {
				c.Drop(u)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() > len(users) {
		t.Fatalf("len = %d", c.Len())
	}
}
