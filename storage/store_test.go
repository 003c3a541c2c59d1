package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmhub/model"
)

func newFilm(name string) *model.Film {
	return &model.Film{
		Name:        name,
		ReleaseDate: model.NewDate(2000, time.January, 1),
		Duration:    120,
		Likes:       model.IDSet{},
	}
}

func TestStore_CreateAssignsIncreasingIDs(t *testing.T) {
	store := NewStore[*model.Film]()

	// 连续创建，ID 严格递增且无重复
	for i := int64(1); i <= 5; i++ {
		created := store.Create(newFilm("film"))
		assert.Equal(t, i, created.ID)
	}
	assert.Equal(t, 5, store.Len())
}

func TestStore_ConcurrentCreatesNeverShareIDs(t *testing.T) {
	store := NewStore[*model.Film]()

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- store.Create(newFilm("film")).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestStore_FindByID(t *testing.T) {
	store := NewStore[*model.Film]()
	created := store.Create(newFilm("Alien"))

	found, ok := store.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Alien", found.Name)

	_, ok = store.FindByID(999)
	assert.False(t, ok)
}

func TestStore_ReadsReturnIndependentCopies(t *testing.T) {
	store := NewStore[*model.Film]()
	created := store.Create(newFilm("Alien"))

	// 修改读出的副本不影响存储内的记录
	found, _ := store.FindByID(created.ID)
	found.Name = "changed"
	found.Likes.Add(42)

	again, _ := store.FindByID(created.ID)
	assert.Equal(t, "Alien", again.Name)
	assert.Equal(t, 0, again.Likes.Len())
}

func TestStore_FindAllSortedSnapshot(t *testing.T) {
	store := NewStore[*model.Film]()
	store.Create(newFilm("first"))
	store.Create(newFilm("second"))
	store.Create(newFilm("third"))

	all := store.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestStore_MutateMissing(t *testing.T) {
	store := NewStore[*model.Film]()
	_, ok := store.Mutate(1, func(f *model.Film) { f.Name = "x" })
	assert.False(t, ok)
}

func TestStore_MutatePair(t *testing.T) {
	store := NewStore[*model.Film]()
	a := store.Create(newFilm("a"))
	b := store.Create(newFilm("b"))

	ok := store.MutatePair(a.ID, b.ID, func(first, second *model.Film) {
		first.Likes.Add(second.ID)
		second.Likes.Add(first.ID)
	})
	require.True(t, ok)

	gotA, _ := store.FindByID(a.ID)
	gotB, _ := store.FindByID(b.ID)
	assert.True(t, gotA.Likes.Contains(b.ID))
	assert.True(t, gotB.Likes.Contains(a.ID))

	// 任一方不存在时整体拒绝，不产生单边变更
	ok = store.MutatePair(a.ID, 999, func(first, second *model.Film) {
		first.Likes.Add(777)
	})
	assert.False(t, ok)
	gotA, _ = store.FindByID(a.ID)
	assert.False(t, gotA.Likes.Contains(777))
}
