package storage

import (
	"slices"
	"sync"
)

// Entity 可存储实体：ID 由 Store 分配，Clone 产出独立副本
type Entity[T any] interface {
	GetID() int64
	SetID(id int64)
	Clone() T
}

// Store 泛型内存存储（map + 读写锁）。
// 读操作一律返回副本，写操作在同一把写锁内完成，ID 分配不会竞争。
type Store[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[int64]T
}

func NewStore[T Entity[T]]() *Store[T] {
	return &Store[T]{items: make(map[int64]T)}
}

// Create 分配下一个 ID 并保存，返回保存后的副本
func (s *Store[T]) Create(entity T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity.SetID(s.nextID())
	s.items[entity.GetID()] = entity
	return entity.Clone()
}

// FindByID 按 ID 查找，返回副本
func (s *Store[T]) FindByID(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return entity.Clone(), true
}

// Exists ID 是否已存储
func (s *Store[T]) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

// FindAll 按 ID 升序返回当前全量快照
func (s *Store[T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.items[id].Clone())
	}
	return result
}

// Len 当前存储的实体数
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Mutate 在写锁内对单个实体执行变更，返回变更后的副本；
// ID 不存在时不执行 fn 并返回 false
func (s *Store[T]) Mutate(id int64, fn func(entity T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(entity)
	return entity.Clone(), true
}

// MutatePair 在同一把写锁内对两个实体执行变更（双向边的原子更新）；
// 任一 ID 不存在时不执行 fn 并返回 false
func (s *Store[T]) MutatePair(firstID, secondID int64, fn func(first, second T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	first, ok1 := s.items[firstID]
	second, ok2 := s.items[secondID]
	if !ok1 || !ok2 {
		return false
	}
	fn(first, second)
	return true
}

// nextID 当前最大 ID + 1（每次创建时重新计算，容忍空洞）
func (s *Store[T]) nextID() int64 {
	var maxID int64
	for id := range s.items {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
