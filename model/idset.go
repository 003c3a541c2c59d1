package model

import (
	"encoding/json"
	"slices"
)

// IDSet 标识符集合（无重复；JSON 序列化为升序数组）
type IDSet map[int64]struct{}

// NewIDSet 由若干 ID 构造集合（重复值自动合并）
func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id int64) {
	delete(s, id)
}

func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Sorted 升序返回全部 ID
func (s IDSet) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone 独立副本
func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	clone := make(IDSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// Intersect 与另一集合的交集
func (s IDSet) Intersect(other IDSet) IDSet {
	result := IDSet{}
	for id := range s {
		if other.Contains(id) {
			result.Add(id)
		}
	}
	return result
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
