package service

import (
	"filmhub/model"
	"filmhub/storage"
)

// RelationshipService 跨聚合关系操作：好友边 + 点赞边
type RelationshipService struct {
	films *storage.FilmStorage
	users *storage.UserStorage
}

func NewRelationshipService(films *storage.FilmStorage, users *storage.UserStorage) *RelationshipService {
	return &RelationshipService{films: films, users: users}
}

// AddFriend 互加好友（双向写入，幂等）
func (s *RelationshipService) AddFriend(userID, friendID int64) error {
	return s.users.AddFriend(userID, friendID)
}

// RemoveFriend 互删好友（双向移除，幂等）
func (s *RelationshipService) RemoveFriend(userID, friendID int64) error {
	return s.users.RemoveFriend(userID, friendID)
}

// GetFriends 返回好友记录列表（按 ID 升序；悬空 ID 跳过而不报错）
func (s *RelationshipService) GetFriends(userID int64) ([]*model.User, error) {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return nil, model.NewNotFoundError("user not found")
	}
	friends := make([]*model.User, 0, user.Friends.Len())
	for _, id := range user.Friends.Sorted() {
		if friend, found := s.users.FindByID(id); found {
			friends = append(friends, friend)
		}
	}
	return friends, nil
}

// GetCommonFriends 两个用户好友集合的交集（无重复）
func (s *RelationshipService) GetCommonFriends(userID, otherID int64) ([]*model.User, error) {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return nil, model.NewNotFoundError("user not found")
	}
	other, otherOK := s.users.FindByID(otherID)
	if !otherOK {
		return nil, model.NewNotFoundError("user not found")
	}
	common := user.Friends.Intersect(other.Friends)
	result := make([]*model.User, 0, common.Len())
	for _, id := range common.Sorted() {
		if friend, found := s.users.FindByID(id); found {
			result = append(result, friend)
		}
	}
	return result, nil
}

// AddLike 用户点赞电影（电影与用户都必须存在，重复点赞幂等）
func (s *RelationshipService) AddLike(filmID, userID int64) error {
	if !s.films.Exists(filmID) {
		return model.NewNotFoundError("film not found")
	}
	if !s.users.Exists(userID) {
		return model.NewNotFoundError("user not found")
	}
	return s.films.AddLike(filmID, userID)
}

// RemoveLike 用户取消点赞（未点赞时为空操作）
func (s *RelationshipService) RemoveLike(filmID, userID int64) error {
	if !s.films.Exists(filmID) {
		return model.NewNotFoundError("film not found")
	}
	if !s.users.Exists(userID) {
		return model.NewNotFoundError("user not found")
	}
	return s.films.RemoveLike(filmID, userID)
}
