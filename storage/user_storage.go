package storage

import (
	"strings"

	"filmhub/model"
)

// UserStorage 用户目录：校验规则 + 好友边集合维护
type UserStorage struct {
	store *Store[*model.User]
}

func NewUserStorage() *UserStorage {
	return &UserStorage{store: NewStore[*model.User]()}
}

// Create 校验并保存新用户；显示名为空时取登录名（仅创建时求值一次）。
// 好友集合由 RelationshipService 独占维护，请求体携带的 friends 一律忽略，
// 新用户总是从空集合开始
func (us *UserStorage) Create(user *model.User) (*model.User, error) {
	if violations := model.ValidateUser(user); len(violations) > 0 {
		return nil, model.NewValidationError(strings.Join(violations, "; "))
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	user.Friends = model.IDSet{}
	return us.store.Create(user), nil
}

// Update 按 ID 全量替换已有记录的字段（显示名不再回填登录名）。
// 好友集合不属于更新载荷，无论请求体携带什么都保留存储中的集合
func (us *UserStorage) Update(user *model.User) (*model.User, error) {
	if user.ID == 0 {
		return nil, model.NewValidationError("id must be provided")
	}
	if !us.store.Exists(user.ID) {
		return nil, model.NewNotFoundError("user not found")
	}
	if violations := model.ValidateUser(user); len(violations) > 0 {
		return nil, model.NewValidationError(strings.Join(violations, "; "))
	}
	updated, ok := us.store.Mutate(user.ID, func(existing *model.User) {
		existing.Email = user.Email
		existing.Login = user.Login
		existing.Name = user.Name
		existing.Birthday = user.Birthday
	})
	if !ok {
		return nil, model.NewNotFoundError("user not found")
	}
	return updated, nil
}

// FindByID 按 ID 查找
func (us *UserStorage) FindByID(id int64) (*model.User, bool) {
	return us.store.FindByID(id)
}

// Exists ID 是否存在
func (us *UserStorage) Exists(id int64) bool {
	return us.store.Exists(id)
}

// FindAll 按 ID 升序返回全部用户
func (us *UserStorage) FindAll() []*model.User {
	return us.store.FindAll()
}

// AddFriend 在同一把写锁内写入双向好友边（重复添加为幂等操作）；
// 任一用户不存在时返回组合的 NotFound 错误，状态不变
func (us *UserStorage) AddFriend(userID, friendID int64) error {
	if !us.store.MutatePair(userID, friendID, func(user, friend *model.User) {
		user.Friends.Add(friendID)
		friend.Friends.Add(userID)
	}) {
		return model.NewNotFoundError("user or friend not found")
	}
	return nil
}

// RemoveFriend 在同一把写锁内移除双向好友边（本就不是好友时为空操作）
func (us *UserStorage) RemoveFriend(userID, friendID int64) error {
	if !us.store.MutatePair(userID, friendID, func(user, friend *model.User) {
		user.Friends.Remove(friendID)
		friend.Friends.Remove(userID)
	}) {
		return model.NewNotFoundError("user or friend not found")
	}
	return nil
}
