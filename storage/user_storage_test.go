package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmhub/model"
)

func newUser(login string) *model.User {
	return &model.User{
		Email:    login + "@example.com",
		Login:    login,
		Birthday: model.NewDate(1990, time.March, 14),
	}
}

func TestUserStorage_CreateDefaultsNameToLogin(t *testing.T) {
	us := NewUserStorage()
	created, err := us.Create(newUser("amy"))
	require.NoError(t, err)
	assert.Equal(t, "amy", created.Name)
	require.NotNil(t, created.Friends)
	assert.Equal(t, 0, created.Friends.Len())
}

func TestUserStorage_CreateKeepsExplicitName(t *testing.T) {
	us := NewUserStorage()
	user := newUser("amy")
	user.Name = "Amy Santiago"
	created, err := us.Create(user)
	require.NoError(t, err)
	assert.Equal(t, "Amy Santiago", created.Name)
}

func TestUserStorage_CreateInvalidNotStored(t *testing.T) {
	us := NewUserStorage()
	_, err := us.Create(&model.User{Email: "not-an-email", Login: "a b"})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
	assert.Equal(t, 0, len(us.FindAll()))
}

func TestUserStorage_UpdateDoesNotRedefaultName(t *testing.T) {
	us := NewUserStorage()
	created, err := us.Create(newUser("amy"))
	require.NoError(t, err)

	// 显示名默认只在创建时求值一次；更新时空显示名原样保存
	updated, err := us.Update(&model.User{
		ID:       created.ID,
		Email:    "amy@example.com",
		Login:    "amy",
		Name:     "",
		Birthday: model.NewDate(1990, time.March, 14),
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Name)
}

func TestUserStorage_UpdatePreservesFriendsWhenOmitted(t *testing.T) {
	us := NewUserStorage()
	amy, err := us.Create(newUser("amy"))
	require.NoError(t, err)
	bob, err := us.Create(newUser("bob"))
	require.NoError(t, err)
	require.NoError(t, us.AddFriend(amy.ID, bob.ID))

	updated, err := us.Update(&model.User{
		ID:       amy.ID,
		Email:    "amy@new.example.com",
		Login:    "amy",
		Name:     "Amy",
		Birthday: model.NewDate(1990, time.March, 14),
	})
	require.NoError(t, err)
	assert.True(t, updated.Friends.Contains(bob.ID))
}

func TestUserStorage_UpdateIgnoresSuppliedFriends(t *testing.T) {
	us := NewUserStorage()
	amy, _ := us.Create(newUser("amy"))
	bob, _ := us.Create(newUser("bob"))

	// 更新载荷单方面声称 amy 和 bob 是好友：集合被丢弃，对称性不被破坏
	updated, err := us.Update(&model.User{
		ID:       amy.ID,
		Email:    "amy@example.com",
		Login:    "amy",
		Name:     "Amy",
		Birthday: model.NewDate(1990, time.March, 14),
		Friends:  model.NewIDSet(bob.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Friends.Len())

	gotBob, _ := us.FindByID(bob.ID)
	assert.Equal(t, 0, gotBob.Friends.Len())
}

func TestUserStorage_CreateIgnoresSuppliedFriends(t *testing.T) {
	us := NewUserStorage()
	user := newUser("amy")
	user.Friends = model.NewIDSet(999)

	created, err := us.Create(user)
	require.NoError(t, err)
	assert.Equal(t, 0, created.Friends.Len())
}

func TestUserStorage_UpdateEmptyFriendsDoesNotWipe(t *testing.T) {
	us := NewUserStorage()
	amy, _ := us.Create(newUser("amy"))
	bob, _ := us.Create(newUser("bob"))
	require.NoError(t, us.AddFriend(amy.ID, bob.ID))

	// "friends": null 反序列化为空的非 nil 集合，同样不得清空已有好友边
	updated, err := us.Update(&model.User{
		ID:       amy.ID,
		Email:    "amy@example.com",
		Login:    "amy",
		Name:     "Amy",
		Birthday: model.NewDate(1990, time.March, 14),
		Friends:  model.IDSet{},
	})
	require.NoError(t, err)
	assert.True(t, updated.Friends.Contains(bob.ID))
}

func TestUserStorage_UpdateUnknownIDWithInvalidBody(t *testing.T) {
	us := NewUserStorage()

	// 存在性先于校验：未知 ID 即使载荷非法也返回 NotFound
	_, err := us.Update(&model.User{ID: 999, Email: "not-an-email", Login: "a b"})
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestUserStorage_UpdateUnknownID(t *testing.T) {
	us := NewUserStorage()
	_, err := us.Update(&model.User{
		ID:       999,
		Email:    "x@example.com",
		Login:    "x",
		Birthday: model.NewDate(1990, time.March, 14),
	})
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestUserStorage_AddFriendSymmetric(t *testing.T) {
	us := NewUserStorage()
	amy, _ := us.Create(newUser("amy"))
	bob, _ := us.Create(newUser("bob"))

	require.NoError(t, us.AddFriend(amy.ID, bob.ID))

	gotAmy, _ := us.FindByID(amy.ID)
	gotBob, _ := us.FindByID(bob.ID)
	assert.True(t, gotAmy.Friends.Contains(bob.ID))
	assert.True(t, gotBob.Friends.Contains(amy.ID))
}

func TestUserStorage_AddFriendMissingEitherSide(t *testing.T) {
	us := NewUserStorage()
	amy, _ := us.Create(newUser("amy"))

	// 任一方不存在：组合错误，且不产生单边写入
	err := us.AddFriend(amy.ID, 999)
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))

	gotAmy, _ := us.FindByID(amy.ID)
	assert.Equal(t, 0, gotAmy.Friends.Len())
}

func TestUserStorage_RemoveFriendSymmetric(t *testing.T) {
	us := NewUserStorage()
	amy, _ := us.Create(newUser("amy"))
	bob, _ := us.Create(newUser("bob"))
	require.NoError(t, us.AddFriend(amy.ID, bob.ID))

	require.NoError(t, us.RemoveFriend(bob.ID, amy.ID))

	gotAmy, _ := us.FindByID(amy.ID)
	gotBob, _ := us.FindByID(bob.ID)
	assert.Equal(t, 0, gotAmy.Friends.Len())
	assert.Equal(t, 0, gotBob.Friends.Len())
}
