package model

// User 用户记录
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"` // 显示名，创建时为空则取 Login
	Birthday Date   `json:"birthday"`
	Friends  IDSet  `json:"friends"` // 好友 ID 集合（双向对称）
}

func (u *User) GetID() int64 {
	return u.ID
}

func (u *User) SetID(id int64) {
	u.ID = id
}

// Clone 深拷贝（好友集合独立）
func (u *User) Clone() *User {
	clone := *u
	clone.Friends = u.Friends.Clone()
	return &clone
}
