package model

// Film 电影记录
type Film struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate Date   `json:"releaseDate"`
	Duration    int    `json:"duration"` // 时长（分钟）
	Likes       IDSet  `json:"likes"`    // 点赞用户 ID 集合
}

func (f *Film) GetID() int64 {
	return f.ID
}

func (f *Film) SetID(id int64) {
	f.ID = id
}

// Clone 深拷贝（点赞集合独立）
func (f *Film) Clone() *Film {
	clone := *f
	clone.Likes = f.Likes.Clone()
	return &clone
}
