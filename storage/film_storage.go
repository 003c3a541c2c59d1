package storage

import (
	"strings"

	"filmhub/model"
)

// FilmStorage 电影目录：校验规则 + 点赞集合维护
type FilmStorage struct {
	store *Store[*model.Film]
}

func NewFilmStorage() *FilmStorage {
	return &FilmStorage{store: NewStore[*model.Film]()}
}

// Create 校验并保存新电影。点赞集合由 RelationshipService 独占维护，
// 请求体携带的 likes 一律忽略，新电影总是从空集合开始
func (fs *FilmStorage) Create(film *model.Film) (*model.Film, error) {
	if violations := model.ValidateFilm(film); len(violations) > 0 {
		return nil, model.NewValidationError(strings.Join(violations, "; "))
	}
	film.Likes = model.IDSet{}
	return fs.store.Create(film), nil
}

// Update 按 ID 全量替换已有记录的字段。点赞集合不属于更新载荷，
// 无论请求体携带什么都保留存储中的集合
func (fs *FilmStorage) Update(film *model.Film) (*model.Film, error) {
	if film.ID == 0 {
		return nil, model.NewValidationError("id must be provided")
	}
	if !fs.store.Exists(film.ID) {
		return nil, model.NewNotFoundError("film not found")
	}
	if violations := model.ValidateFilm(film); len(violations) > 0 {
		return nil, model.NewValidationError(strings.Join(violations, "; "))
	}
	updated, ok := fs.store.Mutate(film.ID, func(existing *model.Film) {
		existing.Name = film.Name
		existing.Description = film.Description
		existing.ReleaseDate = film.ReleaseDate
		existing.Duration = film.Duration
	})
	if !ok {
		return nil, model.NewNotFoundError("film not found")
	}
	return updated, nil
}

// FindByID 按 ID 查找
func (fs *FilmStorage) FindByID(id int64) (*model.Film, bool) {
	return fs.store.FindByID(id)
}

// Exists ID 是否存在
func (fs *FilmStorage) Exists(id int64) bool {
	return fs.store.Exists(id)
}

// FindAll 按 ID 升序返回全部电影
func (fs *FilmStorage) FindAll() []*model.Film {
	return fs.store.FindAll()
}

// AddLike 将用户加入电影的点赞集合（重复点赞为幂等操作）。
// 用户是否存在由上层 RelationshipService 负责检查。
func (fs *FilmStorage) AddLike(filmID, userID int64) error {
	if _, ok := fs.store.Mutate(filmID, func(film *model.Film) {
		film.Likes.Add(userID)
	}); !ok {
		return model.NewNotFoundError("film not found")
	}
	return nil
}

// RemoveLike 将用户移出电影的点赞集合（未点赞时为空操作）
func (fs *FilmStorage) RemoveLike(filmID, userID int64) error {
	if _, ok := fs.store.Mutate(filmID, func(film *model.Film) {
		film.Likes.Remove(userID)
	}); !ok {
		return model.NewNotFoundError("film not found")
	}
	return nil
}
