package service

import (
	"sort"

	"filmhub/model"
	"filmhub/storage"
)

// PopularityService 热门电影排行（纯读操作，不修改任何存储）
type PopularityService struct {
	films *storage.FilmStorage
}

func NewPopularityService(films *storage.FilmStorage) *PopularityService {
	return &PopularityService{films: films}
}

// MostPopular 按点赞数降序返回前 count 部电影。
// 点赞数相同的电影保持 FindAll 的相对顺序（即 ID 升序）；
// count <= 0 返回空列表，count 超过电影总数时返回全部。
func (s *PopularityService) MostPopular(count int) []*model.Film {
	if count <= 0 {
		return []*model.Film{}
	}
	films := s.films.FindAll()
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].Likes.Len() > films[j].Likes.Len()
	})
	if count < len(films) {
		films = films[:count]
	}
	return films
}
