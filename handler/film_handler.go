package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmhub/model"
	"filmhub/service"
	"filmhub/storage"
	"filmhub/utils"
)

type FilmHandler struct {
	films               *storage.FilmStorage
	relSvc              *service.RelationshipService
	popSvc              *service.PopularityService
	defaultPopularCount int
}

func NewFilmHandler(films *storage.FilmStorage, relSvc *service.RelationshipService, popSvc *service.PopularityService, defaultPopularCount int) *FilmHandler {
	return &FilmHandler{
		films:               films,
		relSvc:              relSvc,
		popSvc:              popSvc,
		defaultPopularCount: defaultPopularCount,
	}
}

// GetFilms 电影列表
func (h *FilmHandler) GetFilms(c *gin.Context) {
	c.JSON(http.StatusOK, h.films.FindAll())
}

// CreateFilm 新建电影
func (h *FilmHandler) CreateFilm(c *gin.Context) {
	var film model.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.films.Create(&film)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] Created film %d: %s", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// UpdateFilm 更新电影（按 ID 全量替换）
func (h *FilmHandler) UpdateFilm(c *gin.Context) {
	var film model.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updated, err := h.films.Update(&film)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] Updated film %d: %s", updated.ID, updated.Name)
	c.JSON(http.StatusOK, updated)
}

// AddLike 点赞电影
func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.relSvc.AddLike(filmID, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] User %d liked film %d", userID, filmID)
	c.Status(http.StatusOK)
}

// RemoveLike 取消点赞
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.relSvc.RemoveLike(filmID, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] User %d unliked film %d", userID, filmID)
	c.Status(http.StatusOK)
}

// GetPopular 热门电影排行（?count=N，缺省取配置的默认值）
func (h *FilmHandler) GetPopular(c *gin.Context) {
	raw := c.DefaultQuery("count", strconv.Itoa(h.defaultPopularCount))
	count, err := strconv.Atoi(raw)
	if err != nil {
		utils.BadRequest(c, "count must be an integer")
		return
	}

	c.JSON(http.StatusOK, h.popSvc.MostPopular(count))
}
