package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmhub/middleware"
	"filmhub/utils"
)

// SetupRouter 创建 Gin 路由并注册全部接口
func SetupRouter(filmHandler *FilmHandler, userHandler *UserHandler) *gin.Engine {
	r := gin.New()

	// 注册请求 ID 与统一错误处理中间件
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 电影
	films := r.Group("/films")
	{
		films.GET("", filmHandler.GetFilms)
		films.POST("", filmHandler.CreateFilm)
		films.PUT("", filmHandler.UpdateFilm)
		films.GET("/popular", filmHandler.GetPopular)
		films.PUT("/:id/like/:userId", filmHandler.AddLike)
		films.DELETE("/:id/like/:userId", filmHandler.RemoveLike)
	}

	// 用户
	users := r.Group("/users")
	{
		users.GET("", userHandler.GetUsers)
		users.POST("", userHandler.CreateUser)
		users.PUT("", userHandler.UpdateUser)
		users.GET("/:id/friends", userHandler.GetFriends)
		users.GET("/:id/friends/common/:otherId", userHandler.GetCommonFriends)
		users.PUT("/:id/friends/:friendId", userHandler.AddFriend)
		users.DELETE("/:id/friends/:friendId", userHandler.RemoveFriend)
	}

	return r
}

// pathID 解析路径中的数字 ID；非法时直接写入 400 响应并返回 false
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequest(c, fmt.Sprintf("%s must be an integer", name))
		return 0, false
	}
	return id, true
}
