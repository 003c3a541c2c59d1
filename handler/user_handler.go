package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"filmhub/model"
	"filmhub/service"
	"filmhub/storage"
	"filmhub/utils"
)

type UserHandler struct {
	users  *storage.UserStorage
	relSvc *service.RelationshipService
}

func NewUserHandler(users *storage.UserStorage, relSvc *service.RelationshipService) *UserHandler {
	return &UserHandler{users: users, relSvc: relSvc}
}

// GetUsers 用户列表
func (h *UserHandler) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.FindAll())
}

// CreateUser 注册新用户
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	created, err := h.users.Create(&user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] Created user %d: %s", created.ID, created.Login)
	c.JSON(http.StatusCreated, created)
}

// UpdateUser 更新用户（按 ID 全量替换）
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updated, err := h.users.Update(&user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] Updated user %d: %s", updated.ID, updated.Login)
	c.JSON(http.StatusOK, updated)
}

// AddFriend 互加好友
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	if err := h.relSvc.AddFriend(userID, friendID); err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] User %d added friend %d", userID, friendID)
	c.Status(http.StatusOK)
}

// RemoveFriend 互删好友
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return
	}

	if err := h.relSvc.RemoveFriend(userID, friendID); err != nil {
		utils.HandleError(c, err)
		return
	}

	log.Printf("[INFO] User %d removed friend %d", userID, friendID)
	c.Status(http.StatusNoContent)
}

// GetFriends 好友列表
func (h *UserHandler) GetFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	friends, err := h.relSvc.GetFriends(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

// GetCommonFriends 共同好友列表
func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	common, err := h.relSvc.GetCommonFriends(userID, otherID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, common)
}
