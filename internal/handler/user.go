package handler

import (
	"Vega_Tube/internal/dto"
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetProfile(c *gin.Context)
}

type userHandler struct {
	UserService service.UserService
}

func NewUserHandler(userService service.UserService) UserHandler {
	return &userHandler{UserService: userService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *userHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的参数")
		return
	}

	user, err := h.UserService.Register(req.Username, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			sendErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		logger.Log.WithError(err).Error("注册失败")
		sendServiceError(c, err)
		return
	}

	logger.Log.WithField("user_id", user.ID).Info("用户注册成功")
	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"data":    dto.ToUserInfo(user),
	})
}

func (h *userHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的参数")
		return
	}

	token, err := h.UserService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			sendErrorResponse(c, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Log.WithError(err).Error("登录失败")
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"token":   token,
	})
}

func (h *userHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetProfile(userID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToUserInfo(user)})
}
