package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(rg *gin.RouterGroup, guard gin.HandlerFunc, loginLimiter gin.HandlerFunc, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	user := rg.Group("/user")
	user.POST("/register", loginLimiter, handler.Register)
	user.POST("/login", loginLimiter, handler.Login)

	protected := user.Group("")
	protected.Use(guard)
	{
		protected.GET("/profile", handler.Profile)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.PUT("/change-password", handler.ChangePassword)
		protected.DELETE("/delete", handler.DeleteAccount)
	}
}

type UserRegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	ContactNo string `json:"contactNo" binding:"required"`
}

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	ContactNo string `json:"contactNo" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	user, err := h.userUC.Register(c, req.Name, req.Email, req.Password, req.ContactNo)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"user": user,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide email and password"))
		return
	}

	token, user, err := h.userUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.userUC.Profile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", gin.H{
		"user": user,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.userUC.UpdateProfile(c, userID, req.Name, req.ContactNo)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{
		"user": user,
	})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide current and new password"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.userUC.ChangePassword(c, userID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.userUC.DeleteAccount(c, userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}
