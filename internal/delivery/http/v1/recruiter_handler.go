package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(rg *gin.RouterGroup, guard gin.HandlerFunc, loginLimiter gin.HandlerFunc, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiter := rg.Group("/recruiter")
	recruiter.POST("/register", loginLimiter, handler.Register)
	recruiter.POST("/login", loginLimiter, handler.Login)

	protected := recruiter.Group("")
	protected.Use(guard)
	{
		protected.GET("/dashboard", handler.Dashboard)
		protected.GET("/my-jobs", handler.MyJobs)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.PUT("/change-password", handler.ChangePassword)
	}
}

type RecruiterRegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	ContactNo string `json:"contactNo" binding:"required"`
	Address   string `json:"address"`
}

type RecruiterLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRecruiterProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	ContactNo string `json:"contactNo" binding:"required"`
	Address   string `json:"address"`
}

func (h *RecruiterHandler) Register(c *gin.Context) {
	var req RecruiterRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	var address *string
	if req.Address != "" {
		address = &req.Address
	}

	recruiter, err := h.recruiterUC.Register(c, req.Name, req.Email, req.Password, req.ContactNo, address)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"recruiter": recruiter,
	})
}

func (h *RecruiterHandler) Login(c *gin.Context) {
	var req RecruiterLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide email and password"))
		return
	}

	token, recruiter, err := h.recruiterUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"recruiter": recruiter,
	})
}

func (h *RecruiterHandler) Dashboard(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyRecruiterID))

	stats, err := h.recruiterUC.DashboardStats(c, recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", gin.H{
		"stats": stats,
	})
}

func (h *RecruiterHandler) MyJobs(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyRecruiterID))

	jobs, err := h.recruiterUC.MyJobs(c, recruiterID)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	response.Success(c, http.StatusOK, "My jobs", gin.H{
		"jobs": jobs,
	})
}

func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	var req UpdateRecruiterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	var address *string
	if req.Address != "" {
		address = &req.Address
	}

	recruiterID := c.GetString(string(domain.KeyRecruiterID))
	recruiter, err := h.recruiterUC.UpdateProfile(c, recruiterID, req.Name, req.ContactNo, address)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{
		"recruiter": recruiter,
	})
}

func (h *RecruiterHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide current and new password"))
		return
	}

	recruiterID := c.GetString(string(domain.KeyRecruiterID))
	if err := h.recruiterUC.ChangePassword(c, recruiterID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}
