package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(rg *gin.RouterGroup, recruiterGuard gin.HandlerFunc, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public routes. Only approved jobs are ever visible here.
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/latest", handler.Latest)
		jobs.GET("/filters/locations", handler.Locations)
		jobs.GET("/stats/categories", handler.CategoryStats)
		jobs.GET("/category/:category", handler.ListByCategory)
		jobs.GET("/:jobId", handler.GetDetails)
	}

	protected := rg.Group("/jobs")
	protected.Use(recruiterGuard)
	{
		protected.POST("/create", handler.Create)
		protected.PUT("/:jobId", handler.Update)
		protected.DELETE("/:jobId", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Experience  string `json:"experience" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Private Government Internship"`
	Link        string `json:"link" binding:"required"`
}

type UpdateJobRequest struct {
	Title       string `json:"title"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Category    string `json:"category" binding:"omitempty,oneof=Private Government Internship"`
	Link        string `json:"link"`
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

func (h *JobHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := domain.JobFilter{
		Location: c.Query("location"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	jobs, total, err := h.jobUC.ListApproved(c, filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobWithOwner{}
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"pages": totalPages(total, limit),
	})
}

func (h *JobHandler) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	jobs, err := h.jobUC.ListLatest(c, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobWithOwner{}
	}

	response.Success(c, http.StatusOK, "Latest jobs", gin.H{
		"jobs": jobs,
	})
}

func (h *JobHandler) Locations(c *gin.Context) {
	locations, err := h.jobUC.Locations(c)
	if err != nil {
		c.Error(err)
		return
	}
	if locations == nil {
		locations = []string{}
	}

	response.Success(c, http.StatusOK, "Job locations", gin.H{
		"locations": locations,
	})
}

func (h *JobHandler) CategoryStats(c *gin.Context) {
	stats, err := h.jobUC.CategoryStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Category stats", gin.H{
		"stats": stats,
	})
}

func (h *JobHandler) ListByCategory(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := domain.JobFilter{Category: c.Param("category")}

	jobs, total, err := h.jobUC.ListApproved(c, filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobWithOwner{}
	}

	response.Success(c, http.StatusOK, "Jobs by category", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"pages": totalPages(total, limit),
	})
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetApprovedByID(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	recruiterID := c.GetString(string(domain.KeyRecruiterID))
	job := &domain.Job{
		Title:       req.Title,
		Experience:  req.Experience,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Category:    req.Category,
		Link:        req.Link,
	}

	created, err := h.jobUC.CreateByRecruiter(c, recruiterID, job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully. Waiting for admin approval.", gin.H{
		"job": created,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	recruiterID := c.GetString(string(domain.KeyRecruiterID))
	changes := domain.JobUpdate{
		Title:       req.Title,
		Experience:  req.Experience,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Category:    req.Category,
		Link:        req.Link,
	}

	job, err := h.jobUC.UpdateByOwner(c, c.Param("jobId"), recruiterID, changes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully. Waiting for admin approval.", gin.H{
		"job": job,
	})
}

func (h *JobHandler) Delete(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyRecruiterID))

	if err := h.jobUC.DeleteByOwner(c, c.Param("jobId"), recruiterID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
