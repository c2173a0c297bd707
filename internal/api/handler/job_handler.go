package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/job-board/internal/api/metrics"
	"github.com/freelancehub/job-board/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List returns every job with its client expanded to {name, email}.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  listJobsResponse
// @Failure      500  {object}  map[string]any
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListJobsResponse(jobs))
}

// Create posts a new job attributed to the authenticated user.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  createJobResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.service.CreateJob(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		BudgetMin:   req.Budget.Min,
		BudgetMax:   req.Budget.Max,
		ClientID:    userID,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.Category)).Inc()

	return c.JSON(http.StatusCreated, createJobResponse{Success: true, Job: toJobResponse(job)})
}
