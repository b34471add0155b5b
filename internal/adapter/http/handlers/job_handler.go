package handlers

import (
	"net/http"

	request "homeservices_crm/internal/adapter/http/dto/request"
	response "homeservices_crm/internal/adapter/http/dto/response"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JobHandler handles HTTP requests for jobs.
type JobHandler struct {
	usecase usecase.IJobUseCase
	log     *logrus.Entry
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc, log: logger.For("job", "handler")}
}

// CreateJob godoc
// @Summary Create a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body request.CreateJobRequest true "Job"
// @Success 201 {object} response.JobResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		logger.LogError(h.log, "CreateJob", payload, err)
		abortWith(c, mapError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary Get a job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.JobResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJobStatus godoc
// @Summary Move a job through the pipeline
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.UpdateJobStatusRequest true "Target status"
// @Success 200 {object} response.JobResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	var payload request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Target())
	if err != nil {
		logger.LogError(h.log, "UpdateJobStatus", gin.H{"job_id": c.Param("id"), "status": payload.Status}, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CompleteJob godoc
// @Summary Confirm job completion and record the backend commission
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.JobCompletionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /jobs/{id}/complete [post]
func (h *JobHandler) CompleteJob(c *gin.Context) {
	done, err := h.usecase.CompleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.LogError(h.log, "CompleteJob", gin.H{"job_id": c.Param("id")}, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobCompletion(done))
}
