package handlers

import (
	"errors"
	"io"
	"net/http"

	request "homeservices_crm/internal/adapter/http/dto/request"
	response "homeservices_crm/internal/adapter/http/dto/response"
	"homeservices_crm/internal/infrastructure/logger"
	"homeservices_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HeaderUserID identifies the caller when the body carries no actor.
const HeaderUserID = "X-User-ID"

// EstimateHandler handles HTTP requests for estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *logrus.Entry
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: logger.For("estimate", "handler")}
}

// BuildEstimate godoc
// @Summary Price the job's measurements into an estimate
// @Description Re-prices a draft or pending estimate in place; a sent or closed one is superseded by a new revision.
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body request.BuildEstimateRequest false "Pricing options"
// @Success 201 {object} response.EstimateResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /jobs/{id}/estimates [post]
func (h *EstimateHandler) BuildEstimate(c *gin.Context) {
	var payload request.BuildEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		abortWith(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	estimate, err := h.usecase.BuildEstimate(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		logger.LogError(h.log, "BuildEstimate", gin.H{"job_id": c.Param("id")}, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary Get an estimate
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} response.EstimateResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// TransitionEstimate godoc
// @Summary Change an estimate's status
// @Description Approving records the frontend commission in the same write.
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Param X-User-ID header string false "Acting user"
// @Param request body request.TransitionEstimateRequest true "Target status"
// @Success 200 {object} response.EstimateResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /estimates/{id}/status [patch]
func (h *EstimateHandler) TransitionEstimate(c *gin.Context) {
	var payload request.TransitionEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	actor := payload.ResolveActor(c.GetHeader(HeaderUserID))
	estimate, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), payload.Target(), actor)
	if err != nil {
		logger.LogError(h.log, "TransitionEstimate", gin.H{"estimate_id": c.Param("id"), "status": payload.Status, "actor": actor}, err)
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
