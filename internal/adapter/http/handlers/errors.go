package handlers

import (
	"errors"
	"net/http"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase"
	"homeservices_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapError translates use-case and domain errors into the API envelope.
func mapError(err error) *pkg.AppError {
	var (
		validation *entities.ValidationError
		transition *entities.InvalidTransitionError
		consist    *entities.ConsistencyError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", validation.Error(), http.StatusBadRequest).
			WithDetails(gin.H{"field": validation.Field, "reason": validation.Reason})
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidMeasurementID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &transition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transition.Error(), http.StatusConflict).
			WithDetails(gin.H{"entity": transition.Entity, "from": transition.From, "to": transition.To})
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Record changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobBusy):
		return pkg.NewDomainErrorSimple("JOB_BUSY", "Job is being updated by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainErrorSimple("JOB_CLOSED", "Job is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMeasurementLocked):
		return pkg.NewDomainErrorSimple("MEASUREMENT_LOCKED", "Measurement is referenced by an approved estimate", http.StatusConflict)
	case errors.As(err, &consist):
		return pkg.NewDomainErrorSimple("CONSISTENCY_VIOLATION", consist.Reason, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMeasurementNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_NOT_FOUND", "Measurement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
