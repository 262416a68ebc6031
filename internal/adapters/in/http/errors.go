package http

import (
	"errors"
	"net/http"

	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code      int                `json:"code"`
	Message   string             `json:"message"`
	Offenders []OffenderResponse `json:"offenders,omitempty"`
}

// OffenderResponse names one order line that blocked a box duplication.
type OffenderResponse struct {
	ProductCode string `json:"product_code"`
	Needed      int    `json:"needed,omitempty"`
	Remaining   int    `json:"remaining,omitempty"`
	PairedWith  string `json:"paired_with,omitempty"`
}

// httpStatus maps domain and infrastructure errors to HTTP status codes.
// Missing objects are 404, violated packing rules are 409, completion
// integrity failures are 422, malformed input is 400.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, pack.ErrUnderpacked),
		errors.Is(err, pack.ErrOverpacked),
		errors.Is(err, pack.ErrUnweighedBox):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pack.ErrPackAlreadyComplete),
		errors.Is(err, pack.ErrPackNotComplete),
		errors.Is(err, pack.ErrBoxNotEmpty),
		errors.Is(err, pack.ErrItemNotInBox),
		errors.Is(err, pack.ErrOverpack),
		errors.Is(err, pack.ErrPairRuleViolation),
		errors.Is(err, pack.ErrWeightLimitExceeded),
		errors.Is(err, pack.ErrDuplicateBlocked):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed request. Duplicate-box
// failures carry the full offender list so the UI can show every blocked line.
func respondError(ctx echo.Context, err error) error {
	status := httpStatus(err)
	response := ErrorResponse{
		Code:    status,
		Message: err.Error(),
	}

	var blocked *pack.DuplicateBlockedError
	if errors.As(err, &blocked) {
		for _, offender := range blocked.Offenders {
			response.Offenders = append(response.Offenders, OffenderResponse{
				ProductCode: offender.ProductCode,
				Needed:      offender.Needed,
				Remaining:   offender.Remaining,
				PairedWith:  offender.PairedWith,
			})
		}
	}

	return ctx.JSON(status, response)
}
