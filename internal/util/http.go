package util

import (
	"errors"
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/timewasted/go-accept-headers"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/api/httperrors"
	"github.com/Faucet-ATM/Avalanche-Faucet/internal/types"
)

// Validatable is implemented by all payload types.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

// BindAndValidateBody binds the request body to v and runs its validation,
// translating failures into a 400 with per-field details.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		return httperrors.NewHTTPErrorWithDetail(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Failed to bind request body",
			"Expected a JSON body matching the endpoint's payload schema.",
			err,
		)
	}

	if err := v.Validate(strfmt.Default); err != nil {
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Payload validation failed",
			validationErrorDetails(err),
		)
	}

	return nil
}

// ValidateAndReturn validates the response payload before writing it out, so
// contract violations show up in tests instead of at consumers.
func ValidateAndReturn(c echo.Context, code int, v Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	if header := c.Request().Header.Get(echo.HeaderAccept); header != "" {
		negotiated, err := accept.Negotiate(header, echo.MIMEApplicationJSON)
		if err != nil || negotiated == "" {
			return echo.NewHTTPError(http.StatusNotAcceptable)
		}
	}

	return c.JSON(code, v)
}

func validationErrorDetails(err error) []*types.HTTPValidationErrorDetail {
	var composite *openapierrors.CompositeError
	if errors.As(err, &composite) {
		details := make([]*types.HTTPValidationErrorDetail, 0, len(composite.Errors))
		for _, inner := range composite.Errors {
			var validation *openapierrors.Validation
			if errors.As(inner, &validation) {
				details = append(details, &types.HTTPValidationErrorDetail{
					Key:   swag.String(validation.Name),
					In:    swag.String(validation.In),
					Error: swag.String(validation.Error()),
				})
				continue
			}

			details = append(details, &types.HTTPValidationErrorDetail{
				Key:   swag.String("body"),
				In:    swag.String("body"),
				Error: swag.String(inner.Error()),
			})
		}

		return details
	}

	var validation *openapierrors.Validation
	if errors.As(err, &validation) {
		return []*types.HTTPValidationErrorDetail{{
			Key:   swag.String(validation.Name),
			In:    swag.String(validation.In),
			Error: swag.String(validation.Error()),
		}}
	}

	return []*types.HTTPValidationErrorDetail{{
		Key:   swag.String("body"),
		In:    swag.String("body"),
		Error: swag.String(err.Error()),
	}}
}
