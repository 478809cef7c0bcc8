// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"portfolio-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsConfiguration(err) {
		// Name the component only; missing setting names stay in the logs
		return huma.Error503ServiceUnavailable("Service is not configured")
	}

	if apiErr, ok := errors.AsExternalAPI(err); ok {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return huma.Error429TooManyRequests("Rate limited by external service")
		}
		return huma.Error502BadGateway("External service error")
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("External service timed out")
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
