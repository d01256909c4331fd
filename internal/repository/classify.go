package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/preston-bernstein/nba-data-client/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

const (
	msgUnauthorized   = "Unauthorized: invalid or missing API key"
	msgNotFound       = "Resource not found"
	msgNoConnectivity = "No internet connection: unable to reach host"
	msgTimeout        = "Request timed out, please try again"
	msgNetwork        = "Network error, please check your connection"
)

// Classify converts a raw client error into a displayable *result.Error.
// Rules are checked in order; the first match wins.
func Classify(err error) *result.Error {
	if err == nil {
		return nil
	}

	var classified *result.Error
	if errors.As(err, &classified) {
		return classified
	}

	if statusErr, ok := balldontlie.AsStatusError(err); ok {
		return classifyStatus(statusErr)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return result.NewError(result.KindNoConnectivity, msgNoConnectivity, 0, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return result.NewError(result.KindTimeout, msgTimeout, 0, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return result.NewError(result.KindTimeout, msgTimeout, 0, err)
		}
		return result.NewError(result.KindNetwork, msgNetwork, 0, err)
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return result.NewError(result.KindNetwork, msgNetwork, 0, err)
	}

	return result.NewError(result.KindUnclassified, err.Error(), 0, err)
}

func classifyStatus(statusErr *balldontlie.StatusError) *result.Error {
	code := statusErr.StatusCode
	switch {
	case code == http.StatusUnauthorized:
		return result.NewError(result.KindUnauthorized, msgUnauthorized, code, statusErr)
	case code == http.StatusNotFound:
		return result.NewError(result.KindNotFound, msgNotFound, code, statusErr)
	case code >= http.StatusInternalServerError && code <= 599:
		msg := fmt.Sprintf("Server error (HTTP %d), please try again later", code)
		return result.NewError(result.KindServerError, msg, code, statusErr)
	default:
		msg := fmt.Sprintf("Request failed with HTTP %d", code)
		if statusErr.RetryAfter > 0 {
			msg = fmt.Sprintf("%s, retry after %s", msg, statusErr.RetryAfter)
		}
		return result.NewError(result.KindHTTPError, msg, code, statusErr)
	}
}
