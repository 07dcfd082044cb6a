package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusConflict:            ErrLockFailed,
	http.StatusUnprocessableEntity: ErrCommandRejected,
	http.StatusServiceUnavailable:  ErrNotConnected,
	http.StatusBadGateway:          ErrUnexpectedResponse,
	http.StatusGatewayTimeout:      ErrTimeout,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func isDisconnect(err error) bool {
	return errors.Is(err, ErrNotConnected)
}
