package gateway

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Kind classifies backend responses so views can pattern-match on one
// contract instead of ad hoc status checks.
type Kind int

const (
	KindUnavailable Kind = iota // network failure or 5xx
	KindUnauthorized            // 401/403, session must be cleared
	KindNotFound                // 404, absent resource rather than failure
	KindConflict                // 409, e.g. wallet already exists
	KindInvalid                 // other 4xx, carries the server message
)

// Error - a classified backend failure.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// ErrInsufficientFunds - the funding endpoint's business rejection, surfaced
// as its own sentinel so the loan view can offer a wallet shortcut.
var ErrInsufficientFunds = errors.New("lender does not have sufficient funds")

// errorBody - the backend's error envelope. Some routes use "error", the
// older ones use "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandleErrorResponse - maps a non-2xx response to a classified error.
func HandleErrorResponse(resp *http.Response) error {
	body := readErrorMessage(resp)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Message: body}
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: resp.StatusCode, Message: body}
	case resp.StatusCode == http.StatusConflict:
		return &Error{Kind: KindConflict, Status: resp.StatusCode, Message: body}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if strings.Contains(strings.ToLower(body), "sufficient funds") {
			return ErrInsufficientFunds
		}
		return &Error{Kind: KindInvalid, Status: resp.StatusCode, Message: body}
	default:
		return &Error{Kind: KindUnavailable, Status: resp.StatusCode, Message: body}
	}
}

func readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

// IsKind - reports whether err is a backend error of the given kind.
func IsKind(err error, kind Kind) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind == kind
	}
	return false
}

func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }
func IsNotFound(err error) bool     { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool     { return IsKind(err, KindConflict) }

// IsUnavailable - true for classified 5xx responses and for transport
// failures that never produced a response.
func IsUnavailable(err error) bool {
	if IsKind(err, KindUnavailable) {
		return true
	}
	var gwErr *Error
	return err != nil && !errors.As(err, &gwErr) && !errors.Is(err, ErrInsufficientFunds)
}

// Message - the server-supplied message, empty when there is none.
func Message(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return ""
}
