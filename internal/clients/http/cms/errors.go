package cms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches any 404 answered by the CMS.
var ErrNotFound = errors.New("cms resource not found")

// APIError is the decoded error envelope returned by the CMS.
type APIError struct {
	Status  int            `json:"status"`
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Name != "" {
		return fmt.Sprintf("cms %d %s: %s", e.Status, e.Name, msg)
	}
	return fmt.Sprintf("cms %d: %s", e.Status, msg)
}

// Is lets errors.Is(err, ErrNotFound) succeed for 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

func decodeAPIError(status int, fallback string, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		if env.Error.Status == 0 {
			env.Error.Status = status
		}
		return env.Error
	}
	return &APIError{Status: status, Message: fallback}
}
