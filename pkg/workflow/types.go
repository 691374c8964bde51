package workflow

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Config configures a Client.
type Config struct {
	URL           string
	Secret        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	HTTPClient    *http.Client
}

// Response is the backend's answer to one webhook call.
type Response struct {
	StatusCode int
	Body       []byte
}

// textFields are the keys automation backends commonly put their reply in.
var textFields = []string{"output", "text", "message", "response"}

// Text returns the reply text: the first known text field of a JSON object
// body, or the raw body otherwise.
func (r Response) Text() string {
	var obj map[string]any
	if err := json.Unmarshal(r.Body, &obj); err == nil {
		for _, k := range textFields {
			if s, ok := obj[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(r.Body))
}
