// Package shared provides common utility functions used across multiple
// packages in the otapush codebase.
package shared

import (
	"fmt"
	"strings"
)

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, strings.TrimSpace(body))
}
