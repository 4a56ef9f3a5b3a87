package utils

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"
)

// ParseJSONResponse reads an HTTP response body and decodes it into a
// generic map. Bodies that are not JSON objects come back under the "raw"
// key instead of failing; the gateway occasionally serves plain-text error
// pages and those still need to reach the caller.
func ParseJSONResponse(res *http.Response) (map[string]interface{}, error) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return map[string]interface{}{"raw": string(body)}, nil
	}
	return data, nil
}

// Retry attempts fn up to attempts times, sleeping a fixed duration between
// tries. It returns the last error when every attempt fails.
func Retry(attempts int, sleep time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		time.Sleep(sleep)
	}
	return err
}

// BackoffDelay computes the sleep before retry number attempt (0-based):
// base doubled per attempt, capped, plus up to 50% random jitter. Because
// the jitter never exceeds half the unjittered delay, consecutive delays
// are strictly increasing until the cap flattens the curve.
func BackoffDelay(attempt int, base, cap time.Duration) time.Duration {
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if cap > 0 && d >= cap {
			d = cap
			break
		}
	}
	if cap > 0 && d > cap {
		d = cap
	}
	jitter := time.Duration(rand.Int63n(int64(d)/2 + 1))
	return d + jitter
}

// IsRetryableStatus reports whether an HTTP status is worth retrying:
// throttling and server-side failures only. Other 4xx are the caller's
// problem and are surfaced immediately.
func IsRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

var mimeToExt = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tiff",
	"application/pdf": ".pdf",
	"text/plain":      ".txt",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// ExtensionFromContentType maps a MIME type (parameters ignored) to a file
// extension, or "" when unknown.
func ExtensionFromContentType(contentType string) string {
	mime := strings.TrimSpace(strings.Split(contentType, ";")[0])
	return mimeToExt[strings.ToLower(mime)]
}

// FilenameFromURL extracts the last path segment of a URL, without any query
// string.
func FilenameFromURL(rawURL string) string {
	trimmed := strings.Split(rawURL, "?")[0]
	name := filepath.Base(trimmed)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
