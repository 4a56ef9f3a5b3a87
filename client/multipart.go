package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/Blaaiz/blaaiz-go/types"
)

// sendMultipart performs a single multipart/form-data attempt. Multipart
// bodies go through the pooled net/http client directly because the request
// needs a streaming body with a boundary-bearing content type.
func (c *Client) sendMultipart(method, path string, ro *requestOptions, requestID string) (*types.APIResponse, *types.APIError) {
	payload, contentType, err := encodeMultipart(ro.multipart)
	if err != nil {
		return nil, &types.APIError{
			Message:    fmt.Sprintf("failed to encode multipart body: %v", err),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &types.APIError{
			Message:    fmt.Sprintf("failed to build request: %v", err),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}
	req.Header.Set("x-blaaiz-api-key", c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("x-request-id", requestID)
	req.Header.Set("Content-Type", contentType)

	res, err := c.pool.Do(req)
	if err != nil {
		return nil, &types.APIError{
			Message:    fmt.Sprintf("request failed: %v", err),
			StatusCode: 0,
			Code:       types.CodeRequestError,
		}
	}

	return classify(res)
}

// encodeMultipart renders fields and file parts into a multipart body.
func encodeMultipart(mb *MultipartBody) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range mb.Fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range mb.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(file.FieldName), escapeQuotes(file.Filename)))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		} else {
			header.Set("Content-Type", "application/octet-stream")
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
