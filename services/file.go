package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
	"github.com/Blaaiz/blaaiz-go/utils"
	"github.com/Blaaiz/blaaiz-go/utils/logger"
)

var fileCategories = map[string]bool{
	"identity":         true,
	"proof_of_address": true,
	"liveness_check":   true,
}

// FileService moves caller documents into the platform's storage through
// the three-step presign/transfer/associate protocol. The transfer and
// download legs talk to foreign hosts (object storage, arbitrary file URLs),
// so they run over a pooled plain HTTP client instead of the API client.
type FileService struct {
	client *client.Client
	http   *http.Client
}

// NewFileService creates a file service.
func NewFileService(c *client.Client) *FileService {
	cfg := c.Config()
	return &FileService{
		client: c,
		http:   utils.NewPooledHTTPClient(cfg.Timeout),
	}
}

// GetPresignedURL obtains an upload handle scoped to a customer and file
// category.
func (s *FileService) GetPresignedURL(ctx context.Context, customerID, fileCategory string) (*types.APIResponse, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer_id is required")
	}
	if fileCategory == "" {
		return nil, types.NewValidationError("file_category is required")
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/file/get-presigned-url", map[string]interface{}{
		"customer_id":   customerID,
		"file_category": fileCategory,
	})
}

// UploadComplete runs the full pipeline for one document: presign, transfer
// the normalized bytes to the upload target, then associate the file with
// the customer. A failed step aborts the rest and is reported through
// *types.UploadError tagged with that step; an already-presigned or
// already-transferred file is not cleaned up (known gap — the gateway
// expires unassociated handles on its own schedule).
func (s *FileService) UploadComplete(ctx context.Context, customerID string, req types.UploadRequest) (*types.UploadResult, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer ID is required")
	}
	if req.File == nil {
		return nil, types.NewValidationError("file is required")
	}
	if !fileCategories[req.FileCategory] {
		return nil, types.NewValidationError("file_category must be one of: identity, proof_of_address, liveness_check")
	}

	// Step 1: presign.
	presigned, err := s.GetPresignedURL(ctx, customerID, req.FileCategory)
	if err != nil {
		return nil, &types.UploadError{Step: types.UploadStepPresign, Err: err}
	}
	uploadURL, ok := presigned.DataString("url")
	if !ok || uploadURL == "" {
		return nil, &types.UploadError{Step: types.UploadStepPresign, Err: fmt.Errorf("presign response carried no url")}
	}
	fileID, ok := presigned.DataString("file_id")
	if !ok || fileID == "" {
		return nil, &types.UploadError{Step: types.UploadStepPresign, Err: fmt.Errorf("presign response carried no file_id")}
	}

	// Step 2: normalize and transfer.
	buf, err := s.normalizeFile(ctx, req)
	if err != nil {
		return nil, &types.UploadError{Step: types.UploadStepTransfer, Err: err}
	}
	if err := s.putPresigned(ctx, uploadURL, buf); err != nil {
		return nil, &types.UploadError{Step: types.UploadStepTransfer, Err: err}
	}

	// Step 3: associate.
	association, err := s.client.Do(ctx, http.MethodPut, "/api/external/customer/"+customerID+"/files",
		map[string]interface{}{"id_file": fileID})
	if err != nil {
		return nil, &types.UploadError{Step: types.UploadStepAssociate, Err: err}
	}

	logger.WithFields(logger.Fields{
		"customer_id": customerID,
		"file_id":     fileID,
		"category":    req.FileCategory,
	}).Debug("file upload completed")

	return &types.UploadResult{
		FileID:       fileID,
		PresignedURL: uploadURL,
		Association:  association,
	}, nil
}

// UploadBatch executes uploads independently with bounded concurrency.
// Results mirror input order regardless of completion order, and one failed
// item never aborts the rest.
func (s *FileService) UploadBatch(ctx context.Context, customerID string, reqs []types.UploadRequest) []types.BatchUploadItem {
	results := make([]types.BatchUploadItem, len(reqs))

	limit := s.client.Config().UploadConcurrency
	if limit < 1 {
		limit = 1
	}
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := s.UploadComplete(ctx, customerID, reqs[i])
			if err != nil {
				results[i] = types.BatchUploadItem{Err: err}
				return
			}
			results[i] = types.BatchUploadItem{Success: true, Result: result}
		}(i)
	}
	wg.Wait()

	return results
}

// fileBuffer is the normalized form of an upload source.
type fileBuffer struct {
	data        []byte
	contentType string
	filename    string
}

// normalizeFile turns any accepted file input into raw bytes. Explicit
// ContentType and Filename on the request win over anything derived from
// the source.
func (s *FileService) normalizeFile(ctx context.Context, req types.UploadRequest) (*fileBuffer, error) {
	buf := &fileBuffer{contentType: req.ContentType, filename: req.Filename}

	switch src := req.File.(type) {
	case []byte:
		buf.data = src
	case string:
		switch {
		case strings.HasPrefix(src, "data:"):
			if err := decodeDataURL(src, buf); err != nil {
				return nil, err
			}
		case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
			if err := s.downloadFile(ctx, src, buf); err != nil {
				return nil, err
			}
		default:
			decoded, err := base64.StdEncoding.DecodeString(src)
			if err != nil {
				return nil, fmt.Errorf("invalid base64 file content: %w", err)
			}
			buf.data = decoded
		}
	default:
		return nil, types.NewValidationError("file content must be []byte or string")
	}

	if len(buf.data) == 0 {
		return nil, fmt.Errorf("file content is empty")
	}
	return buf, nil
}

// decodeDataURL splits a data:<mime>;base64,<payload> URL. The embedded
// MIME type becomes the default content type.
func decodeDataURL(src string, buf *fileBuffer) error {
	parts := strings.SplitN(src, ",", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid data URL format")
	}

	header := parts[0]
	if buf.contentType == "" {
		if colon := strings.Index(header, ":"); colon >= 0 {
			meta := header[colon+1:]
			if semi := strings.Index(meta, ";"); semi >= 0 {
				meta = meta[:semi]
			}
			buf.contentType = meta
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("invalid data URL payload: %w", err)
	}
	buf.data = decoded
	return nil
}

// downloadFile fetches a remote source. Content type and filename come from
// the response unless the request pinned them.
func (s *FileService) downloadFile(ctx context.Context, url string, buf *fileBuffer) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("file download failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", client.UserAgent)

	res, err := s.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("file download failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("failed to download file: HTTP %d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("file download failed: %w", err)
	}
	buf.data = data

	if buf.contentType == "" {
		buf.contentType = res.Header.Get("Content-Type")
	}
	if buf.filename == "" {
		buf.filename = filenameFromResponse(res, url, buf.contentType)
	}
	return nil
}

// filenameFromResponse recovers a filename from Content-Disposition, then
// the URL path, appending an extension inferred from the content type when
// the name has none.
func filenameFromResponse(res *http.Response, url, contentType string) string {
	var name string
	if cd := res.Header.Get("Content-Disposition"); strings.Contains(cd, "filename=") {
		name = strings.Trim(strings.SplitN(cd, "filename=", 2)[1], `"' `)
	}
	if name == "" {
		name = utils.FilenameFromURL(url)
	}
	if name != "" && filepath.Ext(name) == "" && contentType != "" {
		name += utils.ExtensionFromContentType(contentType)
	}
	return name
}

// putPresigned transfers the bytes to the upload target with the headers
// the handle dictates. Pure connection failures are retried once; HTTP
// errors are not, since the handle may have been consumed.
func (s *FileService) putPresigned(ctx context.Context, url string, buf *fileBuffer) error {
	attempt := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(buf.data))
		if err != nil {
			return err
		}
		if buf.contentType != "" {
			httpReq.Header.Set("Content-Type", buf.contentType)
		}
		if buf.filename != "" {
			httpReq.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", buf.filename))
		}

		res, err := s.http.Do(httpReq)
		if err != nil {
			return err
		}
		defer res.Body.Close()
		io.Copy(io.Discard, res.Body)

		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return &transferStatusError{status: res.StatusCode}
		}
		return nil
	}

	err := attempt()
	if err == nil {
		return nil
	}
	if tse, ok := err.(*transferStatusError); ok {
		return fmt.Errorf("upload failed with status %d", tse.status)
	}

	// One more try for pure connection failures.
	cfg := s.client.Config()
	if err = utils.Retry(1, cfg.RetryBackoff, attempt); err != nil {
		if tse, ok := err.(*transferStatusError); ok {
			return fmt.Errorf("upload failed with status %d", tse.status)
		}
		return fmt.Errorf("upload request failed: %w", err)
	}
	return nil
}

type transferStatusError struct {
	status int
}

func (e *transferStatusError) Error() string {
	return fmt.Sprintf("upload failed with status %d", e.status)
}
