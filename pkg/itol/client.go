package itol

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ibiology/itol/pkg/errors"
	"github.com/ibiology/itol/pkg/logging"
)

// Batch endpoints of the iTOL service.
const (
	DefaultUploadURL   = "https://itol.embl.de/batch_uploader.cgi"
	DefaultDownloadURL = "https://itol.embl.de/batch_downloader.cgi"

	// TreeBaseURL is the browser URL prefix for uploaded trees.
	TreeBaseURL = "https://itol.embl.de/tree/"

	// DefaultTimeout bounds every batch call. The service renders
	// trees on demand, so exports can take a while.
	DefaultTimeout = 5 * time.Minute
)

// ExportFormats are the output formats the batch downloader accepts:
// graphical (svg, eps, pdf, png) and text (newick, nexus, phyloxml).
var ExportFormats = []string{"svg", "eps", "pdf", "png", "newick", "nexus", "phyloxml"}

// ParseFormat validates an export format name, case-insensitively.
func ParseFormat(name string) (string, error) {
	f := strings.ToLower(name)
	for _, known := range ExportFormats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"format %q is not supported, use one of: %s", name, strings.Join(ExportFormats, ", "))
}

// ParseTreeID accepts a bare numeric tree ID or a tree URL and returns
// the numeric identifier.
func ParseTreeID(s string) (string, error) {
	id := s
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		parts := strings.Split(strings.TrimRight(s, "/"), "/")
		id = parts[len(parts)-1]
	}
	if !isDigits(id) {
		return "", errors.Newf(errors.ErrInvalidInput, "%q is not a tree ID or tree URL", s)
	}
	return id, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Client talks to the iTOL batch interface. Every call is a single
// stateless request/response exchange; there are no sessions and no
// retries.
type Client struct {
	UploadURL   string
	DownloadURL string
	HTTPClient  *http.Client
}

// NewClient returns a client against the public iTOL endpoints with the
// default timeout.
func NewClient() *Client {
	return &Client{
		UploadURL:   DefaultUploadURL,
		DownloadURL: DefaultDownloadURL,
		HTTPClient:  &http.Client{Timeout: DefaultTimeout},
	}
}

// UploadOptions carry the form fields of a batch upload. Empty fields
// are omitted from the request.
type UploadOptions struct {
	// TreeName defaults to the base name of the uploaded archive.
	TreeName string

	// UploadID associates the tree with an iTOL account. Without it
	// the tree is anonymous and deleted after 30 days.
	UploadID string

	// ProjectName is required when UploadID is set.
	ProjectName string

	// TreeDescription is ignored by the service unless UploadID is set.
	TreeDescription string

	// Extra form fields forwarded verbatim.
	Extra map[string]string
}

// UploadResult is the parsed success envelope of a batch upload.
type UploadResult struct {
	TreeID   string
	URL      string
	Warnings []string
}

// Upload POSTs a ZIP archive to the batch uploader and parses the
// plain-text response envelope. The archive must contain the tree under
// its normalized name plus any annotation files.
func (c *Client) Upload(ctx context.Context, zipPath string, opts UploadOptions) (*UploadResult, error) {
	logger := logging.GetLogger("itol.upload")

	zf, err := os.Open(zipPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "archive %s cannot be opened", zipPath)
	}
	defer zf.Close()

	if opts.TreeName == "" {
		opts.TreeName = filepath.Base(zipPath)
	}
	if opts.UploadID == "" {
		logger.Warn().Msg("No upload ID provided: the tree will not be associated with any account and will be deleted after 30 days")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"treeName":        opts.TreeName,
		"uploadID":        opts.UploadID,
		"projectName":     opts.ProjectName,
		"treeDescription": opts.TreeDescription,
	}
	for k, v := range opts.Extra {
		fields[k] = v
	}
	for _, k := range sortedKeys(fields) {
		if fields[k] == "" {
			continue
		}
		if err := mw.WriteField(k, fields[k]); err != nil {
			return nil, errors.Wrap(err, errors.ErrRequest, "cannot encode upload form")
		}
	}
	fw, err := mw.CreateFormFile("zipFile", filepath.Base(zipPath))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot encode upload form")
	}
	if _, err := io.Copy(fw, zf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read archive %s", zipPath)
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot encode upload form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL, &body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot build upload request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "upload request failed")
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot read upload response")
	}

	result, err := parseUploadResponse(string(text))
	if err != nil {
		return nil, err
	}
	logger.Info().Str("treeID", result.TreeID).Str("url", result.URL).Msg("Tree uploaded")
	return result, nil
}

// parseUploadResponse interprets the uploader's plain-text envelope: a
// line "SUCCESS: <id>", possibly preceded by warning lines, means
// success; anything else is a remote failure carried verbatim.
func parseUploadResponse(text string) (*UploadResult, error) {
	var warnings []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if id, ok := strings.CutPrefix(line, "SUCCESS: "); ok {
			return &UploadResult{
				TreeID:   strings.TrimSpace(id),
				URL:      TreeBaseURL + strings.TrimSpace(id),
				Warnings: warnings,
			}, nil
		}
		warnings = append(warnings, line)
	}
	return nil, errors.Newf(errors.ErrRemote, "tree upload failed: %s", strings.TrimSpace(text)).
		WithDetail("body", text)
}

// DownloadOptions carry the query parameters of a batch download.
type DownloadOptions struct {
	// Format defaults to pdf.
	Format string

	// Params are additional display options forwarded verbatim, e.g.
	// display_mode or label_display (see the iTOL help pages).
	Params map[string]string
}

// Download GETs an exported tree from the batch downloader and returns
// the artifact bytes. A plain-text body starting with an error token is
// reported as a remote failure.
func (c *Client) Download(ctx context.Context, treeID string, opts DownloadOptions) ([]byte, error) {
	logger := logging.GetLogger("itol.download")

	id, err := ParseTreeID(treeID)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(orString(opts.Format, "pdf"))
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("tree", id)
	q.Set("format", format)
	for k, v := range opts.Params {
		q.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DownloadURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot build download request")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "download request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRequest, "cannot read download response")
	}

	if isRemoteError(data) {
		return nil, errors.Newf(errors.ErrRemote, "tree download failed: %s", strings.TrimSpace(string(data))).
			WithDetail("body", string(data))
	}

	logger.Info().Str("treeID", id).Str("format", format).Int("bytes", len(data)).Msg("Tree exported")
	return data, nil
}

// DownloadToFile downloads an exported tree and persists the artifact
// bytes verbatim. An empty outfile defaults to iTOL.download.<format>
// in the current directory. Nothing is written on a remote failure.
func (c *Client) DownloadToFile(ctx context.Context, treeID, outfile string, opts DownloadOptions) (string, error) {
	data, err := c.Download(ctx, treeID, opts)
	if err != nil {
		return "", err
	}

	if outfile == "" {
		format, _ := ParseFormat(orString(opts.Format, "pdf"))
		outfile = "iTOL.download." + format
	}
	if err := os.WriteFile(outfile, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot save export to %s", outfile)
	}
	return outfile, nil
}

// isRemoteError recognizes the downloader's plain-text failure
// envelopes in an otherwise binary response.
func isRemoteError(body []byte) bool {
	return bytes.HasPrefix(body, []byte("ERROR")) || bytes.HasPrefix(body, []byte("Invalid"))
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
