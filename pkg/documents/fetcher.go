package documents

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxDocumentSize caps fetched documents. CRM attachment endpoints reject
// anything larger anyway (HubSpot and Zoho cap at 20MB).
const maxDocumentSize = 20 << 20

// Fetcher retrieves signed proposal documents for CRM attachment upload.
// Supports s3:// URLs against the configured bucket region and plain
// http(s) URLs.
type Fetcher struct {
	httpClient *http.Client
	s3Client   *s3.Client
}

// NewFetcher creates a document fetcher. The S3 client is optional; when
// awsRegion is empty, s3:// URLs fail with an explicit error.
func NewFetcher(awsRegion string) (*Fetcher, error) {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	if awsRegion != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(awsRegion),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		f.s3Client = s3.NewFromConfig(awsCfg)
	}
	return f, nil
}

// Fetch downloads the document at rawURL and returns its bytes plus a
// filename suitable for the attachment upload.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid document URL: %w", err)
	}

	switch u.Scheme {
	case "s3":
		return f.fetchS3(ctx, u)
	case "http", "https":
		return f.fetchHTTP(ctx, rawURL)
	default:
		return nil, "", fmt.Errorf("unsupported document URL scheme %q", u.Scheme)
	}
}

func (f *Fetcher) fetchS3(ctx context.Context, u *url.URL) ([]byte, string, error) {
	if f.s3Client == nil {
		return nil, "", fmt.Errorf("s3 fetch requested but AWS is not configured")
	}

	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, "", fmt.Errorf("malformed s3 URL %q", u.String())
	}

	result, err := f.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(io.LimitReader(result.Body, maxDocumentSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read s3 object: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, "", fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
	}
	return data, path.Base(key), nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("document download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("document download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document body: %w", err)
	}
	if len(data) > maxDocumentSize {
		return nil, "", fmt.Errorf("document exceeds %d bytes", maxDocumentSize)
	}
	return data, filename(resp, rawURL), nil
}

// filename prefers the Content-Disposition header, then the URL path.
func filename(resp *http.Response, rawURL string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			return base
		}
	}
	return "signed-document.pdf"
}
