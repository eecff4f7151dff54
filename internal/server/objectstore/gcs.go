package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/dmitrijs2005/imagevault/internal/common"
	"google.golang.org/api/option"
)

// gcsBucket is the part of *storage.BucketHandle the gateway needs.
type gcsBucket interface {
	SignedURL(object string, opts *storage.SignedURLOptions) (string, error)
	Attrs(ctx context.Context, object string) (*storage.ObjectAttrs, error)
	Delete(ctx context.Context, object string) error
}

type bucketHandle struct{ *storage.BucketHandle }

func (b bucketHandle) Attrs(ctx context.Context, object string) (*storage.ObjectAttrs, error) {
	return b.Object(object).Attrs(ctx)
}

func (b bucketHandle) Delete(ctx context.Context, object string) error {
	return b.Object(object).Delete(ctx)
}

// GCSOptions configures the Google Cloud Storage gateway. When SigningEmail
// and SigningPrivateKey are empty the client's own credentials sign URLs.
type GCSOptions struct {
	Bucket            string
	SigningEmail      string
	SigningPrivateKey string
	CredentialsFile   string
	ClientOptions     []option.ClientOption
}

// GCS is a Gateway backed by a Google Cloud Storage bucket using V4 signed
// URLs.
type GCS struct {
	client     *storage.Client
	bucket     gcsBucket
	accessID   string
	privateKey []byte
	now        func() time.Time
}

// NewGCS creates the storage client. Close releases it.
func NewGCS(ctx context.Context, o GCSOptions) (*GCS, error) {
	opts := append([]option.ClientOption(nil), o.ClientOptions...)
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	g := &GCS{
		client:   client,
		bucket:   bucketHandle{client.Bucket(o.Bucket)},
		accessID: o.SigningEmail,
		now:      time.Now,
	}
	if o.SigningPrivateKey != "" {
		// Keys passed through env vars carry literal \n sequences.
		g.privateKey = []byte(strings.ReplaceAll(o.SigningPrivateKey, `\n`, "\n"))
	}
	return g, nil
}

func (g *GCS) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *GCS) signOptions(method string, ttl time.Duration) *storage.SignedURLOptions {
	return &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         method,
		Expires:        g.now().Add(ttl),
		GoogleAccessID: g.accessID,
		PrivateKey:     g.privateKey,
	}
}

func (g *GCS) IssueUploadHandle(ctx context.Context, key, contentType string, size int64, ttl time.Duration) (*Handle, error) {
	lengthRange := fmt.Sprintf("%d,%d", size, size)

	opts := g.signOptions(http.MethodPut, ttl)
	opts.ContentType = contentType
	opts.Headers = []string{"x-goog-content-length-range:" + lengthRange}

	u, err := g.bucket.SignedURL(key, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: gcs sign put %s: %w", common.ErrStoreUnavailable, key, err)
	}
	return &Handle{
		URL:    u,
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type":                contentType,
			"X-Goog-Content-Length-Range": lengthRange,
		},
	}, nil
}

func (g *GCS) IssueDownloadHandle(ctx context.Context, key, filename string, ttl time.Duration) (*Handle, error) {
	opts := g.signOptions(http.MethodGet, ttl)
	opts.QueryParameters = url.Values{"response-content-disposition": {attachment(filename)}}

	u, err := g.bucket.SignedURL(key, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: gcs sign get %s: %w", common.ErrStoreUnavailable, key, err)
	}
	return &Handle{URL: u, Method: http.MethodGet}, nil
}

func (g *GCS) Stat(ctx context.Context, key string) (ObjectInfo, bool, error) {
	attrs, err := g.bucket.Attrs(ctx, key)
	switch {
	case err == nil:
		return ObjectInfo{Size: attrs.Size, ContentType: attrs.ContentType}, true, nil
	case errors.Is(err, storage.ErrObjectNotExist):
		return ObjectInfo{}, false, nil
	default:
		return ObjectInfo{}, false, fmt.Errorf("%w: gcs attrs %s: %w", common.ErrStoreUnavailable, key, err)
	}
}

func (g *GCS) Delete(ctx context.Context, key string) error {
	err := g.bucket.Delete(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: gcs delete %s: %w", common.ErrStoreUnavailable, key, err)
	}
	return nil
}
