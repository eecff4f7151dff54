package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/imagevault/internal/common"
)

var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

// S3 is a Gateway backed by an S3-compatible bucket (AWS, MinIO, LocalStack).
type S3 struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3 builds the bucket clients once. usePathStyle is required by MinIO
// and LocalStack.
func NewS3(cfg aws.Config, bucket string, usePathStyle bool) *S3 {
	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})
	return &S3{
		client:  client,
		presign: newS3PresignClient(client),
		bucket:  bucket,
	}
}

func (g *S3) IssueUploadHandle(ctx context.Context, key, contentType string, size int64, ttl time.Duration) (*Handle, error) {
	req, err := presignPutObject(g.presign, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, classifyS3("presign put", key, err)
	}

	h := toHandle(req)
	// Both are part of the signature; the store rejects a mismatching body.
	h.Headers["Content-Type"] = contentType
	h.Headers["Content-Length"] = fmt.Sprint(size)
	return h, nil
}

func (g *S3) IssueDownloadHandle(ctx context.Context, key, filename string, ttl time.Duration) (*Handle, error) {
	req, err := presignGetObject(g.presign, ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(g.bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(attachment(filename)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, classifyS3("presign get", key, err)
	}
	return toHandle(req), nil
}

func (g *S3) Stat(ctx context.Context, key string) (ObjectInfo, bool, error) {
	out, err := headObject(g.client, ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return ObjectInfo{}, false, nil
		}
		return ObjectInfo{}, false, classifyS3("head object", key, err)
	}
	return ObjectInfo{
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}, true, nil
}

func (g *S3) Delete(ctx context.Context, key string) error {
	_, err := deleteObject(g.client, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isS3NotFound(err) {
		return classifyS3("delete object", key, err)
	}
	return nil
}

func toHandle(req *v4.PresignedHTTPRequest) *Handle {
	h := &Handle{URL: req.URL, Method: req.Method, Headers: map[string]string{}}
	for k, vs := range req.SignedHeader {
		if http.CanonicalHeaderKey(k) == "Host" || len(vs) == 0 {
			continue
		}
		h.Headers[http.CanonicalHeaderKey(k)] = vs[0]
	}
	return h
}

func isS3NotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// classifyS3 reports every SDK failure as the store being unavailable,
// keeping the cause in the chain.
func classifyS3(op, key string, err error) error {
	return fmt.Errorf("%w: s3 %s %s: %w", common.ErrStoreUnavailable, op, key, err)
}
