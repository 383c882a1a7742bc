// Package blob provides attachment uploads through an S3-compatible object
// store. The service never proxies file bytes: clients receive a presigned
// PUT URL, upload directly, and reference the resulting public URL on the
// memo.
package blob

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"memopad/internal/config"
)

// presignTTL bounds how long an issued upload URL stays usable.
const presignTTL = 15 * time.Minute

// Upload describes an issued upload slot.
type Upload struct {
	// Key is the object key within the bucket.
	Key string `json:"key"`
	// UploadURL is the presigned PUT URL the client uploads the blob to.
	UploadURL string `json:"upload_url"`
	// URL is the stable object URL to store on the memo attachment.
	URL string `json:"url"`
}

// Store issues presigned upload URLs against one bucket.
type Store struct {
	cfg    config.BlobConfig
	logger *slog.Logger
}

// NewStore creates a blob store for the configured bucket.
func NewStore(cfg config.BlobConfig, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		cfg:    cfg,
		logger: log.With(slog.String("component", "blob_store")),
	}
}

// Enabled reports whether object storage is configured. When it is not, the
// attachment-presign endpoint is withheld from the router.
func (s *Store) Enabled() bool {
	return s.cfg.Bucket != "" && s.cfg.Region != ""
}

func (s *Store) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// storageKey returns a fresh date-partitioned object key.
func storageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("attachments/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}

// PresignUpload issues a presigned PUT URL for a new attachment object.
func (s *Store) PresignUpload(ctx context.Context, mimeType string) (*Upload, error) {
	client, err := s.presignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build presign client: %w", err)
	}

	key := storageKey()
	req, err := client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(mimeType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	s.logger.Debug("presigned attachment upload",
		slog.String("key", key))

	return &Upload{
		Key:       key,
		UploadURL: req.URL,
		URL:       s.objectURL(key),
	}, nil
}

// objectURL builds the stable URL a stored attachment is reachable at.
func (s *Store) objectURL(key string) string {
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.Endpoint, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
