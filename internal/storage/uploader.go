// Package storage relays uploaded images to S3, with a local-disk fallback
// when AWS credentials are absent (development).
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lankatrails/internal/config"
)

type Uploader struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
	baseURL  string
	localDir string
	useS3    bool
	log      *logrus.Logger
}

func New(cfg config.AWSConfig, log *logrus.Logger) (*Uploader, error) {
	if cfg.Region != "" && cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" && cfg.Bucket != "" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.Region),
			Credentials: credentials.NewStaticCredentials(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("create AWS session: %w", err)
		}

		log.WithField("bucket", cfg.Bucket).Info("S3 storage initialized")
		return &Uploader{
			uploader: s3manager.NewUploader(sess),
			bucket:   cfg.Bucket,
			region:   cfg.Region,
			useS3:    true,
			log:      log,
		}, nil
	}

	if err := os.MkdirAll(cfg.LocalUploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	log.WithField("dir", cfg.LocalUploadDir).Info("using local storage for uploads")
	return &Uploader{
		baseURL:  cfg.BaseURL,
		localDir: cfg.LocalUploadDir,
		log:      log,
	}, nil
}

// Upload stores one image under a random key inside folder and returns its
// public URL. A storage failure aborts the calling operation.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	if u.useS3 {
		out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        src,
			ContentType: aws.String(fh.Header.Get("Content-Type")),
		})
		if err != nil {
			return "", fmt.Errorf("s3 upload: %w", err)
		}
		return out.Location, nil
	}

	dst := filepath.Join(u.localDir, key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", u.baseURL, u.localDir, key), nil
}
