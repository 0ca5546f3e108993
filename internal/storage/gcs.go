package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// GCSStorage stores files in the Firebase project's Cloud Storage bucket.
type GCSStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewGCSStorage(ctx context.Context, bucketName, credentialsFile string) (*GCSStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}

	return &GCSStorage{bucket: bucket, bucketName: bucketName}, nil
}

func (g *GCSStorage) Upload(ctx context.Context, key, contentType string, r io.Reader, progress ProgressFunc) (*UploadResult, error) {
	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	written, err := copyWithProgress(w, r, progress)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	return &UploadResult{
		URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucketName, key),
		Size:        written,
		ContentType: contentType,
	}, nil
}

func (g *GCSStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return g.bucket.Object(key).NewReader(ctx)
}

func (g *GCSStorage) Delete(ctx context.Context, key string) error {
	return g.bucket.Object(key).Delete(ctx)
}
