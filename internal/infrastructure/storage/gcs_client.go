package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"corruptx/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

func (c *CloudStorageClient) Upload(ctx context.Context, key string, contentType string, body io.Reader) error {
	obj := c.client.Bucket(c.bucketName).Object(key)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "private, max-age=0"

	if _, err := io.Copy(wc, body); err != nil {
		wc.Close()
		return fmt.Errorf("failed to copy media to storage: %v", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to finalize media upload: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Remove(ctx context.Context, key string) error {
	obj := c.client.Bucket(c.bucketName).Object(key)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", key, err)
	}
	return nil
}

func (c *CloudStorageClient) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	}

	url, err := c.client.Bucket(c.bucketName).SignedURL(key, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for %s: %v", key, err)
	}

	return url, nil
}

func (c *CloudStorageClient) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, key)
}

func (c *CloudStorageClient) List(ctx context.Context, prefix string) ([]service.ObjectInfo, error) {
	it := c.client.Bucket(c.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var objects []service.ObjectInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %v", prefix, err)
		}
		objects = append(objects, service.ObjectInfo{
			Name:      attrs.Name,
			Size:      attrs.Size,
			UpdatedAt: attrs.Updated,
		})
	}

	return objects, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
