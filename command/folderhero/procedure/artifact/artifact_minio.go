package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinioSink uploads artifacts into Bucket under Prefix.
type MinioSink struct {
	Client *minio.Client
	Bucket string
	Prefix string
}

func (r *MinioSink) Put(ctx context.Context, artifact *Artifact) (string, error) {
	// * ensure bucket
	exists, err := r.Client.BucketExists(ctx, r.Bucket)
	if err != nil {
		return "", fmt.Errorf("unable to check bucket %s: %w", r.Bucket, err)
	}
	if !exists {
		if err := r.Client.MakeBucket(ctx, r.Bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("unable to create bucket %s: %w", r.Bucket, err)
		}
	}

	// * upload object
	key := path.Join(r.Prefix, artifact.Name)
	_, err = r.Client.PutObject(
		ctx,
		r.Bucket,
		key,
		bytes.NewReader(artifact.Content),
		int64(len(artifact.Content)),
		minio.PutObjectOptions{ContentType: artifact.ContentType},
	)
	if err != nil {
		return "", fmt.Errorf("unable to upload %s: %w", key, err)
	}

	return fmt.Sprintf("s3://%s/%s", r.Bucket, key), nil
}
