package common

import (
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig interface {
	GetMinioEndpoint() *string
	GetMinioAccessKey() *string
	GetMinioSecretKey() *string
}

// Minio builds a client from an endpoint url; https selects a secure
// transport.
func Minio(config MinioConfig) (*minio.Client, error) {
	// * parse endpoint
	parsed, err := url.Parse(*config.GetMinioEndpoint())
	if err != nil {
		return nil, err
	}

	// * resolve credentials
	accessKey, secretKey := "", ""
	if config.GetMinioAccessKey() != nil {
		accessKey = *config.GetMinioAccessKey()
	}
	if config.GetMinioSecretKey() != nil {
		secretKey = *config.GetMinioSecretKey()
	}

	return minio.New(parsed.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: parsed.Scheme == "https",
	})
}
