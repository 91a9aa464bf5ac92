package common

import (
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type minioConfig struct {
	endpoint string
}

func (r *minioConfig) GetMinioEndpoint() *string {
	return &r.endpoint
}

func (r *minioConfig) GetMinioAccessKey() *string {
	return gut.Ptr("access")
}

func (r *minioConfig) GetMinioSecretKey() *string {
	return nil
}

func TestMinioSecureFollowsScheme(t *testing.T) {
	client, err := Minio(&minioConfig{endpoint: "https://storage.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https", client.EndpointURL().Scheme)
	assert.Equal(t, "storage.example.com", client.EndpointURL().Host)

	client, err = Minio(&minioConfig{endpoint: "http://localhost:9000"})
	require.NoError(t, err)
	assert.Equal(t, "http", client.EndpointURL().Scheme)
}
