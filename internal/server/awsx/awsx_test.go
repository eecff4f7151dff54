package awsx

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLoad(t *testing.T, fn func(lo awsconfig.LoadOptions) (aws.Config, error)) {
	t.Helper()
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, f := range optFns {
			require.NoError(t, f(&lo))
		}
		return fn(lo)
	}
}

func TestLoad_StaticCredentialsAndEndpoint(t *testing.T) {
	stubLoad(t, func(lo awsconfig.LoadOptions) (aws.Config, error) {
		assert.Equal(t, "eu-central-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "AKID", creds.AccessKeyID)
		assert.Equal(t, "SECRET", creds.SecretAccessKey)
		return aws.Config{Region: lo.Region}, nil
	})

	cfg, err := Load(context.Background(), Options{
		Region:          "eu-central-1",
		Endpoint:        "http://127.0.0.1:4566",
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:4566", *cfg.BaseEndpoint)
}

func TestLoad_DefaultChainWhenKeysMissing(t *testing.T) {
	stubLoad(t, func(lo awsconfig.LoadOptions) (aws.Config, error) {
		assert.Nil(t, lo.Credentials)
		return aws.Config{}, nil
	})

	cfg, err := Load(context.Background(), Options{Region: "us-east-1", AccessKeyID: "only-id"})
	require.NoError(t, err)
	assert.Nil(t, cfg.BaseEndpoint)
}

func TestLoad_Error(t *testing.T) {
	stubLoad(t, func(awsconfig.LoadOptions) (aws.Config, error) {
		return aws.Config{}, errors.New("boom")
	})

	_, err := Load(context.Background(), Options{Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load aws config")
}
