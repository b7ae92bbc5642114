package ai

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/reusedev/prompt-studio/internal/modules/http_client"
)

// Runtime is the slice of the Bedrock runtime client the requesters use.
type Runtime interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// LoadAWSConfig resolves credentials the usual way (env, shared files, role)
// and routes all SDK traffic through a client with the given timeout.
func LoadAWSConfig(ctx context.Context, region string, timeout time.Duration) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(http_client.NewWithTimeout(timeout)),
	)
}

func NewRuntime(cfg aws.Config) *bedrockruntime.Client {
	return bedrockruntime.NewFromConfig(cfg)
}
