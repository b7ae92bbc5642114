package supplier

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/store/dynamo"
	"github.com/reusedev/prompt-studio/internal/modules/store/memory"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	cfg := config.Default()

	cfg.Store.Supplier = consts.Memory.String()
	s, err := Open(cfg, aws.Config{})
	require.NoError(t, err)
	require.IsType(t, &memory.Store{}, s)

	cfg.Store.Supplier = consts.DynamoDB.String()
	s, err = Open(cfg, aws.Config{Region: "us-east-1"})
	require.NoError(t, err)
	require.IsType(t, &dynamo.Store{}, s)

	cfg.Store.Supplier = "redis"
	_, err = Open(cfg, aws.Config{})
	require.Error(t, err)
}
