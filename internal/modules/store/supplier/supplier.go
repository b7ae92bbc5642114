package supplier

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/store"
	"github.com/reusedev/prompt-studio/internal/modules/store/dynamo"
	"github.com/reusedev/prompt-studio/internal/modules/store/memory"
	"github.com/reusedev/prompt-studio/internal/modules/store/mysql"
)

// Open builds the backend named by cfg.Store.Supplier.
func Open(cfg *config.Config, awsCfg aws.Config) (store.Store, error) {
	logs.Logger.Info().Str("supplier", cfg.Store.Supplier).
		Str("prompts_table", cfg.Store.PromptsTable).
		Str("labels_table", cfg.Store.LabelsTable).
		Msg("open store")
	switch consts.StoreSupplier(cfg.Store.Supplier) {
	case consts.DynamoDB:
		return dynamo.NewFromConfig(awsCfg, cfg.Store.PromptsTable, cfg.Store.LabelsTable), nil
	case consts.MySQL:
		return mysql.Open(cfg.MySQL, cfg.Store.PromptsTable, cfg.Store.LabelsTable)
	case consts.Memory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store supplier %q", cfg.Store.Supplier)
	}
}
