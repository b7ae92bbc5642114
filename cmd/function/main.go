package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/function"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/store/supplier"
)

// One binary serves all five functions; PROMPT_STUDIO_FUNCTION picks which.
func main() {
	cfg, err := config.LoadFunction()
	if err != nil {
		panic(err)
	}
	config.GConfig = cfg
	logs.InitLogger()

	name := consts.Function(os.Getenv("PROMPT_STUDIO_FUNCTION"))
	awsCfg, err := ai.LoadAWSConfig(context.Background(), cfg.Region, cfg.RequestTimeoutDuration())
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("load aws config")
	}
	s, err := supplier.Open(cfg, awsCfg)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("open store")
	}
	handlers := function.NewHandlers(ai.NewRuntime(awsCfg), s, cfg.Models, consts.LabelPolicy(cfg.Store.LabelPolicy))
	fn, err := handlers.Lookup(name)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("PROMPT_STUDIO_FUNCTION")
	}
	logs.Logger.Info().Str("function", name.String()).Msg("function start")
	lambda.Start(func(ctx context.Context, event json.RawMessage) (json.RawMessage, error) {
		return fn(ctx, event)
	})
}
