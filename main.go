package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/function"
	"github.com/reusedev/prompt-studio/internal/modules/invoker"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/session"
	"github.com/reusedev/prompt-studio/internal/modules/store/supplier"
	"github.com/reusedev/prompt-studio/internal/service/http"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8501", "listen http port")
	flag.StringVar(&configPath, "config", "", "config file path, environment only when empty")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()
	cfg := config.GConfig

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	awsCfg, err := ai.LoadAWSConfig(ctx, cfg.Region, cfg.RequestTimeoutDuration())
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("load aws config")
	}
	s, err := supplier.Open(cfg, awsCfg)
	if err != nil {
		logs.Logger.Fatal().Err(err).Msg("open store")
	}

	var inv invoker.Invoker
	switch consts.InvokeMode(cfg.InvokeMode) {
	case consts.InvokeLocal:
		handlers := function.NewHandlers(ai.NewRuntime(awsCfg), s, cfg.Models, consts.LabelPolicy(cfg.Store.LabelPolicy))
		inv = invoker.NewLocal(handlers.Registry())
	default:
		inv = invoker.NewLambdaFromConfig(awsCfg, cfg.Functions)
	}
	logs.Logger.Info().Str("invoke_mode", cfg.InvokeMode).Str("store", cfg.Store.Supplier).Msg("prompt studio start")

	controller := session.NewController(inv, s, session.NewManager(cfg.SessionTTL()))
	if err = http.Serve(ctx, httpPort, controller, cfg.SessionTTL()); err != nil {
		logs.Logger.Fatal().Err(err).Msg("http server")
	}
}
