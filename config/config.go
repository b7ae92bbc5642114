package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/reusedev/prompt-studio/internal/consts"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

// Init loads .env (if any), then the yaml file at filePath (skipped when empty),
// applies environment overrides and verifies the result.
func Init(filePath string) {
	_ = godotenv.Load()
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	GConfig = cfg
}

func Load(filePath string) (*Config, error) {
	return load(Default(), filePath)
}

// LoadFunction builds the config of the serverless binary: environment only,
// and the binary never invokes other functions.
func LoadFunction() (*Config, error) {
	cfg := Default()
	cfg.InvokeMode = consts.InvokeLocal.String()
	return load(cfg, "")
}

func load(cfg *Config, filePath string) (*Config, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filePath, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	Region         string `yaml:"region"`
	RequestTimeout string `yaml:"request_timeout"`
	InvokeMode     string `yaml:"invoke_mode"`
	Functions      `yaml:"functions"`
	Models         `yaml:"models"`
	Store          `yaml:"store"`
	MySQL          `yaml:"mysql"`
	Session        `yaml:"session"`
}

type Functions struct {
	GenerateImage  string `yaml:"generate_image"`
	Outpaint       string `yaml:"outpaint"`
	OptimizePrompt string `yaml:"optimize_prompt"`
	SavePrompt     string `yaml:"save_prompt"`
	AddLabel       string `yaml:"add_label"`
}

// ARN returns the function identifier configured for name.
func (f Functions) ARN(name consts.Function) string {
	switch name {
	case consts.GenerateImage:
		return f.GenerateImage
	case consts.Outpaint:
		return f.Outpaint
	case consts.OptimizePrompt:
		return f.OptimizePrompt
	case consts.SavePrompt:
		return f.SavePrompt
	case consts.AddLabel:
		return f.AddLabel
	default:
		return ""
	}
}

type Models struct {
	ImageModelID    string `yaml:"image_model_id"`
	OutpaintModelID string `yaml:"outpaint_model_id"`
	TextModelID     string `yaml:"text_model_id"`
}

type Store struct {
	Supplier     string `yaml:"supplier"`
	PromptsTable string `yaml:"prompts_table"`
	LabelsTable  string `yaml:"labels_table"`
	LabelPolicy  string `yaml:"label_policy"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type Session struct {
	TTL string `yaml:"ttl"`
}

func Default() *Config {
	return &Config{
		LogLevel:       "info",
		LogMaxSize:     100,
		LogMaxBackups:  7,
		LogMaxAge:      30,
		Region:         consts.DefaultRegion,
		RequestTimeout: "6m",
		InvokeMode:     consts.InvokeLambda.String(),
		Models: Models{
			ImageModelID:    consts.DefaultImageModelID,
			OutpaintModelID: consts.DefaultOutpaintModelID,
			TextModelID:     consts.DefaultTextModelID,
		},
		Store: Store{
			Supplier:     consts.DynamoDB.String(),
			PromptsTable: consts.DefaultPromptsTable,
			LabelsTable:  consts.DefaultLabelsTable,
			LabelPolicy:  consts.LabelUpsert.String(),
		},
		MySQL: MySQL{
			Port:         3306,
			MaxIdleConns: 5,
			MaxOpenConns: 20,
		},
		Session: Session{TTL: "2h"},
	}
}

var envOverrides = map[string]func(c *Config) *string{
	"LOG_LEVEL":                  func(c *Config) *string { return &c.LogLevel },
	"LOG_FILE":                   func(c *Config) *string { return &c.LogFile },
	"AWS_REGION":                 func(c *Config) *string { return &c.Region },
	"INVOKE_MODE":                func(c *Config) *string { return &c.InvokeMode },
	"IMAGE_GENERATOR_LAMBDA_ARN": func(c *Config) *string { return &c.Functions.GenerateImage },
	"OUTPAINT_LAMBDA_ARN":        func(c *Config) *string { return &c.Functions.Outpaint },
	"OPTIMIZE_PROMPT_LAMBDA_ARN": func(c *Config) *string { return &c.Functions.OptimizePrompt },
	"SAVE_PROMPT_LAMBDA_ARN":     func(c *Config) *string { return &c.Functions.SavePrompt },
	"ADD_LABEL_LAMBDA_ARN":       func(c *Config) *string { return &c.Functions.AddLabel },
	"IMAGE_MODEL_ID":             func(c *Config) *string { return &c.Models.ImageModelID },
	"OUTPAINT_MODEL_ID":          func(c *Config) *string { return &c.Models.OutpaintModelID },
	"TEXT_MODEL_ID":              func(c *Config) *string { return &c.Models.TextModelID },
	"STORE_SUPPLIER":             func(c *Config) *string { return &c.Store.Supplier },
	"PROMPTS_TABLE_NAME":         func(c *Config) *string { return &c.Store.PromptsTable },
	"LABELS_TABLE_NAME":          func(c *Config) *string { return &c.Store.LabelsTable },
	"LABEL_POLICY":               func(c *Config) *string { return &c.Store.LabelPolicy },
}

func (c *Config) applyEnv() {
	for key, field := range envOverrides {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*field(c) = strings.TrimSpace(v)
		}
	}
}

func (c *Config) Verify() error {
	switch consts.StoreSupplier(c.Store.Supplier) {
	case consts.DynamoDB, consts.MySQL, consts.Memory:
	default:
		return fmt.Errorf("store.supplier must be one of dynamodb, mysql, memory: %q", c.Store.Supplier)
	}
	switch consts.LabelPolicy(c.Store.LabelPolicy) {
	case consts.LabelUpsert, consts.LabelReject:
	default:
		return fmt.Errorf("store.label_policy must be upsert or reject: %q", c.Store.LabelPolicy)
	}
	if c.Store.PromptsTable == "" || c.Store.LabelsTable == "" {
		return fmt.Errorf("store table names must not be empty")
	}
	switch consts.InvokeMode(c.InvokeMode) {
	case consts.InvokeLocal:
	case consts.InvokeLambda:
		for _, name := range consts.Functions {
			if c.Functions.ARN(name) == "" {
				return fmt.Errorf("functions.%s is required in lambda invoke mode", name)
			}
		}
	default:
		return fmt.Errorf("invoke_mode must be lambda or local: %q", c.InvokeMode)
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("request_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.Session.TTL); err != nil {
		return fmt.Errorf("session.ttl: %w", err)
	}
	return nil
}

func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

func (c *Config) SessionTTL() time.Duration {
	d, _ := time.ParseDuration(c.Session.TTL)
	return d
}
