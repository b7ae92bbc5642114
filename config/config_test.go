package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/stretchr/testify/require"
)

const localYaml = `
invoke_mode: local
store:
  supplier: memory
  label_policy: reject
session:
  ttl: 30m
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYamlKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, localYaml))
	require.NoError(t, err)
	require.Equal(t, consts.Memory.String(), cfg.Store.Supplier)
	require.Equal(t, consts.LabelReject.String(), cfg.Store.LabelPolicy)
	require.Equal(t, consts.DefaultLabelsTable, cfg.Store.LabelsTable)
	require.Equal(t, consts.DefaultImageModelID, cfg.Models.ImageModelID)
	require.Equal(t, "30m0s", cfg.SessionTTL().String())
}

func TestEnvOverridesTablesAndFunctions(t *testing.T) {
	t.Setenv("LABELS_TABLE_NAME", "Labels-dev")
	t.Setenv("PROMPTS_TABLE_NAME", "Prompts-dev")
	t.Setenv("INVOKE_MODE", "lambda")
	for _, key := range []string{"IMAGE_GENERATOR_LAMBDA_ARN", "OUTPAINT_LAMBDA_ARN", "OPTIMIZE_PROMPT_LAMBDA_ARN", "SAVE_PROMPT_LAMBDA_ARN", "ADD_LABEL_LAMBDA_ARN"} {
		t.Setenv(key, "arn:aws:lambda:us-east-1:123456789012:function:"+key)
	}

	cfg, err := Load(writeConfig(t, localYaml))
	require.NoError(t, err)
	require.Equal(t, "Labels-dev", cfg.Store.LabelsTable)
	require.Equal(t, "Prompts-dev", cfg.Store.PromptsTable)
	require.Equal(t, consts.InvokeLambda.String(), cfg.InvokeMode)
	require.Equal(t, "arn:aws:lambda:us-east-1:123456789012:function:OUTPAINT_LAMBDA_ARN", cfg.Functions.ARN(consts.Outpaint))
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "local defaults", mutate: func(c *Config) { c.InvokeMode = "local" }, ok: true},
		{name: "lambda without arns", mutate: func(c *Config) {}, ok: false},
		{name: "unknown store", mutate: func(c *Config) { c.InvokeMode = "local"; c.Store.Supplier = "redis" }, ok: false},
		{name: "unknown label policy", mutate: func(c *Config) { c.InvokeMode = "local"; c.Store.LabelPolicy = "ignore" }, ok: false},
		{name: "bad ttl", mutate: func(c *Config) { c.InvokeMode = "local"; c.Session.TTL = "soon" }, ok: false},
		{name: "bad timeout", mutate: func(c *Config) { c.InvokeMode = "local"; c.RequestTimeout = "" }, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Verify()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestLoadFunctionSkipsArns(t *testing.T) {
	t.Setenv("INVOKE_MODE", "")
	cfg, err := LoadFunction()
	require.NoError(t, err)
	require.Equal(t, consts.InvokeLocal.String(), cfg.InvokeMode)
}
