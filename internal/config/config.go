package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	Mode         string
	DatabasePath string
	MediaPath    string
	GRPCAddress  string
	MCPAddress   string
	ParentPID    int
	LogLevel     string
}

// BindFlags registers the daemon's persistent flags on cmd and binds
// them into v, following flag > env > default precedence. Called once
// from the root command's construction.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dataDir := filepath.Join(homeDir, ".whatsapp-bridge")

	flags := cmd.PersistentFlags()
	flags.String("mode", "server", "Run mode: server, interactive, or headless")
	flags.String("db", filepath.Join(dataDir, "whatsapp.db"), "Database file path")
	flags.String("media", filepath.Join(dataDir, "media"), "Media download path")
	flags.String("grpc-port", "127.0.0.1:50051", "gRPC server address")
	flags.String("mcp-port", "127.0.0.1:8080", "MCP SSE server address")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")

	for _, name := range []string{"mode", "db", "media", "grpc-port", "mcp-port", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("WA")
	v.AutomaticEnv()
	// WA_DATABASE_PATH/WA_MEDIA_PATH/WA_GRPC_ADDRESS/WA_MCP_ADDRESS keep the
	// names spec.md documents, which don't match the flag names verbatim.
	_ = v.BindEnv("db", "WA_DATABASE_PATH")
	_ = v.BindEnv("media", "WA_MEDIA_PATH")
	_ = v.BindEnv("grpc-port", "WA_GRPC_ADDRESS")
	_ = v.BindEnv("mcp-port", "WA_MCP_ADDRESS")
	_ = v.BindEnv("log-level", "WA_LOG_LEVEL")

	return nil
}

// Resolve reads the bound flags/env into a Config and ensures the
// directories it names exist. WA_PARENT_PID is env-only: it enables
// the watchdog and has no corresponding flag.
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Mode:         v.GetString("mode"),
		DatabasePath: v.GetString("db"),
		MediaPath:    v.GetString("media"),
		GRPCAddress:  v.GetString("grpc-port"),
		MCPAddress:   v.GetString("mcp-port"),
		LogLevel:     v.GetString("log-level"),
		ParentPID:    parentPID(),
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.MediaPath, 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parentPID() int {
	pid, err := strconv.Atoi(os.Getenv("WA_PARENT_PID"))
	if err != nil {
		return 0
	}
	return pid
}
