package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/canalyzer/internal/application"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = "canalyzer"
	envPrefix     = "CANALYZER"

	KeySourceMode     = "source.mode"
	KeySourceDevice   = "source.device"
	KeySourceBaud     = "source.baud"
	KeySleepPause     = "ingest.sleep_pause"
	KeyPollInterval   = "ui.poll_interval"
	KeyColumnWidth    = "ui.column_width"
	KeyIDWidth        = "ui.id_width"
	KeySnapshotFormat = "snapshot.format"
	KeySnapshotOutput = "snapshot.output"
	KeyLogFile        = "log.file"
	KeyLogLevel       = "log.level"

	FlagConfig = "config"
)

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"source":        KeySourceMode,
	"device":        KeySourceDevice,
	"baud":          KeySourceBaud,
	"sleep-pause":   KeySleepPause,
	"poll-interval": KeyPollInterval,
	"column-width":  KeyColumnWidth,
	"id-width":      KeyIDWidth,
	"format":        KeySnapshotFormat,
	"output":        KeySnapshotOutput,
	"log-file":      KeyLogFile,
	"log-level":     KeyLogLevel,
}

// Load resolves settings from defaults, the optional config.toml, a .env
// file, CANALYZER_* environment variables and finally flags, each layer
// overriding the previous one.
func Load(cfg *viper.Viper, flags *pflag.FlagSet) (application.Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	_ = godotenv.Load()

	applyDefaults(cfg)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := bindFlags(cfg, flags); err != nil {
		return application.Settings{}, err
	}

	if err := readConfigFile(cfg, flags); err != nil {
		return application.Settings{}, err
	}

	settings := application.Settings{
		Source: application.SourceSettings{
			Mode:   application.SourceMode(strings.ToLower(cfg.GetString(KeySourceMode))),
			Device: cfg.GetString(KeySourceDevice),
			Baud:   cfg.GetInt(KeySourceBaud),
		},
		Ingest: application.IngestSettings{
			SleepPause: cfg.GetDuration(KeySleepPause),
		},
		UI: application.UISettings{
			PollInterval: cfg.GetDuration(KeyPollInterval),
			ColumnWidth:  cfg.GetInt(KeyColumnWidth),
			IDWidth:      cfg.GetInt(KeyIDWidth),
		},
		Snapshot: application.SnapshotSettings{
			Format: application.SnapshotFormat(strings.ToLower(cfg.GetString(KeySnapshotFormat))),
			Output: cfg.GetString(KeySnapshotOutput),
		},
		Log: application.LogSettings{
			File:  cfg.GetString(KeyLogFile),
			Level: cfg.GetString(KeyLogLevel),
		},
	}

	if err := settings.Validate(); err != nil {
		return application.Settings{}, err
	}

	return settings, nil
}

func applyDefaults(cfg *viper.Viper) {
	defaults := application.DefaultSettings()

	cfg.SetDefault(KeySourceMode, string(defaults.Source.Mode))
	cfg.SetDefault(KeySourceDevice, defaults.Source.Device)
	cfg.SetDefault(KeySourceBaud, defaults.Source.Baud)
	cfg.SetDefault(KeySleepPause, defaults.Ingest.SleepPause)
	cfg.SetDefault(KeyPollInterval, defaults.UI.PollInterval)
	cfg.SetDefault(KeyColumnWidth, defaults.UI.ColumnWidth)
	cfg.SetDefault(KeyIDWidth, defaults.UI.IDWidth)
	cfg.SetDefault(KeySnapshotFormat, string(defaults.Snapshot.Format))
	cfg.SetDefault(KeySnapshotOutput, defaults.Snapshot.Output)
	cfg.SetDefault(KeyLogFile, defaults.Log.File)
	cfg.SetDefault(KeyLogLevel, defaults.Log.Level)
}

func bindFlags(cfg *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := cfg.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}

func readConfigFile(cfg *viper.Viper, flags *pflag.FlagSet) error {
	explicit := ""
	if flags != nil {
		if flag := flags.Lookup(FlagConfig); flag != nil {
			explicit = flag.Value.String()
		}
	}

	if explicit != "" {
		cfg.SetConfigFile(explicit)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", explicit, err)
		}
		return nil
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(dir, configDirName))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}
