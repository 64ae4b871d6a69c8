package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverYAML  = "yaml"
	StorageDriverMySQL = "mysql"
)

type Config struct {
	Sets        SetsConfig        `mapstructure:"sets"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Study       StudyConfig       `mapstructure:"study"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Scores      ScoresConfig      `mapstructure:"scores"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	Translation TranslationConfig `mapstructure:"translation"`
	Templates   TemplatesConfig   `mapstructure:"templates"`
	Outputs     OutputsConfig     `mapstructure:"outputs"`
}

type SetsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=yaml mysql"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
}

type StudyConfig struct {
	IncorrectAnswerDelay time.Duration `mapstructure:"incorrect_answer_delay" validate:"gte=0"`
	BatchCompleteDelay   time.Duration `mapstructure:"batch_complete_delay" validate:"gte=0"`
}

type PreferencesConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type ScoresConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type SpeechConfig struct {
	// Command is the text-to-speech argv; {voice} and {text} are replaced.
	Command []string `mapstructure:"command" validate:"omitempty,speech_command"`
}

type TranslationConfig struct {
	TranslateBaseURL  string `mapstructure:"translate_base_url" validate:"omitempty,url"`
	DictionaryBaseURL string `mapstructure:"dictionary_base_url" validate:"omitempty,url"`
	RetryAttempts     uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type TemplatesConfig struct {
	SetTemplate string `mapstructure:"set_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory" validate:"required"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *configValidator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := newConfigValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashgrid")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("sets.directory", "sets")
	v.SetDefault("storage.driver", StorageDriverYAML)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "flashgrid")
	v.SetDefault("database.username", "flashgrid")
	v.SetDefault("study.incorrect_answer_delay", 1500*time.Millisecond)
	v.SetDefault("study.batch_complete_delay", 500*time.Millisecond)
	v.SetDefault("preferences.file", filepath.Join("data", "preferences.yml"))
	v.SetDefault("scores.directory", filepath.Join("data", "scores"))
	v.SetDefault("translation.translate_base_url", "https://translate.googleapis.com")
	v.SetDefault("translation.dictionary_base_url", "https://api.dictionaryapi.dev")
	v.SetDefault("translation.retry_attempts", 2)
	// Template is optional - if not specified, the embedded one is used
	v.SetDefault("templates.set_template", "")
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "sets"))

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("storage.driver", "FLASHGRID_STORAGE_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHGRID_STORAGE_DRIVER environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
