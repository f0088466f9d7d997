// Package config provides configuration loading and validation for typkat.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/typkat/pkg/content"
	"github.com/Sumatoshi-tech/typkat/pkg/convert"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats.
const (
	FormatJSON    = "json"
	FormatCompact = "compact"
	FormatTree    = "tree"
)

// Config holds all configuration for typkat.
type Config struct {
	Styles    StylesConfig    `mapstructure:"styles"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

// StylesConfig seeds the styles every conversion starts from.
type StylesConfig struct {
	VecDelim   string  `mapstructure:"vec_delim"    validate:"delimiter"`
	MatDelim   string  `mapstructure:"mat_delim"    validate:"delimiter"`
	CasesDelim string  `mapstructure:"cases_delim"  validate:"delimiter"`
	FontSizePt float64 `mapstructure:"font_size_pt" validate:"gt=0"`
}

// OutputConfig controls how converted trees are written.
type OutputConfig struct {
	Format   string `mapstructure:"format"   validate:"oneof=json compact tree"`
	Indent   int    `mapstructure:"indent"   validate:"gte=0,lte=8"`
	Validate bool   `mapstructure:"validate"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds tracing and metrics configuration.
type TelemetryConfig struct {
	ServiceName     string `mapstructure:"service_name"     validate:"required"`
	OTLPEndpoint    string `mapstructure:"otlp_endpoint"`
	OTLPInsecure    bool   `mapstructure:"otlp_insecure"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// BatchConfig controls concurrent conversion of several documents.
type BatchConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=0"`
}

// Styles returns the conversion styles described by the configuration.
func (c StylesConfig) Styles() (convert.Styles, error) {
	vec, err := content.ParseDelimiter(c.VecDelim)
	if err != nil {
		return convert.Styles{}, fmt.Errorf("%w: styles.vec_delim: %w", ErrInvalidConfig, err)
	}

	mat, err := content.ParseDelimiter(c.MatDelim)
	if err != nil {
		return convert.Styles{}, fmt.Errorf("%w: styles.mat_delim: %w", ErrInvalidConfig, err)
	}

	cases, err := content.ParseDelimiter(c.CasesDelim)
	if err != nil {
		return convert.Styles{}, fmt.Errorf("%w: styles.cases_delim: %w", ErrInvalidConfig, err)
	}

	return convert.DefaultStyles().
		WithVecDelim(vec).
		WithMatDelim(mat).
		WithCasesDelim(cases).
		WithFontSize(c.FontSizePt), nil
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches for typkat.yaml; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("typkat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("$HOME/.config/typkat")
	}

	viperCfg.SetEnvPrefix("TYPKAT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := Validate(&config)
	if validateErr != nil {
		return nil, validateErr
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Styles: StylesConfig{
			VecDelim:   DefaultVecDelim,
			MatDelim:   DefaultMatDelim,
			CasesDelim: DefaultCasesDelim,
			FontSizePt: DefaultFontSizePt,
		},
		Output:    OutputConfig{Format: DefaultOutputFormat, Indent: DefaultOutputIndent},
		Logging:   LoggingConfig{Level: DefaultLogLevel, JSON: DefaultLogJSON},
		Telemetry: TelemetryConfig{ServiceName: DefaultServiceName},
		Batch:     BatchConfig{Workers: DefaultBatchWorkers},
	}
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("styles.vec_delim", DefaultVecDelim)
	viperCfg.SetDefault("styles.mat_delim", DefaultMatDelim)
	viperCfg.SetDefault("styles.cases_delim", DefaultCasesDelim)
	viperCfg.SetDefault("styles.font_size_pt", DefaultFontSizePt)

	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.indent", DefaultOutputIndent)
	viperCfg.SetDefault("output.validate", false)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("telemetry.service_name", DefaultServiceName)
	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", false)
	viperCfg.SetDefault("telemetry.metrics_textfile", "")

	viperCfg.SetDefault("batch.workers", DefaultBatchWorkers)
}

// configValidate checks Config struct tags. The "delimiter" tag accepts the
// delimiter names of source documents.
//
//nolint:gochecknoglobals // Validators cache struct metadata and are safe for concurrent use.
var configValidate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("delimiter", func(fl validator.FieldLevel) bool { //nolint:errcheck // Static tag name.
		_, err := content.ParseDelimiter(fl.Field().String())

		return err == nil
	})

	return validate
}

// Validate checks config against its constraints.
func Validate(config *Config) error {
	err := configValidate.Struct(config)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
