package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/letsssgooo/quizmaster/internal/console"
	"github.com/letsssgooo/quizmaster/internal/results"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix — префикс переменных окружения (QUIZ_RESULTS_FILE и т.д.).
const EnvPrefix = "QUIZ"

// ErrInvalidConfig возвращается, если значения конфигурации некорректны.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config содержит настройки приложения из флагов, переменных окружения и файла.
type Config struct {
	ResultsFile   string        `mapstructure:"results_file"`   // файл, в который дописываются результаты
	ResultsFormat string        `mapstructure:"results_format"` // text или jsonl
	Pause         time.Duration `mapstructure:"pause"`          // пауза после каждого ответа
	Stars         int           `mapstructure:"stars"`          // звёзд на экран, 0 отключает
	Width         int           `mapstructure:"width"`          // ширина поля для звёзд
	Height        int           `mapstructure:"height"`         // высота поля для звёзд
	NoColor       bool          `mapstructure:"no_color"`       // без цветов
	NoClear       bool          `mapstructure:"no_clear"`       // не очищать экран между вопросами
	LogLevel      string        `mapstructure:"log_level"`      // debug, info, warn или error
}

// Format возвращает нормализованный формат файла с результатами.
// Для невалидного значения возвращает FormatText, Validate его отсекает раньше.
func (c *Config) Format() results.Format {
	f, err := results.ParseFormat(c.ResultsFormat)
	if err != nil {
		return results.FormatText
	}

	return f
}

// SlogLevel возвращает уровень логирования.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Validate проверяет значения конфигурации.
func (c *Config) Validate() error {
	if c.ResultsFile == "" {
		return fmt.Errorf("%w: results file is empty", ErrInvalidConfig)
	}

	if _, err := results.ParseFormat(c.ResultsFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Pause < 0 {
		return fmt.Errorf("%w: pause must not be negative", ErrInvalidConfig)
	}

	if c.Stars < 0 {
		return fmt.Errorf("%w: stars must not be negative", ErrInvalidConfig)
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewFlagSet описывает флаги командной строки.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("results-file", "quiz_results.txt", "file the quiz results are appended to")
	fs.String("results-format", string(results.FormatText), "results file format: text or jsonl")
	fs.Duration("pause", time.Second, "pause after each answer")
	fs.Int("stars", 100, "decorative stars per screen, 0 disables them")
	fs.Int("width", console.DefaultWidth, "star field width")
	fs.Int("height", console.DefaultHeight, "star field height")
	fs.Bool("no-color", false, "disable colored output")
	fs.Bool("no-clear", false, "do not clear the screen between questions")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")

	return fs
}

// Load читает конфигурацию из флагов, переменных окружения и файла.
// Флаги важнее переменных окружения, а те важнее файла.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("quizmaster")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()

	// значения по умолчанию
	v.SetDefault("results_file", "quiz_results.txt")
	v.SetDefault("results_format", string(results.FormatText))
	v.SetDefault("pause", "1s")
	v.SetDefault("stars", 100)
	v.SetDefault("width", console.DefaultWidth)
	v.SetDefault("height", console.DefaultHeight)
	v.SetDefault("no_color", false)
	v.SetDefault("no_clear", false)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"results_file":   "results-file",
		"results_format": "results-format",
		"pause":          "pause",
		"stars":          "stars",
		"width":          "width",
		"height":         "height",
		"no_color":       "no-color",
		"no_clear":       "no-clear",
		"log_level":      "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("cannot bind flag %s: %w", flag, err)
		}
	}

	configFile, _ := fs.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("quizmaster")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// файл конфигурации необязателен, если путь не задан явно
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
