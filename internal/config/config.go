// Package config holds the settings shared by the CLI and the HTTP server.
// Values come from defaults, an optional seqmatch.yaml, SEQMATCH_* environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/output"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SEQMATCH"

// FileName is the config file name searched for without an extension.
const FileName = "seqmatch"

// MatchConfig are the settings of the match command.
type MatchConfig struct {
	// LD or HD
	Method string `mapstructure:"method" yaml:"method"`
	// maximum gate distance; negative disables filtering
	MaxDistance int `mapstructure:"nm" yaml:"nm"`
	// skip the reverse complement of B
	NoRevComp bool `mapstructure:"norc" yaml:"norc"`
	// none, global or local
	Align  string `mapstructure:"aln" yaml:"aln"`
	NoLD   bool   `mapstructure:"no-ld" yaml:"no-ld"`
	NoJWD  bool   `mapstructure:"no-jwd" yaml:"no-jwd"`
	OutFmt string `mapstructure:"outfmt" yaml:"outfmt"`
}

// ScoringConfig are the alignment scores. With Nucleotide set, IUPAC pairs
// are scored from the NUC.4.4 table and Match/Mismatch apply to the rest.
type ScoringConfig struct {
	Match      int  `mapstructure:"match" yaml:"match"`
	Mismatch   int  `mapstructure:"mismatch" yaml:"mismatch"`
	GapOpen    int  `mapstructure:"gap-open" yaml:"gap-open"`
	GapExtend  int  `mapstructure:"gap-extend" yaml:"gap-extend"`
	Nucleotide bool `mapstructure:"nucleotide" yaml:"nucleotide"`
}

// ServerConfig are the HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout" yaml:"read-timeout"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout" yaml:"write-timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle-timeout" yaml:"idle-timeout"`
	RequestTimeout  time.Duration `mapstructure:"request-timeout" yaml:"request-timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" yaml:"shutdown-timeout"`
	// largest accepted request body in bytes
	MaxBodyBytes int64 `mapstructure:"max-body-bytes" yaml:"max-body-bytes"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config is the root settings struct.
type Config struct {
	LogLevel string        `mapstructure:"log-level" yaml:"log-level"`
	Match    MatchConfig   `mapstructure:"match" yaml:"match"`
	Scoring  ScoringConfig `mapstructure:"scoring" yaml:"scoring"`
	Server   ServerConfig  `mapstructure:"server" yaml:"server"`
}

// Default returns the built-in settings.
func Default() *Config {
	nuc := alignment.NUC44()
	return &Config{
		LogLevel: "info",
		Match: MatchConfig{
			Method:      "LD",
			MaxDistance: -1,
			Align:       "global",
			OutFmt:      "tab",
		},
		Scoring: ScoringConfig{
			Match:      nuc.MatchScore,
			Mismatch:   nuc.MismatchPenalty,
			GapOpen:    nuc.GapOpenPenalty,
			GapExtend:  nuc.GapExtendPenalty,
			Nucleotide: true,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			MaxBodyBytes:    8 << 20,
		},
	}
}

// SetDefaults registers Default() on v so that every key is known to viper,
// which AutomaticEnv needs to resolve environment variables on Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log-level", d.LogLevel)

	v.SetDefault("match.method", d.Match.Method)
	v.SetDefault("match.nm", d.Match.MaxDistance)
	v.SetDefault("match.norc", d.Match.NoRevComp)
	v.SetDefault("match.aln", d.Match.Align)
	v.SetDefault("match.no-ld", d.Match.NoLD)
	v.SetDefault("match.no-jwd", d.Match.NoJWD)
	v.SetDefault("match.outfmt", d.Match.OutFmt)

	v.SetDefault("scoring.match", d.Scoring.Match)
	v.SetDefault("scoring.mismatch", d.Scoring.Mismatch)
	v.SetDefault("scoring.gap-open", d.Scoring.GapOpen)
	v.SetDefault("scoring.gap-extend", d.Scoring.GapExtend)
	v.SetDefault("scoring.nucleotide", d.Scoring.Nucleotide)

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read-timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write-timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle-timeout", d.Server.IdleTimeout)
	v.SetDefault("server.request-timeout", d.Server.RequestTimeout)
	v.SetDefault("server.shutdown-timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max-body-bytes", d.Server.MaxBodyBytes)
}

// NewViper returns a viper instance with defaults and environment binding.
// When configFile is empty, seqmatch.yaml is looked up in the working
// directory and $HOME/.config/seqmatch; a missing file there is not an error.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/seqmatch")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks enumerated values and scores.
func (c *Config) Validate() error {
	if _, err := c.MatchOptions(); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if _, err := output.ParseFormat(c.Match.OutFmt); err != nil {
		return fmt.Errorf("match: %w", err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server: invalid port %d", c.Server.Port)
	}
	return nil
}

// ScoringMatrix builds the alignment scores.
func (s ScoringConfig) ScoringMatrix() (*alignment.ScoringMatrix, error) {
	m, err := alignment.NewScoringMatrix(s.Match, s.Mismatch, s.GapOpen, s.GapExtend)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}
	m.Nucleotide = s.Nucleotide
	return m, nil
}

// MatchOptions converts the match and scoring settings for the evaluator.
func (c *Config) MatchOptions() (match.Options, error) {
	method, err := match.ParseFilterMethod(c.Match.Method)
	if err != nil {
		return match.Options{}, err
	}
	mode, err := match.ParseAlignMode(c.Match.Align)
	if err != nil {
		return match.Options{}, err
	}
	scoring, err := c.Scoring.ScoringMatrix()
	if err != nil {
		return match.Options{}, err
	}

	opts := match.Options{
		Filter:          method,
		MaxDistance:     match.MaxDistance(c.Match.MaxDistance),
		SkipLevenshtein: c.Match.NoLD,
		SkipJaroWinkler: c.Match.NoJWD,
		Align:           mode,
		Scoring:         scoring,
	}
	return opts, opts.Validate()
}

// OutputFormat returns the configured output format.
func (c *Config) OutputFormat() (output.Format, error) {
	return output.ParseFormat(c.Match.OutFmt)
}

// WriteDefault writes Default() as YAML, suitable as a starter seqmatch.yaml.
func WriteDefault(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return err
	}
	return enc.Close()
}
