// Package config loads nl2sql settings from defaults, nl2sql.yaml,
// NL2SQL_ environment variables and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Defaults.
const (
	DefaultSchemaFile  = "relaciones_tablas.txt"
	DefaultQueryFile   = "transcripcion.txt"
	DefaultAudioFile   = "grabacion.wav"
	DefaultOutputFile  = "consulta_para_gestor.txt"
	DefaultSuggestions = 5
	DefaultCutoff      = 0.6
	DefaultGCInterval  = 5 * time.Minute
)

// Interactive modes for resolving corrections.
const (
	InteractiveAuto   = "auto"   // select menu on a terminal, line prompt otherwise
	InteractivePrompt = "prompt" // numbered line prompt
	InteractiveSelect = "select" // huh select menu
	InteractiveNone   = "none"   // keep the original words
)

// Parser rule sets.
const (
	RulesStandard = "standard"
	RulesExtended = "extended" // adds determiner-noun entities
)

// Config holds the settings for a run.
type Config struct {
	SchemaFile         string        `koanf:"schema_file"`
	QueryFile          string        `koanf:"query_file"`
	AudioFile          string        `koanf:"audio_file"`
	OutputFile         string        `koanf:"output_file"`
	StoreDir           string        `koanf:"store_dir"` // empty disables badger persistence
	Suggestions        int           `koanf:"suggestions"`
	Cutoff             float64       `koanf:"cutoff"`
	Interactive        string        `koanf:"interactive"`
	Rules              string        `koanf:"rules"`
	Verbose            bool          `koanf:"verbose"`
	FallbackQuery      string        `koanf:"fallback_query"`
	HistoryTTL         time.Duration `koanf:"history_ttl"`
	GCInterval         time.Duration `koanf:"gc_interval"` // badger value-log GC
	TranscriberCommand string        `koanf:"transcriber_command"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.SchemaFile == "" && c.StoreDir == "" {
		return fmt.Errorf("schema_file or store_dir is required")
	}
	if c.Suggestions < 1 {
		return fmt.Errorf("suggestions must be at least 1, got %d", c.Suggestions)
	}
	if c.Cutoff < 0 || c.Cutoff > 1 {
		return fmt.Errorf("cutoff must be between 0 and 1, got %g", c.Cutoff)
	}
	switch c.Interactive {
	case InteractiveAuto, InteractivePrompt, InteractiveSelect, InteractiveNone:
	default:
		return fmt.Errorf("unknown interactive mode %q (auto|prompt|select|none)", c.Interactive)
	}
	if c.Rules != RulesStandard && c.Rules != RulesExtended {
		return fmt.Errorf("unknown rule set %q (standard|extended)", c.Rules)
	}
	if c.GCInterval <= 0 {
		return fmt.Errorf("gc_interval must be positive")
	}
	if c.HistoryTTL < 0 {
		return fmt.Errorf("history_ttl must not be negative")
	}
	return nil
}
