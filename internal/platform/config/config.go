package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix  = "BOTANIST"
	dateLayout = "2006-01-02"
)

type Config struct {
	DataDir    string
	GardenPath string
	BackupDir  string
	ActivePath string
	LockPath   string
	FilePath   string
	Settings   Settings
}

// Settings is the user-editable part, stored in .botanist.yaml and overridable
// through BOTANIST_* environment variables.
type Settings struct {
	MinSessionSeconds   int     `yaml:"min_session_seconds" split_words:"true"`
	BackupRetention     int     `yaml:"backup_retention" split_words:"true"`
	DefaultBreakMinutes int     `yaml:"default_break_minutes" split_words:"true"`
	ObsidianPath        string  `yaml:"obsidian_path,omitempty" split_words:"true"`
	LogLevel            string  `yaml:"log_level" split_words:"true"`
	Flowers             Flowers `yaml:"time_thresholds"`
	Regimes             Regimes `yaml:"regimes"`
	Goals               Goals   `yaml:"goals"`
}

type Flowers struct {
	SeedlingMinutes int `yaml:"seedling_minutes" split_words:"true"`
	BudMinutes      int `yaml:"bud_minutes" split_words:"true"`
	BloomMinutes    int `yaml:"bloom_minutes" split_words:"true"`
	QueenMinutes    int `yaml:"queen_minutes" split_words:"true"`
}

// Regimes describes the two week-numbering conventions used by the weekly report.
type Regimes struct {
	LegacyEpoch   string `yaml:"legacy_epoch" split_words:"true"`
	LegacyOffset  int    `yaml:"legacy_offset" split_words:"true"`
	CurrentEpoch  string `yaml:"current_epoch" split_words:"true"`
	CurrentOffset int    `yaml:"current_offset" split_words:"true"`
	Cutover       string `yaml:"cutover"`
}

type Goals struct {
	WeeklyEnabled        bool `yaml:"weekly_enabled" split_words:"true"`
	WeeklyTargetMinutes  int  `yaml:"weekly_target_minutes" split_words:"true"`
	WeeklyTargetSessions int  `yaml:"weekly_target_sessions" split_words:"true"`
}

func Defaults() Settings {
	return Settings{
		MinSessionSeconds:   30,
		BackupRetention:     30,
		DefaultBreakMinutes: 5,
		LogLevel:            "warn",
		Flowers: Flowers{
			SeedlingMinutes: 25,
			BudMinutes:      45,
			BloomMinutes:    60,
			QueenMinutes:    120,
		},
		Regimes: Regimes{
			LegacyEpoch:   "2025-06-20",
			LegacyOffset:  1,
			CurrentEpoch:  "2025-09-01",
			CurrentOffset: 11,
			Cutover:       "2025-09-01",
		},
		Goals: Goals{
			WeeklyEnabled:        true,
			WeeklyTargetMinutes:  1500,
			WeeklyTargetSessions: 15,
		},
	}
}

// New resolves paths under dataDir and layers defaults, the YAML file and the environment.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:    dataDir,
		GardenPath: filepath.Join(dataDir, ".hiddenGarden.json"),
		BackupDir:  filepath.Join(dataDir, ".botanist_backups"),
		ActivePath: filepath.Join(dataDir, ".hiddenBotanist"),
		LockPath:   filepath.Join(dataDir, ".botanist.lock"),
		FilePath:   filepath.Join(dataDir, ".botanist.yaml"),
		Settings:   Defaults(),
	}
	if err := readFile(cfg.FilePath, &cfg.Settings); err != nil {
		return Config{}, err
	}
	if err := envconfig.Process(envPrefix, &cfg.Settings); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, settings *Settings) error {
	payload, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(payload, settings); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Update applies mutate to the settings stored in the file, ignoring
// environment overrides, and writes them back.
func Update(cfg Config, mutate func(*Settings)) error {
	settings := Defaults()
	if err := readFile(cfg.FilePath, &settings); err != nil {
		return err
	}
	mutate(&settings)
	cfg.Settings = settings
	return Save(cfg)
}

// Save persists the settings back to the YAML file.
func Save(cfg Config) error {
	if err := cfg.Settings.Validate(); err != nil {
		return err
	}
	payload, err := yaml.Marshal(cfg.Settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(cfg.FilePath, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s Settings) Validate() error {
	if s.MinSessionSeconds < 0 {
		return fmt.Errorf("min_session_seconds must be non-negative")
	}
	if s.BackupRetention < 1 {
		return fmt.Errorf("backup_retention must be at least 1")
	}
	f := s.Flowers
	if f.SeedlingMinutes <= 0 || f.BudMinutes <= f.SeedlingMinutes || f.BloomMinutes <= f.BudMinutes || f.QueenMinutes <= f.BloomMinutes {
		return fmt.Errorf("time_thresholds must be positive and strictly increasing")
	}
	if _, _, _, err := s.Regimes.Dates(); err != nil {
		return err
	}
	return nil
}

// Dates parses the regime dates as UTC midnights.
func (r Regimes) Dates() (legacy, current, cutover time.Time, err error) {
	if legacy, err = time.Parse(dateLayout, r.LegacyEpoch); err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("regimes.legacy_epoch: %w", err)
	}
	if current, err = time.Parse(dateLayout, r.CurrentEpoch); err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("regimes.current_epoch: %w", err)
	}
	if cutover, err = time.Parse(dateLayout, r.Cutover); err != nil {
		return time.Time{}, time.Time{}, time.Time{}, fmt.Errorf("regimes.cutover: %w", err)
	}
	return legacy, current, cutover, nil
}
