package config

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Rules    []RuleConfig   `yaml:"rules"`
}

// RuleConfig is one cleanup unit as written in the YAML file. It is
// validated and compiled into a sweep.Rule before the sweep starts.
type RuleConfig struct {
	Name             string   `yaml:"name"`
	SearchPath       string   `yaml:"searchPath"`
	MatchPatterns    []string `yaml:"matchPatterns"`    // empty = match all
	ExcludePatterns  []string `yaml:"excludePatterns"`  // empty = exclude none
	KeepDurationDays int      `yaml:"keepDurationDays"` // whole days, >= 0
	ScanDepth        int      `yaml:"scanDepth"`        // 0 = default depth
}

type LoggingConfig struct {
	Level string        `yaml:"level"` // "debug", "info", "warn", "error"
	File  LogFileConfig `yaml:"file"`
}

// LogFileConfig selects an optional rotating log file. When Path is
// empty, log output goes to stderr.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

// ScheduleConfig configures daemon mode. Cron is a five-field cron
// expression; an empty value means daemon mode cannot be used.
type ScheduleConfig struct {
	Cron     string `yaml:"cron"`
	LockFile string `yaml:"lockFile"`
}
