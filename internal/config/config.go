// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/take-home/pkg/paycheck"
	"github.com/iwvelando/take-home/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. TAKEHOME_OUTPUT_FORMAT=csv.
const EnvPrefix = "TAKEHOME"

// Configuration holds all configuration for take-home.
type Configuration struct {
	Profiles []Profile
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, pdf
}

// Living situations collected during onboarding.
const (
	LivingAlone     = "alone"
	LivingRoommates = "roommates"
	LivingFamily    = "family"
)

// ExpenseContext captures what the user told us about their spending.
type ExpenseContext struct {
	LivingSituation string   `yaml:"livingSituation,omitempty" mapstructure:"livingSituation"`
	MajorExpenses   []string `yaml:"majorExpenses,omitempty" mapstructure:"majorExpenses"`
	Goals           []string `yaml:"goals,omitempty" mapstructure:"goals"`
}

// Profile is one user's onboarding answers.
type Profile struct {
	Name               string               `yaml:"name"`
	Active             bool                 `yaml:"active"`
	OnboardingComplete bool                 `yaml:"onboardingComplete,omitempty" mapstructure:"onboardingComplete"`
	Salary             paycheck.SalaryInput `yaml:"salary"`
	Expenses           ExpenseContext       `yaml:"expenses,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r, e.g. an
// uploaded request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ActiveProfiles returns the profiles marked active, in file order.
func (c *Configuration) ActiveProfiles() []Profile {
	var active []Profile
	for _, profile := range c.Profiles {
		if profile.Active {
			active = append(active, profile)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Profiles) == 0 {
		return append(warnings, "No profiles are configured")
	}
	if len(c.ActiveProfiles()) == 0 {
		warnings = append(warnings, "No profiles are active; nothing will be estimated")
	}

	seen := make(map[string]bool)
	for i, profile := range c.Profiles {
		name := profile.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("Profile %s has no name", name))
		} else if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Profile '%s' is defined more than once", name))
		}
		seen[name] = true

		if !profile.Active {
			continue
		}

		for _, warning := range validation.ValidateSalaryInput(profile.Salary) {
			warnings = append(warnings, fmt.Sprintf("Profile '%s': %s", name, warning))
		}

		switch profile.Expenses.LivingSituation {
		case "", LivingAlone, LivingRoommates, LivingFamily:
		default:
			warnings = append(warnings, fmt.Sprintf("Profile '%s': living situation %q is not one of %s, %s, %s",
				name, profile.Expenses.LivingSituation, LivingAlone, LivingRoommates, LivingFamily))
		}
	}

	return warnings
}
