// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/kkokgo/masterdb/internal/merger"
)

const (
	// DefaultEnvFile is the optional dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds every path and column name used by the masterdb commands.
type Config struct {
	DataDir    string `env:"MASTERDB_DATA_DIR" envDefault:"src/data"`
	SchoolFile string `env:"MASTERDB_SCHOOL_FILE" envDefault:"highschoolinfo.csv"`
	MajorFile  string `env:"MASTERDB_MAJOR_FILE" envDefault:"all_major_info_merged.csv"`
	OutputFile string `env:"MASTERDB_OUTPUT_FILE" envDefault:"kkokgo_master_db.csv"`
	// XLSXOutputFile enables the spreadsheet export of the merged table when set.
	XLSXOutputFile string `env:"MASTERDB_XLSX_OUTPUT_FILE"`

	AdminCodeColumn    string `env:"MASTERDB_ADMIN_CODE_COLUMN" envDefault:"AdminStandardCode"`
	ProvinceCodeColumn string `env:"MASTERDB_PROVINCE_CODE_COLUMN" envDefault:"ProvinceOfficeCode"`
	SchoolSuffix       string `env:"MASTERDB_SCHOOL_SUFFIX" envDefault:"_school"`

	ClassifySourceFile string `env:"MASTERDB_CLASSIFY_SOURCE_FILE" envDefault:"highschoolinfo.csv"`
	SchoolsJSONFile    string `env:"MASTERDB_SCHOOLS_JSON_FILE" envDefault:"schools.json"`
	// NCSRulesFile replaces the embedded classification rules when set.
	NCSRulesFile     string `env:"MASTERDB_NCS_RULES_FILE"`
	SchoolNameColumn string `env:"MASTERDB_SCHOOL_NAME_COLUMN" envDefault:"SchoolName"`
	SchoolTypeColumn string `env:"MASTERDB_SCHOOL_TYPE_COLUMN" envDefault:"SchoolType"`
	AddressColumn    string `env:"MASTERDB_ADDRESS_COLUMN" envDefault:"Address"`
	HomepageColumn   string `env:"MASTERDB_HOMEPAGE_COLUMN" envDefault:"Homepage"`
}

// Load reads the configuration from the process environment. Values found in the given
// dotenv files fill the variables that are not already set; when no file is given the
// DefaultEnvFile is used. Missing dotenv files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	environment := env.ToMap(os.Environ())
	for _, envFile := range envFiles {
		values, err := godotenv.Read(envFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %s", ErrEnvVariablesNotValid, envFile, err.Error())
		}

		for key, value := range values {
			if _, ok := environment[key]; !ok {
				environment[key] = value
			}
		}
	}

	return parse(environment)
}

func parse(environment map[string]string) (*Config, error) {
	var envVars Config
	if err := env.ParseWithOptions(&envVars, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	required := []struct {
		name  string
		value string
	}{
		{"MASTERDB_DATA_DIR", envVars.DataDir},
		{"MASTERDB_SCHOOL_FILE", envVars.SchoolFile},
		{"MASTERDB_MAJOR_FILE", envVars.MajorFile},
		{"MASTERDB_OUTPUT_FILE", envVars.OutputFile},
		{"MASTERDB_ADMIN_CODE_COLUMN", envVars.AdminCodeColumn},
		{"MASTERDB_PROVINCE_CODE_COLUMN", envVars.ProvinceCodeColumn},
		{"MASTERDB_SCHOOL_SUFFIX", envVars.SchoolSuffix},
		{"MASTERDB_CLASSIFY_SOURCE_FILE", envVars.ClassifySourceFile},
		{"MASTERDB_SCHOOLS_JSON_FILE", envVars.SchoolsJSONFile},
		{"MASTERDB_SCHOOL_NAME_COLUMN", envVars.SchoolNameColumn},
	}
	for _, variable := range required {
		if strings.TrimSpace(variable.value) == "" {
			envError = append(envError, variable.name+" cannot be empty")
		}
	}

	if envVars.AdminCodeColumn == envVars.ProvinceCodeColumn {
		envError = append(envError, "MASTERDB_ADMIN_CODE_COLUMN and MASTERDB_PROVINCE_CODE_COLUMN must be different")
	}

	if envVars.XLSXOutputFile != "" && !strings.EqualFold(filepath.Ext(envVars.XLSXOutputFile), ".xlsx") {
		envError = append(envError, "MASTERDB_XLSX_OUTPUT_FILE must have the .xlsx extension")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// SchoolPath returns the location of the high school directory.
func (c *Config) SchoolPath() string {
	return c.inDataDir(c.SchoolFile)
}

// MajorPath returns the location of the merged major listing.
func (c *Config) MajorPath() string {
	return c.inDataDir(c.MajorFile)
}

// OutputPath returns the location of the master CSV.
func (c *Config) OutputPath() string {
	return c.inDataDir(c.OutputFile)
}

// XLSXOutputPath returns the location of the spreadsheet export, or an empty string when disabled.
func (c *Config) XLSXOutputPath() string {
	if c.XLSXOutputFile == "" {
		return ""
	}

	return c.inDataDir(c.XLSXOutputFile)
}

// ClassifySourcePath returns the location of the CSV read by the classification command.
func (c *Config) ClassifySourcePath() string {
	return c.inDataDir(c.ClassifySourceFile)
}

// SchoolsJSONPath returns the location of the classified schools file.
func (c *Config) SchoolsJSONPath() string {
	return c.inDataDir(c.SchoolsJSONFile)
}

// MergeOptions returns the join options matching the configured columns.
func (c *Config) MergeOptions() merger.Options {
	return merger.Options{
		AdminCodeColumn:    c.AdminCodeColumn,
		ProvinceCodeColumn: c.ProvinceCodeColumn,
		SchoolSuffix:       c.SchoolSuffix,
	}
}

func (c *Config) inDataDir(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.DataDir, name)
}
