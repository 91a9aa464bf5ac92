package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"gopkg.in/yaml.v3"
)

const (
	FileName    = "folderhero.yml"
	EnvFileName = ".env"
)

type Config struct {
	IndentWidth           *int      `yaml:"indentWidth" validate:"required,gte=1,lte=16"`
	DefaultLabel          *string   `yaml:"defaultLabel" validate:"required"`
	ExportDirectory       *string   `yaml:"exportDirectory" validate:"required"`
	WebListen             []*string `yaml:"webListen" validate:"required,len=2"`
	AppName               *string   `yaml:"appName" validate:"required"`
	AppVersion            *string   `yaml:"appVersion"`
	TelemetryUrl          *string   `yaml:"telemetryUrl"`
	TelemetryOrganization *string   `yaml:"telemetryOrganization"`
	MinioEndpoint         *string   `yaml:"minioEndpoint" validate:"omitempty,url"`
	MinioAccessKey        *string   `yaml:"minioAccessKey"`
	MinioSecretKey        *string   `yaml:"minioSecretKey"`
	MinioBucket           *string   `yaml:"minioBucket"`
	MinioPrefix           *string   `yaml:"minioPrefix"`
}

func Default() *Config {
	return &Config{
		IndentWidth:           gut.Ptr(parser.DefaultIndentWidth),
		DefaultLabel:          gut.Ptr(edit.DefaultLabel),
		ExportDirectory:       gut.Ptr("."),
		WebListen:             []*string{gut.Ptr("tcp"), gut.Ptr(":3000")},
		AppName:               gut.Ptr("folderhero"),
		AppVersion:            nil,
		TelemetryUrl:          nil,
		TelemetryOrganization: nil,
		MinioEndpoint:         nil,
		MinioAccessKey:        nil,
		MinioSecretKey:        nil,
		MinioBucket:           nil,
		MinioPrefix:           nil,
	}
}

// New loads folderhero.yml from directory on top of the defaults. A missing
// file is not an error; a .env file next to it is loaded into the process
// environment first so templates can refer to it.
func New(directory string) (*Config, error) {
	// * load env file
	if err := godotenv.Load(filepath.Join(directory, EnvFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load env file: %w", err)
	}

	// * construct default config
	config := Default()

	// * read config file
	bytes, err := os.ReadFile(filepath.Join(directory, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// * parse config
	if err := yaml.Unmarshal(Template(bytes), config); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	// * validate config
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// MinioEnabled reports whether remote export has everything it needs.
func (r *Config) MinioEnabled() bool {
	return r.MinioEndpoint != nil && *r.MinioEndpoint != "" && r.MinioBucket != nil && *r.MinioBucket != ""
}

func (r *Config) GetWebListen() []*string {
	return r.WebListen
}

func (r *Config) GetAppName() *string {
	return r.AppName
}

func (r *Config) GetAppVersion() *string {
	return r.AppVersion
}

func (r *Config) GetTelemetryUrl() *string {
	return r.TelemetryUrl
}

func (r *Config) GetTelemetryOrganization() *string {
	return r.TelemetryOrganization
}

func (r *Config) GetMinioEndpoint() *string {
	return r.MinioEndpoint
}

func (r *Config) GetMinioAccessKey() *string {
	return r.MinioAccessKey
}

func (r *Config) GetMinioSecretKey() *string {
	return r.MinioSecretKey
}
