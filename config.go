package nori

import (
	"fmt"
	"os"
	"sort"

	"github.com/twosom/logstash-filter-nori/morphology"
	"gopkg.in/yaml.v3"
)

const (
	SettingID                 = "id"
	SettingFields             = "fields"
	SettingExtractTags        = "extract_tags"
	SettingUserDictionaryPath = "user_dictionary_path"
	SettingDecompoundMode     = "decompound_mode"
)

// Config is the filter configuration, validated once when the stage is built.
type Config struct {
	ID                 string   `yaml:"id"`
	Fields             []string `yaml:"fields"`               // 형태소 분석을 할 필드
	ExtractTags        []string `yaml:"extract_tags"`         // 추출할 품사 태그. 비어 있으면 아무것도 추출하지 않는다
	UserDictionaryPath string   `yaml:"user_dictionary_path"` // 사용자 사전 경로
	DecompoundMode     string   `yaml:"decompound_mode"`      // none, discard, mixed
}

type Setting struct {
	Name     string
	Required bool
	Default  interface{}
}

// Schema lists the accepted settings.
func Schema() []Setting {
	return []Setting{
		{Name: SettingID},
		{Name: SettingFields, Required: true},
		{Name: SettingExtractTags, Default: []string{}},
		{Name: SettingUserDictionaryPath},
		{Name: SettingDecompoundMode, Default: morphology.DecompoundNone.String()},
	}
}

func defaultConfig() Config {
	return Config{
		ExtractTags:    []string{},
		DecompoundMode: morphology.DecompoundNone.String(),
	}
}

// ParseConfig decodes a generic settings map as handed over by the host
// pipeline. Every value is type checked and unknown settings are rejected.
func ParseConfig(settings map[string]interface{}) (Config, error) {
	cfg := defaultConfig()
	known := make(map[string]struct{})
	for _, s := range Schema() {
		known[s.Name] = struct{}{}
	}
	var unknown []string
	for name := range settings {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Config{}, newConfigError(unknown[0], "unknown setting")
	}

	var err error
	if v, ok := settings[SettingID]; ok && v != nil {
		if cfg.ID, err = stringSetting(SettingID, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := settings[SettingFields]; ok && v != nil {
		if cfg.Fields, err = stringListSetting(SettingFields, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := settings[SettingExtractTags]; ok && v != nil {
		if cfg.ExtractTags, err = stringListSetting(SettingExtractTags, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := settings[SettingUserDictionaryPath]; ok && v != nil {
		if cfg.UserDictionaryPath, err = stringSetting(SettingUserDictionaryPath, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := settings[SettingDecompoundMode]; ok && v != nil {
		if cfg.DecompoundMode, err = stringSetting(SettingDecompoundMode, v); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the settings from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	settings := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return ParseConfig(settings)
}

// Validate checks the settings that do not depend on the tokenizer.
// Tag names are resolved later against the backend's catalog.
func (c Config) Validate() error {
	if len(c.Fields) == 0 {
		return newConfigError(SettingFields, "at least one field is required")
	}
	for i, f := range c.Fields {
		if f == "" {
			return newConfigError(SettingFields, "entry %d is empty", i)
		}
	}
	for i, t := range c.ExtractTags {
		if t == "" {
			return newConfigError(SettingExtractTags, "entry %d is empty", i)
		}
	}
	if _, err := morphology.ParseDecompoundMode(c.DecompoundMode); err != nil {
		return &ConfigError{Setting: SettingDecompoundMode, Err: err}
	}
	return nil
}

func stringSetting(name string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", newConfigError(name, "value must be string, got %T", v)
	}
	return s, nil
}

func stringListSetting(name string, v interface{}) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), nil
	case []interface{}:
		r := make([]string, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, newConfigError(name, "entry %d must be string, got %T", i, e)
			}
			r[i] = s
		}
		return r, nil
	}
	return nil, newConfigError(name, "value must be a list of strings, got %T", v)
}
