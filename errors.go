package nori

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a setting that keeps the stage from being built.
type ConfigError struct {
	Setting string
	Err     error
}

func newConfigError(setting string, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Setting: setting, Err: fmt.Errorf(format, args...)}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: [%s] %v", ErrInvalidConfig, e.Setting, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// AnalysisError is a tokenizer failure. It aborts the current Filter call.
type AnalysisError struct {
	Field string
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze [%s]: %v", e.Field, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
