package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(envTagName)
	})
	return validate
}

// envTagName names a field by its env key so errors match what operators set
func envTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
	if name == "" {
		return fld.Name
	}
	return name
}

// Validate checks struct tags and reports every failing field by its env name
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fmt.Sprintf(ErrFmtInvalidField, e.Field(), e.Tag()))
	}
	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// Warnings returns non-fatal issues, like example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExamplePass)
	}
	if c.SessionSecret == ExampleSessionSecret {
		warnings = append(warnings, WarnMsgExampleSecret)
	}
	if c.DevMode && c.Environment != EnvironmentDev {
		warnings = append(warnings, WarnMsgDevMode)
	}
	if c.RollCooldown != FixedRollCooldown && !c.cooldownOverridable() {
		warnings = append(warnings, fmt.Sprintf(WarnFmtRollCooldown, c.RollCooldown, c.Environment, FixedRollCooldown))
	}
	return warnings
}
