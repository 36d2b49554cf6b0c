package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "config.yaml"

// Configuration names the external tool expanded PTB tokens are
// forwarded to.
type Configuration struct {
	// Tool is the executable to invoke.
	Tool string `json:"tool" validate:"required"`
	// Args holds fixed arguments placed before any pass-through flags
	// and script tokens, typically a subcommand.
	Args []string `json:"args"`
}

// Command returns the leading argument vector for an invocation.
func (c *Configuration) Command() []string {
	return append([]string{c.Tool}, c.Args...)
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
