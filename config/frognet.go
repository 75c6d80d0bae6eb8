package config

import (
	validator "github.com/go-playground/validator/v10"

	"github.com/frognet/frogctl/config/node"
)

// APIVersion is the current config file syntax version
const APIVersion = "frogctl.frognet.io/v1"

// Metadata defines node config metadata
type Metadata struct {
	Name string `yaml:"name" validate:"required"`
}

// Config describes the frogctl.yaml configuration
type Config struct {
	APIVersion string     `yaml:"apiVersion" validate:"eq=frogctl.frognet.io/v1"`
	Kind       string     `yaml:"kind" validate:"eq=node"`
	Metadata   *Metadata  `yaml:"metadata"`
	Spec       *node.Spec `yaml:"spec"`
}

// UnmarshalYAML sets in some sane defaults when unmarshaling the data from yaml
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	c.Metadata = &Metadata{
		Name: "frognet-node",
	}
	c.Spec = &node.Spec{}

	type config Config
	yc := (*config)(c)

	if err := unmarshal(yc); err != nil {
		return err
	}

	return nil
}

// Validate performs a configuration sanity check
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	return c.Spec.Validate()
}
