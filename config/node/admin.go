package node

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Admin defines the node administrator account written into frognet.env
type Admin struct {
	User string `yaml:"user,omitempty" default:"frogadmin"`
	// PasswordHash is a crypt(3) style hash. Plaintext passwords are not
	// accepted in the config file.
	PasswordHash string `yaml:"passwordHash,omitempty"`
}

func (a Admin) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.User, validation.Required),
	)
}
