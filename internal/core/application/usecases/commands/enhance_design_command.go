package commands

import (
	"errors"
	"strings"

	"printstream/internal/pkg/guard"
)

var (
	ErrEnhanceDesignCommandIsNotConstructed = errors.New(
		"EnhanceDesignCommand must be created via NewEnhanceDesignCommand constructor",
	)
)

// EnhanceDesignCommand represents a request to run a submitted design through
// the external generative enhancement service. The prompt is optional free
// text guiding the enhancement.
type EnhanceDesignCommand struct { //nolint:recvcheck //using for validation
	designDataURI string
	prompt        string

	guard guard.ConstructorGuard
}

// NewEnhanceDesignCommand creates a command to enhance a design.
// Validates that the design payload is a non-empty data URI. The prompt may
// be empty.
func NewEnhanceDesignCommand(designDataURI, prompt string) (EnhanceDesignCommand, error) {
	enhanceCommand := EnhanceDesignCommand{
		prompt: prompt,
		guard:  guard.NewConstructorGuard(),
	}

	if err := enhanceCommand.setDesignDataURI(designDataURI); err != nil {
		return EnhanceDesignCommand{}, err
	}

	return enhanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEnhanceDesignCommandIsNotConstructed if validation fails.
func (c EnhanceDesignCommand) Validate() error {
	return c.guard.Validate(ErrEnhanceDesignCommandIsNotConstructed)
}

// DesignDataURI returns the design payload to enhance.
func (c EnhanceDesignCommand) DesignDataURI() string {
	return c.designDataURI
}

// Prompt returns the optional enhancement instruction.
func (c EnhanceDesignCommand) Prompt() string {
	return c.prompt
}

func (c *EnhanceDesignCommand) setDesignDataURI(designDataURI string) error {
	if designDataURI == "" {
		return ErrDesignDataURIIsRequired
	}
	if !strings.HasPrefix(designDataURI, "data:") {
		return ErrDesignDataURIIsInvalid
	}

	c.designDataURI = designDataURI
	return nil
}
