package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required, non-blank string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional returns the flag value only when it was set explicitly,
// so an empty value can still clear a field
func (p *FlagParser) ParseStringOptional(flagName string) (*string, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return &value, nil
}

// ParseStatus returns the status named by the flag, or nil when it was not set
func (p *FlagParser) ParseStatus(flagName string) (*models.Status, error) {
	raw, err := p.ParseStringOptional(flagName)
	if err != nil || raw == nil {
		return nil, err
	}
	status, err := models.ParseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ParseBool extracts a bool flag
func (p *FlagParser) ParseBool(flagName string) bool {
	value, _ := p.cmd.Flags().GetBool(flagName)
	return value
}

// GetString extracts a string flag, empty when missing
func (p *FlagParser) GetString(flagName string) string {
	value, _ := p.cmd.Flags().GetString(flagName)
	return value
}

// GetStringSlice extracts a string slice flag, nil when missing
func (p *FlagParser) GetStringSlice(flagName string) []string {
	value, _ := p.cmd.Flags().GetStringSlice(flagName)
	return value
}
