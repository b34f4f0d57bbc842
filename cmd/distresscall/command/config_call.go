package command

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CallConfig struct {
	// Enabled gates the mutating commands. Defaults to true when omitted.
	Enabled         *bool  `json:"enabled,omitempty"`
	MessageTemplate string `json:"message_template,omitempty"`
	MarkerColor     string `json:"marker_color,omitempty"`
}

func (c *CallConfig) validate() error {
	el := errors.NewErrorList()

	if c.MarkerColor != "" && !colorPattern.MatchString(c.MarkerColor) {
		el.Add(fmt.Errorf("marker_color must be a #RRGGBB hex color"))
	}

	return el.Err()
}

func (c *CallConfig) enabled() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}
