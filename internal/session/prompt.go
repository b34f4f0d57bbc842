package session

import (
	"bufio"
	"fmt"
	"io"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes a prompt and reads one line back, re-asking until the
// validator accepts the input or the try limit is hit. The scanner is shared
// with the rest of the session so buffered input is never lost between
// the prompt and the command loop.
func Prompt(w io.Writer, br *bufio.Scanner, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		_, err := w.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		if !br.Scan() {
			if err := br.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		input := br.Text()

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if _, err := w.Write([]byte(msg)); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}
