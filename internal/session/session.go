package session

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jayph/distresscall/internal/call"
	"github.com/jayph/distresscall/internal/commands"
)

type session struct {
	conn    io.ReadWriter
	scanner *bufio.Scanner
	actor   *commands.Actor
	handler CommandExecutor
	msgs    chan []byte
}

func (s *session) run(ctx context.Context) error {
	// Read input lines into a channel so the loop can also react to
	// notifications and shutdown.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		for s.scanner.Scan() {
			inputChan <- s.scanner.Text()
		}
		inputErrChan <- s.scanner.Err()
		close(inputChan)
	}()

	if err := s.writeLine(fmt.Sprintf("Welcome, %s. Type 'help' for commands.", s.actor.Name)); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + renderNotification(msg)); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			if strings.EqualFold(line, "quit") {
				return s.writeLine("Goodbye!")
			}

			out, err := s.handler.Exec(ctx, s.actor, line)
			if err != nil {
				var userErr *commands.UserError
				if !errors.As(err, &userErr) {
					// System error - log and disconnect
					return fmt.Errorf("command execution failed: %w", err)
				}
				out = userErr.Message
			}
			if out != "" {
				if err := s.writeLine(out); err != nil {
					return err
				}
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// renderNotification formats an incoming distress notification for the
// terminal. Payloads that don't parse are shown raw rather than dropped.
func renderNotification(data []byte) string {
	var n call.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return string(data)
	}
	return fmt.Sprintf("%s: %s\nMarker %q at %g, %g, %g",
		n.Sender, n.Message, n.Marker.Label,
		n.Marker.Position.X, n.Marker.Position.Y, n.Marker.Position.Z)
}

func (s *session) prompt() error {
	_, err := s.conn.Write([]byte("> "))
	return err
}

func (s *session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n"))
	return err
}
