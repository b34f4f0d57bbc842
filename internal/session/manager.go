package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jayph/distresscall/internal/call"
	"github.com/jayph/distresscall/internal/commands"
	"github.com/jayph/distresscall/internal/world"
)

// PlayerDirectory is the slice of the roster sessions drive: name lookup
// at login, and the online lifecycle.
type PlayerDirectory interface {
	FindCharacter(name string) (string, *world.Character)
	Join(charId string) error
	Leave(charId string)
}

// CommandExecutor runs one line of player input.
type CommandExecutor interface {
	Exec(ctx context.Context, actor *commands.Actor, line string) (string, error)
}

// Subscriber provides the ability to subscribe to message subjects
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Manager runs one command session per connection. Logging in marks the
// character online; disconnecting (however it happens) marks them offline.
type Manager struct {
	roster  PlayerDirectory
	handler CommandExecutor
	sub     Subscriber
}

func NewManager(roster PlayerDirectory, handler CommandExecutor, sub Subscriber) *Manager {
	return &Manager{
		roster:  roster,
		handler: handler,
		sub:     sub,
	}
}

func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	// One scanner for the whole connection: the login prompt and the
	// command loop must not each buffer ahead of the other.
	scanner := bufio.NewScanner(conn)

	id, char, err := m.login(conn, scanner)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	if err := m.roster.Join(id); err != nil {
		if errors.Is(err, world.ErrPlayerExists) {
			_, _ = conn.Write([]byte("You are already connected.\n"))
			return nil
		}
		return fmt.Errorf("joining roster: %w", err)
	}
	defer m.roster.Leave(id)

	msgs := make(chan []byte, 16)
	unsubscribe, err := m.sub.Subscribe(call.PlayerSubject(id), func(data []byte) {
		select {
		case msgs <- data:
		default:
			slog.Warn("dropping notification for slow session", "charId", id)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}
	defer unsubscribe()

	s := &session{
		conn:    conn,
		scanner: scanner,
		actor:   &commands.Actor{Id: id, Name: char.Name},
		handler: m.handler,
		msgs:    msgs,
	}
	return s.run(ctx)
}

func (m *Manager) login(conn io.ReadWriter, scanner *bufio.Scanner) (string, *world.Character, error) {
	name, err := Prompt(conn, scanner, "Character name: ", WithMaxTries(3), WithValidator(
		func(s string) (bool, string) {
			if s == "" {
				return false, "Enter a name.\n"
			}
			_, c := m.roster.FindCharacter(s)
			if c == nil {
				return false, "No such character.\n"
			}
			if !c.Real {
				return false, "Bots cannot log in.\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return "", nil, err
	}

	id, c := m.roster.FindCharacter(name)
	return id, c, nil
}
