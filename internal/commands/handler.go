package commands

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jayph/distresscall/internal/call"
	"github.com/jayph/distresscall/internal/registry"
	"github.com/jayph/distresscall/internal/world"
)

const disabledMessage = "This command is currently disabled"

// Actor is the player invoking a command.
type Actor struct {
	Id   string
	Name string
}

// GroupRegistry is the slice of the registry the command surface uses.
type GroupRegistry interface {
	FindPlayer(name string) *registry.PlayerEntry
	FindGroup(playerName, groupName string) *registry.GroupEntry
	AddGroup(playerName, groupName string, createPlayer bool) bool
	RemoveGroup(playerName, groupName string)
	AddMember(playerName, groupName, entityName string) registry.AddMemberStatus
	RemoveMember(playerName, groupName string, ref registry.MemberRef)
}

// RecipientResolver resolves a group into its online recipients.
type RecipientResolver interface {
	Resolve(playerName, groupName string) ([]call.Recipient, bool)
}

// Notifier delivers a distress notification to resolved recipients.
type Notifier interface {
	Dispatch(ctx context.Context, sender, group string, pos world.Position, recipients []call.Recipient)
}

// RosterInfo is the slice of the live roster the command surface uses.
type RosterInfo interface {
	Position(charId string) world.Position
	SetPosition(charId string, pos world.Position) error
	ForEachOnline(fn func(charId string, ps *world.PlayerState))
}

// Handler routes one line of player input to the matching operation.
// A single global toggle gates everything except read-only listing.
type Handler struct {
	reg      GroupRegistry
	resolver RecipientResolver
	notifier Notifier
	roster   RosterInfo
	enabled  atomic.Bool
}

func NewHandler(reg GroupRegistry, resolver RecipientResolver, notifier Notifier, roster RosterInfo, enabled bool) *Handler {
	h := &Handler{
		reg:      reg,
		resolver: resolver,
		notifier: notifier,
		roster:   roster,
	}
	h.enabled.Store(enabled)
	return h
}

func (h *Handler) Enabled() bool {
	return h.enabled.Load()
}

func (h *Handler) SetEnabled(v bool) {
	h.enabled.Store(v)
}

// Exec parses and runs one command line. User-level failures come back as
// *UserError; anything else is a system error the session should treat as
// fatal for the command, never for the process.
func (h *Handler) Exec(ctx context.Context, actor *Actor, line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	// list and who stay available while the rest of the surface is off
	switch cmd {
	case "list":
		return h.list(actor, args)
	case "who":
		return h.who(), nil
	case "help":
		return h.help(), nil
	}

	if !h.Enabled() {
		return "", NewUserError(disabledMessage)
	}

	switch cmd {
	case "addgroup":
		return h.addGroup(actor, args)
	case "delgroup":
		return h.deleteGroup(actor, args)
	case "add":
		return h.addMember(actor, args)
	case "delete":
		return h.deleteMember(actor, args)
	case "call":
		return h.call(ctx, actor, args)
	case "setpos":
		return h.setPosition(actor, args)
	default:
		return "", NewUserError(fmt.Sprintf("Unknown command: %s", cmd))
	}
}

func (h *Handler) help() string {
	return strings.TrimSpace(`
Distress call commands:
  addgroup <group>             create a call group ('Friendly' and 'Neutral' are predefined)
  delgroup <group>             delete a call group
  add <player|faction> <group> add a player or faction (by name or tag) to a group
  delete [faction|person] <member> <group>
                               remove a member from a group
  call <group>                 send a distress notification to everyone online in the group
  list [group]                 show your groups, or one group's members
  setpos <x> <y> <z>           update your reported position
  who                          show who is online
  quit                         disconnect
`)
}
