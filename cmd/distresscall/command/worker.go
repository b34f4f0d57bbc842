package command

import (
	"fmt"

	"github.com/jayph/distresscall/internal/call"
	"github.com/jayph/distresscall/internal/commands"
	"github.com/jayph/distresscall/internal/listener"
	"github.com/jayph/distresscall/internal/registry"
	"github.com/jayph/distresscall/internal/session"
	"github.com/jayph/distresscall/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Message bus for delivering notifications to sessions
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// World state
	chars, err := cfg.Storage.Characters.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating character store: %w", err)
	}
	factions, err := cfg.Storage.Factions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating faction store: %w", err)
	}
	roster := world.NewRoster(chars, factions)

	// Distress call registry and pipeline
	reg, err := registry.NewRegistry(cfg.Storage.Database.BuildDocumentStore(), roster, roster)
	if err != nil {
		return nil, fmt.Errorf("creating call group registry: %w", err)
	}
	resolver := call.NewResolver(reg, roster)
	dispatcher, err := call.NewDispatcher(natsServer, cfg.Call.MessageTemplate, cfg.Call.MarkerColor)
	if err != nil {
		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}

	// Command handling and player sessions
	handler := commands.NewHandler(reg, resolver, dispatcher, roster, cfg.Call.enabled())
	sessionManager := session.NewManager(roster, handler, natsServer)
	connectionManager := listener.NewConnectionManager(sessionManager)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connectionManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	return service.WorkerList{
		"nats":      natsServer,
		"listeners": &listeners,
	}, nil
}
