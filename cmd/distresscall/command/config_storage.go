package command

import (
	"fmt"
	"os"

	"github.com/jayph/distresscall/internal/registry"
	"github.com/jayph/distresscall/internal/storage"
	"github.com/jayph/distresscall/internal/world"
	"github.com/pixil98/go-errors"
)

// databaseId is the envelope id the registry document is stored under.
const databaseId storage.Identifier = "distress-call"

type StorageConfig struct {
	Characters AssetConfig[*world.Character] `json:"characters"`
	Factions   AssetConfig[*world.Faction]   `json:"factions"`
	Database   DatabaseConfig                `json:"database"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Characters.Validate("characters"))
	el.Add(c.Factions.Validate("factions"))
	el.Add(c.Database.validate())
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}

type DatabaseConfig struct {
	Path string `json:"path"`
}

func (c *DatabaseConfig) validate() error {
	el := errors.NewErrorList()

	// The file itself may not exist yet; the store creates it on first save.
	if c.Path == "" {
		el.Add(fmt.Errorf("database: path is required"))
	}

	return el.Err()
}

func (c *DatabaseConfig) BuildDocumentStore() *storage.DocumentStore[*registry.Database] {
	return storage.NewDocumentStore[*registry.Database](c.Path, databaseId)
}
