package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DocumentStore keeps a single record in a single JSON file. The distress
// call database is one durable document: every save rewrites the whole
// thing atomically.
type DocumentStore[T ValidatingSpec] struct {
	path string
	id   Identifier

	mu sync.Mutex
}

func NewDocumentStore[T ValidatingSpec](path string, id Identifier) *DocumentStore[T] {
	return &DocumentStore[T]{
		path: path,
		id:   id,
	}
}

// Load reads the document from disk. A missing file is not an error: the
// zero value of T is returned and ok is false so the caller can initialize
// an empty document.
func (s *DocumentStore[T]) Load() (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	jsonData, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("reading document: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return zero, false, fmt.Errorf("unmarshalling document: %w", err)
	}

	err = asset.Validate()
	if err != nil {
		return zero, false, fmt.Errorf("validating document: %w", err)
	}

	return asset.Spec, true, nil
}

func (s *DocumentStore[T]) Save(o T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset := &Asset[T]{
		Version:    1,
		Identifier: s.id,
		Spec:       o,
	}

	jsonData, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	return atomicWrite(s.path, jsonData, 0644)
}
