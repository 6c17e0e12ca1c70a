package catalog

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Catalog. It is safe for concurrent use; the
// mutex serializes conflicting register/remove pairs on the same name.
type Memory struct {
	mu     sync.RWMutex
	models map[string]*Model
}

// NewMemory creates an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{models: make(map[string]*Model)}
}

// Register adds a model under its name.
func (c *Memory) Register(_ context.Context, model *Model, replace bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.models[model.Name]; ok && !replace {
		return exists(model.Name)
	}

	entry := model.Clone()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	c.models[model.Name] = entry
	return nil
}

// Lookup returns the model registered under name.
func (c *Memory) Lookup(_ context.Context, name string) (*Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	model, ok := c.models[name]
	if !ok {
		return nil, notFound(name)
	}
	return model.Clone(), nil
}

// Remove deletes the model registered under name.
func (c *Memory) Remove(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.models[name]; !ok {
		return notFound(name)
	}
	delete(c.models, name)
	return nil
}

// List returns all registered models ordered by name.
func (c *Memory) List(_ context.Context) ([]*Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	models := make([]*Model, 0, len(c.models))
	for _, m := range c.models {
		models = append(models, m.Clone())
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models, nil
}

// Close is a no-op for the in-memory catalog.
func (c *Memory) Close() error {
	return nil
}
