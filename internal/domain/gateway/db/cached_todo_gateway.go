package db

import (
	"sync"

	"go-todo/internal/domain/entity"
)

// CachedTodoGateway decorates another gateway with an in-memory snapshot and
// two-phase mutations: each write is applied to the snapshot first, then
// confirmed against the delegate; when the delegate fails, the snapshot is
// rolled back so local and backing state never silently diverge. Reads serve
// from the snapshot after the first load. The mutex covers loaded and
// snapshot; watch mode refreshes the snapshot from one goroutine while the
// reminder job reads it from another.
type CachedTodoGateway struct {
	delegate TodoGateway

	mu       sync.Mutex
	loaded   bool
	snapshot []entity.Todo
}

var _ TodoGateway = (*CachedTodoGateway)(nil)

func NewCachedTodoGateway(delegate TodoGateway) *CachedTodoGateway {
	return &CachedTodoGateway{delegate: delegate}
}

// Refresh discards the snapshot and re-pulls from the delegate.
func (gateway *CachedTodoGateway) Refresh() error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	gateway.loaded = false
	return gateway.ensureLoaded()
}

func (gateway *CachedTodoGateway) FindAll() ([]entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if err := gateway.ensureLoaded(); err != nil {
		return nil, err
	}
	return cloneList(gateway.snapshot), nil
}

func (gateway *CachedTodoGateway) FindByID(id string) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if err := gateway.ensureLoaded(); err != nil {
		return nil, err
	}
	for _, todo := range gateway.snapshot {
		if todo.ID == id {
			found := todo
			return &found, nil
		}
	}
	return nil, nil
}

func (gateway *CachedTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if err := gateway.ensureLoaded(); err != nil {
		return nil, err
	}

	previous := gateway.snapshot
	gateway.snapshot = append([]entity.Todo{todo}, previous...)

	created, err := gateway.delegate.Create(todo)
	if err != nil {
		gateway.snapshot = previous
		return nil, err
	}

	// The backend may normalize fields (server-assigned values); reflect
	// the confirmed entity in the snapshot.
	gateway.snapshot[0] = *created
	return created, nil
}

func (gateway *CachedTodoGateway) Update(id string, updated entity.Todo) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if err := gateway.ensureLoaded(); err != nil {
		return nil, err
	}

	index := -1
	for i, todo := range gateway.snapshot {
		if todo.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrNotFound
	}

	previous := cloneList(gateway.snapshot)
	updated.ID = id
	gateway.snapshot[index] = updated

	confirmed, err := gateway.delegate.Update(id, updated)
	if err != nil {
		gateway.snapshot = previous
		return nil, err
	}

	gateway.snapshot[index] = *confirmed
	return confirmed, nil
}

func (gateway *CachedTodoGateway) DeleteByID(id string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if err := gateway.ensureLoaded(); err != nil {
		return err
	}

	previous := gateway.snapshot
	remaining := make([]entity.Todo, 0, len(previous))
	for _, todo := range previous {
		if todo.ID != id {
			remaining = append(remaining, todo)
		}
	}
	gateway.snapshot = remaining

	if err := gateway.delegate.DeleteByID(id); err != nil {
		gateway.snapshot = previous
		return err
	}
	return nil
}

// ensureLoaded pulls the initial snapshot. Callers must hold mu.
func (gateway *CachedTodoGateway) ensureLoaded() error {
	if gateway.loaded {
		return nil
	}

	list, err := gateway.delegate.FindAll()
	if err != nil {
		return err
	}
	gateway.snapshot = list
	gateway.loaded = true
	return nil
}

// cloneList copies the collection slice. Elements are copied by value;
// mutations always replace whole elements, never edit nested slices in
// place, so this is deep enough for rollback.
func cloneList(list []entity.Todo) []entity.Todo {
	cloned := make([]entity.Todo, len(list))
	copy(cloned, list)
	return cloned
}
