package db

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go-todo/internal/domain/entity"
	"go-todo/pkg/log"
)

const blobFileName = "todos.json"

// FileTodoGateway persists the whole collection as one JSON blob under a
// fixed file name. Reads never fail: a missing, unreadable or malformed blob
// degrades to an empty collection. Writes are best-effort; a failed write is
// logged and otherwise ignored.
type FileTodoGateway struct {
	path string
}

var _ TodoGateway = (*FileTodoGateway)(nil)

func NewFileTodoGateway(dataDir string) *FileTodoGateway {
	return &FileTodoGateway{path: filepath.Join(dataDir, blobFileName)}
}

func (gateway *FileTodoGateway) FindAll() ([]entity.Todo, error) {
	return gateway.load(), nil
}

func (gateway *FileTodoGateway) FindByID(id string) (*entity.Todo, error) {
	for _, todo := range gateway.load() {
		if todo.ID == id {
			return &todo, nil
		}
	}
	return nil, nil
}

func (gateway *FileTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	list := gateway.load()
	list = append([]entity.Todo{todo}, list...)
	gateway.save(list)
	return &todo, nil
}

func (gateway *FileTodoGateway) Update(id string, updated entity.Todo) (*entity.Todo, error) {
	list := gateway.load()
	for i, todo := range list {
		if todo.ID == id {
			updated.ID = id
			list[i] = updated
			gateway.save(list)
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (gateway *FileTodoGateway) DeleteByID(id string) error {
	list := gateway.load()
	remaining := make([]entity.Todo, 0, len(list))
	for _, todo := range list {
		if todo.ID != id {
			remaining = append(remaining, todo)
		}
	}
	gateway.save(remaining)
	return nil
}

// load reads the blob, degrading to an empty collection on any failure.
func (gateway *FileTodoGateway) load() []entity.Todo {
	raw, err := os.ReadFile(gateway.path)
	if err != nil {
		return []entity.Todo{}
	}

	var list []entity.Todo
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Debugf("discarding malformed todo blob at %s: %v", gateway.path, err)
		return []entity.Todo{}
	}
	if list == nil {
		return []entity.Todo{}
	}
	return list
}

// save replaces the blob. Write failures (missing directory, quota, bad
// permissions) are swallowed after logging: persistence here is best-effort.
func (gateway *FileTodoGateway) save(list []entity.Todo) {
	raw, err := json.Marshal(list)
	if err != nil {
		log.Debugf("failed to serialize todo blob: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(gateway.path), 0o700); err != nil {
		log.Debugf("failed to prepare data directory: %v", err)
		return
	}
	if err := os.WriteFile(gateway.path, raw, 0o600); err != nil {
		log.Debugf("failed to write todo blob: %v", err)
	}
}
