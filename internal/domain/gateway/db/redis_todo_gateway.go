package db

import (
	"context"
	"encoding/json"

	"go-todo/internal/domain/entity"
	"go-todo/pkg/log"
	"go-todo/pkg/redis"
)

// blobKey is the fixed key the whole collection is serialized under,
// mirroring the blob format of the file store.
const blobKey = "todos:v1"

// RedisTodoGateway keeps the collection as a single serialized blob under a
// fixed key in Redis. Same degradation policy as the file store: a missing
// or malformed blob reads as empty, failed writes are logged and dropped.
type RedisTodoGateway struct {
	client *redis.Client
	ctx    context.Context
}

var _ TodoGateway = (*RedisTodoGateway)(nil)

func NewRedisTodoGateway(ctx context.Context, client *redis.Client) *RedisTodoGateway {
	return &RedisTodoGateway{client: client, ctx: ctx}
}

func (gateway *RedisTodoGateway) FindAll() ([]entity.Todo, error) {
	return gateway.load(), nil
}

func (gateway *RedisTodoGateway) FindByID(id string) (*entity.Todo, error) {
	for _, todo := range gateway.load() {
		if todo.ID == id {
			return &todo, nil
		}
	}
	return nil, nil
}

func (gateway *RedisTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	list := append([]entity.Todo{todo}, gateway.load()...)
	gateway.save(list)
	return &todo, nil
}

func (gateway *RedisTodoGateway) Update(id string, updated entity.Todo) (*entity.Todo, error) {
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

func (gateway *RedisTodoGateway) DeleteByID(id string) error {
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

func (gateway *RedisTodoGateway) load() []entity.Todo {
	raw, err := gateway.client.GetBlob(gateway.ctx, blobKey)
	if err != nil || len(raw) == 0 {
		return []entity.Todo{}
	}

	var list []entity.Todo
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Debugf("discarding malformed todo blob under %s: %v", blobKey, err)
		return []entity.Todo{}
	}
	if list == nil {
		return []entity.Todo{}
	}
	return list
}

func (gateway *RedisTodoGateway) save(list []entity.Todo) {
	raw, err := json.Marshal(list)
	if err != nil {
		log.Debugf("failed to serialize todo blob: %v", err)
		return
	}
	if err := gateway.client.SetBlob(gateway.ctx, blobKey, raw); err != nil {
		log.Debugf("failed to write todo blob to redis: %v", err)
	}
}
