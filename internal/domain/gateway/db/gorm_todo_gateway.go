package db

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-todo/internal/domain/entity"
)

// GormTodoGateway stores the collection in an embedded sqlite database.
// Subtasks live in their own table and are removed with their parent.
type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

// NewGormTodoGateway opens (or creates) the sqlite database at path and
// migrates the schema.
func NewGormTodoGateway(path string) (*GormTodoGateway, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(&entity.Todo{}, &entity.Subtask{}); err != nil {
		return nil, err
	}

	return &GormTodoGateway{DB: database}, nil
}

func (gateway *GormTodoGateway) FindAll() ([]entity.Todo, error) {
	var todos []entity.Todo
	err := gateway.DB.
		Preload("Subtasks").
		Order("position DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(id string) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.
		Preload("Subtasks").
		First(&todo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	todo.Position = time.Now().UnixNano()
	if err := gateway.DB.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Update(id string, updated entity.Todo) (*entity.Todo, error) {
	existing, err := gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	updated.ID = id
	updated.Position = existing.Position
	for i := range updated.Subtasks {
		updated.Subtasks[i].TodoID = id
	}

	// Replace the row and its subtask set atomically.
	err = gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&entity.Subtask{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&updated).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (gateway *GormTodoGateway) DeleteByID(id string) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&entity.Subtask{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Todo{}, "id = ?", id).Error
	})
}
