package entity

import (
	"strconv"
	"sync"
	"time"
)

// Priority classifies how urgent a todo is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category classifies what area of life a todo belongs to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Status is the completion state of a todo. StatusInProgress is a valid
// stored value but is never produced by the toggle operation.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"userId,omitempty"`
	CategoryID  *int64    `json:"categoryId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	DueDate     *string   `json:"dueDate"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
	Subtasks    []Subtask `json:"subtasks" gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`

	// Position orders the collection newest-first in database-backed
	// stores. It is not part of the wire or blob format.
	Position int64 `json:"-"`
}

// isoMillis is fixed-width so stored timestamps compare correctly as plain
// strings.
const isoMillis = "2006-01-02T15:04:05.000Z"

var (
	idMu     sync.Mutex
	idLatest int64
)

// nextID derives an id from the clock, bumped past the previous one so two
// entities created within the same millisecond never collide.
func nextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= idLatest {
		id = idLatest + 1
	}
	idLatest = id
	return id
}

// NowISO returns the current instant as an ISO-8601 UTC string with
// millisecond precision.
func NowISO() string {
	return time.Now().UTC().Format(isoMillis)
}

// NewTodo builds a well-formed Todo from a partial one: every unset field
// receives its default, the id is generated from the current time when
// absent, and both timestamps are set to now. It never fails; title
// validation is the caller's responsibility.
func NewTodo(partial Todo) Todo {
	timestamp := NowISO()

	todo := partial
	if todo.ID == "" {
		todo.ID = strconv.FormatInt(nextID(), 10)
	}
	if todo.Priority == "" {
		todo.Priority = PriorityMedium
	}
	if todo.Category == "" {
		todo.Category = CategoryPersonal
	}
	if todo.Status == "" {
		todo.Status = StatusTodo
	}
	if todo.Subtasks == nil {
		todo.Subtasks = []Subtask{}
	}
	todo.CreatedAt = timestamp
	todo.UpdatedAt = timestamp

	return todo
}

// Touch refreshes the modification timestamp.
func (t *Todo) Touch() {
	t.UpdatedAt = NowISO()
}
