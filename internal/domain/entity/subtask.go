package entity

// Completion is the two-valued completion marker of a subtask.
type Completion string

const (
	CompletionYes Completion = "yes"
	CompletionNo  Completion = "no"
)

// Subtask is a checklist item exclusively owned by one Todo. It has no
// lifecycle of its own: deleting the parent deletes its subtasks.
type Subtask struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	TodoID      string     `json:"todoId"`
	Title       string     `json:"title"`
	IsCompleted Completion `json:"isCompleted"`
	CompletedAt *string    `json:"completedAt"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// NewSubtask builds a subtask with a time-derived id, owned by the given
// todo. Title validation is the caller's responsibility.
func NewSubtask(todoID string, title string) Subtask {
	timestamp := NowISO()

	return Subtask{
		ID:          nextID(),
		TodoID:      todoID,
		Title:       title,
		IsCompleted: CompletionNo,
		CompletedAt: nil,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}
}
