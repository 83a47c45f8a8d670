package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
	"go-todo/internal/session"
	"go-todo/pkg/msg"
)

var (
	addDescription string
	addPriority    string
	addCategory    string
	addDueDate     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

// filterValue binds a status filter to a flag, rejecting unknown names at
// parse time instead of silently treating them as "all".
type filterValue model.Filter

var _ pflag.Value = (*filterValue)(nil)

func (v *filterValue) String() string { return string(*v) }

func (v *filterValue) Type() string { return "filter" }

func (v *filterValue) Set(raw string) error {
	switch model.Filter(raw) {
	case model.FilterAll, model.FilterActive, model.FilterCompleted:
		*v = filterValue(raw)
		return nil
	default:
		return fmt.Errorf("unknown filter %q (expected all, active or completed)", raw)
	}
}

var (
	listFilter   = filterValue(model.FilterAll)
	listCategory string
	listStats    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showPublic bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task with its subtasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between todo and done",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <title>",
	Short: "Rename a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runEdit,
}

var (
	updateTitle    string
	updateDesc     string
	updatePriority string
	updateCategory string
	updateStatus   string
	updateDueDate  string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit any field of a task, including its status",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task and its subtasks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every completed task",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "task description")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority: low, medium or high")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category: work, personal, shopping, health or other")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "due date (YYYY-MM-DD)")

	listCmd.Flags().VarP(&listFilter, "filter", "f", "filter: all, active or completed")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only show one category")
	listCmd.Flags().BoolVar(&listStats, "stats", false, "print collection summary")

	showCmd.Flags().BoolVar(&showPublic, "public", false, "fetch through the unauthenticated public endpoint")

	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateDesc, "desc", "d", "", "new description")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "priority: low, medium or high")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "category: work, personal, shopping, health or other")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "status: todo, inprogress or done")
	updateCmd.Flags().StringVar(&updateDueDate, "due", "", "due date (YYYY-MM-DD), empty clears it")
}

func runAdd(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	var dueDate *string
	if addDueDate != "" {
		dueDate = &addDueDate
	}

	created, err := useCase.Add(model.CreateTodoDTO{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Priority:    entity.Priority(addPriority),
		Category:    entity.Category(addCategory),
		DueDate:     dueDate,
	})
	if err != nil {
		// A blank title is a deliberate no-op, not a user-visible failure.
		if err.Error() == msg.GetMessage("todo.error.empty-title") {
			return nil
		}
		return renderError(err)
	}

	fmt.Printf("added %s  %s\n", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	todos, err := useCase.List(model.Filter(listFilter), entity.Category(listCategory))
	if err != nil {
		return renderError(err)
	}

	printTodoList(todos)

	if listStats {
		stats, err := useCase.Stats()
		if err != nil {
			return renderError(err)
		}
		printStats(stats)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	var task *entity.Todo
	var err error

	if showPublic {
		task, err = newTodoAPIGateway().GetPublic(args[0])
	} else {
		useCase, ucErr := newTodoUseCase()
		if ucErr != nil {
			return ucErr
		}
		task, err = useCase.Get(args[0])
	}
	if err != nil {
		return renderError(err)
	}
	if task == nil {
		// Not-found gets its own view rather than a transient error.
		fmt.Println(msg.GetMessage("todo.error.not-found"))
		return nil
	}

	printTodoDetail(*task)
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	toggled, err := useCase.Toggle(args[0])
	if err != nil {
		return renderError(err)
	}

	fmt.Printf("%s is now %s\n", toggled.ID, toggled.Status)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	updated, err := useCase.EditTitle(args[0], args[1])
	if err != nil {
		if err.Error() == msg.GetMessage("todo.error.empty-title") {
			return nil
		}
		return renderError(err)
	}

	fmt.Printf("renamed %s to %s\n", updated.ID, updated.Title)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	switch entity.Status(updateStatus) {
	case "", entity.StatusTodo, entity.StatusInProgress, entity.StatusDone:
	default:
		return fmt.Errorf("unknown status %q (expected todo, inprogress or done)", updateStatus)
	}

	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	existing, err := useCase.Get(args[0])
	if err != nil {
		return renderError(err)
	}
	if existing == nil {
		fmt.Println(msg.GetMessage("todo.error.not-found"))
		return nil
	}

	// The engine's update is a full-field edit; carry the current values
	// for fields the user did not touch.
	dto := model.UpdateTodoDTO{
		Title:       updateTitle,
		Description: existing.Description,
		Priority:    entity.Priority(updatePriority),
		Category:    entity.Category(updateCategory),
		Status:      entity.Status(updateStatus),
		DueDate:     existing.DueDate,
	}
	if cmd.Flags().Changed("desc") {
		dto.Description = updateDesc
	}
	if cmd.Flags().Changed("due") {
		if updateDueDate == "" {
			dto.DueDate = nil
		} else {
			dto.DueDate = &updateDueDate
		}
	}

	updated, err := useCase.Update(args[0], dto)
	if err != nil {
		return renderError(err)
	}

	printTodoDetail(*updated)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	if err := useCase.Delete(args[0]); err != nil {
		return renderError(err)
	}

	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	removed, err := useCase.ClearCompleted()
	if err != nil {
		return renderError(err)
	}

	fmt.Printf("cleared %d completed task(s)\n", removed)
	return nil
}

// renderError maps session failures to their catalog messages with a login
// hint; everything else passes through untouched.
func renderError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoToken):
		return fmt.Errorf("%s (run: go-todo login)", msg.GetMessage("session.error.missing"))
	case errors.Is(err, session.ErrExpired):
		return fmt.Errorf("%s (run: go-todo login)", msg.GetMessage("session.error.expired"))
	default:
		return err
	}
}
