package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go-todo/internal/domain/usecase/todo"
	"go-todo/pkg/msg"
)

var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub"},
	Short:   "Manage a task's checklist items",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <todo-id> <title>",
	Short: "Append a checklist item to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskAdd,
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle <todo-id> <subtask-id>",
	Short: "Flip a checklist item's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskToggle,
}

var subtaskEditCmd = &cobra.Command{
	Use:   "edit <todo-id> <subtask-id> <title>",
	Short: "Rename a checklist item",
	Args:  cobra.ExactArgs(3),
	RunE:  runSubtaskEdit,
}

var subtaskDeleteCmd = &cobra.Command{
	Use:   "delete <todo-id> <subtask-id>",
	Short: "Remove a checklist item",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskDelete,
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd, subtaskToggleCmd, subtaskEditCmd, subtaskDeleteCmd)
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
	useCase, err := newTodoUseCase()
	if err != nil {
		return err
	}

	updated, err := useCase.AddSubtask(args[0], args[1])
	if err != nil {
		if err.Error() == msg.GetMessage("subtask.error.empty-title") {
			return nil
		}
		return renderError(err)
	}

	printSubtasks(updated.Subtasks)
	return nil
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
	useCase, subtaskID, err := subtaskArgs(args)
	if err != nil {
		return err
	}

	updated, err := useCase.ToggleSubtask(args[0], subtaskID)
	if err != nil {
		return renderError(err)
	}

	printSubtasks(updated.Subtasks)
	return nil
}

func runSubtaskEdit(cmd *cobra.Command, args []string) error {
	useCase, subtaskID, err := subtaskArgs(args)
	if err != nil {
		return err
	}

	updated, err := useCase.EditSubtask(args[0], subtaskID, args[2])
	if err != nil {
		if err.Error() == msg.GetMessage("subtask.error.empty-title") {
			return nil
		}
		return renderError(err)
	}

	printSubtasks(updated.Subtasks)
	return nil
}

func runSubtaskDelete(cmd *cobra.Command, args []string) error {
	useCase, subtaskID, err := subtaskArgs(args)
	if err != nil {
		return err
	}

	updated, err := useCase.DeleteSubtask(args[0], subtaskID)
	if err != nil {
		return renderError(err)
	}

	printSubtasks(updated.Subtasks)
	return nil
}

func subtaskArgs(args []string) (todo.UseCase, int64, error) {
	useCase, err := newTodoUseCase()
	if err != nil {
		return nil, 0, err
	}
	subtaskID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid subtask id %q", args[1])
	}
	return useCase, subtaskID, nil
}
