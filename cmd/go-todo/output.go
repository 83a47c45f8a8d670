package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	doneStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)

	statusStyles = map[entity.Status]lipgloss.Style{
		entity.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		entity.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		entity.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}

	priorityStyles = map[entity.Priority]lipgloss.Style{
		entity.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		entity.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		entity.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

func statusBadge(status entity.Status) string {
	style, ok := statusStyles[status]
	if !ok {
		style = dimStyle
	}
	return style.Render("[" + string(status) + "]")
}

func priorityBadge(priority entity.Priority) string {
	style, ok := priorityStyles[priority]
	if !ok {
		style = dimStyle
	}
	return style.Render(string(priority))
}

func checkbox(done bool) string {
	if done {
		return statusStyles[entity.StatusDone].Render("[x]")
	}
	return "[ ]"
}

func printTodoList(todos []entity.Todo) {
	if len(todos) == 0 {
		fmt.Println(dimStyle.Render("no tasks"))
		return
	}
	for _, task := range todos {
		title := task.Title
		if task.Status == entity.StatusDone {
			title = doneStyle.Render(title)
		}
		line := fmt.Sprintf("%s %s %s %s %s",
			task.ID, statusBadge(task.Status), priorityBadge(task.Priority), title,
			dimStyle.Render("("+string(task.Category)+")"))
		if len(task.Subtasks) > 0 {
			completed := 0
			for _, sub := range task.Subtasks {
				if sub.IsCompleted == entity.CompletionYes {
					completed++
				}
			}
			line += dimStyle.Render(fmt.Sprintf(" %d/%d", completed, len(task.Subtasks)))
		}
		fmt.Println(line)
	}
}

func printTodoDetail(task entity.Todo) {
	fmt.Println(titleStyle.Render(task.Title))
	fmt.Printf("id:       %s\n", task.ID)
	fmt.Printf("status:   %s\n", statusBadge(task.Status))
	fmt.Printf("priority: %s\n", priorityBadge(task.Priority))
	fmt.Printf("category: %s\n", task.Category)
	if task.Description != "" {
		fmt.Printf("desc:     %s\n", task.Description)
	}
	if task.DueDate != nil && *task.DueDate != "" {
		fmt.Printf("due:      %s\n", *task.DueDate)
	}
	fmt.Printf("created:  %s\n", dimStyle.Render(task.CreatedAt))
	fmt.Printf("updated:  %s\n", dimStyle.Render(task.UpdatedAt))
	if len(task.Subtasks) > 0 {
		fmt.Println("subtasks:")
		printSubtasks(task.Subtasks)
	}
}

func printSubtasks(subtasks []entity.Subtask) {
	for _, sub := range subtasks {
		title := sub.Title
		if sub.IsCompleted == entity.CompletionYes {
			title = doneStyle.Render(title)
		}
		fmt.Printf("  %s %d %s\n", checkbox(sub.IsCompleted == entity.CompletionYes), sub.ID, title)
	}
}

func printStats(stats model.Stats) {
	parts := []string{
		fmt.Sprintf("total %d", stats.Total),
		statusStyles[entity.StatusTodo].Render(fmt.Sprintf("todo %d", stats.Todo)),
		statusStyles[entity.StatusInProgress].Render(fmt.Sprintf("inprogress %d", stats.InProgress)),
		statusStyles[entity.StatusDone].Render(fmt.Sprintf("done %d", stats.Done)),
	}
	if stats.Total > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d%% complete", stats.Done*100/stats.Total)))
	}
	fmt.Println(strings.Join(parts, "  "))
}
