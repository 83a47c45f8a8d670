package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"go-todo/internal/application/schedule"
	"go-todo/internal/domain/usecase/todo"
	"go-todo/pkg/log"
	"go-todo/pkg/resource"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run in the foreground, reminding about due tasks and refreshing the remote snapshot",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	gateway, cache, err := newTodoGateway()
	if err != nil {
		return err
	}

	scheduler, err := schedule.NewWatchScheduler(todo.NewTodoUseCase(gateway), cache)
	if err != nil {
		return err
	}

	dueCron := resource.GetStringOrDefault("app.watch.due-cron", "0 * * * *")
	syncInterval := resource.GetDurationOrDefault("app.watch.sync-interval", 5*time.Minute)
	if err := scheduler.InitWatchScheduleTasks(dueCron, syncInterval); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	scheduler.Stop()
	log.Info("watch mode stopped")
	return nil
}
