package schedule

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/gateway/db"
	"go-todo/internal/domain/usecase/todo"
	"go-todo/pkg/log"
)

// WatchScheduler drives watch mode: a cron-expression reminder for tasks due
// soon and an interval refresh of the cached snapshot. Both run only while
// watch mode is active; nothing in the core engine runs in the background.
type WatchScheduler struct {
	cron      *cron.Cron
	scheduler gocron.Scheduler
	useCase   todo.UseCase
	cache     *db.CachedTodoGateway
}

func NewWatchScheduler(useCase todo.UseCase, cache *db.CachedTodoGateway) (*WatchScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &WatchScheduler{
		cron:      cron.New(),
		scheduler: scheduler,
		useCase:   useCase,
		cache:     cache,
	}, nil
}

// InitWatchScheduleTasks registers and starts both jobs. The due reminder
// runs on cronExpression; the snapshot refresh runs every syncInterval when
// a cache is wired (local-only runs pass nil).
func (scheduler *WatchScheduler) InitWatchScheduleTasks(cronExpression string, syncInterval time.Duration) error {
	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.RemindDueSoon); err != nil {
		return err
	}
	scheduler.cron.Start()

	if scheduler.cache != nil {
		_, err := scheduler.scheduler.NewJob(
			gocron.DurationJob(syncInterval),
			gocron.NewTask(scheduler.RefreshSnapshot),
		)
		if err != nil {
			return err
		}
		scheduler.scheduler.Start()
	}

	log.Infof("watch mode started: reminder cron %q, refresh every %s", cronExpression, syncInterval)
	return nil
}

// RemindDueSoon logs every unfinished task whose due date falls within the
// next 24 hours.
func (scheduler *WatchScheduler) RemindDueSoon() {
	todos, err := scheduler.useCase.List("active", "")
	if err != nil {
		log.Errorf("due reminder failed to load tasks: %v", err)
		return
	}

	now := time.Now()
	horizon := now.Add(24 * time.Hour)
	for _, task := range todos {
		due, ok := parseDueDate(task)
		if !ok {
			continue
		}
		if due.After(now.Add(-24*time.Hour)) && due.Before(horizon) {
			log.Infow("task due soon",
				"id", task.ID,
				"title", task.Title,
				"dueDate", *task.DueDate)
		}
	}
}

// RefreshSnapshot re-pulls the cached collection from its backing store.
func (scheduler *WatchScheduler) RefreshSnapshot() {
	if err := scheduler.cache.Refresh(); err != nil {
		log.Errorf("snapshot refresh failed: %v", err)
		return
	}
	log.Debug("snapshot refreshed")
}

// Stop gracefully stops both schedulers.
func (scheduler *WatchScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
	if scheduler.scheduler != nil {
		_ = scheduler.scheduler.Shutdown()
	}
}

// parseDueDate accepts both the bare date and full timestamp forms a due
// date may be stored in.
func parseDueDate(task entity.Todo) (time.Time, bool) {
	if task.DueDate == nil || *task.DueDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if due, err := time.Parse(layout, *task.DueDate); err == nil {
			return due, true
		}
	}
	return time.Time{}, false
}
