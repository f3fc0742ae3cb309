package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
)

// Worker wraps the asynq server plus the cron scheduler that enqueues
// the periodic maintenance tasks.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
}

// Daily schedule: overdue scan first, then notification purge, then the
// expiry sweep. Spread out so they don't contend for the same rows.
var cronEntries = []struct {
	spec string
	task string
}{
	{"0 1 * * *", TaskCreditOverdueScan},
	{"30 1 * * *", TaskNotificationPurge},
	{"0 2 * * *", TaskExpiryScan},
}

func NewWorker(redisAddr string, handlers *Handlers) (*Worker, error) {
	redisOpts := asynq.RedisClientOpt{Addr: redisAddr}

	server := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{QueueDefault: 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCreditOverdueScan, handlers.HandleCreditOverdueScan)
	mux.HandleFunc(TaskNotificationPurge, handlers.HandleNotificationPurge)
	mux.HandleFunc(TaskExpiryScan, handlers.HandleExpiryScan)

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	for _, entry := range cronEntries {
		task := asynq.NewTask(entry.task, nil)
		if _, err := scheduler.Register(entry.spec, task, asynq.Queue(QueueDefault)); err != nil {
			return nil, err
		}
	}

	return &Worker{server: server, mux: mux, scheduler: scheduler}, nil
}

// Run processes jobs until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.scheduler.Start(); err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.server.Run(w.mux)
	}()
	select {
	case <-ctx.Done():
		w.scheduler.Shutdown()
		w.server.Shutdown()
		return ctx.Err()
	case err := <-errCh:
		w.scheduler.Shutdown()
		return err
	}
}
