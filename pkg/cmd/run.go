package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/project-manager/pkg/log"
	"github.com/klwxsrx/project-manager/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.Job) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run stops every job as soon as any of them returns.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.Job) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.Job) worker.Job {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	_, group := worker.NewFailFastGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(job))
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
