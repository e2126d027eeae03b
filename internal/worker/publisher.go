package worker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pulse/internal/model"
	"pulse/internal/queue"
	"pulse/internal/repository"
)

// Publisher drains due jobs from the scheduler and turns them into posts.
// It is the worker half of deferred publication: the HTTP layer enqueues,
// the Publisher claims and writes.
type Publisher struct {
	scheduler queue.Scheduler
	posts     repository.PostRepository
	users     repository.UserRepository
	logger    *zap.Logger
	interval  time.Duration
	batchSize int
}

// NewPublisher constructs a Publisher polling at the given interval.
func NewPublisher(scheduler queue.Scheduler, posts repository.PostRepository, users repository.UserRepository, logger *zap.Logger, interval time.Duration, batchSize int) *Publisher {
	return &Publisher{
		scheduler: scheduler,
		posts:     posts,
		users:     users,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run polls until the context is cancelled. Jobs that fail stay failed;
// there is no retry, matching the fire-and-forget publication contract.
func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("post publisher started",
		zap.Duration("interval", p.interval),
		zap.Int("batch_size", p.batchSize),
	)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("post publisher stopped")
			return
		default:
		}

		n := p.Drain(ctx)
		if n > 0 {
			p.logger.Info("published scheduled posts", zap.Int("count", n))
		}

		select {
		case <-ctx.Done():
			p.logger.Info("post publisher stopped")
			return
		case <-time.After(p.interval):
		}
	}
}

// Drain claims one batch of due jobs and publishes them, returning the
// number of posts created.
func (p *Publisher) Drain(ctx context.Context) int {
	jobs, err := p.scheduler.Claim(ctx, time.Now(), p.batchSize)
	if err != nil {
		// Claimed jobs are already off the queue, so publish what we got.
		p.logger.Error("claim scheduled posts", zap.Error(err))
	}

	published := 0
	for _, job := range jobs {
		ok, err := p.publish(ctx, job)
		if err != nil {
			p.logger.Error("publish scheduled post",
				zap.String("job_id", job.ID),
				zap.String("author_id", job.AuthorID),
				zap.Error(err),
			)
			continue
		}
		if ok {
			published++
		}
	}
	return published
}

// publish reports whether a post was actually inserted; a dropped job is
// not an error but does not count as published.
func (p *Publisher) publish(ctx context.Context, job queue.Job) (bool, error) {
	// The author may have been deleted since the job was enqueued.
	author, err := p.users.FindByID(ctx, job.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			p.logger.Warn("dropping job for missing author",
				zap.String("job_id", job.ID),
				zap.String("author_id", job.AuthorID),
			)
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC()
	if _, err := p.posts.Create(ctx, &model.Post{
		ID:             uuid.New().String(),
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Content:        job.Content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}); err != nil {
		return false, err
	}
	return true, nil
}
