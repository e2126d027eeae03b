package queue

import (
	"context"
	"time"
)

// Job is a deferred post publication stored in the queue until due.
type Job struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	PublishAt time.Time `json:"publish_at"`
}

// Scheduler stores jobs until their publish time and hands due jobs to a
// single claimer. A claimed job is removed from the queue.
type Scheduler interface {
	Enqueue(ctx context.Context, job Job, at time.Time) error
	Claim(ctx context.Context, now time.Time, limit int) ([]Job, error)
}
