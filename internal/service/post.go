package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pulse/internal/model"
	"pulse/internal/queue"
	"pulse/internal/repository"
)

// timeNow is swapped in tests to pin the scheduling branch.
var timeNow = time.Now

const (
	defaultPageLimit  = 10
	contentPreviewLen = 100
	timeLayout        = "2006-01-02 15:04:05"
)

// PostListFilter narrows the post listing.
type PostListFilter struct {
	MyPosts   bool
	Following bool
	Hashtag   string
	Limit     int
	Offset    int
}

// PostListResult is the service-level DTO for paginated posts.
type PostListResult struct {
	Items []model.Post `json:"data"`
	Total int          `json:"total"`
}

// ScheduleReceipt describes a deferred publication that was queued instead
// of created immediately.
type ScheduleReceipt struct {
	Detail             string  `json:"detail"`
	Status             string  `json:"status"`
	JobID              string  `json:"job_id"`
	ScheduledTimeLocal string  `json:"scheduled_time_local"`
	ScheduledTimeUTC   string  `json:"scheduled_time_utc"`
	CurrentTimeLocal   string  `json:"current_time_local"`
	CurrentTimeUTC     string  `json:"current_time_utc"`
	DelaySeconds       float64 `json:"delay_seconds"`
	DelayMinutes       float64 `json:"delay_minutes"`
	Author             string  `json:"author"`
	ContentPreview     string  `json:"content_preview"`
}

// CreateResult holds either a stored post or a schedule receipt, never both.
type CreateResult struct {
	Post    *model.Post
	Receipt *ScheduleReceipt
}

// PostService defines the post use cases, including deferred publication.
type PostService interface {
	// List returns posts matching the filter, newest first.
	List(ctx context.Context, v Viewer, f PostListFilter) (*PostListResult, error)

	// Create stores the post now, or queues it when scheduledAt is far
	// enough in the future. A scheduledAt at or near the present, including
	// one in the past, creates the post immediately.
	Create(ctx context.Context, v Viewer, content string, scheduledAt *time.Time) (*CreateResult, error)

	// Get returns a single post by ID.
	Get(ctx context.Context, id string) (*model.Post, error)

	// Update replaces the content of the viewer's own post.
	Update(ctx context.Context, v Viewer, id, content string) (*model.Post, error)

	// Delete removes the viewer's own post.
	Delete(ctx context.Context, v Viewer, id string) error
}

type postService struct {
	posts     repository.PostRepository
	users     repository.UserRepository
	scheduler queue.Scheduler
	loc       *time.Location
	minDelay  time.Duration
}

// NewPostService constructs a new PostService. loc is the zone the schedule
// receipt's local times are rendered in; minDelay is the threshold under
// which a scheduled post is simply created immediately.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, scheduler queue.Scheduler, loc *time.Location, minDelay time.Duration) PostService {
	return &postService{posts: posts, users: users, scheduler: scheduler, loc: loc, minDelay: minDelay}
}

func (s *postService) List(ctx context.Context, v Viewer, f PostListFilter) (*PostListResult, error) {
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	filter := repository.PostFilter{Hashtag: strings.TrimPrefix(f.Hashtag, "#")}
	if f.MyPosts {
		filter.AuthorID = v.UserID
	}
	if f.Following {
		filter.FollowedBy = v.UserID
	}

	res, err := s.posts.List(ctx, filter, repository.PageQuery{Limit: f.Limit, Offset: f.Offset})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &PostListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *postService) Create(ctx context.Context, v Viewer, content string, scheduledAt *time.Time) (*CreateResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	author, err := s.users.FindByID(ctx, v.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	if scheduledAt == nil {
		post, err := s.createNow(ctx, author, content)
		if err != nil {
			return nil, err
		}
		return &CreateResult{Post: post}, nil
	}

	when := *scheduledAt
	whenUTC := when.UTC()

	now := timeNow().UTC()
	delay := whenUTC.Sub(now)

	// A timestamp at or near the present, past ones included, is not worth
	// queueing.
	if delay < s.minDelay {
		post, err := s.createNow(ctx, author, content)
		if err != nil {
			return nil, err
		}
		return &CreateResult{Post: post}, nil
	}

	job := queue.Job{
		ID:        uuid.New().String(),
		AuthorID:  author.ID,
		Content:   content,
		PublishAt: whenUTC,
	}
	if err := s.scheduler.Enqueue(ctx, job, whenUTC); err != nil {
		return nil, fmt.Errorf("enqueue post: %w", err)
	}

	preview := content
	if runes := []rune(preview); len(runes) > contentPreviewLen {
		preview = string(runes[:contentPreviewLen]) + "..."
	}

	return &CreateResult{Receipt: &ScheduleReceipt{
		Detail:             fmt.Sprintf("Post scheduled for publication at %s", when.Format(timeLayout)),
		Status:             "scheduled",
		JobID:              job.ID,
		ScheduledTimeLocal: when.In(s.loc).Format(timeLayout),
		ScheduledTimeUTC:   whenUTC.Format(timeLayout),
		CurrentTimeLocal:   now.In(s.loc).Format(timeLayout),
		CurrentTimeUTC:     now.Format(timeLayout),
		DelaySeconds:       delay.Seconds(),
		DelayMinutes:       delay.Minutes(),
		Author:             author.Username,
		ContentPreview:     preview,
	}}, nil
}

func (s *postService) createNow(ctx context.Context, author *model.User, content string) (*model.Post, error) {
	now := timeNow().UTC()
	post, err := s.posts.Create(ctx, &model.Post{
		ID:             uuid.New().String(),
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, v Viewer, id, content string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != v.UserID {
		return nil, ErrForbidden
	}

	post.Content = content
	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

func (s *postService) Delete(ctx context.Context, v Viewer, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != v.UserID {
		return ErrForbidden
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
