// Package tasks runs fire-and-forget work off the request path: immediate
// tasks through a small worker pool and one-shot delayed tasks on top of it.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task = func()

type Scheduler struct {
	log     *zap.Logger
	tasks   chan Task
	workers int

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup // tasks accepted but not yet queued
	running sync.WaitGroup // workers
}

func New(log *zap.Logger, workers, queueSize int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		log:     log.With(zap.String("component", "tasks")),
		tasks:   make(chan Task, queueSize),
		workers: workers,
	}
}

// Run starts the workers. Call it once.
func (s *Scheduler) Run() {
	s.running.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		go func(worker int) {
			defer s.running.Done()
			log := s.log.With(zap.Int("worker", worker))
			for task := range s.tasks {
				s.run(log, task)
			}
		}(i)
	}
}

func (s *Scheduler) run(log *zap.Logger, task Task) {
	defer func() {
		if err := recover(); err != nil {
			log.Error("Task panicked", zap.String("error", fmt.Sprint(err)))
		}
	}()
	task()
}

// Add queues task for the next free worker. It reports false once the
// scheduler is shutting down.
func (s *Scheduler) Add(task Task) bool {
	if !s.accept() {
		return false
	}
	s.tasks <- task
	s.pending.Done()
	return true
}

// After queues task once delay has elapsed. A task accepted before Shutdown
// still runs; Shutdown waits for its timer.
func (s *Scheduler) After(delay time.Duration, task Task) bool {
	if !s.accept() {
		return false
	}
	time.AfterFunc(delay, func() {
		s.tasks <- task
		s.pending.Done()
	})
	return true
}

func (s *Scheduler) accept() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.log.Warn("Task rejected, scheduler is shutting down")
		return false
	}
	s.pending.Add(1)
	return true
}

// Shutdown stops accepting tasks, then waits for every accepted task to run
// or for ctx to expire.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.log.Info("Shutting down background tasks")

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(s.tasks)
		s.running.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("Graceful shutdown timed out, forcing exit", zap.Error(ctx.Err()))
		return ctx.Err()
	case <-done:
		s.log.Info("Background tasks stopped")
		return nil
	}
}
