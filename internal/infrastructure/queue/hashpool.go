package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-api/internal/core/password"
	"github.com/quickcart/commerce-api/internal/metrics"
)

const (
	defaultWorkers = 4
	queueBuffer    = 64
)

type hashJob struct {
	plaintext string
	reply     chan hashResult
}

type hashResult struct {
	digest string
	err    error
}

// HashPool runs bcrypt hashing on a fixed set of workers so a burst of
// registrations queues instead of pinning every scheduler thread on
// CPU-bound work. Verification is cheap enough relative to request volume
// to stay on the calling goroutine.
//
// HashPool implements ports.PasswordHasher.
type HashPool struct {
	jobs    chan hashJob
	workers int
	log     zerolog.Logger
}

// NewHashPool creates a HashPool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewHashPool(numWorkers int, log zerolog.Logger) *HashPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &HashPool{
		jobs:    make(chan hashJob, queueBuffer),
		workers: numWorkers,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *HashPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx, i)
	}
}

// Hash submits plaintext to the pool and waits for the digest. The wait is
// cancellable: a dead client does not hold a worker slot hostage.
func (p *HashPool) Hash(ctx context.Context, plaintext string) (string, error) {
	reply := make(chan hashResult, 1)

	select {
	case p.jobs <- hashJob{plaintext: plaintext, reply: reply}:
		metrics.HashQueueDepth.Set(float64(len(p.jobs)))
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case res := <-reply:
		return res.digest, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Verify delegates straight to bcrypt's constant-time comparison.
func (p *HashPool) Verify(plaintext, digest string) bool {
	return password.Verify(plaintext, digest)
}

func (p *HashPool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			metrics.HashQueueDepth.Set(float64(len(p.jobs)))
			digest, err := password.Hash(job.plaintext)
			if err != nil {
				p.log.Error().Err(err).Int("worker_id", id).Msg("password hashing failed")
			}
			job.reply <- hashResult{digest: digest, err: err}
		}
	}
}
