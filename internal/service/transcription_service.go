package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrJobNotFound = errors.New("transcription job not found")

// Job states
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusError      = "error"
)

const (
	jobKeyPrefix = "transcribe:job:"

	// How long a finished result stays readable before redis reclaims it.
	resultTTL = 24 * time.Hour

	// BRPOP timeout; the worker wakes up this often to check for shutdown.
	popTimeout = 5 * time.Second
)

// Transcriber extracts text from an audio file. The actual speech engine
// lives outside this service and is injected by the host.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string) (string, error)
}

// TranscriptionJob is the payload pushed onto the work queue.
type TranscriptionJob struct {
	JobID      string    `json:"job_id"`
	Filename   string    `json:"filename"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// TranscriptionResult is the queryable state of a job.
type TranscriptionResult struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
}

// TranscriptionService queues audio files for speech-to-text processing and
// tracks job results in redis.
type TranscriptionService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	queueKey    string
}

func NewTranscriptionService(redisClient *redis.Client, log *logrus.Logger, queueKey string) *TranscriptionService {
	return &TranscriptionService{
		redisClient: redisClient,
		log:         log,
		queueKey:    queueKey,
	}
}

// Enqueue registers a job for the given audio file and returns its id.
func (s *TranscriptionService) Enqueue(ctx context.Context, filename string) (string, error) {
	job := TranscriptionJob{
		JobID:      uuid.NewString(),
		Filename:   filename,
		EnqueuedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return "", err
	}

	if err := s.redisClient.HSet(ctx, jobKeyPrefix+job.JobID,
		"status", StatusPending,
		"filename", filename,
	).Err(); err != nil {
		s.log.Warnf("Failed to record job status: %+v", err)
		return "", err
	}

	if err := s.redisClient.LPush(ctx, s.queueKey, payload).Err(); err != nil {
		s.log.Warnf("Failed to enqueue job: %+v", err)
		return "", err
	}

	return job.JobID, nil
}

// Result reports the current status of a job, including extracted text once
// the job is done.
func (s *TranscriptionService) Result(ctx context.Context, jobID string) (*TranscriptionResult, error) {
	fields, err := s.redisClient.HGetAll(ctx, jobKeyPrefix+jobID).Result()
	if err != nil {
		s.log.Warnf("Failed to read job status: %+v", err)
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrJobNotFound
	}

	return &TranscriptionResult{
		JobID:  jobID,
		Status: fields["status"],
		Text:   fields["text"],
		Error:  fields["error"],
	}, nil
}

// RunWorker consumes queued jobs until the context is cancelled, running
// each through the given transcriber and persisting the outcome.
func (s *TranscriptionService) RunWorker(ctx context.Context, transcriber Transcriber) {
	s.log.Infof("Transcription worker started on queue %s", s.queueKey)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Transcription worker stopped")
			return
		default:
		}

		values, err := s.redisClient.BRPop(ctx, popTimeout, s.queueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			s.log.Warnf("Failed to pop job: %+v", err)
			continue
		}

		// BRPOP returns the queue key followed by the payload.
		var job TranscriptionJob
		if err := json.Unmarshal([]byte(values[1]), &job); err != nil {
			s.log.Warnf("Failed to decode job payload: %+v", err)
			continue
		}

		s.process(ctx, transcriber, job)
	}
}

func (s *TranscriptionService) process(ctx context.Context, transcriber Transcriber, job TranscriptionJob) {
	jobKey := jobKeyPrefix + job.JobID

	if err := s.redisClient.HSet(ctx, jobKey, "status", StatusProcessing).Err(); err != nil {
		s.log.Warnf("Failed to mark job processing: %+v", err)
	}

	text, err := transcriber.Transcribe(ctx, job.Filename)
	if err != nil {
		s.log.Warnf("Transcription failed for %s: %+v", job.Filename, err)
		s.redisClient.HSet(ctx, jobKey, "status", StatusError, "error", err.Error())
	} else {
		s.redisClient.HSet(ctx, jobKey, "status", StatusDone, "text", text)
	}

	s.redisClient.Expire(ctx, jobKey, resultTTL)
}
