package notification

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
)

func (k Kind) IsValid() bool {
	return k == KindEmail || k == KindSMS
}

type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobSent       JobStatus = "sent"
	JobFailed     JobStatus = "failed"
	JobSkipped    JobStatus = "skipped"
)

func (s JobStatus) IsTerminal() bool {
	return s == JobSent || s == JobFailed || s == JobSkipped
}

// Topics identify why a notification was enqueued.
const (
	TopicBookingConfirmationEmail = "booking.confirmation.email"
	TopicBookingAdminNoticeEmail  = "booking.admin_notice.email"
	TopicBookingConfirmationSMS   = "booking.confirmation.sms"
	TopicContactMessageEmail      = "contact.message.email"
)

const DefaultMaxAttempts = 3

var (
	ErrInvalidKind      = errors.New("invalid notification kind")
	ErrMissingRecipient = errors.New("notification recipient is required")
	ErrInvalidPayload   = errors.New("invalid notification payload")
)

// Message is the payload stored in the outbox: where to send, which template, which tokens.
type Message struct {
	To       string `json:"to"`
	Template string `json:"template"`
	Tokens   Tokens `json:"tokens"`
}

func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func DecodeMessage(b []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return Message{}, errors.Join(ErrInvalidPayload, err)
	}
	if strings.TrimSpace(m.To) == "" {
		return Message{}, ErrMissingRecipient
	}
	return m, nil
}

// Job is a notification intent recorded in the outbox.
type Job struct {
	id          uuid.UUID
	kind        Kind
	topic       string
	message     Message
	runAt       time.Time
	attempts    int32
	maxAttempts int32
	status      JobStatus
	lastError   *string
	createdAt   time.Time
}

func NewJob(kind Kind, topic string, msg Message, runAt time.Time, maxAttempts int32) (*Job, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if strings.TrimSpace(msg.To) == "" {
		return nil, ErrMissingRecipient
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Job{
		id:          uuid.New(),
		kind:        kind,
		topic:       topic,
		message:     msg,
		runAt:       runAt.UTC(),
		maxAttempts: maxAttempts,
		status:      JobQueued,
		createdAt:   runAt.UTC(),
	}, nil
}

func ReconstructJob(id uuid.UUID, kind Kind, topic string, msg Message, runAt time.Time, attempts, maxAttempts int32, status JobStatus, lastError *string, createdAt time.Time) *Job {
	return &Job{
		id:          id,
		kind:        kind,
		topic:       topic,
		message:     msg,
		runAt:       runAt,
		attempts:    attempts,
		maxAttempts: maxAttempts,
		status:      status,
		lastError:   lastError,
		createdAt:   createdAt,
	}
}

// CanRetry reports whether another attempt is allowed after the current one failed.
// attempts already counts the attempt in progress.
func (j *Job) CanRetry() bool {
	return j.attempts < j.maxAttempts
}

// NextRunAt backs off linearly with the number of attempts made.
func (j *Job) NextRunAt(now time.Time, backoff time.Duration) time.Time {
	return now.Add(time.Duration(j.attempts) * backoff)
}

func (j *Job) MarkSent(now time.Time) {
	j.status = JobSent
	j.lastError = nil
	j.runAt = now.UTC()
}

func (j *Job) MarkSkipped(reason string, now time.Time) {
	j.status = JobSkipped
	j.lastError = &reason
	j.runAt = now.UTC()
}

// MarkFailed requeues the job with backoff while attempts remain, otherwise it
// becomes terminally failed.
func (j *Job) MarkFailed(cause error, now time.Time, backoff time.Duration) {
	msg := cause.Error()
	j.lastError = &msg
	if j.CanRetry() {
		j.status = JobQueued
		j.runAt = j.NextRunAt(now, backoff).UTC()
		return
	}
	j.status = JobFailed
	j.runAt = now.UTC()
}

func (j *Job) ID() uuid.UUID        { return j.id }
func (j *Job) Kind() Kind           { return j.kind }
func (j *Job) Topic() string        { return j.topic }
func (j *Job) Message() Message     { return j.message }
func (j *Job) RunAt() time.Time     { return j.runAt }
func (j *Job) Attempts() int32      { return j.attempts }
func (j *Job) MaxAttempts() int32   { return j.maxAttempts }
func (j *Job) Status() JobStatus    { return j.status }
func (j *Job) LastError() *string   { return j.lastError }
func (j *Job) CreatedAt() time.Time { return j.createdAt }
