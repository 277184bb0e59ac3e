package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/hireloop/reconcileworker/internal/database"
	"github.com/hireloop/reconcileworker/internal/reconcile"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
}

// ReconcileJob is the queue message requesting one reconciliation pass over a
// job's uploaded resumes and spreadsheets.
type ReconcileJob struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
}

// CandidateEntry is one persisted candidate: the merged record plus the
// resume preview snippet shown in the recruiter-facing view.
type CandidateEntry struct {
	reconcile.CandidateRecord
	PreviewSnippet string `json:"preview_snippet,omitempty"`
}

// ReconcileReport is the payload persisted per job.
type ReconcileReport struct {
	JobID      uuid.UUID            `json:"job_id"`
	Candidates []CandidateEntry     `json:"candidates"`
	Stats      reconcile.MatchStats `json:"stats"`
	CreatedAt  time.Time            `json:"created_at"`
}
