package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/hireloop/reconcileworker/internal/database"
	"github.com/hireloop/reconcileworker/internal/filestore"
	"github.com/hireloop/reconcileworker/internal/reconcile"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// runReconciliation runs one full pass for a job: list the job's files, match
// resumes against spreadsheet rows, attach resume preview snippets, and
// persist the report. A listing failure fails the job; per-file fetch, parse
// and preview failures are isolated and the pass continues.
func runReconciliation(job ReconcileJob, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})
	store := filestore.New(workerConfig.DB, awsClient, workerConfig.R2.Bucket, job.ID)

	engine := reconcile.NewEngine(store)
	result, err := engine.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation failed for job %v: %w", job.ID, err)
	}

	// Resume rows carry the mime types the engine never needs.
	resumes, err := workerConfig.DB.GetResumesByJob(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for job %v: %w", job.ID, err)
	}
	mimeByID := make(map[string]string, len(resumes))
	for _, r := range resumes {
		mimeByID[r.ID.String()] = r.Mime
	}

	report := ReconcileReport{
		JobID:     job.ID,
		Stats:     result.Stats,
		CreatedAt: time.Now(),
	}
	for _, rec := range result.Records {
		entry := CandidateEntry{CandidateRecord: rec}

		// Preview snippets are best effort: a resume that cannot be
		// downloaded or parsed still gets its merged record. The store
		// learned the resumes' object keys during the pass's listings.
		fileBytes, err := retry(3, func() ([]byte, error) {
			return store.FetchBytes(ctx, rec.SourceResumeID)
		})
		if err != nil {
			log.Printf("preview download failed for resume %v after retries: %v", rec.SourceResumeID, err)
		} else {
			text, err := ExtractPreviewText(mimeByID[rec.SourceResumeID.String()], fileBytes)
			if err != nil {
				log.Printf("preview extraction failed for resume %v: %v", rec.SourceResumeID, err)
			} else {
				entry.PreviewSnippet = text
			}
		}
		report.Candidates = append(report.Candidates, entry)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal reconciliation report: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateReconciliationResults(ctx, database.CreateOrUpdateReconciliationResultsParams{
			Report: reportJSON,
			JobID:  job.ID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save reconciliation report after retries: %w", err)
	}

	log.Printf("job %v reconciled: %d/%d matched (%d%%)", job.ID, result.Stats.Matched, result.Stats.Total, result.Stats.MatchRatePercent)
	return nil
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"reconcile_jobs", // queue name
		true,             // durable (survives broker restarts)
		false,            // auto-delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"reconcile_jobs", // queue name
		"",               // consumer tag
		true,             // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		// Unmarshal the body
		job := ReconcileJob{}
		err = json.Unmarshal(msg.Body, &job)

		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			// update job status as failed
			workerConfig.DB.UpdateJobStatus(context.Background(), database.UpdateJobStatusParams{
				Status: "failed",
				ID:     job.ID,
			})
			update := map[string]any{
				"job_id":    job.ID,
				"status":    "failed",
				"message":   "reconciliation failed",
				"timestamp": time.Now(),
			}
			err := publishJobUpdate(workerConfig.RabbitConn, job.ID.String(), update)
			if err != nil {
				log.Println("failed to publish update:", err)
			}

			continue
		}
		log.Printf("Worker %d processing job. job_id: %s", id+1, job.ID)

		update := map[string]any{
			"job_id":    job.ID,
			"status":    "processing",
			"message":   "reconciliation started",
			"timestamp": time.Now(),
		}
		err := publishJobUpdate(workerConfig.RabbitConn, job.ID.String(), update)
		if err != nil {
			log.Println("failed to publish update:", err)
		}
		workerConfig.DB.UpdateJobStatus(context.Background(), database.UpdateJobStatusParams{
			Status: "processing",
			ID:     job.ID,
		})

		err = runReconciliation(job, workerConfig)

		if err != nil {
			log.Printf("error reconciling job_id: %v. err: %v", job.ID, err)

			// update job status as failed
			workerConfig.DB.UpdateJobStatus(context.Background(), database.UpdateJobStatusParams{
				Status: "failed",
				ID:     job.ID,
			})
			update := map[string]any{
				"job_id":    job.ID,
				"status":    "failed",
				"message":   "reconciliation failed",
				"timestamp": time.Now(),
			}
			err := publishJobUpdate(workerConfig.RabbitConn, job.ID.String(), update)
			if err != nil {
				log.Println("failed to publish update:", err)
			}
			continue
		}
		// update job status

		workerConfig.DB.UpdateJobStatus(context.Background(), database.UpdateJobStatusParams{
			Status: "completed",
			ID:     job.ID,
		})
		update = map[string]any{
			"job_id":    job.ID,
			"status":    "completed",
			"message":   "reconciliation completed",
			"timestamp": time.Now(),
		}
		err = publishJobUpdate(workerConfig.RabbitConn, job.ID.String(), update)
		if err != nil {
			log.Println("failed to publish update:", err)
		}
	}

}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish

}
