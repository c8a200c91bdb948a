package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/skillmatch/matchworker/internal/database"
	"github.com/skillmatch/matchworker/internal/extract"
	"github.com/skillmatch/matchworker/internal/logger"
	"github.com/skillmatch/matchworker/internal/match"
)

const (
	uploadQueue   = "resume_uploads"
	decisionQueue = "score_decisions"
)

// User-facing outcome messages rendered by the presentation side.
const (
	msgNotResume = "The uploaded file does not look like a valid resume. " +
		"Please upload a proper resume (PDF/DOCX) with your details."
	msgNoSkills = "No technical skills were detected in your resume. " +
		"Please clearly list your skills (e.g. 'Python, Django, SQL') in your resume and upload again."
	msgNoJobs     = "There are no open jobs to match against right now."
	msgAllMatched = "You have already created applications for all current jobs. " +
		"No new applications were created."
	msgCompleted = "Resume analysed. Draft applications created for new jobs."
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

// notify publishes one upload status update. Publish failures are logged
// and otherwise ignored: the pipeline outcome is already persisted.
func (wc *WorkerConfig) notify(uploadID uuid.UUID, status, message string) {
	update := map[string]any{
		"upload_id": uploadID,
		"status":    status,
		"message":   message,
		"timestamp": time.Now(),
	}
	if err := publishUploadUpdate(wc.RabbitConn, uploadID.String(), update); err != nil {
		wc.Logger.Warn("failed to publish update", zap.Error(err))
	}
}

// processUpload runs the matching pipeline for one staged upload:
// download, text extraction, resume validation, skill extraction, raw
// file persistence and score creation. It returns the terminal status
// and user-facing message. Pipeline rejections are outcomes, not errors;
// an error means an infrastructure failure (download, storage, DB) and
// nothing of the rejected upload is persisted. Downloads and DB writes
// are retried, extraction never is (a parse failure is not an error).
func (wc *WorkerConfig) processUpload(ctx context.Context, up Upload) (string, string, error) {
	log := wc.Logger.With(
		zap.String("upload_id", up.ID.String()),
		zap.String("user_id", up.UserID.String()),
	)

	client := wc.s3Client()

	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, client, wc.R2.Bucket, up.ObjectKey)
	})
	if err != nil {
		return "", "", fmt.Errorf("file download error for %s: %w", up.ObjectKey, err)
	}

	text := extract.Text(up.FileName, fileBytes)
	log.Debug("extracted resume text",
		zap.Int("chars", len(text)),
		zap.String("preview", logger.Truncate(text, 120)),
	)

	if !wc.Matcher.LooksLikeResume(text) {
		log.Info("upload rejected", zap.String("reason", match.ErrNotResume.Error()))
		return "rejected", msgNotResume, nil
	}

	skills := wc.Matcher.ExtractSkills(text)
	if skills == "" {
		log.Info("upload rejected", zap.String("reason", match.ErrNoSkills.Error()))
		return "rejected", msgNoSkills, nil
	}

	// Extra skills typed by the applicant are appended on top of the
	// extracted ones.
	if extra := strings.TrimSpace(up.ExtraSkills); extra != "" {
		skills = skills + ", " + extra
	}

	// Persist the raw bytes at the stable key before creating the row
	// that references it.
	objectKey := fmt.Sprintf("resumes/%s%s", up.ID, strings.ToLower(filepath.Ext(up.FileName)))
	_, err = retry(3, func() (any, error) {
		return nil, UploadToR2(ctx, client, wc.R2.Bucket, objectKey, fileBytes)
	})
	if err != nil {
		return "", "", fmt.Errorf("file persistence error for %s: %w", objectKey, err)
	}

	resume, err := retry(3, func() (database.Resume, error) {
		return wc.DB.CreateResume(ctx, database.CreateResumeParams{
			ID:        uuid.New(),
			UserID:    up.UserID,
			FileName:  up.FileName,
			ObjectKey: objectKey,
			Skills:    skills,
		})
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to save resume: %w", err)
	}

	jobs, err := wc.DB.GetOpenJobs(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load jobs: %w", err)
	}
	matchedIDs, err := wc.DB.GetMatchedJobIDs(ctx, up.UserID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load matched jobs: %w", err)
	}
	matched := make(map[uuid.UUID]bool, len(matchedIDs))
	for _, id := range matchedIDs {
		matched[id] = true
	}

	reqs := make([]match.JobRequirement, len(jobs))
	for i, job := range jobs {
		reqs[i] = match.JobRequirement{ID: job.ID, RequiredSkills: job.RequiredSkills}
	}

	records := wc.Matcher.RunMatching(match.ResumeDocument{
		ID:      resume.ID,
		OwnerID: resume.UserID,
		Skills:  resume.Skills,
	}, reqs, matched)

	for _, rec := range records {
		_, err = retry(3, func() (any, error) {
			return nil, wc.DB.CreateScore(ctx, database.CreateScoreParams{
				ID:                uuid.New(),
				ResumeID:          rec.ResumeID,
				JobID:             rec.JobID,
				OwnerID:           rec.OwnerID,
				Value:             rec.Value,
				RecommendedSkills: rec.RecommendedSkills,
				Status:            rec.Status,
				IsShortlisted:     rec.IsShortlisted,
			})
		})
		if err != nil {
			return "", "", fmt.Errorf("failed to save score after retries: %w", err)
		}
	}

	log.Info("matching finished",
		zap.String("skills", logger.Truncate(skills, 200)),
		zap.Int("open_jobs", len(jobs)),
		zap.Int("new_scores", len(records)),
	)

	switch {
	case len(jobs) == 0:
		return "completed", msgNoJobs, nil
	case len(records) == 0:
		// Every open job already had a score for this user; a no-op,
		// not a failure.
		return "completed", msgAllMatched, nil
	default:
		return "completed", msgCompleted, nil
	}
}

// processDecision applies an applicant-submission or reviewer-decision
// message. Only status and the shortlist flag change; the score value
// and recommended skills are never recomputed here.
func (wc *WorkerConfig) processDecision(ctx context.Context, d Decision) error {
	score, err := wc.DB.GetScore(ctx, d.ScoreID)
	if err != nil {
		return fmt.Errorf("failed to load score %s: %w", d.ScoreID, err)
	}

	switch d.Action {
	case ActionSubmit:
		if !match.ValidTransition(score.Status, match.StatusSubmitted) {
			return fmt.Errorf("cannot submit score in status %s", score.Status)
		}
		return wc.DB.UpdateScoreStatus(ctx, database.UpdateScoreStatusParams{
			Status:        match.StatusSubmitted,
			IsShortlisted: score.IsShortlisted,
			ID:            score.ID,
		})

	case ActionToggleShortlist:
		next := match.StatusShortlisted
		if score.IsShortlisted {
			next = match.StatusRejected
		}
		if !match.ValidTransition(score.Status, next) {
			return fmt.Errorf("cannot move score from %s to %s", score.Status, next)
		}
		return wc.DB.UpdateScoreStatus(ctx, database.UpdateScoreStatusParams{
			Status:        next,
			IsShortlisted: !score.IsShortlisted,
			ID:            score.ID,
		})

	default:
		return fmt.Errorf("unknown decision action: %q", d.Action)
	}
}

// consume opens a dedicated connection and returns deliveries from a
// durable queue.
func consume(url, queue string) (*amqp.Connection, <-chan amqp.Delivery, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	_, err = ch.QueueDeclare(
		queue, // queue name
		true,  // durable (survives broker restarts)
		false, // auto-delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	msgs, err := ch.Consume(
		queue, // queue name
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("error consuming from %s: %w", queue, err)
	}
	return conn, msgs, nil
}

func uploadWorker(id int, wc *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := wc.Logger.With(zap.Int("worker", id+1))

	conn, msgs, err := consume(wc.RabbitMQUrl, uploadQueue)
	if err != nil {
		log.Fatal("upload consumer setup failed", zap.Error(err))
	}
	defer conn.Close()

	for msg := range msgs {
		var up Upload
		if err := json.Unmarshal(msg.Body, &up); err != nil {
			log.Error("error unmarshalling upload message", zap.Error(err))
			continue
		}
		log.Info("processing upload", zap.String("upload_id", up.ID.String()))

		wc.notify(up.ID, "processing", "resume analysis started")

		status, message, err := wc.processUpload(context.Background(), up)
		if err != nil {
			log.Error("upload processing failed",
				zap.String("upload_id", up.ID.String()),
				zap.Error(err),
			)
			wc.notify(up.ID, "failed", "resume analysis failed")
			continue
		}
		wc.notify(up.ID, status, message)
	}
}

func decisionWorker(wc *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := wc.Logger.With(zap.String("queue", decisionQueue))

	conn, msgs, err := consume(wc.RabbitMQUrl, decisionQueue)
	if err != nil {
		log.Fatal("decision consumer setup failed", zap.Error(err))
	}
	defer conn.Close()

	for msg := range msgs {
		var d Decision
		if err := json.Unmarshal(msg.Body, &d); err != nil {
			log.Error("error unmarshalling decision message", zap.Error(err))
			continue
		}
		if err := wc.processDecision(context.Background(), d); err != nil {
			log.Error("decision rejected",
				zap.String("score_id", d.ScoreID.String()),
				zap.String("action", d.Action),
				zap.Error(err),
			)
			continue
		}
		log.Info("decision applied",
			zap.String("score_id", d.ScoreID.String()),
			zap.String("action", d.Action),
		)
	}
}

// StartConsumerWorkerPool runs numWorkers upload consumers plus one
// decision consumer, each on its own connection, and blocks.
func (wc *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers + 1)

	for i := 0; i < numWorkers; i++ {
		wc.Logger.Info("upload worker started", zap.Int("worker", i+1))
		go uploadWorker(i, wc, &wg)
	}
	go decisionWorker(wc, &wg)

	wg.Wait()
}
