package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pensive-app/pensive/pkg/domain"
)

// Enqueue adds a job to the queue, visible from scheduledAt
func (db *DB) Enqueue(ctx context.Context, jobType domain.JobType, payload interface{}, scheduledAt time.Time, maxAttempts int) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}
	if maxAttempts < 1 {
		maxAttempts = 3
	}

	var id int64
	err = db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			INSERT INTO jobs (type, payload, status, scheduled_at, max_attempts)
			VALUES (?, ?, 'pending', ?, ?)`,
			string(jobType), string(data), scheduledAt, maxAttempts)
		if err != nil {
			return fmt.Errorf("insert job: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		return nil
	})
	return id, err
}

// Dequeue claims the oldest due pending job with a lease. The claim is a single
// UPDATE guarded by the previous status, so two pollers cannot both win the same
// row. Returns ErrNotFound when nothing is due.
func (db *DB) Dequeue(ctx context.Context, visibility time.Duration) (*domain.Job, error) {
	now := time.Now()
	var job *domain.Job

	err := db.withRetry(ctx, func() error {
		var candidate jobSQL
		err := db.conn.GetContext(ctx, &candidate, `
			SELECT * FROM jobs
			WHERE status = 'pending' AND scheduled_at <= ?
			ORDER BY scheduled_at, id
			LIMIT 1`, now)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("find pending job: %w", err)
		}

		// atomic claim: only wins if the row is still pending
		leasedUntil := now.Add(visibility)
		result, err := db.conn.ExecContext(ctx, `
			UPDATE jobs
			SET status = 'running', leased_until = ?, started_at = ?, attempts = attempts + 1
			WHERE id = ? AND status = 'pending'`,
			leasedUntil, now, candidate.ID)
		if err != nil {
			return fmt.Errorf("claim job: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			// lost the race to another poller
			return ErrNotFound
		}

		candidate.Status = string(domain.JobRunning)
		candidate.LeasedUntil = sql.NullTime{Time: leasedUntil, Valid: true}
		candidate.StartedAt = sql.NullTime{Time: now, Valid: true}
		candidate.Attempts++
		claimed := candidate.toDomain()
		job = &claimed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Ack marks a running job completed
func (db *DB) Ack(ctx context.Context, jobID int64) error {
	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			UPDATE jobs
			SET status = 'completed', completed_at = ?, leased_until = NULL, error = ''
			WHERE id = ? AND status = 'running'`, time.Now(), jobID)
		if err != nil {
			return fmt.Errorf("ack job: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Nack reports a failed attempt. The job goes back to pending after retryDelay
// while attempts remain, otherwise it is terminally failed with the error kept
// for inspection.
func (db *DB) Nack(ctx context.Context, jobID int64, jobErr error, retryDelay time.Duration) error {
	errMsg := ""
	if jobErr != nil {
		errMsg = jobErr.Error()
	}

	return db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			UPDATE jobs
			SET status = CASE WHEN attempts >= max_attempts THEN 'failed' ELSE 'pending' END,
			    completed_at = CASE WHEN attempts >= max_attempts THEN ? ELSE NULL END,
			    scheduled_at = CASE WHEN attempts >= max_attempts THEN scheduled_at ELSE ? END,
			    leased_until = NULL,
			    error = ?
			WHERE id = ? AND status = 'running'`,
			time.Now(), time.Now().Add(retryDelay), errMsg, jobID)
		if err != nil {
			return fmt.Errorf("nack job: %w", err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// RequeueExpired returns jobs whose lease expired to the pending state so a
// crashed worker's job becomes eligible for redelivery. Returns how many were
// swept.
func (db *DB) RequeueExpired(ctx context.Context) (int64, error) {
	var count int64
	err := db.withRetry(ctx, func() error {
		result, err := db.conn.ExecContext(ctx, `
			UPDATE jobs
			SET status = CASE WHEN attempts >= max_attempts THEN 'failed' ELSE 'pending' END,
			    leased_until = NULL,
			    error = CASE WHEN attempts >= max_attempts THEN 'lease expired' ELSE error END
			WHERE status = 'running' AND leased_until <= ?`, time.Now())
		if err != nil {
			return fmt.Errorf("requeue expired jobs: %w", err)
		}
		count, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		return nil
	})
	return count, err
}

// GetJob retrieves a job by ID
func (db *DB) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	var row jobSQL
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM jobs WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	job := row.toDomain()
	return &job, nil
}

// CountJobs returns the number of jobs per status, for the status endpoint
func (db *DB) CountJobs(ctx context.Context) (map[string]int, error) {
	rows, err := db.conn.QueryxContext(ctx, `SELECT status, COUNT(*) FROM jobs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan job count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
