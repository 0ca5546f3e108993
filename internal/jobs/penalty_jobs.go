package jobs

import (
	"context"
	"time"

	"council-rental-backend/internal/logger"
)

// RunOverdueSweep charges daily overdue penalties on all active rentals
func (jr *JobRunner) RunOverdueSweep() {
	jr.runWithRecovery("RunOverdueSweep", func() {
		ctx := context.Background()

		report, err := jr.services.Penalty.RunOverdueSweep(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Overdue sweep failed", "error", err)
			return
		}

		if jr.metrics != nil {
			jr.metrics.SweepsRun.Inc()
			for _, applied := range report.PenaltiesApplied {
				jr.metrics.PenaltiesApplied.WithLabelValues(string(applied.Type)).Inc()
			}
		}

		logger.Info("Overdue sweep finished",
			"scanned", report.ScannedCount,
			"newly_overdue", len(report.NewlyOverdue),
			"penalties_applied", len(report.PenaltiesApplied),
			"notifications_sent", report.NotificationsSent,
			"errors", len(report.Errors))

		for _, msg := range report.Errors {
			logger.Warn("Sweep item failed", "error", msg)
		}
	})
}

// SendOverdueReminders emails every renter who still holds an overdue item
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		// Find overdue rentals with renter and item details
		query := `
			SELECT r.id, r.due_on,
			       u.email, u.name AS renter_name,
			       i.name AS item_name
			FROM rentals r
			JOIN users u ON r.user_id = u.id
			JOIN items i ON r.item_id = i.id
			WHERE r.status = 'OVERDUE'
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		now := time.Now().UTC()
		count := 0
		for rows.Next() {
			var (
				rentalID   int32
				dueOn      time.Time
				email      string
				renterName string
				itemName   string
			)

			if err := rows.Scan(&rentalID, &dueOn, &email, &renterName, &itemName); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}

			overdueDays := int32(now.Sub(dueOn).Hours() / 24)
			if overdueDays < 1 {
				overdueDays = 1
			}

			if err := jr.services.Email.SendOverdueReminder(ctx, email, renterName, itemName, overdueDays); err != nil {
				logger.Error("Failed to send overdue reminder email",
					"rental_id", rentalID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent overdue reminder", "rental_id", rentalID, "email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue reminders sent", "count", count)
	})
}
