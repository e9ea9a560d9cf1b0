package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amutiso/kwakamande/internal/assignment"
	"github.com/amutiso/kwakamande/internal/notification"
	"github.com/amutiso/kwakamande/internal/rent"
)

// Run at 09:00 on the 1st (rent due) and the 5th (last day of the grace
// window).
const (
	dueSpec   = "0 9 1 * *"
	graceSpec = "0 9 5 * *"
)

// Scheduler sends rent reminders to tenants who have not paid for the
// current month
type Scheduler struct {
	cron            *cron.Cron
	assignmentRepo  *assignment.Repository
	rentRepo        *rent.Repository
	notificationSvc *notification.Service
	now             func() time.Time
}

// NewScheduler creates a reminder scheduler with dependencies injected
func NewScheduler(assignmentRepo *assignment.Repository, rentRepo *rent.Repository, notificationSvc *notification.Service) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		assignmentRepo:  assignmentRepo,
		rentRepo:        rentRepo,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

// Start registers the reminder jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(dueSpec, func() {
		s.remind("Rent due", "Your rent for %s is due. Pay on or before the 5th to avoid a late penalty.")
	}); err != nil {
		return fmt.Errorf("failed to schedule due reminder: %w", err)
	}

	if _, err := s.cron.AddFunc(graceSpec, func() {
		s.remind("Final rent reminder", "Today is the last day to pay your rent for %s without a penalty.")
	}); err != nil {
		return fmt.Errorf("failed to schedule grace reminder: %w", err)
	}

	s.cron.Start()
	log.Println("Rent reminder scheduler started")
	return nil
}

// Stop halts the cron loop, waiting for any running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// remind notifies every tenant with an active assignment and no paid payment
// for the current month. Failures for one tenant are logged and do not stop
// the rest of the run.
func (s *Scheduler) remind(title, bodyFormat string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	monthYear := s.now().Format("2006-01")
	monthName := s.now().Format("January 2006")

	details, err := s.assignmentRepo.ListActiveDetails(ctx)
	if err != nil {
		log.Printf("rent reminder: failed to list active assignments: %v", err)
		return
	}

	sent := 0
	for _, d := range details {
		paid, err := s.rentRepo.HasPaidForMonth(ctx, d.TenantID, monthYear)
		if err != nil {
			log.Printf("rent reminder: failed to check payment for tenant %s: %v", d.TenantID, err)
			continue
		}
		if paid {
			continue
		}

		body := fmt.Sprintf(bodyFormat, monthName)
		if _, err := s.notificationSvc.Notify(ctx, d.TenantID, notification.KindRentReminder, title, body); err != nil {
			log.Printf("rent reminder: failed to notify tenant %s: %v", d.TenantID, err)
			continue
		}
		sent++
	}

	log.Printf("rent reminder: sent %d reminders for %s", sent, monthYear)
}
