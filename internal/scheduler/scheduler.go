package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/algorecall/internal/database"
	"github.com/example/algorecall/internal/review"
	"github.com/go-co-op/gocron"
)

// Default window during which due-review reminders may be sent.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)

// Notifier interface for delivering due-review reminders
type Notifier interface {
	SendDueReminder(count int) error
}

// Scheduler manages the periodic due-review reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a reminder when reviews are due and the current hour
// falls inside the notification window.
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()

	startHour := hourFromEnv("REMINDER_START_HOUR", DefaultReminderStartHour)
	endHour := hourFromEnv("REMINDER_END_HOUR", DefaultReminderEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	problemRepo := database.NewProblemRepository()
	problems, err := problemRepo.GetAll()
	if err != nil {
		log.Printf("Error getting problems for reminder: %v", err)
		return
	}

	due := review.Due(problems, time.Now())
	if len(due) == 0 {
		return
	}

	if err := s.notifier.SendDueReminder(len(due)); err != nil {
		log.Printf("Error sending due reminder: %v", err)
	}
}

func hourFromEnv(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
