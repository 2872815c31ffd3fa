package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"study-organizer/app/models"
)

var (
	ErrEmptyCourse    = errors.New("course name cannot be empty")
	ErrEmptyTitle     = errors.New("task title cannot be empty")
	ErrUnknownWeekday = errors.New("unknown weekday")
	ErrNotFound       = errors.New("record not found")
)

// Store holds all session state: the weekly class schedule, the task
// list and the email settings. Everything lives in memory for the
// lifetime of the process.
//
// Each page cycle is a single logical actor, but Fiber serves requests
// concurrently, so access goes through a RWMutex. Mutation is separated
// from rendering: handlers apply one command, then a read-only call
// supplies the data for the next render.
type Store struct {
	mu       sync.RWMutex
	schedule models.WeeklySchedule
	tasks    []*models.Task
	email    models.EmailConfig
}

func NewStore() *Store {
	return &Store{
		schedule: models.NewWeeklySchedule(),
	}
}

// AddClass appends a class entry to the given weekday bucket. Blank
// room and time default to the "—" placeholder; an empty course name
// or an unknown weekday is rejected.
func (s *Store) AddClass(day, course, room, timeText string) (*models.ScheduleEntry, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, ErrEmptyCourse
	}
	if !models.IsWeekday(day) {
		return nil, ErrUnknownWeekday
	}

	entry := models.ScheduleEntry{
		ID:     uuid.NewString(),
		Course: course,
		Room:   orPlaceholder(room),
		Time:   orPlaceholder(timeText),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule[day] = append(s.schedule[day], entry)
	return &entry, nil
}

// DeleteClass removes one entry from a weekday bucket by ID.
func (s *Store) DeleteClass(day, id string) error {
	if !models.IsWeekday(day) {
		return ErrUnknownWeekday
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.schedule[day]
	for i, entry := range bucket {
		if entry.ID == id {
			s.schedule[day] = append(bucket[:i], bucket[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Schedule returns a copy of the full weekly schedule for rendering.
func (s *Store) Schedule() models.WeeklySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(models.WeeklySchedule, len(s.schedule))
	for day, bucket := range s.schedule {
		out[day] = append([]models.ScheduleEntry(nil), bucket...)
	}
	return out
}

// Day returns a copy of one weekday bucket. Unknown names yield an
// empty bucket.
func (s *Store) Day(name string) []models.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ScheduleEntry(nil), s.schedule[name]...)
}

// AddTask appends a task with the given title and deadline date.
func (s *Store) AddTask(title string, deadline time.Time) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &models.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Deadline: models.DateOf(deadline),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return task, nil
}

// SetTaskDone updates the done flag of one task. The notified flag is
// deliberately left alone: a task completed after notification stays
// excluded from further emails even if it is reopened.
func (s *Store) SetTaskDone(id string, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			t.Done = done
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask removes one task by ID.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Tasks returns the task list as copies, sorted by ascending deadline.
// The sort is a display concern applied at read time; stored order is
// insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}

// TaskPointers returns the live task records in insertion order for
// the notifier, which mutates the notified flag in place.
func (s *Store) TaskPointers() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*models.Task(nil), s.tasks...)
}

// SetEmailConfig replaces the reminder mail settings.
func (s *Store) SetEmailConfig(cfg models.EmailConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = cfg
}

// EmailConfig returns the current reminder mail settings.
func (s *Store) EmailConfig() models.EmailConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	return s
}
