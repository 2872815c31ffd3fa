package store

import (
	"errors"
	"testing"
	"time"

	"study-organizer/app/models"
)

func TestNewStoreHasAllWeekdayBuckets(t *testing.T) {
	st := NewStore()
	schedule := st.Schedule()
	if len(schedule) != 7 {
		t.Fatalf("schedule has %d buckets, want 7", len(schedule))
	}
	for day, bucket := range schedule {
		if bucket == nil || len(bucket) != 0 {
			t.Errorf("bucket %q = %v, want present and empty", day, bucket)
		}
	}
}

func TestAddClassDefaultsAndValidation(t *testing.T) {
	st := NewStore()

	entry, err := st.AddClass("Monday", "  Algorithms  ", "", "")
	if err != nil {
		t.Fatalf("AddClass() error = %v", err)
	}
	if entry.Course != "Algorithms" {
		t.Errorf("course = %q, want trimmed", entry.Course)
	}
	if entry.Room != "—" || entry.Time != "—" {
		t.Errorf("blank fields = (%q, %q), want placeholder", entry.Room, entry.Time)
	}
	if entry.ID == "" {
		t.Error("entry has no ID")
	}

	if _, err := st.AddClass("Monday", "   ", "C1", "10:00"); !errors.Is(err, ErrEmptyCourse) {
		t.Errorf("empty course error = %v, want ErrEmptyCourse", err)
	}
	if _, err := st.AddClass("Funday", "Algorithms", "C1", "10:00"); !errors.Is(err, ErrUnknownWeekday) {
		t.Errorf("unknown weekday error = %v, want ErrUnknownWeekday", err)
	}
}

func TestAddClassKeepsInsertionOrder(t *testing.T) {
	st := NewStore()
	for _, course := range []string{"First", "Second", "Third"} {
		if _, err := st.AddClass("Tuesday", course, "", ""); err != nil {
			t.Fatalf("AddClass(%q) error = %v", course, err)
		}
	}

	bucket := st.Day("Tuesday")
	if len(bucket) != 3 {
		t.Fatalf("bucket has %d entries, want 3", len(bucket))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if bucket[i].Course != want {
			t.Errorf("entry %d = %q, want %q", i, bucket[i].Course, want)
		}
	}
}

func TestDeleteClass(t *testing.T) {
	st := NewStore()
	entry, _ := st.AddClass("Friday", "Physics", "Lab 2", "14:00")
	keep, _ := st.AddClass("Friday", "Chemistry", "Lab 1", "16:00")

	if err := st.DeleteClass("Friday", entry.ID); err != nil {
		t.Fatalf("DeleteClass() error = %v", err)
	}
	bucket := st.Day("Friday")
	if len(bucket) != 1 || bucket[0].ID != keep.ID {
		t.Errorf("bucket after delete = %v", bucket)
	}

	if err := st.DeleteClass("Friday", entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
	if err := st.DeleteClass("Funday", keep.ID); !errors.Is(err, ErrUnknownWeekday) {
		t.Errorf("unknown weekday error = %v, want ErrUnknownWeekday", err)
	}
}

func TestDayUnknownNameIsEmpty(t *testing.T) {
	st := NewStore()
	if bucket := st.Day("Funday"); len(bucket) != 0 {
		t.Errorf("unknown day bucket = %v, want empty", bucket)
	}
}

func TestTasksSortedByDeadlineOnRead(t *testing.T) {
	st := NewStore()
	later, _ := st.AddTask("Later", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	sooner, _ := st.AddTask("Sooner", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	list := st.Tasks()
	if len(list) != 2 {
		t.Fatalf("got %d tasks, want 2", len(list))
	}
	if list[0].ID != sooner.ID || list[1].ID != later.ID {
		t.Errorf("tasks not sorted by deadline: %v", list)
	}

	// Live order for the notifier stays insertion order.
	ptrs := st.TaskPointers()
	if ptrs[0].ID != later.ID {
		t.Errorf("TaskPointers reordered: first = %q", ptrs[0].Title)
	}
}

func TestAddTaskValidation(t *testing.T) {
	st := NewStore()
	if _, err := st.AddTask("  ", time.Now()); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("empty title error = %v, want ErrEmptyTitle", err)
	}

	task, err := st.AddTask("Essay", time.Date(2024, 5, 2, 17, 45, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if got := task.Deadline; got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("deadline not truncated to date: %v", got)
	}
}

func TestSetTaskDoneLeavesNotifiedAlone(t *testing.T) {
	st := NewStore()
	task, _ := st.AddTask("Essay", time.Now())
	task.Notified = true

	if err := st.SetTaskDone(task.ID, true); err != nil {
		t.Fatalf("SetTaskDone() error = %v", err)
	}
	if err := st.SetTaskDone(task.ID, false); err != nil {
		t.Fatalf("SetTaskDone() error = %v", err)
	}

	got := st.TaskPointers()[0]
	if got.Done {
		t.Error("done flag not toggled back")
	}
	if !got.Notified {
		t.Error("notified flag was reset by a done toggle")
	}

	if err := st.SetTaskDone("missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing task error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	st := NewStore()
	task, _ := st.AddTask("Essay", time.Now())

	if err := st.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if len(st.Tasks()) != 0 {
		t.Error("task list not empty after delete")
	}
	if err := st.DeleteTask(task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestEmailConfigRoundTrip(t *testing.T) {
	st := NewStore()
	if st.EmailConfig().IsConfigured() {
		t.Error("fresh store reports configured email")
	}

	st.SetEmailConfig(models.EmailConfig{Sender: "a@example.com", Password: "pw", Recipient: "b@example.com"})
	cfg := st.EmailConfig()
	if !cfg.IsConfigured() {
		t.Error("config with all fields not reported as configured")
	}
	if cfg.Sender != "a@example.com" || cfg.Recipient != "b@example.com" {
		t.Errorf("config round-trip = %+v", cfg)
	}
}
