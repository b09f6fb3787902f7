package engine

import (
	"testing"

	"fitfive/internal/storage"
)

func testRoutine(id int64, start string, every int, exercises ...storage.Exercise) storage.Routine {
	return storage.Routine{
		ID:            id,
		Name:          "routine",
		StartDate:     start,
		FrequencyDays: every,
		Active:        true,
		Exercises:     exercises,
	}
}

func TestGenerateTasksOnePerExercise(t *testing.T) {
	weight := 100.0
	r := testRoutine(1, "2026-01-01", 1,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5, TargetWeight: &weight},
		storage.Exercise{ID: 11, RoutineID: 1, Name: "Bench", TargetSets: 3, TargetReps: 8},
		storage.Exercise{ID: 12, RoutineID: 1, Name: "Row", TargetSets: 4, TargetReps: 10},
	)

	day := mustDate(t, "2026-01-15")
	tasks, err := GenerateTasks([]storage.Routine{r}, nil, day)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	wantNames := []string{"Squat", "Bench", "Row"}
	for i, task := range tasks {
		if task.Name != wantNames[i] {
			t.Fatalf("task[%d].Name=%q, want %q (exercise order must be preserved)", i, task.Name, wantNames[i])
		}
		if task.Completed {
			t.Fatalf("task[%d] generated as completed", i)
		}
		if task.TaskDate != "2026-01-15" {
			t.Fatalf("task[%d].TaskDate=%q, want 2026-01-15", i, task.TaskDate)
		}
		if task.RoutineID != 1 {
			t.Fatalf("task[%d].RoutineID=%d, want 1", i, task.RoutineID)
		}
	}
	if tasks[0].TargetWeight == nil || *tasks[0].TargetWeight != 100.0 {
		t.Fatalf("target weight not copied")
	}
	if tasks[0].TargetSets != 3 || tasks[0].TargetReps != 5 {
		t.Fatalf("targets not copied: %+v", tasks[0])
	}
}

func TestGenerateTasksIdempotent(t *testing.T) {
	r := testRoutine(1, "2026-01-01", 1,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5},
		storage.Exercise{ID: 11, RoutineID: 1, Name: "Bench", TargetSets: 3, TargetReps: 8},
		storage.Exercise{ID: 12, RoutineID: 1, Name: "Row", TargetSets: 4, TargetReps: 10},
	)

	day := mustDate(t, "2026-01-15")
	first, err := GenerateTasks([]storage.Routine{r}, nil, day)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	second, err := GenerateTasks([]storage.Routine{r}, first, day)
	if err != nil {
		t.Fatalf("GenerateTasks (second): %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second hydration produced %d tasks, want 0", len(second))
	}
}

func TestGenerateTasksSkipsHydratedRoutineEvenIfPartial(t *testing.T) {
	// One existing task for the routine/day blocks regeneration even when it
	// no longer covers every exercise: generation is per routine per day.
	r := testRoutine(1, "2026-01-01", 1,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5},
		storage.Exercise{ID: 11, RoutineID: 1, Name: "Bench", TargetSets: 3, TargetReps: 8},
	)
	existing := []storage.WorkoutTask{
		{ID: 99, RoutineID: 1, ExerciseID: 10, Name: "Squat", TaskDate: "2026-01-15"},
	}

	tasks, err := GenerateTasks([]storage.Routine{r}, existing, mustDate(t, "2026-01-15"))
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks, want 0", len(tasks))
	}
}

func TestGenerateTasksIgnoresOtherDates(t *testing.T) {
	r := testRoutine(1, "2026-01-01", 1,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5},
	)
	existing := []storage.WorkoutTask{
		{ID: 99, RoutineID: 1, ExerciseID: 10, Name: "Squat", TaskDate: "2026-01-14"},
	}

	tasks, err := GenerateTasks([]storage.Routine{r}, existing, mustDate(t, "2026-01-15"))
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("yesterday's task blocked today's hydration: got %d tasks, want 1", len(tasks))
	}
}

func TestGenerateTasksSkipsNotDueAndEmptyRoutines(t *testing.T) {
	notDue := testRoutine(1, "2026-01-02", 3,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5},
	)
	empty := testRoutine(2, "2026-01-01", 1)
	notStarted := testRoutine(3, "2026-02-01", 1,
		storage.Exercise{ID: 30, RoutineID: 3, Name: "Deadlift", TargetSets: 1, TargetReps: 5},
	)

	tasks, err := GenerateTasks([]storage.Routine{notDue, empty, notStarted}, nil, mustDate(t, "2026-01-15"))
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("got %d tasks, want 0", len(tasks))
	}
}

func TestGenerateTasksMalformedStartDate(t *testing.T) {
	r := testRoutine(1, "not-a-date", 1,
		storage.Exercise{ID: 10, RoutineID: 1, Name: "Squat", TargetSets: 3, TargetReps: 5},
	)
	if _, err := GenerateTasks([]storage.Routine{r}, nil, mustDate(t, "2026-01-15")); err == nil {
		t.Fatalf("expected error for malformed start date")
	}
}
