package root

import "testing"

func TestParseExerciseSpec(t *testing.T) {
	ex, err := parseExerciseSpec("Squat:3x5@100")
	if err != nil {
		t.Fatalf("parseExerciseSpec: %v", err)
	}
	if ex.Name != "Squat" || ex.TargetSets != 3 || ex.TargetReps != 5 {
		t.Fatalf("unexpected result: %+v", ex)
	}
	if ex.TargetWeight == nil || *ex.TargetWeight != 100 {
		t.Fatalf("weight not parsed: %+v", ex)
	}

	ex, err = parseExerciseSpec("Pull Ups:3x8")
	if err != nil {
		t.Fatalf("parseExerciseSpec: %v", err)
	}
	if ex.Name != "Pull Ups" || ex.TargetSets != 3 || ex.TargetReps != 8 || ex.TargetWeight != nil {
		t.Fatalf("unexpected result: %+v", ex)
	}
}

func TestParseExerciseSpecRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"Squat",
		"Squat:",
		":3x5",
		"Squat:3x",
		"Squat:x5",
		"Squat:3x5@heavy",
		"Squat:0x5",
		"Squat:3x-5",
	}
	for _, s := range bad {
		if _, err := parseExerciseSpec(s); err == nil {
			t.Fatalf("parseExerciseSpec(%q): expected error", s)
		}
	}
}
