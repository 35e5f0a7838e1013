package health

import "testing"

func TestClassifyACCAHA(t *testing.T) {
	tests := []struct {
		name      string
		systolic  float64
		diastolic float64
		want      string
	}{
		{"optimal reading", 110, 70, "normal"},
		{"just below elevated", 119, 79, "normal"},
		{"elevated lower bound inclusive", 120, 79, "elevated"},
		{"elevated upper bound", 129, 79, "elevated"},
		{"elevated needs low diastolic", 125, 80, "stage1"},
		{"stage1 systolic boundary", 130, 70, "stage1"},
		{"one below stage1 falls to elevated", 129, 70, "elevated"},
		{"stage1 diastolic alone", 110, 80, "stage1"},
		{"stage2 systolic", 140, 70, "stage2"},
		{"stage2 diastolic", 110, 90, "stage2"},
		{"crisis systolic", 180, 70, "crisis"},
		{"crisis diastolic", 120, 120, "crisis"},
		{"one below crisis", 179, 119, "stage2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.systolic, tt.diastolic, GuidelineACCAHA)
			if got == nil {
				t.Fatalf("Classify(%v, %v) = nil", tt.systolic, tt.diastolic)
			}
			if got.Key != tt.want {
				t.Errorf("Classify(%v, %v) = %q, want %q", tt.systolic, tt.diastolic, got.Key, tt.want)
			}
		})
	}
}

func TestClassifyESCESH(t *testing.T) {
	tests := []struct {
		name      string
		systolic  float64
		diastolic float64
		want      string
	}{
		{"optimal", 115, 75, "optimal"},
		{"optimal upper bound", 119, 79, "optimal"},
		{"normal", 125, 82, "normal"},
		{"normal systolic band alone", 120, 75, "normal"},
		{"normal diastolic band alone", 115, 80, "normal"},
		{"normal upper bound", 129, 84, "normal"},
		{"one above normal is high normal", 130, 75, "high_normal"},
		{"high normal band", 135, 85, "high_normal"},
		{"grade1 boundary", 140, 85, "grade1"},
		{"grade1 diastolic", 120, 90, "grade1"},
		{"grade2", 165, 95, "grade2"},
		{"grade3", 185, 95, "grade3"},
		{"grade3 diastolic", 150, 110, "grade3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.systolic, tt.diastolic, GuidelineESCESH)
			if got == nil {
				t.Fatalf("Classify(%v, %v) = nil", tt.systolic, tt.diastolic)
			}
			if got.Key != tt.want {
				t.Errorf("Classify(%v, %v) = %q, want %q", tt.systolic, tt.diastolic, got.Key, tt.want)
			}
		})
	}
}

func TestClassifyMissingValues(t *testing.T) {
	if got := Classify(0, 80, GuidelineACCAHA); got != nil {
		t.Errorf("Classify(0, 80) = %v, want nil", got.Key)
	}
	if got := Classify(120, 0, GuidelineACCAHA); got != nil {
		t.Errorf("Classify(120, 0) = %v, want nil", got.Key)
	}
}

func TestClassifyUnknownGuidelineDefaults(t *testing.T) {
	got := Classify(150, 95, "no-such-guideline")
	if got == nil {
		t.Fatal("Classify with unknown guideline = nil")
	}
	if got.Key != "stage2" {
		t.Errorf("Key = %q, want stage2 (ACC/AHA default)", got.Key)
	}
}

func TestClassifyFallbackLeastSevere(t *testing.T) {
	// A reading below every band still classifies as the least severe
	// category rather than returning nothing.
	got := Classify(90, 60, GuidelineESCESH)
	if got == nil {
		t.Fatal("Classify(90, 60) = nil")
	}
	if got.Key != "optimal" {
		t.Errorf("Key = %q, want optimal", got.Key)
	}
}

func TestClassifyReturnsCopy(t *testing.T) {
	first := Classify(115, 75, GuidelineESCESH)
	if first == nil {
		t.Fatal("Classify(115, 75) = nil")
	}
	first.Label = "scribbled"

	again := Classify(115, 75, GuidelineESCESH)
	if again.Label != "Optimal" {
		t.Errorf("Label = %q, want Optimal after mutating an earlier result", again.Label)
	}
}
