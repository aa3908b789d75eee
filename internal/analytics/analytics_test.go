package analytics

import (
	"math"
	"testing"
)

func TestRecordQuestionAndSessionSummary(t *testing.T) {
	tr := NewTracker()

	tr.RecordQuestion("sess", "matematicas", "definition", 0.8)
	tr.RecordQuestion("sess", "fisica", "explanation", 0.4)
	tr.RecordQuestion("sess", "matematicas", "definition", 0.6)

	summary, ok := tr.SessionSummary("sess")
	if !ok {
		t.Fatal("session not found")
	}

	if summary.QuestionsAsked != 3 {
		t.Errorf("QuestionsAsked = %d, want 3", summary.QuestionsAsked)
	}
	if len(summary.SubjectsCovered) != 2 {
		t.Errorf("SubjectsCovered = %v, want 2 distinct subjects", summary.SubjectsCovered)
	}
	if math.Abs(summary.AverageConfidence-0.6) > 1e-9 {
		t.Errorf("AverageConfidence = %v, want 0.6", summary.AverageConfidence)
	}
	if summary.StartTime == "" || summary.LastActivity == "" {
		t.Error("timestamps not set")
	}
}

func TestSessionSummaryUnknown(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.SessionSummary("nadie"); ok {
		t.Error("unknown session reported as found")
	}
}

func TestGlobal(t *testing.T) {
	tr := NewTracker()

	tr.RecordQuestion("a", "matematicas", "definition", 1.0)
	tr.RecordQuestion("b", "matematicas", "calculation", 0.5)
	tr.RecordQuestion("b", "biologia", "definition", 0.3)
	tr.RecordFeedback("a", 5)
	tr.RecordFeedback("b", 3)

	stats := tr.Global()

	if stats.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", stats.TotalQuestions)
	}
	if stats.ActiveSessions != 2 {
		t.Errorf("ActiveSessions = %d, want 2", stats.ActiveSessions)
	}
	if stats.SubjectsDistribution["matematicas"] != 2 {
		t.Errorf("matematicas count = %d, want 2", stats.SubjectsDistribution["matematicas"])
	}
	if stats.TypesDistribution["definition"] != 2 {
		t.Errorf("definition count = %d, want 2", stats.TypesDistribution["definition"])
	}
	if math.Abs(stats.AverageConfidence-0.6) > 1e-9 {
		t.Errorf("AverageConfidence = %v, want 0.6", stats.AverageConfidence)
	}
	if math.Abs(stats.AverageFeedback-4.0) > 1e-9 {
		t.Errorf("AverageFeedback = %v, want 4.0", stats.AverageFeedback)
	}
}

func TestGlobalEmpty(t *testing.T) {
	stats := NewTracker().Global()

	if stats.TotalQuestions != 0 || stats.AverageConfidence != 0 || stats.AverageFeedback != 0 {
		t.Errorf("empty tracker stats = %+v, want zeros", stats)
	}
}
