// Package analytics keeps in-memory usage counters per session and
// globally. It feeds the session-stats endpoint; exported metrics go
// through Prometheus instead.
package analytics

import (
	"sync"
	"time"
)

type sessionStats struct {
	questionsCount   int
	subjectsCovered  map[string]bool
	confidenceScores []float64
	startTime        time.Time
	lastActivity     time.Time
}

// SessionSummary is the per-session view returned by the stats endpoint.
type SessionSummary struct {
	QuestionsAsked         int      `json:"questions_asked"`
	SubjectsCovered        []string `json:"subjects_covered"`
	SessionDurationMinutes int      `json:"session_duration_minutes"`
	AverageConfidence      float64  `json:"average_confidence"`
	StartTime              string   `json:"start_time"`
	LastActivity           string   `json:"last_activity"`
}

// GlobalStats aggregates across all sessions since process start.
type GlobalStats struct {
	TotalQuestions       int            `json:"total_questions"`
	SubjectsDistribution map[string]int `json:"subjects_distribution"`
	TypesDistribution    map[string]int `json:"question_types_distribution"`
	AverageConfidence    float64        `json:"average_confidence"`
	AverageFeedback      float64        `json:"average_feedback"`
	ActiveSessions       int            `json:"active_sessions"`
}

type Tracker struct {
	mu sync.RWMutex

	sessions map[string]*sessionStats

	totalQuestions  int
	subjectCounts   map[string]int
	typeCounts      map[string]int
	confidenceSum   float64
	confidenceCount int
	feedbackSum     int
	feedbackCount   int
}

func NewTracker() *Tracker {
	return &Tracker{
		sessions:      make(map[string]*sessionStats),
		subjectCounts: make(map[string]int),
		typeCounts:    make(map[string]int),
	}
}

func (t *Tracker) RecordQuestion(sessionID, subject, questionType string, confidence float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats, ok := t.sessions[sessionID]
	if !ok {
		stats = &sessionStats{
			subjectsCovered: make(map[string]bool),
			startTime:       time.Now(),
		}
		t.sessions[sessionID] = stats
	}

	stats.questionsCount++
	stats.subjectsCovered[subject] = true
	stats.confidenceScores = append(stats.confidenceScores, confidence)
	stats.lastActivity = time.Now()

	t.totalQuestions++
	t.subjectCounts[subject]++
	t.typeCounts[questionType]++
	t.confidenceSum += confidence
	t.confidenceCount++
}

func (t *Tracker) RecordFeedback(sessionID string, rating int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.feedbackSum += rating
	t.feedbackCount++
}

func (t *Tracker) SessionSummary(sessionID string) (SessionSummary, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats, ok := t.sessions[sessionID]
	if !ok {
		return SessionSummary{}, false
	}

	subjects := make([]string, 0, len(stats.subjectsCovered))
	for subject := range stats.subjectsCovered {
		subjects = append(subjects, subject)
	}

	var avg float64
	if len(stats.confidenceScores) > 0 {
		var sum float64
		for _, score := range stats.confidenceScores {
			sum += score
		}
		avg = sum / float64(len(stats.confidenceScores))
	}

	return SessionSummary{
		QuestionsAsked:         stats.questionsCount,
		SubjectsCovered:        subjects,
		SessionDurationMinutes: int(time.Since(stats.startTime).Minutes()),
		AverageConfidence:      avg,
		StartTime:              stats.startTime.Format(time.RFC3339),
		LastActivity:           stats.lastActivity.Format(time.RFC3339),
	}, true
}

func (t *Tracker) Global() GlobalStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	subjects := make(map[string]int, len(t.subjectCounts))
	for k, v := range t.subjectCounts {
		subjects[k] = v
	}
	types := make(map[string]int, len(t.typeCounts))
	for k, v := range t.typeCounts {
		types[k] = v
	}

	stats := GlobalStats{
		TotalQuestions:       t.totalQuestions,
		SubjectsDistribution: subjects,
		TypesDistribution:    types,
		ActiveSessions:       len(t.sessions),
	}
	if t.confidenceCount > 0 {
		stats.AverageConfidence = t.confidenceSum / float64(t.confidenceCount)
	}
	if t.feedbackCount > 0 {
		stats.AverageFeedback = float64(t.feedbackSum) / float64(t.feedbackCount)
	}
	return stats
}
