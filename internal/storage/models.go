package storage

// StreakState is the persisted streak position.
// Count == 0 exactly when LastCompleted == "" (no completion yet).
type StreakState struct {
	Count         int
	LastCompleted string
}

// Reflection is one saved post-challenge entry. Immutable once written;
// the log is stored newest-first.
type Reflection struct {
	ID                string `json:"id"`
	Date              string `json:"date"`
	ChallengeText     string `json:"challengeText"`
	ChallengeCategory string `json:"challengeCategory"`
	Feeling           string `json:"feeling,omitempty"`
	Note              string `json:"note"`
	Timestamp         int64  `json:"timestamp"`
}
