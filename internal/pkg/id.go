package pkg

import "github.com/google/uuid"

// GenerateMatchID - returns a random identifier used to correlate the log lines of one match.
func GenerateMatchID() string {
	return uuid.NewString()
}

// GenerateSessionID - returns a random identifier for the log lines of one session.
func GenerateSessionID() string {
	return uuid.NewString()
}
