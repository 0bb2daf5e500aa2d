package uid

import "github.com/google/uuid"

// GenerateAnalysisID returns a random identifier for an analysis record.
func GenerateAnalysisID() string {
	return uuid.NewString()
}
