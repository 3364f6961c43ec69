package utils

import "github.com/google/uuid"

// GenerateID returns an identifier for embedded sub-documents (resources,
// safety reports). Uniqueness only matters within one workspace.
func GenerateID() string {
	return uuid.NewString()
}
