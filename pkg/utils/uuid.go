package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// GenerateReceiptNo generates a unique receipt number
func GenerateReceiptNo() string {
	return "TKT-" + strings.ToUpper(uuid.New().String()[:8])
}
