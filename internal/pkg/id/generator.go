// Package id provides identifier generation for PromptForge. All
// functions are safe for concurrent use.
package id

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var randReader = rand.Reader

// NewUUID generates a new UUID v4
func NewUUID() string {
	return uuid.New().String()
}

// ParseUUID parses and validates a UUID string
func ParseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// ParseUUIDOrNil parses a UUID string, returning uuid.Nil on error.
// This is a safe alternative for user input that doesn't require error handling.
func ParseUUIDOrNil(id string) uuid.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return u
}

// ValidateUUID validates a UUID format
func ValidateUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// NewJobID generates an identifier for an async refinement job
func NewJobID() string {
	return "job-" + generateRandomString(24)
}

// CacheKey derives the deterministic cache key for a refinement request.
// The refinement options are part of the key: runs with a different
// target score, iteration cap or boost flag must never share a cached
// result. Callers pass normalized option values so equivalent requests
// collapse to one key.
func CacheKey(text, domainHint, styleHint string, targetScore float64, maxIterations int, forceBoost bool) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(domainHint))
	h.Write([]byte{0})
	h.Write([]byte(styleHint))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(targetScore, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(maxIterations)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatBool(forceBoost)))
	return "refine:" + hex.EncodeToString(h.Sum(nil))
}

// generateRandomString generates a random alphanumeric string
func generateRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	buf := make([]byte, length)
	if _, err := randReader.Read(buf); err != nil {
		// Fallback using time
		for i := range buf {
			buf[i] = charset[time.Now().UnixNano()%int64(len(charset))]
		}
		return string(buf)
	}

	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}
	return string(buf)
}
