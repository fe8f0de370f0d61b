package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// Slugify produces the URL-safe course slug used for uniqueness checks.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}

func GenerateObjectName(userID, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s", userID, timestamp, fileName)
}
