package newsletter

import (
	"strings"
	"time"
)

type Subscriber struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
