package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(getEnv("JWT_SECRET", "change-me-in-production"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()
