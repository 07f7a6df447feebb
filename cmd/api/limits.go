package main

import (
	"errors"
	"fmt"
)

var errAutoMigrateInProduction = errors.New("AutoMigrate is enabled in production; disable DB_AUTO_MIGRATE and run `recap migrate up`")

// bodyLimit formats a byte count for echo's BodyLimit middleware
func bodyLimit(n int) string {
	const kib = 1 << 10
	if n%kib == 0 {
		return fmt.Sprintf("%dK", n/kib)
	}
	return fmt.Sprintf("%dB", n)
}
