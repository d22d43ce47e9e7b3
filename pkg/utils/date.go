package utils

import (
	"log"
	"time"
)

// TimeNowKST returns the current time in the Korean market timezone.
func TimeNowKST() time.Time {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return time.Now().In(loc)
}

// ToPointer returns a pointer to the given value.
func ToPointer[T any](v T) *T {
	return &v
}
