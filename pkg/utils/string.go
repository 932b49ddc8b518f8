package utils

import (
	"math/rand"
	"strconv"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EventIDLength is the length of generated event identifiers.
const EventIDLength = 8

var randSource = rand.NewSource(time.Now().UnixNano())
var randGenerator = rand.New(randSource)

func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[randGenerator.Intn(len(charset))]
	}
	return string(b)
}

// GenerateEventID returns a new 8-character event identifier.
func GenerateEventID() string {
	return GenerateRandomString(EventIDLength)
}

func FormatUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
