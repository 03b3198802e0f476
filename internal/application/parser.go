package application

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/canalyzer/internal/domain"
)

const (
	recordSentinel = "ID:"
	sleepSignal    = "sleep"
)

// ParseLine recognizes "ID: <id> <skipped> <payload>". Lines that are not
// valid UTF-8 yield false.
func ParseLine(line string, observedAt time.Time) (domain.RawRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 || fields[0] != recordSentinel || !utf8.ValidString(line) {
		return domain.RawRecord{}, false
	}

	return domain.RawRecord{
		ID:         domain.MessageID(fields[1]),
		Payload:    fields[3],
		ObservedAt: observedAt,
	}, true
}

func IsSleepSignal(line string) bool {
	return line == sleepSignal
}
