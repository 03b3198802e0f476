package domain

import "time"

type MessageID string

type RawRecord struct {
	ID         MessageID
	Payload    string
	ObservedAt time.Time
}
