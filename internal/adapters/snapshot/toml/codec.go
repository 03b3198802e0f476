package toml

import (
	"fmt"
	"io"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/bnema/canalyzer/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

type Codec struct{}

var _ ports.SnapshotCodec = (*Codec)(nil)

func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) WriteSnapshot(w io.Writer, messages []domain.TrackedMessage) error {
	file := fileSchema{Messages: make([]messageSchema, 0, len(messages))}
	file.applyDefaults()

	for _, msg := range messages {
		file.Messages = append(file.Messages, toSchema(msg))
	}

	if err := toml.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode toml snapshot: %w", err)
	}

	return nil
}

func (c *Codec) ReadSnapshot(r io.Reader) ([]domain.TrackedMessage, error) {
	var file fileSchema
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode toml snapshot: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedSnapshot, err)
	}

	messages := make([]domain.TrackedMessage, 0, len(file.Messages))
	for i, entry := range file.Messages {
		if entry.ID == "" || len(entry.Values) == 0 {
			return nil, fmt.Errorf("%w: entry %d has no id or no values", domain.ErrMalformedSnapshot, i)
		}
		messages = append(messages, fromSchema(entry))
	}

	return messages, nil
}

func toSchema(msg domain.TrackedMessage) messageSchema {
	values := make([]valueSchema, 0, len(msg.History))
	for _, rec := range msg.History {
		values = append(values, valueSchema{Data: rec.Payload, TS: rec.ObservedAt.UnixMilli()})
	}

	return messageSchema{
		ID:      string(msg.ID),
		Ignored: msg.Ignored,
		Pinned:  msg.Pinned,
		Values:  values,
	}
}

func fromSchema(entry messageSchema) domain.TrackedMessage {
	id := domain.MessageID(entry.ID)
	history := make([]domain.RawRecord, 0, len(entry.Values))
	for _, value := range entry.Values {
		history = append(history, domain.RawRecord{
			ID:         id,
			Payload:    value.Data,
			ObservedAt: time.UnixMilli(value.TS).UTC(),
		})
	}

	return domain.TrackedMessage{
		ID:      id,
		History: history,
		Ignored: entry.Ignored,
		Pinned:  entry.Pinned,
	}
}
