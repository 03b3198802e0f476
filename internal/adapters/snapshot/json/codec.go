package json

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/bnema/canalyzer/internal/ports"
)

type Codec struct {
	indent string
}

var _ ports.SnapshotCodec = (*Codec)(nil)

type Option func(*Codec)

func WithIndent(indent string) Option {
	return func(c *Codec) {
		c.indent = indent
	}
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type messageDocument struct {
	ID      string          `json:"id"`
	Values  []valueDocument `json:"values"`
	Ignored bool            `json:"ignored"`
	Pinned  bool            `json:"pinned"`
}

// valueDocument carries ts as milliseconds since the Unix epoch.
type valueDocument struct {
	Data string `json:"data"`
	TS   int64  `json:"ts"`
}

func (c *Codec) WriteSnapshot(w io.Writer, messages []domain.TrackedMessage) error {
	docs := make([]messageDocument, 0, len(messages))
	for _, msg := range messages {
		docs = append(docs, toDocument(msg))
	}

	enc := json.NewEncoder(w)
	if c.indent != "" {
		enc.SetIndent("", c.indent)
	}

	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encode json snapshot: %w", err)
	}

	return nil
}

func (c *Codec) ReadSnapshot(r io.Reader) ([]domain.TrackedMessage, error) {
	var docs []messageDocument
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode json snapshot: %w", err)
	}

	messages := make([]domain.TrackedMessage, 0, len(docs))
	for i, doc := range docs {
		if doc.ID == "" || len(doc.Values) == 0 {
			return nil, fmt.Errorf("%w: entry %d has no id or no values", domain.ErrMalformedSnapshot, i)
		}
		messages = append(messages, fromDocument(doc))
	}

	return messages, nil
}

func toDocument(msg domain.TrackedMessage) messageDocument {
	values := make([]valueDocument, 0, len(msg.History))
	for _, rec := range msg.History {
		values = append(values, valueDocument{
			Data: rec.Payload,
			TS:   rec.ObservedAt.UnixMilli(),
		})
	}

	return messageDocument{
		ID:      string(msg.ID),
		Values:  values,
		Ignored: msg.Ignored,
		Pinned:  msg.Pinned,
	}
}

func fromDocument(doc messageDocument) domain.TrackedMessage {
	id := domain.MessageID(doc.ID)
	history := make([]domain.RawRecord, 0, len(doc.Values))
	for _, value := range doc.Values {
		history = append(history, domain.RawRecord{
			ID:         id,
			Payload:    value.Data,
			ObservedAt: time.UnixMilli(value.TS).UTC(),
		})
	}

	return domain.TrackedMessage{
		ID:      id,
		History: history,
		Ignored: doc.Ignored,
		Pinned:  doc.Pinned,
	}
}
