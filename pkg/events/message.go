package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// MetadataEventVersion carries the payload schema version of a message.
const MetadataEventVersion = "event_version"

// ErrMalformedPayload is returned by Decode when a payload is not valid JSON
// for the target type. Retrying such a message never helps.
var ErrMalformedPayload = errors.New("events: malformed payload")

// NewJSONMessage encodes payload as JSON. The message UUID is the event id, so
// a redelivered event keeps its identity.
func NewJSONMessage(eventID uuid.UUID, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(eventID.String(), body)
	msg.Metadata.Set(MetadataEventVersion, strconv.Itoa(version))
	return msg, nil
}

// Decode unmarshals a JSON message payload into T.
func Decode[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("%w: message %s: %w", ErrMalformedPayload, msg.UUID, err)
	}
	return v, nil
}
