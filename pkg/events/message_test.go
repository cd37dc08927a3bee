package events

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type sampleEvent struct {
	ItemID string `json:"item_id"`
	Wears  int    `json:"wears"`
}

func TestNewJSONMessage(t *testing.T) {
	id := uuid.New()
	msg, err := NewJSONMessage(id, 2, sampleEvent{ItemID: "coat", Wears: 40})
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	if msg.UUID != id.String() {
		t.Errorf("UUID = %q, want event id %q", msg.UUID, id)
	}
	if got := msg.Metadata.Get(MetadataEventVersion); got != "2" {
		t.Errorf("version metadata = %q, want 2", got)
	}

	got, err := Decode[sampleEvent](msg)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ItemID != "coat" || got.Wears != 40 {
		t.Errorf("decoded = %+v", got)
	}
}

func TestNewJSONMessage_Unencodable(t *testing.T) {
	if _, err := NewJSONMessage(uuid.New(), 1, make(chan int)); err == nil {
		t.Fatal("expected error for unencodable payload")
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode[sampleEvent](message.NewMessage("m1", []byte(`{"wears":"many"}`)))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("err = %v, want ErrMalformedPayload", err)
	}
}
