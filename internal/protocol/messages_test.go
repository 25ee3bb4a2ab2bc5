package protocol

import (
	"errors"
	"testing"
)

func TestMessageFromCodeKnown(t *testing.T) {
	msg, err := MessageFromCode(2020)
	if err != nil {
		t.Fatalf("resolve known code: %v", err)
	}
	if msg != StateServerObjectSetField {
		t.Fatalf("resolved message: got=%v want=%v", msg, StateServerObjectSetField)
	}
	if msg.String() != "STATESERVER_OBJECT_SET_FIELD" {
		t.Fatalf("message name: got=%q", msg.String())
	}
}

func TestMessageFromCodeUnknown(t *testing.T) {
	_, err := MessageFromCode(12345)
	if !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("expected ErrUnknownMessage, got %v", err)
	}
}

func TestUnknownMessageString(t *testing.T) {
	if got := Message(54321).String(); got != "UNKNOWN(54321)" {
		t.Fatalf("unknown message name: got=%q", got)
	}
}
