package protocol

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Message is a 16-bit message-type code from the closed cluster protocol set.
type Message uint16

const (
	ClientHello      Message = 1
	ClientHelloResp  Message = 2
	ClientDisconnect Message = 3
	ClientEject      Message = 4
	ClientHeartbeat  Message = 5

	StateServerCreateObjectWithRequired      Message = 2000
	StateServerCreateObjectWithRequiredOther Message = 2001
	StateServerDeleteAIObjects               Message = 2009
	StateServerObjectGetField                Message = 2010
	StateServerObjectSetField                Message = 2020
	StateServerObjectDeleteRam               Message = 2030

	DBServerCreateObject   Message = 3000
	DBServerObjectGetAll   Message = 3010
	DBServerObjectGetField Message = 3020
	DBServerObjectSetField Message = 3030
	DBServerObjectDelete   Message = 3090

	ControlAddChannel       Message = 9000
	ControlRemoveChannel    Message = 9001
	ControlAddRange         Message = 9002
	ControlRemoveRange      Message = 9003
	ControlAddPostRemove    Message = 9010
	ControlClearPostRemoves Message = 9011
)

// ErrUnknownMessage reports a message-type code outside the known set. It is
// deliberately distinct from end-of-buffer failures so a dispatcher can tell
// a malformed envelope from a truncated one.
var ErrUnknownMessage = errors.New("protocol: unknown message type")

var knownMessages = map[Message]string{
	ClientHello:      "CLIENT_HELLO",
	ClientHelloResp:  "CLIENT_HELLO_RESP",
	ClientDisconnect: "CLIENT_DISCONNECT",
	ClientEject:      "CLIENT_EJECT",
	ClientHeartbeat:  "CLIENT_HEARTBEAT",

	StateServerCreateObjectWithRequired:      "STATESERVER_CREATE_OBJECT_WITH_REQUIRED",
	StateServerCreateObjectWithRequiredOther: "STATESERVER_CREATE_OBJECT_WITH_REQUIRED_OTHER",
	StateServerDeleteAIObjects:               "STATESERVER_DELETE_AI_OBJECTS",
	StateServerObjectGetField:                "STATESERVER_OBJECT_GET_FIELD",
	StateServerObjectSetField:                "STATESERVER_OBJECT_SET_FIELD",
	StateServerObjectDeleteRam:               "STATESERVER_OBJECT_DELETE_RAM",

	DBServerCreateObject:   "DBSERVER_CREATE_OBJECT",
	DBServerObjectGetAll:   "DBSERVER_OBJECT_GET_ALL",
	DBServerObjectGetField: "DBSERVER_OBJECT_GET_FIELD",
	DBServerObjectSetField: "DBSERVER_OBJECT_SET_FIELD",
	DBServerObjectDelete:   "DBSERVER_OBJECT_DELETE",

	ControlAddChannel:       "CONTROL_ADD_CHANNEL",
	ControlRemoveChannel:    "CONTROL_REMOVE_CHANNEL",
	ControlAddRange:         "CONTROL_ADD_RANGE",
	ControlRemoveRange:      "CONTROL_REMOVE_RANGE",
	ControlAddPostRemove:    "CONTROL_ADD_POST_REMOVE",
	ControlClearPostRemoves: "CONTROL_CLEAR_POST_REMOVES",
}

// MessageFromCode resolves a raw 16-bit code against the known message set.
func MessageFromCode(code uint16) (Message, error) {
	msg := Message(code)
	if _, ok := knownMessages[msg]; !ok {
		log.Error().Uint16("code", code).Msg("protocol: unknown message type")
		return 0, fmt.Errorf("%w: code %d", ErrUnknownMessage, code)
	}
	return msg, nil
}

func (m Message) String() string {
	if name, ok := knownMessages[m]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(m))
}
