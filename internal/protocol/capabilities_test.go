package protocol

import (
	"reflect"
	"testing"
)

func TestNegotiateIntersects(t *testing.T) {
	got := Negotiate([]string{CapMouseDataV2, "timeTravel", CapSubmitJSON})
	want := []string{CapSubmitJSON, CapMouseDataV2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("negotiated %v, want %v", got, want)
	}
}

func TestNegotiateEmptyRequest(t *testing.T) {
	if got := Negotiate(nil); got != nil {
		t.Fatalf("negotiated %v for empty request", got)
	}
}

func TestAckEchoesSupportedSubset(t *testing.T) {
	hello := &Hello{
		Protocol:     Version,
		SDKVersion:   "1.0.0",
		Capabilities: []string{CapChoiceKey, "quantumEntanglement"},
	}
	ack := AckFor(hello)
	if ack.Protocol != Version {
		t.Fatalf("protocol: %d", ack.Protocol)
	}
	if !reflect.DeepEqual(ack.Capabilities, []string{CapChoiceKey}) {
		t.Fatalf("capabilities: %v", ack.Capabilities)
	}
}
