package protocol

// Version is the wire protocol version this package speaks.
const Version = 1

// Capability flags exchanged during the hello/helloAck handshake.
const (
	// CapSubmitJSON allows submit values to be JSON arrays and objects,
	// not just strings.
	CapSubmitJSON = "submitJson"
	// CapSemanticIDV2 switches semantic ids to the key-based format when a
	// choice key is present.
	CapSemanticIDV2 = "semanticIdV2"
	// CapUnknownTypeOK means unknown message types are tolerated rather
	// than treated as errors.
	CapUnknownTypeOK = "unknownTypeOk"
	// CapForwardCompat preserves unrecognized fields across round trips.
	CapForwardCompat = "forwardCompat"
	// CapChoiceKey enables the stable Choice.Key field.
	CapChoiceKey = "choiceKey"
	// CapMouseDataV2 replaces the legacy untagged mouse encoding with the
	// MouseData struct.
	CapMouseDataV2 = "mouseDataV2"
)

// SupportedCapabilities returns every capability this side implements, in a
// stable order.
func SupportedCapabilities() []string {
	return []string{
		CapSubmitJSON,
		CapSemanticIDV2,
		CapUnknownTypeOK,
		CapForwardCompat,
		CapChoiceKey,
		CapMouseDataV2,
	}
}

// Negotiate intersects the capabilities a peer requested with the supported
// set, preserving the supported order. Flags we do not implement are dropped
// silently.
func Negotiate(requested []string) []string {
	want := make(map[string]bool, len(requested))
	for _, c := range requested {
		want[c] = true
	}
	var agreed []string
	for _, c := range SupportedCapabilities() {
		if want[c] {
			agreed = append(agreed, c)
		}
	}
	return agreed
}

// AckFor builds the helloAck answering a hello. A session that never sends
// hello gets no ack and runs with the legacy default behavior.
func AckFor(h *Hello) *HelloAck {
	return &HelloAck{
		Protocol:     Version,
		Capabilities: Negotiate(h.Capabilities),
	}
}
