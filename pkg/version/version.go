// Package version implements the AVERS/SVERS firmware build exchange.
package version

import (
	"bytes"

	"github.com/geckolib/geckoproto"
)

const (
	requestTag  = "AVERS"
	responseTag = "SVERS"
)

// Build identifies one firmware component's build/major/minor triple.
type Build struct {
	Build uint8
	Major uint8
	Minor uint8
}

// Handler matches and decodes AVERS/SVERS frames.
type Handler struct {
	gecko.Base

	EN Build // intouch2 pack firmware
	CO Build // co-processor
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only version handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds AVERS + seq.
func Request(seq byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(requestTag), seq)))
	return h
}

// Response builds SVERS + two pad/build/major/minor groups.
func Response(en, co Build, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	data := []byte(responseTag)
	data = append(data, 0x00, en.Build, en.Major, en.Minor)
	data = append(data, 0x00, co.Build, co.Major, co.Minor)
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, data))
	h.EN = en
	h.CO = co
	return h
}

// CanHandle matches the bare 5-byte tag in either direction; it does not
// require a minimum length beyond the tag itself.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return bytes.HasPrefix(payload, []byte(requestTag)) || bytes.HasPrefix(payload, []byte(responseTag))
}

// Handle decodes an SVERS response. Terminal on response.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if bytes.HasPrefix(payload, []byte(requestTag)) {
		if len(payload) >= len(requestTag)+1 {
			seq := payload[len(requestTag)]
			h.Sequence = &seq
		}
		return false, nil
	}

	if len(payload) < len(responseTag)+8 {
		return false, gecko.NewParseError("version", "SVERS payload too short")
	}

	body := payload[len(responseTag):]
	h.EN = Build{Build: body[1], Major: body[2], Minor: body[3]}
	h.CO = Build{Build: body[5], Major: body[6], Minor: body[7]}
	h.SetTerminal()
	return false, nil
}
