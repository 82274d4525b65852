// Package watercare implements the GETWC/WCGET/SETWC/REQWC/WCREQ
// exchange: reading and writing the current watercare mode, and reading
// the full weekly schedule block. The schedule block's internal layout
// is a fixed literal, not semantically decoded — see DESIGN.md.
package watercare

import (
	"bytes"

	"github.com/geckolib/geckoproto"
)

const (
	getModeTag  = "GETWC"
	modeTag     = "WCGET"
	setModeTag  = "SETWC"
	getSchedTag = "REQWC"
	schedTag    = "WCREQ"

	// scheduleBlockSize is the literal length of the schedule block in
	// spec.md's own seed vector (43 bytes total minus the 5-byte WCREQ
	// tag), not the 40 spec's prose states — see DESIGN.md.
	scheduleBlockSize = 38

	// setModeTimeoutSeconds is the timeout hint Set assigns explicitly,
	// since SETWC acks promptly. It equals Base's default of 4 seconds.
	setModeTimeoutSeconds = 4
)

// Handler matches and decodes every watercare exchange kind. Schedule
// distinguishes the weekly-schedule exchange from the plain mode
// exchange.
type Handler struct {
	gecko.Base

	Schedule bool

	Mode         byte
	ScheduleData [scheduleBlockSize]byte
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only watercare handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Request builds GETWC + seq: request the current mode.
func Request(seq byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(getModeTag), seq)))
	return h
}

// Response builds WCGET + mode.
func Response(mode byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Mode = mode
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(modeTag), mode)))
	return h
}

// Set builds SETWC + seq + mode, with a short timeout hint since the
// device is expected to ack promptly.
func Set(seq, mode byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.Mode = mode
	h.TimeoutInSeconds = setModeTimeoutSeconds
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(setModeTag), seq, mode)))
	return h
}

// RequestSchedule builds REQWC + seq: request the weekly schedule block.
func RequestSchedule(seq byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Sequence = &seq
	h.Schedule = true
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(getSchedTag), seq)))
	return h
}

// Schedule builds the WCREQ response carrying the fixed-size schedule
// block. Named for the literal constructor in the original
// implementation — the tag it encodes (WCREQ) is the one spec's own
// naming convention assigns to the response side of the REQWC/WCREQ
// exchange.
func Schedule(data [scheduleBlockSize]byte, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Schedule = true
	h.ScheduleData = data
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, append([]byte(schedTag), data[:]...)))
	return h
}

// CanHandle matches any of the five watercare tags.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	for _, tag := range []string{getModeTag, modeTag, setModeTag, getSchedTag, schedTag} {
		if bytes.HasPrefix(payload, []byte(tag)) {
			return true
		}
	}
	return false
}

// Handle decodes whichever watercare frame matched. WCGET is terminal,
// and so is WCREQ once the full block arrives; GETWC/REQWC/SETWC are
// not (they are requests awaiting a response).
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	switch {
	case bytes.HasPrefix(payload, []byte(getModeTag)):
		if len(payload) < len(getModeTag)+1 {
			return false, gecko.NewParseError("watercare", "GETWC payload too short")
		}
		seq := payload[len(getModeTag)]
		h.Sequence = &seq
		h.Schedule = false

	case bytes.HasPrefix(payload, []byte(modeTag)):
		if len(payload) < len(modeTag)+1 {
			return false, gecko.NewParseError("watercare", "WCGET payload too short")
		}
		h.Mode = payload[len(modeTag)]
		h.Schedule = false
		h.SetTerminal()

	case bytes.HasPrefix(payload, []byte(setModeTag)):
		if len(payload) < len(setModeTag)+2 {
			return false, gecko.NewParseError("watercare", "SETWC payload too short")
		}
		seq := payload[len(setModeTag)]
		h.Sequence = &seq
		h.Mode = payload[len(setModeTag)+1]
		h.Schedule = false

	case bytes.HasPrefix(payload, []byte(getSchedTag)):
		if len(payload) < len(getSchedTag)+1 {
			return false, gecko.NewParseError("watercare", "REQWC payload too short")
		}
		seq := payload[len(getSchedTag)]
		h.Sequence = &seq
		h.Schedule = true

	case bytes.HasPrefix(payload, []byte(schedTag)):
		body := payload[len(schedTag):]
		if len(body) < scheduleBlockSize {
			return false, gecko.NewParseError("watercare", "WCREQ payload too short")
		}
		copy(h.ScheduleData[:], body[:scheduleBlockSize])
		h.Schedule = true
		h.SetTerminal()

	default:
		return false, gecko.NewParseError("watercare", "unrecognized tag")
	}

	return false, nil
}
