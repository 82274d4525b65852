// Package partialstatus implements the STATP/STATQ delta-update stream
// to the status region. The body layout follows the literal test vector
// rather than spec prose: count(1) followed by count repetitions of
// offset(uint16 BE) + value(2 bytes), with no separate sequence byte —
// see DESIGN.md for why.
package partialstatus

import (
	"encoding/binary"

	"github.com/geckolib/geckoproto"
)

const tagLength = 5

// Change is one (offset, value) delta in the status region.
type Change struct {
	Offset uint16
	Value  [2]byte
}

// Handler matches and decodes STATP/STATQ frames. It never re-validates
// which of the two tags it was given — CanHandle already classified the
// frame, and Handle only strips the first 5 bytes positionally.
type Handler struct {
	gecko.Base

	Changes []Change
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only partial-status handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Response builds a STATP frame carrying the given changes.
func Response(changes []Change, parms gecko.ConnectionParms) *Handler {
	h := New(parms)
	h.Changes = changes

	data := append([]byte("STATP"), byte(len(changes)))
	for _, c := range changes {
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], c.Offset)
		data = append(data, buf[:]...)
		data = append(data, c.Value[:]...)
	}
	h.SetSendBytes(gecko.EncodeEnvelope(parms.SrcID, parms.DstID, data))
	return h
}

// CanHandle matches the STATP/STATQ tags.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	if len(payload) < tagLength {
		return false
	}
	tag := string(payload[:tagLength])
	return tag == "STATP" || tag == "STATQ"
}

// Handle decodes the body: count(1) + count*(offset u16 BE + value 2B).
// Never terminal: deltas are a continuous stream.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	if len(payload) < tagLength+1 {
		return false, gecko.NewParseError("partialstatus", "missing count byte")
	}
	body := payload[tagLength+1:]
	count := int(payload[tagLength])

	const entrySize = 4
	if len(body) < count*entrySize {
		return false, gecko.NewParseError("partialstatus", "fewer entries than count declares")
	}

	changes := make([]Change, 0, count)
	for i := 0; i < count; i++ {
		entry := body[i*entrySize : (i+1)*entrySize]
		c := Change{Offset: binary.BigEndian.Uint16(entry[0:2])}
		copy(c.Value[:], entry[2:4])
		changes = append(changes, c)
	}
	h.Changes = changes
	return false, nil
}
