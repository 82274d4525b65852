// Package hello implements the HELLO discovery/identification handshake.
// Unlike every other handler kind, HELLO has no PACKT envelope — it is a
// bare <HELLO>...</HELLO> payload, and it has no terminal state: it's a
// conversation rather than a request/response pair.
package hello

import (
	"bytes"

	"github.com/geckolib/geckoproto"
)

const (
	tagOpen  = "<HELLO>"
	tagClose = "</HELLO>"
)

// Handler decodes and constructs HELLO frames.
type Handler struct {
	gecko.Base

	WasBroadcastDiscovery bool
	ClientIdentifier      []byte
	SpaIdentifier         []byte
	SpaName               string
}

var _ gecko.Handler = (*Handler)(nil)

// New returns a receive-only HELLO handler template.
func New(parms gecko.ConnectionParms) *Handler {
	return &Handler{Base: gecko.NewBase(parms)}
}

// Broadcast builds the LAN discovery broadcast: body is the literal "1".
func Broadcast() *Handler {
	h := &Handler{}
	h.SetSendBytes([]byte(tagOpen + "1" + tagClose))
	return h
}

// Client announces presence with a client identifier.
func Client(id []byte) *Handler {
	h := &Handler{}
	h.SetSendBytes([]byte(tagOpen + string(id) + tagClose))
	return h
}

// Response is the device-side reply carrying its spa identifier and name.
func Response(spaID []byte, name string) *Handler {
	h := &Handler{}
	h.SetSendBytes([]byte(tagOpen + string(spaID) + "|" + name + tagClose))
	return h
}

// CanHandle matches a bare <HELLO>...</HELLO> payload with nothing
// before or after — HELLO has no PACKT envelope to strip first.
func (h *Handler) CanHandle(payload []byte, parms gecko.ConnectionParms) bool {
	return bytes.HasPrefix(payload, []byte(tagOpen)) && bytes.HasSuffix(payload, []byte(tagClose))
}

// Handle splits the body on the first '|'. Absent and body == "1" means
// a broadcast discovery; absent and body != "1" means a bare client
// identifier. An unrecognized client identifier is accepted the same
// way as a recognized one — the core has no registry of valid clients
// to check against.
func (h *Handler) Handle(payload []byte, remoteAddr string) (bool, error) {
	body := payload[len(tagOpen) : len(payload)-len(tagClose)]

	before, after, found := bytes.Cut(body, []byte("|"))
	if found {
		h.SpaIdentifier = before
		h.SpaName = string(after)
		return false, nil
	}

	if string(body) == "1" {
		h.WasBroadcastDiscovery = true
	} else {
		h.ClientIdentifier = body
	}
	return false, nil
}
