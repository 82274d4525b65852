// Package gecko implements the wire-protocol codec and handler dispatch
// core for the Gecko UDP control protocol used by networked spa/hot-tub
// controllers. It parses and constructs the PACKT envelope, classifies
// inbound payloads by their 5-byte ASCII command tag, and demultiplexes
// them to message handlers in pkg/hello, pkg/ping, pkg/version, etc.
package gecko

// ConnectionParms identifies the two endpoints of an exchange. SrcID and
// DstID are opaque byte strings exchanged during HELLO; they are carried
// unordered — a request and its matched response share the same set.
type ConnectionParms struct {
	LocalAddr string
	LocalPort int
	SrcID     []byte
	DstID     []byte
}

// Handler is the contract every message kind implements. CanHandle is a
// pure classifier: it must not mutate the handler and must return false
// without calling Handle on a miss. Handle decodes payload into the
// handler's own fields and reports whether the frame should be forwarded
// to subsequent handlers in the registry (the observed convention across
// every kind in this package is to return false: once a handler claims a
// frame, it consumes it).
type Handler interface {
	CanHandle(payload []byte, parms ConnectionParms) bool
	Handle(payload []byte, remoteAddr string) (forward bool, err error)
	SendBytes() []byte
	ShouldRemoveHandler() bool
}

// Base is embedded by every concrete handler. It carries the fields
// common to every kind: the cached outbound frame, the correlation
// sequence, the terminal flag, and the scheduler hints. Concrete handlers
// set these directly from their constructors and Handle methods; Base
// itself does no encoding or decoding.
type Base struct {
	Parms ConnectionParms

	bytes  []byte
	remove bool

	Sequence         *byte
	TimeoutInSeconds int
	RetryCount       int
}

// SendBytes returns the cached outbound frame, or nil for a receive-only
// handler that has not been constructed as a request/response/etc.
func (b *Base) SendBytes() []byte {
	return b.bytes
}

// ShouldRemoveHandler reports whether this handler has reached a terminal
// state and should be unregistered by the dispatcher.
func (b *Base) ShouldRemoveHandler() bool {
	return b.remove
}

// SetSendBytes caches the fully-encoded outbound frame. Concrete
// handlers call this from their named constructors, once, eagerly — the
// core never computes send_bytes lazily or in the background.
func (b *Base) SetSendBytes(data []byte) {
	b.bytes = data
}

// SetTerminal marks the handler as having reached should_remove_handler
// == true. Concrete handlers call this from Handle on a valid terminal
// response (version, channel, config-file, watercare-get, pack-ack).
func (b *Base) SetTerminal() {
	b.remove = true
}

// defaultTimeoutSeconds is the scheduler hint every handler starts with.
// No kind in this repository uses a different value: bulk reads (STATU)
// keep this default, and watercare.Set sets the same 4 seconds explicitly.
const defaultTimeoutSeconds = 4

const defaultRetryCount = 3

// NewBase returns a Base pre-populated with the default timeout/retry
// hints. Concrete handler packages call this from their own New
// constructors and override TimeoutInSeconds/RetryCount where the kind
// needs something different (watercare.Set, for instance, sets
// TimeoutInSeconds explicitly).
func NewBase(parms ConnectionParms) Base {
	return Base{
		Parms:            parms,
		TimeoutInSeconds: defaultTimeoutSeconds,
		RetryCount:       defaultRetryCount,
	}
}
