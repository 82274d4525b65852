package statusblock

// Assembler accumulates STATV continuation frames into one contiguous
// status-region buffer. It is adapted from internal/fifo's circular
// buffer, trimmed of its CRC hook (this protocol has no CRC anywhere),
// and repurposed as a simple append-until-done accumulator rather than a
// ring buffer — a collaborator drives one Assembler per logical block
// and the core handler's Handle method never touches it directly (per
// the streaming design note: the handler only exposes per-frame Next and
// Data, buffering stays an upper-layer concern).
type Assembler struct {
	chunks [][]byte
	done   bool
}

// NewAssembler returns an empty assembler for one logical status block.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Add appends the data from one STATV frame. It is the caller's
// responsibility to feed frames in offset-ascending order — the core
// assumes but does not enforce this (out-of-order chunks are undefined
// behaviour, per spec).
func (a *Assembler) Add(h *Handler) {
	if a.done {
		return
	}
	a.chunks = append(a.chunks, h.Data)
	if h.Next == 0 {
		a.done = true
	}
}

// Done reports whether the final chunk (Next == 0) has been seen.
func (a *Assembler) Done() bool {
	return a.done
}

// Bytes concatenates every chunk seen so far into one contiguous buffer.
func (a *Assembler) Bytes() []byte {
	var total int
	for _, c := range a.chunks {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for _, c := range a.chunks {
		out = append(out, c...)
	}
	return out
}
