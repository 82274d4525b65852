package gecko

import "log/slog"

// Dispatcher walks a registry of live handlers against each inbound
// payload, in registration order, removing handlers that report
// should_remove_handler after a match. It is single-threaded and
// single-writer by design (spec's concurrency model rules out internal
// locking): the collaborator's receive loop is expected to call Dispatch
// from one goroutine at a time.
type Dispatcher struct {
	logger   *slog.Logger
	handlers []Handler
}

// NewDispatcher constructs an empty dispatcher. A nil logger falls back
// to slog.Default(). Handler packages take no logger; the dispatcher is
// the only part of the core that logs.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger}
}

// Register adds h to the registry. Order matters: Dispatch tries
// handlers in registration order and stops at the first match.
func (d *Dispatcher) Register(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Handlers returns the live handler registry. Callers must not retain
// the slice across a Dispatch call — the backing array may be replaced
// when terminal handlers are pruned.
func (d *Dispatcher) Handlers() []Handler {
	return d.handlers
}

// Dispatch classifies payload against each registered handler in order,
// calls Handle on the first match, prunes it if it just went terminal,
// and reports which handler (if any) consumed the frame. It returns
// ErrNoHandler if no registered handler claims the payload.
func (d *Dispatcher) Dispatch(payload []byte, parms ConnectionParms, remoteAddr string) (Handler, error) {
	for i, h := range d.handlers {
		if !h.CanHandle(payload, parms) {
			continue
		}

		_, err := h.Handle(payload, remoteAddr)
		if err != nil {
			d.logger.Warn("handler reported parse failure", "err", err)
			return h, err
		}

		if h.ShouldRemoveHandler() {
			d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
		}

		return h, nil
	}

	return nil, ErrNoHandler
}
