package bus

import (
	"log/slog"
	"sync"
)

// HandlerRegistry owns the callables behind every HandlerID, with lifetime
// at least as long as any MessageBus referencing it. A handler may be
// registered under more than one capability shape (e.g. an endpoint handler
// and a response handler under the same ID) since the bus invokes by
// capability, not by identity.
//
// Grounded on the teacher's lifecycle.Dispatcher pattern of registering
// callables by id and invoking them through a stable indirection, adapted
// here to the bus's three invocation shapes instead of one.
type HandlerRegistry struct {
	mu        sync.RWMutex
	endpoints map[HandlerID]EndpointHandler
	topics    map[HandlerID]TopicHandler
	responses map[HandlerID]ResponseHandler
	logger    *slog.Logger
}

// NewHandlerRegistry creates an empty registry. A nil logger falls back to
// slog.Default().
func NewHandlerRegistry(logger *slog.Logger) *HandlerRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &HandlerRegistry{
		endpoints: make(map[HandlerID]EndpointHandler),
		topics:    make(map[HandlerID]TopicHandler),
		responses: make(map[HandlerID]ResponseHandler),
		logger:    logger,
	}
}

// RegisterEndpointHandler binds id to h for point-to-point sends. Response
// delivery uses only handlers bound with RegisterResponseHandler.
func (r *HandlerRegistry) RegisterEndpointHandler(id HandlerID, h EndpointHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[id] = h
}

// RegisterTopicHandler binds id to h for pub/sub delivery.
func (r *HandlerRegistry) RegisterTopicHandler(id HandlerID, h TopicHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics[id] = h
}

// RegisterResponseHandler binds id to h for request/response completions.
func (r *HandlerRegistry) RegisterResponseHandler(id HandlerID, h ResponseHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[id] = h
}

// Deregister removes every capability registered under id.
func (r *HandlerRegistry) Deregister(id HandlerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.endpoints, id)
	delete(r.topics, id)
	delete(r.responses, id)
}

// invokeEndpoint calls id's endpoint handler if one is registered. A missing
// handler is logged at DEBUG and otherwise ignored: the bus itself never
// raises an error for a handler-less endpoint, per §4.2.
func (r *HandlerRegistry) invokeEndpoint(id HandlerID, msg any) {
	r.mu.RLock()
	h, ok := r.endpoints[id]
	r.mu.RUnlock()
	if !ok {
		r.logger.Debug("bus: no endpoint handler registered", "handler_id", string(id))
		return
	}
	r.safeInvoke(string(id), func() { h(msg) })
}

// invokeTopic calls id's topic handler if one is registered.
func (r *HandlerRegistry) invokeTopic(id HandlerID, topic string, msg any) {
	r.mu.RLock()
	h, ok := r.topics[id]
	r.mu.RUnlock()
	if !ok {
		r.logger.Debug("bus: no topic handler registered", "handler_id", string(id), "topic", topic)
		return
	}
	r.safeInvoke(string(id), func() { h(topic, msg) })
}

// invokeResponse calls id's response handler if one is registered.
func (r *HandlerRegistry) invokeResponse(id HandlerID, msg any) {
	r.mu.RLock()
	h, ok := r.responses[id]
	r.mu.RUnlock()
	if !ok {
		r.logger.Debug("bus: no response handler registered", "handler_id", string(id))
		return
	}
	r.safeInvoke(string(id), func() { h(msg) })
}

// safeInvoke runs fn, recovering a panic into an ERROR log so one misbehaving
// handler cannot take down the dispatch thread or its siblings mid-publish.
func (r *HandlerRegistry) safeInvoke(handlerID string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("bus: handler panicked", "handler_id", handlerID, "panic", rec)
		}
	}()
	fn()
}
