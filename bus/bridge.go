package bus

import (
	"context"
	"log/slog"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Bridge mirrors selected internal bus traffic out as CloudEvents, for an
// external observability or streaming layer. Internal dispatch never touches
// CloudEvents on the hot path; only messages published to a topic that the
// Bridge's topic handler is subscribed to are serialized (point-to-point
// sends never reach it), matching the teacher's split between its native
// Module lifecycle (internal) and ObservableModule.EmitEvent (external),
// in observer_cloudevents.go and application_observer.go.
type Bridge struct {
	source string
	sink   func(ctx context.Context, event cloudevents.Event) error
	logger *slog.Logger
}

// NewBridge creates a Bridge that emits CloudEvents with the given source
// attribute, forwarding each to sink (a transport adapter is out of scope;
// the caller supplies the sink).
func NewBridge(source string, sink func(ctx context.Context, event cloudevents.Event) error, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{source: source, sink: sink, logger: logger}
}

// Handler returns a TopicHandler suitable for registration in a
// HandlerRegistry; it wraps every matching bus message as a CloudEvent and
// forwards it to the sink.
func (b *Bridge) Handler() TopicHandler {
	return func(topic string, msg any) {
		event := cloudevents.NewEvent()
		event.SetID(newEventID())
		event.SetSource(b.source)
		event.SetType(topic)
		event.SetTime(time.Now())
		event.SetSpecVersion(cloudevents.VersionV1)
		if msg != nil {
			if err := event.SetData(cloudevents.ApplicationJSON, msg); err != nil {
				b.logger.Warn("bus: bridge failed to encode event data", "topic", topic, "error", err)
				return
			}
		}
		if err := b.sink(context.Background(), event); err != nil {
			b.logger.Warn("bus: bridge sink rejected event", "topic", topic, "error", err)
		}
	}
}

func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
