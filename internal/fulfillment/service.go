package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/vitacare/commerce/internal/commerce"
	kafkax "github.com/vitacare/commerce/internal/kafka"
	"github.com/vitacare/commerce/internal/redisx"
)

type Service struct {
	Orders         *commerce.Repo
	Entitlements   *commerce.EntitlementRepo
	Redis          *redis.Client
	ProducerOK     *kafkax.Producer // publish order.fulfilled
	ProducerReject *kafkax.Producer // publish order.fulfillment.failed
	ServiceName    string
}

// HandleOrderPaid is mounted as the consumer handler for the paid topic:
// dedup by event id, route the order type to its flow, materialize
// entitlements where the flow calls for them, publish the outcome.
func (s *Service) HandleOrderPaid(ctx context.Context, m kafkago.Message) error {
	var env commerce.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != commerce.EventOrderPaid {
		return nil // ignore
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, "fulfillment", env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[commerce.OrderPaidPayload](env.Payload)
	if err != nil {
		return err
	}

	flow, err := commerce.ResolveFulfillmentFlow(p.OrderType)
	if err != nil {
		if errors.Is(err, commerce.ErrUnsupportedOrderType) {
			// data error, not retryable: report and commit
			slog.Error("unroutable order", "order_id", p.OrderID, "order_type", p.OrderType)
			s.publishFailed(p.OrderID, "UNSUPPORTED_ORDER_TYPE", env.TraceID)
			return nil
		}
		return err
	}

	var entitlementIDs []string
	switch flow {
	case commerce.FlowVoucher, commerce.FlowServicePackage:
		entitlementIDs, err = s.Entitlements.IssueForOrder(ctx, p.OrderID, p.UserID, flow, p.Items)
		if err != nil {
			return err
		}
	case commerce.FlowService:
		// physical goods: nothing to issue, the shipment pipeline takes over
	}

	if err := s.Orders.SetFulfillment(ctx, p.OrderID, flow); err != nil {
		return err
	}
	s.publishFulfilled(p.OrderID, flow, entitlementIDs, env.TraceID)
	return nil
}

func (s *Service) publishFulfilled(orderID string, flow commerce.FulfillmentFlow, ids []string, trace string) {
	ev := commerce.Envelope{
		EventID:       uuid.NewString(),
		EventType:     commerce.EventOrderFulfilled,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(commerce.OrderFulfilledPayload{
			OrderID: orderID, Flow: flow, EntitlementIDs: ids,
		}),
	}
	s.ProducerOK.Publish(commerce.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(commerce.EventOrderFulfilled)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (s *Service) publishFailed(orderID, reason, trace string) {
	ev := commerce.Envelope{
		EventID:       uuid.NewString(),
		EventType:     commerce.EventFulfillmentFailed,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(commerce.FulfillmentFailedPayload{
			OrderID: orderID, Reason: reason,
		}),
	}
	s.ProducerReject.Publish(commerce.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(commerce.EventFulfillmentFailed)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
