package commerce

const (
	TopicOrderPaid              = "commerce.order.paid"
	TopicOrderFulfilled         = "commerce.order.fulfilled"
	TopicFulfillmentFailed      = "commerce.order.fulfillment.failed"
	TopicEntitlementTransferred = "commerce.entitlement.transferred"
)

// Partition key = order_id (or package_id for transfers), so all events of
// one aggregate keep their order.
func PartitionKey(id string) []byte { return []byte(id) }
