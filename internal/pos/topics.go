package pos

const (
	TopicOrderCreated = "pos.order.created"
	TopicStockLow     = "pos.stock.low"
)

// Partition key = order_id / product_id supaya urutan event per entitas terjaga.
func PartitionKey(id string) []byte { return []byte(id) }
