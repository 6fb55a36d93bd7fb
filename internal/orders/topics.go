package orders

import "strconv"

const TopicOrderPlaced = "order.placed"

// Partition key = order_id, so events of one order keep their ordering.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
