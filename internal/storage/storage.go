// Package storage implements the snapshot and event ports of the service
// package on top of Redis, Postgres, Kafka and process memory.
package storage

import "restaurant-storefront/internal/service"

var (
	_ service.SnapshotStore       = (*MemorySnapshotStore)(nil)
	_ service.SnapshotStore       = (*RedisSnapshotStore)(nil)
	_ service.SnapshotStore       = (*PostgresSnapshotStore)(nil)
	_ service.OrderEventPublisher = (*KafkaPublisher)(nil)
)
