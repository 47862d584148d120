package kafka_config

import "time"

const (
	// No brokers by default: the engine is self-contained and event
	// publishing is opt-in.
	DefaultKafkaBrokers = ""

	DefaultTopicBookings = "roomstay.bookings"
	DefaultTopicHotels   = "roomstay.hotels"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 100 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // all
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
)
