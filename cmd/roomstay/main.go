package main

import (
	bookinghandler "roomstay/internal/bookings/handler"
	bookingrepo "roomstay/internal/bookings/repository"
	bookingservice "roomstay/internal/bookings/service"
	bookingvalidator "roomstay/internal/bookings/validator"
	"roomstay/internal/directory/handler"
	"roomstay/internal/directory/repository"
	"roomstay/internal/directory/service"
	"roomstay/internal/directory/validator"
	"roomstay/pkg/app"
	"roomstay/pkg/config"
	"roomstay/pkg/events"
	"roomstay/pkg/kafka"
	kafka_config "roomstay/pkg/kafka/config"
	kafka_middleware "roomstay/pkg/kafka/middleware"
	"roomstay/pkg/sequence"
)

const ServiceName = "roomstay"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting roomstay service")

	hotelPublisher, bookingPublisher, closeProducers := initPublishers(cfg)
	defer closeProducers()

	ids := sequence.NewAllocator()
	directory := repository.NewMemoryDirectory(ids)
	ledger := bookingrepo.NewMemoryLedger(bookingrepo.NewRoomLockRegistry(), ids)

	directoryService := service.NewDirectoryService(
		directory,
		validator.NewDirectoryValidator(cfg.Log),
		hotelPublisher,
		cfg,
	)
	bookingService := bookingservice.NewBookingService(
		ledger,
		directory,
		bookingvalidator.NewBookingValidator(cfg.Log),
		bookingPublisher,
		cfg,
	)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(directory, cfg.Log),
		handler.NewDirectoryHandler(directoryService, cfg.SimulateDefaultCount, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

// initPublishers builds one producer per topic, or noop publishers when no
// brokers are configured. The returned closer flushes both producers on
// shutdown.
func initPublishers(cfg *config.Config) (events.Publisher, events.Publisher, func()) {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	if !kafkaCfg.Enabled() {
		cfg.Log.Info("No Kafka brokers configured, event publishing disabled")
		return events.Noop(), events.Noop(), func() {}
	}

	hotelProducer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.TopicHotels, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create hotel event producer", "error", err)
	}
	bookingProducer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.TopicBookings, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create booking event producer", "error", err)
	}

	logging := kafka_middleware.LoggingProducerMiddleware(cfg.Log)
	hotelProducer.Use(logging)
	bookingProducer.Use(logging)

	cfg.Log.Info("Kafka event publishing enabled",
		"brokers", kafkaCfg.Brokers,
		"topic_hotels", kafkaCfg.TopicHotels,
		"topic_bookings", kafkaCfg.TopicBookings,
	)

	closer := func() {
		if err := hotelProducer.Close(); err != nil {
			cfg.Log.Error("Failed to close hotel event producer", "error", err)
		}
		if err := bookingProducer.Close(); err != nil {
			cfg.Log.Error("Failed to close booking event producer", "error", err)
		}
	}
	return hotelProducer, bookingProducer, closer
}
