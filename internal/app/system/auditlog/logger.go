// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"

	"github.com/dalemusser/devcamper/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for bootcamp create/update/delete events.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Admin string
	// Geocode controls logging for geocoding outcomes, which carry the raw address.
	// Same values as Admin.
	Geocode string
}

// EventStore persists audit events. *audit.Store satisfies it.
type EventStore interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger provides convenience methods for logging audit events.
// It logs to both MongoDB (via EventStore) and structured logs (via zap).
type Logger struct {
	store  EventStore
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store EventStore, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
	}
	if event.BootcampID != nil {
		fields = append(fields, zap.String("bootcamp_id", event.BootcampID.Hex()))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAdmin:
		setting = l.config.Admin
	case audit.CategoryGeocode:
		setting = l.config.Geocode
	}
	if setting == "" {
		setting = "all"
	}
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// --- Bootcamp events ---

func (l *Logger) bootcampEvent(ctx context.Context, eventType string, id primitive.ObjectID, name, slug string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  eventType,
		BootcampID: &id,
		Success:    true,
		Details: map[string]string{
			"name": name,
			"slug": slug,
		},
	})
}

// BootcampCreated logs a newly persisted bootcamp.
func (l *Logger) BootcampCreated(ctx context.Context, id primitive.ObjectID, name, slug string) {
	l.bootcampEvent(ctx, audit.EventBootcampCreated, id, name, slug)
}

// BootcampUpdated logs a saved change to an existing bootcamp.
func (l *Logger) BootcampUpdated(ctx context.Context, id primitive.ObjectID, name, slug string) {
	l.bootcampEvent(ctx, audit.EventBootcampUpdated, id, name, slug)
}

// BootcampDeleted logs a removed bootcamp.
func (l *Logger) BootcampDeleted(ctx context.Context, id primitive.ObjectID) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryAdmin,
		EventType:  audit.EventBootcampDeleted,
		BootcampID: &id,
		Success:    true,
	})
}

// --- Geocode events ---

// Geocoded records the raw address that produced a bootcamp's location.
func (l *Logger) Geocoded(ctx context.Context, id primitive.ObjectID, address, formatted string) {
	l.Log(ctx, audit.Event{
		Category:   audit.CategoryGeocode,
		EventType:  audit.EventBootcampGeocoded,
		BootcampID: &id,
		Success:    true,
		Details: map[string]string{
			"address":           address,
			"formatted_address": formatted,
		},
	})
}

// GeocodeFailed records an address the provider could not resolve.
// id is nil for a create that never got persisted.
func (l *Logger) GeocodeFailed(ctx context.Context, id *primitive.ObjectID, name, address, reason string) {
	l.Log(ctx, audit.Event{
		Category:      audit.CategoryGeocode,
		EventType:     audit.EventBootcampGeocodeFailed,
		BootcampID:    id,
		Success:       false,
		FailureReason: reason,
		Details: map[string]string{
			"name":    name,
			"address": address,
		},
	})
}
