package service

import (
	"context"
	"log/slog"

	"github.com/forgo/volunteer/internal/model"
)

// ApplicationObserver is anything registered with the application service.
// Observers opt into events by implementing ApplicationCreatedObserver,
// ApplicationStatusObserver, or both. An observer implementing neither is
// kept but never called.
type ApplicationObserver interface{}

// ApplicationCreatedObserver is notified after a new application is saved
type ApplicationCreatedObserver interface {
	OnApplicationCreated(ctx context.Context, application *model.Application)
}

// ApplicationStatusObserver is notified after a status update is saved
type ApplicationStatusObserver interface {
	OnApplicationStatusChanged(ctx context.Context, application *model.Application, oldStatus, newStatus string)
}

// ObserverFuncs adapts plain functions to both observer hooks. Nil
// functions are skipped. Register it by pointer.
type ObserverFuncs struct {
	Created       func(ctx context.Context, application *model.Application)
	StatusChanged func(ctx context.Context, application *model.Application, oldStatus, newStatus string)
}

// OnApplicationCreated implements ApplicationCreatedObserver
func (f *ObserverFuncs) OnApplicationCreated(ctx context.Context, application *model.Application) {
	if f.Created != nil {
		f.Created(ctx, application)
	}
}

// OnApplicationStatusChanged implements ApplicationStatusObserver
func (f *ObserverFuncs) OnApplicationStatusChanged(ctx context.Context, application *model.Application, oldStatus, newStatus string) {
	if f.StatusChanged != nil {
		f.StatusChanged(ctx, application, oldStatus, newStatus)
	}
}

// LoggingObserver writes application events to a structured logger
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger falls back to
// slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: componentLogger(logger, "application_observer")}
}

// OnApplicationCreated implements ApplicationCreatedObserver
func (o *LoggingObserver) OnApplicationCreated(ctx context.Context, application *model.Application) {
	o.logger.InfoContext(ctx, "application created", applicationAttrs(application)...)
}

// OnApplicationStatusChanged implements ApplicationStatusObserver
func (o *LoggingObserver) OnApplicationStatusChanged(ctx context.Context, application *model.Application, oldStatus, newStatus string) {
	attrs := append(applicationAttrs(application),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
	)
	o.logger.InfoContext(ctx, "application status changed", attrs...)
}

func applicationAttrs(application *model.Application) []any {
	attrs := []any{
		slog.Int("application_id", application.ID),
		slog.String("status", application.Status),
	}
	if application.Volunteer != nil {
		attrs = append(attrs, slog.String("volunteer", application.Volunteer.Email))
	}
	if application.Opportunity != nil {
		attrs = append(attrs, slog.Int("opportunity_id", application.Opportunity.ID))
	}
	return attrs
}
