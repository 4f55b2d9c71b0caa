package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
)

// GormTracingPlugin wraps every database operation in an OpenTelemetry span.
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	callbacks := []struct {
		op       string
		register func(before, after func(*gorm.DB)) error
	}{
		{"SELECT", func(before, after func(*gorm.DB)) error {
			if err := db.Callback().Query().Before("gorm:query").Register("tracing:before_query", before); err != nil {
				return err
			}
			return db.Callback().Query().After("gorm:query").Register("tracing:after_query", after)
		}},
		{"INSERT", func(before, after func(*gorm.DB)) error {
			if err := db.Callback().Create().Before("gorm:create").Register("tracing:before_create", before); err != nil {
				return err
			}
			return db.Callback().Create().After("gorm:create").Register("tracing:after_create", after)
		}},
		{"UPDATE", func(before, after func(*gorm.DB)) error {
			if err := db.Callback().Update().Before("gorm:update").Register("tracing:before_update", before); err != nil {
				return err
			}
			return db.Callback().Update().After("gorm:update").Register("tracing:after_update", after)
		}},
		{"DELETE", func(before, after func(*gorm.DB)) error {
			if err := db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", before); err != nil {
				return err
			}
			return db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", after)
		}},
		{"RAW", func(before, after func(*gorm.DB)) error {
			if err := db.Callback().Raw().Before("gorm:raw").Register("tracing:before_raw", before); err != nil {
				return err
			}
			return db.Callback().Raw().After("gorm:raw").Register("tracing:after_raw", after)
		}},
	}
	for _, cb := range callbacks {
		op := cb.op
		if err := cb.register(p.before(op), p.after(op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := extractContext(db)
		spanName := fmt.Sprintf("%s %s", db.Statement.Table, op)
		ctx, span := p.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		spanValue, exists := db.Get(spanKey)
		if !exists {
			return
		}
		span, ok := spanValue.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		setSpanAttributes(span, db, op)
		// A missing row is an answer, not a failure.
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
}

func extractContext(db *gorm.DB) context.Context {
	if db.Statement == nil {
		return context.Background()
	}
	return db.Statement.Context
}

func setSpanAttributes(span trace.Span, db *gorm.DB, op string) {
	attributes := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
		attribute.String("db.name", db.Dialector.Name()),
		attribute.String("db.operation", op),
	}
	if db.Statement.Schema != nil {
		attributes = append(attributes, attribute.String("db.table", db.Statement.Schema.Table))
	} else if db.Statement.Table != "" {
		attributes = append(attributes, attribute.String("db.table", db.Statement.Table))
	}
	if db.Statement.SQL.String() != "" {
		attributes = append(attributes, attribute.String("db.statement", db.Statement.SQL.String()))
	}
	if db.Statement.RowsAffected > 0 {
		attributes = append(attributes, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attributes...)
}
