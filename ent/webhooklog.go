// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

// WebhookLog is the model entity for the WebhookLog schema.
type WebhookLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CRM provider that sent the event
	Provider webhooklog.Provider `json:"provider,omitempty"`
	// Provider event classification, e.g. deal.stage_changed
	EventType string `json:"event_type,omitempty"`
	// Raw event payload as received
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Whether routing completed without error
	Processed bool `json:"processed,omitempty"`
	// Error message when processing failed
	ProcessingError string `json:"processing_error,omitempty"`
	// Resolved owning integration, when one was found
	IntegrationID int `json:"integration_id,omitempty"`
	// When the event arrived
	ReceivedAt   time.Time `json:"received_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhooklog.FieldPayload:
			values[i] = new([]byte)
		case webhooklog.FieldProcessed:
			values[i] = new(sql.NullBool)
		case webhooklog.FieldID, webhooklog.FieldIntegrationID:
			values[i] = new(sql.NullInt64)
		case webhooklog.FieldProvider, webhooklog.FieldEventType, webhooklog.FieldProcessingError:
			values[i] = new(sql.NullString)
		case webhooklog.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookLog fields.
func (_m *WebhookLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhooklog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case webhooklog.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = webhooklog.Provider(value.String)
			}
		case webhooklog.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case webhooklog.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case webhooklog.FieldProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed", values[i])
			} else if value.Valid {
				_m.Processed = value.Bool
			}
		case webhooklog.FieldProcessingError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_error", values[i])
			} else if value.Valid {
				_m.ProcessingError = value.String
			}
		case webhooklog.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case webhooklog.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookLog.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WebhookLog.
// Note that you need to call WebhookLog.Unwrap() before calling this method if this WebhookLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookLog) Update() *WebhookLogUpdateOne {
	return NewWebhookLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookLog) Unwrap() *WebhookLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookLog) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Processed))
	builder.WriteString(", ")
	builder.WriteString("processing_error=")
	builder.WriteString(_m.ProcessingError)
	builder.WriteString(", ")
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookLogs is a parsable slice of WebhookLog.
type WebhookLogs []*WebhookLog
