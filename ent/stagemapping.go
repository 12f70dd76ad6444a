// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/stagemapping"
)

// StageMapping is the model entity for the StageMapping schema.
type StageMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning CRM integration
	IntegrationID int `json:"integration_id,omitempty"`
	// Internal proposal status value
	ProposalStatus string `json:"proposal_status,omitempty"`
	// Provider pipeline stage identifier
	ExternalStageID string `json:"external_stage_id,omitempty"`
	// Provider pipeline stage display name
	ExternalStageName string `json:"external_stage_name,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageMappingQuery when eager-loading is set.
	Edges        StageMappingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageMappingEdges holds the relations/edges for other nodes in the graph.
type StageMappingEdges struct {
	// Parent CRM integration
	Integration *CRMIntegration `json:"integration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntegrationOrErr returns the Integration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageMappingEdges) IntegrationOrErr() (*CRMIntegration, error) {
	if e.Integration != nil {
		return e.Integration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crmintegration.Label}
	}
	return nil, &NotLoadedError{edge: "integration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagemapping.FieldID, stagemapping.FieldIntegrationID:
			values[i] = new(sql.NullInt64)
		case stagemapping.FieldProposalStatus, stagemapping.FieldExternalStageID, stagemapping.FieldExternalStageName:
			values[i] = new(sql.NullString)
		case stagemapping.FieldCreatedAt, stagemapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageMapping fields.
func (_m *StageMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagemapping.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stagemapping.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case stagemapping.FieldProposalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_status", values[i])
			} else if value.Valid {
				_m.ProposalStatus = value.String
			}
		case stagemapping.FieldExternalStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_stage_id", values[i])
			} else if value.Valid {
				_m.ExternalStageID = value.String
			}
		case stagemapping.FieldExternalStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_stage_name", values[i])
			} else if value.Valid {
				_m.ExternalStageName = value.String
			}
		case stagemapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stagemapping.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageMapping.
// This includes values selected through modifiers, order, etc.
func (_m *StageMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntegration queries the "integration" edge of the StageMapping entity.
func (_m *StageMapping) QueryIntegration() *CRMIntegrationQuery {
	return NewStageMappingClient(_m.config).QueryIntegration(_m)
}

// Update returns a builder for updating this StageMapping.
// Note that you need to call StageMapping.Unwrap() before calling this method if this StageMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageMapping) Update() *StageMappingUpdateOne {
	return NewStageMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageMapping) Unwrap() *StageMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageMapping) String() string {
	var builder strings.Builder
	builder.WriteString("StageMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("proposal_status=")
	builder.WriteString(_m.ProposalStatus)
	builder.WriteString(", ")
	builder.WriteString("external_stage_id=")
	builder.WriteString(_m.ExternalStageID)
	builder.WriteString(", ")
	builder.WriteString("external_stage_name=")
	builder.WriteString(_m.ExternalStageName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageMappings is a parsable slice of StageMapping.
type StageMappings []*StageMapping
