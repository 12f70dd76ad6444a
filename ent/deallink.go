// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/proposal"
)

// DealLink is the model entity for the DealLink schema.
type DealLink struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CRM integration this link belongs to
	IntegrationID int `json:"integration_id,omitempty"`
	// Linked proposal
	ProposalID int `json:"proposal_id,omitempty"`
	// Deal identifier in the external CRM
	ExternalDealID string `json:"external_deal_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DealLinkQuery when eager-loading is set.
	Edges        DealLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DealLinkEdges holds the relations/edges for other nodes in the graph.
type DealLinkEdges struct {
	// Parent CRM integration
	Integration *CRMIntegration `json:"integration,omitempty"`
	// Linked proposal
	Proposal *Proposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// IntegrationOrErr returns the Integration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealLinkEdges) IntegrationOrErr() (*CRMIntegration, error) {
	if e.Integration != nil {
		return e.Integration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crmintegration.Label}
	}
	return nil, &NotLoadedError{edge: "integration"}
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DealLinkEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DealLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deallink.FieldID, deallink.FieldIntegrationID, deallink.FieldProposalID:
			values[i] = new(sql.NullInt64)
		case deallink.FieldExternalDealID:
			values[i] = new(sql.NullString)
		case deallink.FieldCreatedAt, deallink.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DealLink fields.
func (_m *DealLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deallink.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deallink.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case deallink.FieldProposalID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value.Valid {
				_m.ProposalID = int(value.Int64)
			}
		case deallink.FieldExternalDealID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_deal_id", values[i])
			} else if value.Valid {
				_m.ExternalDealID = value.String
			}
		case deallink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deallink.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DealLink.
// This includes values selected through modifiers, order, etc.
func (_m *DealLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntegration queries the "integration" edge of the DealLink entity.
func (_m *DealLink) QueryIntegration() *CRMIntegrationQuery {
	return NewDealLinkClient(_m.config).QueryIntegration(_m)
}

// QueryProposal queries the "proposal" edge of the DealLink entity.
func (_m *DealLink) QueryProposal() *ProposalQuery {
	return NewDealLinkClient(_m.config).QueryProposal(_m)
}

// Update returns a builder for updating this DealLink.
// Note that you need to call DealLink.Unwrap() before calling this method if this DealLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DealLink) Update() *DealLinkUpdateOne {
	return NewDealLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DealLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DealLink) Unwrap() *DealLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DealLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DealLink) String() string {
	var builder strings.Builder
	builder.WriteString("DealLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("external_deal_id=")
	builder.WriteString(_m.ExternalDealID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DealLinks is a parsable slice of DealLink.
type DealLinks []*DealLink
