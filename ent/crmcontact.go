// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
)

// CRMContact is the model entity for the CRMContact schema.
type CRMContact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CRM integration this contact was imported through
	IntegrationID int `json:"integration_id,omitempty"`
	// Contact identifier in the external CRM
	ExternalContactID string `json:"external_contact_id,omitempty"`
	// Contact email
	Email string `json:"email,omitempty"`
	// Contact first name
	FirstName string `json:"first_name,omitempty"`
	// Contact last name
	LastName string `json:"last_name,omitempty"`
	// Contact company name
	Company string `json:"company,omitempty"`
	// Contact phone number
	Phone string `json:"phone,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CRMContactQuery when eager-loading is set.
	Edges        CRMContactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CRMContactEdges holds the relations/edges for other nodes in the graph.
type CRMContactEdges struct {
	// Parent CRM integration
	Integration *CRMIntegration `json:"integration,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntegrationOrErr returns the Integration value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CRMContactEdges) IntegrationOrErr() (*CRMIntegration, error) {
	if e.Integration != nil {
		return e.Integration, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crmintegration.Label}
	}
	return nil, &NotLoadedError{edge: "integration"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CRMContact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crmcontact.FieldID, crmcontact.FieldIntegrationID:
			values[i] = new(sql.NullInt64)
		case crmcontact.FieldExternalContactID, crmcontact.FieldEmail, crmcontact.FieldFirstName, crmcontact.FieldLastName, crmcontact.FieldCompany, crmcontact.FieldPhone:
			values[i] = new(sql.NullString)
		case crmcontact.FieldCreatedAt, crmcontact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CRMContact fields.
func (_m *CRMContact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crmcontact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case crmcontact.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = int(value.Int64)
			}
		case crmcontact.FieldExternalContactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_contact_id", values[i])
			} else if value.Valid {
				_m.ExternalContactID = value.String
			}
		case crmcontact.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case crmcontact.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case crmcontact.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case crmcontact.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case crmcontact.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case crmcontact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case crmcontact.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CRMContact.
// This includes values selected through modifiers, order, etc.
func (_m *CRMContact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntegration queries the "integration" edge of the CRMContact entity.
func (_m *CRMContact) QueryIntegration() *CRMIntegrationQuery {
	return NewCRMContactClient(_m.config).QueryIntegration(_m)
}

// Update returns a builder for updating this CRMContact.
// Note that you need to call CRMContact.Unwrap() before calling this method if this CRMContact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CRMContact) Update() *CRMContactUpdateOne {
	return NewCRMContactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CRMContact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CRMContact) Unwrap() *CRMContact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CRMContact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CRMContact) String() string {
	var builder strings.Builder
	builder.WriteString("CRMContact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntegrationID))
	builder.WriteString(", ")
	builder.WriteString("external_contact_id=")
	builder.WriteString(_m.ExternalContactID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CRMContacts is a parsable slice of CRMContact.
type CRMContacts []*CRMContact
