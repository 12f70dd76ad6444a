// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/user"
)

// CRMIntegration is the model entity for the CRMIntegration schema.
type CRMIntegration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User who owns this integration
	UserID int `json:"user_id,omitempty"`
	// CRM provider
	Provider crmintegration.Provider `json:"provider,omitempty"`
	// Whether integration is connected and usable
	Active bool `json:"active,omitempty"`
	// OAuth access token
	AccessToken string `json:"-"`
	// OAuth refresh token, cleared on disconnect
	RefreshToken string `json:"-"`
	// When access token expires
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	// Provider-side account identifier used to route inbound webhooks (portal id, org id, account domain)
	AccountID string `json:"account_id,omitempty"`
	// CRM instance URL (Salesforce)
	InstanceURL string `json:"instance_url,omitempty"`
	// Tenant API domain (Pipedrive, Zoho)
	APIDomain string `json:"api_domain,omitempty"`
	// Which sync directions are permitted
	SyncDirection crmintegration.SyncDirection `json:"sync_direction,omitempty"`
	// Periodically import provider contacts
	AutoSyncContacts bool `json:"auto_sync_contacts,omitempty"`
	// Proposal lifecycle events that trigger an outbound push
	StatusSyncEvents []string `json:"status_sync_events,omitempty"`
	// Last successful sync timestamp
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	// Last sync error message
	LastSyncError string `json:"last_sync_error,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CRMIntegrationQuery when eager-loading is set.
	Edges        CRMIntegrationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CRMIntegrationEdges holds the relations/edges for other nodes in the graph.
type CRMIntegrationEdges struct {
	// Integration owner
	User *User `json:"user,omitempty"`
	// Status-to-stage correspondences for this integration
	StageMappings []*StageMapping `json:"stage_mappings,omitempty"`
	// Proposal-to-deal associations under this integration
	DealLinks []*DealLink `json:"deal_links,omitempty"`
	// Locally mirrored provider contacts
	Contacts []*CRMContact `json:"contacts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CRMIntegrationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// StageMappingsOrErr returns the StageMappings value or an error if the edge
// was not loaded in eager-loading.
func (e CRMIntegrationEdges) StageMappingsOrErr() ([]*StageMapping, error) {
	if e.loadedTypes[1] {
		return e.StageMappings, nil
	}
	return nil, &NotLoadedError{edge: "stage_mappings"}
}

// DealLinksOrErr returns the DealLinks value or an error if the edge
// was not loaded in eager-loading.
func (e CRMIntegrationEdges) DealLinksOrErr() ([]*DealLink, error) {
	if e.loadedTypes[2] {
		return e.DealLinks, nil
	}
	return nil, &NotLoadedError{edge: "deal_links"}
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e CRMIntegrationEdges) ContactsOrErr() ([]*CRMContact, error) {
	if e.loadedTypes[3] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CRMIntegration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crmintegration.FieldStatusSyncEvents:
			values[i] = new([]byte)
		case crmintegration.FieldActive, crmintegration.FieldAutoSyncContacts:
			values[i] = new(sql.NullBool)
		case crmintegration.FieldID, crmintegration.FieldUserID:
			values[i] = new(sql.NullInt64)
		case crmintegration.FieldProvider, crmintegration.FieldAccessToken, crmintegration.FieldRefreshToken, crmintegration.FieldAccountID, crmintegration.FieldInstanceURL, crmintegration.FieldAPIDomain, crmintegration.FieldSyncDirection, crmintegration.FieldLastSyncError:
			values[i] = new(sql.NullString)
		case crmintegration.FieldTokenExpiresAt, crmintegration.FieldLastSyncAt, crmintegration.FieldCreatedAt, crmintegration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CRMIntegration fields.
func (_m *CRMIntegration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crmintegration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case crmintegration.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case crmintegration.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = crmintegration.Provider(value.String)
			}
		case crmintegration.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case crmintegration.FieldAccessToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token", values[i])
			} else if value.Valid {
				_m.AccessToken = value.String
			}
		case crmintegration.FieldRefreshToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token", values[i])
			} else if value.Valid {
				_m.RefreshToken = value.String
			}
		case crmintegration.FieldTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field token_expires_at", values[i])
			} else if value.Valid {
				_m.TokenExpiresAt = new(time.Time)
				*_m.TokenExpiresAt = value.Time
			}
		case crmintegration.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case crmintegration.FieldInstanceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_url", values[i])
			} else if value.Valid {
				_m.InstanceURL = value.String
			}
		case crmintegration.FieldAPIDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_domain", values[i])
			} else if value.Valid {
				_m.APIDomain = value.String
			}
		case crmintegration.FieldSyncDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sync_direction", values[i])
			} else if value.Valid {
				_m.SyncDirection = crmintegration.SyncDirection(value.String)
			}
		case crmintegration.FieldAutoSyncContacts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_sync_contacts", values[i])
			} else if value.Valid {
				_m.AutoSyncContacts = value.Bool
			}
		case crmintegration.FieldStatusSyncEvents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_sync_events", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusSyncEvents); err != nil {
					return fmt.Errorf("unmarshal field status_sync_events: %w", err)
				}
			}
		case crmintegration.FieldLastSyncAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_at", values[i])
			} else if value.Valid {
				_m.LastSyncAt = new(time.Time)
				*_m.LastSyncAt = value.Time
			}
		case crmintegration.FieldLastSyncError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_error", values[i])
			} else if value.Valid {
				_m.LastSyncError = value.String
			}
		case crmintegration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case crmintegration.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CRMIntegration.
// This includes values selected through modifiers, order, etc.
func (_m *CRMIntegration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CRMIntegration entity.
func (_m *CRMIntegration) QueryUser() *UserQuery {
	return NewCRMIntegrationClient(_m.config).QueryUser(_m)
}

// QueryStageMappings queries the "stage_mappings" edge of the CRMIntegration entity.
func (_m *CRMIntegration) QueryStageMappings() *StageMappingQuery {
	return NewCRMIntegrationClient(_m.config).QueryStageMappings(_m)
}

// QueryDealLinks queries the "deal_links" edge of the CRMIntegration entity.
func (_m *CRMIntegration) QueryDealLinks() *DealLinkQuery {
	return NewCRMIntegrationClient(_m.config).QueryDealLinks(_m)
}

// QueryContacts queries the "contacts" edge of the CRMIntegration entity.
func (_m *CRMIntegration) QueryContacts() *CRMContactQuery {
	return NewCRMIntegrationClient(_m.config).QueryContacts(_m)
}

// Update returns a builder for updating this CRMIntegration.
// Note that you need to call CRMIntegration.Unwrap() before calling this method if this CRMIntegration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CRMIntegration) Update() *CRMIntegrationUpdateOne {
	return NewCRMIntegrationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CRMIntegration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CRMIntegration) Unwrap() *CRMIntegration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CRMIntegration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CRMIntegration) String() string {
	var builder strings.Builder
	builder.WriteString("CRMIntegration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("access_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("refresh_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.TokenExpiresAt; v != nil {
		builder.WriteString("token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("instance_url=")
	builder.WriteString(_m.InstanceURL)
	builder.WriteString(", ")
	builder.WriteString("api_domain=")
	builder.WriteString(_m.APIDomain)
	builder.WriteString(", ")
	builder.WriteString("sync_direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncDirection))
	builder.WriteString(", ")
	builder.WriteString("auto_sync_contacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSyncContacts))
	builder.WriteString(", ")
	builder.WriteString("status_sync_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusSyncEvents))
	builder.WriteString(", ")
	if v := _m.LastSyncAt; v != nil {
		builder.WriteString("last_sync_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_sync_error=")
	builder.WriteString(_m.LastSyncError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CRMIntegrations is a parsable slice of CRMIntegration.
type CRMIntegrations []*CRMIntegration
