// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dealpage/dealpage/ent/crmcontact"
	"github.com/dealpage/dealpage/ent/crmintegration"
	"github.com/dealpage/dealpage/ent/deallink"
	"github.com/dealpage/dealpage/ent/predicate"
	"github.com/dealpage/dealpage/ent/proposal"
	"github.com/dealpage/dealpage/ent/stagemapping"
	"github.com/dealpage/dealpage/ent/user"
	"github.com/dealpage/dealpage/ent/webhooklog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCRMContact     = "CRMContact"
	TypeCRMIntegration = "CRMIntegration"
	TypeDealLink       = "DealLink"
	TypeProposal       = "Proposal"
	TypeStageMapping   = "StageMapping"
	TypeUser           = "User"
	TypeWebhookLog     = "WebhookLog"
)

// CRMContactMutation represents an operation that mutates the CRMContact nodes in the graph.
type CRMContactMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	external_contact_id *string
	email               *string
	first_name          *string
	last_name           *string
	company             *string
	phone               *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	integration         *int
	clearedintegration  bool
	done                bool
	oldValue            func(context.Context) (*CRMContact, error)
	predicates          []predicate.CRMContact
}

var _ ent.Mutation = (*CRMContactMutation)(nil)

// crmcontactOption allows management of the mutation configuration using functional options.
type crmcontactOption func(*CRMContactMutation)

// newCRMContactMutation creates new mutation for the CRMContact entity.
func newCRMContactMutation(c config, op Op, opts ...crmcontactOption) *CRMContactMutation {
	m := &CRMContactMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMContactID sets the ID field of the mutation.
func withCRMContactID(id int) crmcontactOption {
	return func(m *CRMContactMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMContact
		)
		m.oldValue = func(ctx context.Context) (*CRMContact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMContact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMContact sets the old CRMContact of the mutation.
func withCRMContact(node *CRMContact) crmcontactOption {
	return func(m *CRMContactMutation) {
		m.oldValue = func(context.Context) (*CRMContact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMContactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMContactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMContact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationID sets the "integration_id" field.
func (m *CRMContactMutation) SetIntegrationID(i int) {
	m.integration = &i
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *CRMContactMutation) IntegrationID() (r int, exists bool) {
	v := m.integration
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldIntegrationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *CRMContactMutation) ResetIntegrationID() {
	m.integration = nil
}

// SetExternalContactID sets the "external_contact_id" field.
func (m *CRMContactMutation) SetExternalContactID(s string) {
	m.external_contact_id = &s
}

// ExternalContactID returns the value of the "external_contact_id" field in the mutation.
func (m *CRMContactMutation) ExternalContactID() (r string, exists bool) {
	v := m.external_contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalContactID returns the old "external_contact_id" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldExternalContactID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalContactID: %w", err)
	}
	return oldValue.ExternalContactID, nil
}

// ResetExternalContactID resets all changes to the "external_contact_id" field.
func (m *CRMContactMutation) ResetExternalContactID() {
	m.external_contact_id = nil
}

// SetEmail sets the "email" field.
func (m *CRMContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CRMContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CRMContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[crmcontact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CRMContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CRMContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, crmcontact.FieldEmail)
}

// SetFirstName sets the "first_name" field.
func (m *CRMContactMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *CRMContactMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *CRMContactMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[crmcontact.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *CRMContactMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *CRMContactMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, crmcontact.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *CRMContactMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *CRMContactMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *CRMContactMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[crmcontact.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *CRMContactMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *CRMContactMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, crmcontact.FieldLastName)
}

// SetCompany sets the "company" field.
func (m *CRMContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *CRMContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *CRMContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[crmcontact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *CRMContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *CRMContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, crmcontact.FieldCompany)
}

// SetPhone sets the "phone" field.
func (m *CRMContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CRMContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CRMContactMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[crmcontact.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CRMContactMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CRMContactMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, crmcontact.FieldPhone)
}

// SetCreatedAt sets the "created_at" field.
func (m *CRMContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CRMContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CRMContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CRMContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CRMContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CRMContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (m *CRMContactMutation) ClearIntegration() {
	m.clearedintegration = true
	m.clearedFields[crmcontact.FieldIntegrationID] = struct{}{}
}

// IntegrationCleared reports if the "integration" edge to the CRMIntegration entity was cleared.
func (m *CRMContactMutation) IntegrationCleared() bool {
	return m.clearedintegration
}

// IntegrationIDs returns the "integration" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntegrationID instead. It exists only for internal usage by the builders.
func (m *CRMContactMutation) IntegrationIDs() (ids []int) {
	if id := m.integration; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntegration resets all changes to the "integration" edge.
func (m *CRMContactMutation) ResetIntegration() {
	m.integration = nil
	m.clearedintegration = false
}

// Where appends a list predicates to the CRMContactMutation builder.
func (m *CRMContactMutation) Where(ps ...predicate.CRMContact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMContact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMContact).
func (m *CRMContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMContactMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.integration != nil {
		fields = append(fields, crmcontact.FieldIntegrationID)
	}
	if m.external_contact_id != nil {
		fields = append(fields, crmcontact.FieldExternalContactID)
	}
	if m.email != nil {
		fields = append(fields, crmcontact.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, crmcontact.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, crmcontact.FieldLastName)
	}
	if m.company != nil {
		fields = append(fields, crmcontact.FieldCompany)
	}
	if m.phone != nil {
		fields = append(fields, crmcontact.FieldPhone)
	}
	if m.created_at != nil {
		fields = append(fields, crmcontact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crmcontact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmcontact.FieldIntegrationID:
		return m.IntegrationID()
	case crmcontact.FieldExternalContactID:
		return m.ExternalContactID()
	case crmcontact.FieldEmail:
		return m.Email()
	case crmcontact.FieldFirstName:
		return m.FirstName()
	case crmcontact.FieldLastName:
		return m.LastName()
	case crmcontact.FieldCompany:
		return m.Company()
	case crmcontact.FieldPhone:
		return m.Phone()
	case crmcontact.FieldCreatedAt:
		return m.CreatedAt()
	case crmcontact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmcontact.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case crmcontact.FieldExternalContactID:
		return m.OldExternalContactID(ctx)
	case crmcontact.FieldEmail:
		return m.OldEmail(ctx)
	case crmcontact.FieldFirstName:
		return m.OldFirstName(ctx)
	case crmcontact.FieldLastName:
		return m.OldLastName(ctx)
	case crmcontact.FieldCompany:
		return m.OldCompany(ctx)
	case crmcontact.FieldPhone:
		return m.OldPhone(ctx)
	case crmcontact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crmcontact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMContact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmcontact.FieldIntegrationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case crmcontact.FieldExternalContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalContactID(v)
		return nil
	case crmcontact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case crmcontact.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case crmcontact.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case crmcontact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case crmcontact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case crmcontact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crmcontact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMContact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMContactMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMContactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CRMContact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmcontact.FieldEmail) {
		fields = append(fields, crmcontact.FieldEmail)
	}
	if m.FieldCleared(crmcontact.FieldFirstName) {
		fields = append(fields, crmcontact.FieldFirstName)
	}
	if m.FieldCleared(crmcontact.FieldLastName) {
		fields = append(fields, crmcontact.FieldLastName)
	}
	if m.FieldCleared(crmcontact.FieldCompany) {
		fields = append(fields, crmcontact.FieldCompany)
	}
	if m.FieldCleared(crmcontact.FieldPhone) {
		fields = append(fields, crmcontact.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMContactMutation) ClearField(name string) error {
	switch name {
	case crmcontact.FieldEmail:
		m.ClearEmail()
		return nil
	case crmcontact.FieldFirstName:
		m.ClearFirstName()
		return nil
	case crmcontact.FieldLastName:
		m.ClearLastName()
		return nil
	case crmcontact.FieldCompany:
		m.ClearCompany()
		return nil
	case crmcontact.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown CRMContact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMContactMutation) ResetField(name string) error {
	switch name {
	case crmcontact.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case crmcontact.FieldExternalContactID:
		m.ResetExternalContactID()
		return nil
	case crmcontact.FieldEmail:
		m.ResetEmail()
		return nil
	case crmcontact.FieldFirstName:
		m.ResetFirstName()
		return nil
	case crmcontact.FieldLastName:
		m.ResetLastName()
		return nil
	case crmcontact.FieldCompany:
		m.ResetCompany()
		return nil
	case crmcontact.FieldPhone:
		m.ResetPhone()
		return nil
	case crmcontact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crmcontact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMContact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.integration != nil {
		edges = append(edges, crmcontact.EdgeIntegration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crmcontact.EdgeIntegration:
		if id := m.integration; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintegration {
		edges = append(edges, crmcontact.EdgeIntegration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMContactMutation) EdgeCleared(name string) bool {
	switch name {
	case crmcontact.EdgeIntegration:
		return m.clearedintegration
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMContactMutation) ClearEdge(name string) error {
	switch name {
	case crmcontact.EdgeIntegration:
		m.ClearIntegration()
		return nil
	}
	return fmt.Errorf("unknown CRMContact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMContactMutation) ResetEdge(name string) error {
	switch name {
	case crmcontact.EdgeIntegration:
		m.ResetIntegration()
		return nil
	}
	return fmt.Errorf("unknown CRMContact edge %s", name)
}

// CRMIntegrationMutation represents an operation that mutates the CRMIntegration nodes in the graph.
type CRMIntegrationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	provider                 *crmintegration.Provider
	active                   *bool
	access_token             *string
	refresh_token            *string
	token_expires_at         *time.Time
	account_id               *string
	instance_url             *string
	api_domain               *string
	sync_direction           *crmintegration.SyncDirection
	auto_sync_contacts       *bool
	status_sync_events       *[]string
	appendstatus_sync_events []string
	last_sync_at             *time.Time
	last_sync_error          *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	user                     *int
	cleareduser              bool
	stage_mappings           map[int]struct{}
	removedstage_mappings    map[int]struct{}
	clearedstage_mappings    bool
	deal_links               map[int]struct{}
	removeddeal_links        map[int]struct{}
	cleareddeal_links        bool
	contacts                 map[int]struct{}
	removedcontacts          map[int]struct{}
	clearedcontacts          bool
	done                     bool
	oldValue                 func(context.Context) (*CRMIntegration, error)
	predicates               []predicate.CRMIntegration
}

var _ ent.Mutation = (*CRMIntegrationMutation)(nil)

// crmintegrationOption allows management of the mutation configuration using functional options.
type crmintegrationOption func(*CRMIntegrationMutation)

// newCRMIntegrationMutation creates new mutation for the CRMIntegration entity.
func newCRMIntegrationMutation(c config, op Op, opts ...crmintegrationOption) *CRMIntegrationMutation {
	m := &CRMIntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMIntegrationID sets the ID field of the mutation.
func withCRMIntegrationID(id int) crmintegrationOption {
	return func(m *CRMIntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMIntegration
		)
		m.oldValue = func(ctx context.Context) (*CRMIntegration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMIntegration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMIntegration sets the old CRMIntegration of the mutation.
func withCRMIntegration(node *CRMIntegration) crmintegrationOption {
	return func(m *CRMIntegrationMutation) {
		m.oldValue = func(context.Context) (*CRMIntegration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMIntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMIntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMIntegrationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMIntegrationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMIntegration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CRMIntegrationMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CRMIntegrationMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CRMIntegrationMutation) ResetUserID() {
	m.user = nil
}

// SetProvider sets the "provider" field.
func (m *CRMIntegrationMutation) SetProvider(c crmintegration.Provider) {
	m.provider = &c
}

// Provider returns the value of the "provider" field in the mutation.
func (m *CRMIntegrationMutation) Provider() (r crmintegration.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldProvider(ctx context.Context) (v crmintegration.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *CRMIntegrationMutation) ResetProvider() {
	m.provider = nil
}

// SetActive sets the "active" field.
func (m *CRMIntegrationMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *CRMIntegrationMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *CRMIntegrationMutation) ResetActive() {
	m.active = nil
}

// SetAccessToken sets the "access_token" field.
func (m *CRMIntegrationMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *CRMIntegrationMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *CRMIntegrationMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRefreshToken sets the "refresh_token" field.
func (m *CRMIntegrationMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *CRMIntegrationMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ClearRefreshToken clears the value of the "refresh_token" field.
func (m *CRMIntegrationMutation) ClearRefreshToken() {
	m.refresh_token = nil
	m.clearedFields[crmintegration.FieldRefreshToken] = struct{}{}
}

// RefreshTokenCleared returns if the "refresh_token" field was cleared in this mutation.
func (m *CRMIntegrationMutation) RefreshTokenCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldRefreshToken]
	return ok
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *CRMIntegrationMutation) ResetRefreshToken() {
	m.refresh_token = nil
	delete(m.clearedFields, crmintegration.FieldRefreshToken)
}

// SetTokenExpiresAt sets the "token_expires_at" field.
func (m *CRMIntegrationMutation) SetTokenExpiresAt(t time.Time) {
	m.token_expires_at = &t
}

// TokenExpiresAt returns the value of the "token_expires_at" field in the mutation.
func (m *CRMIntegrationMutation) TokenExpiresAt() (r time.Time, exists bool) {
	v := m.token_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenExpiresAt returns the old "token_expires_at" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldTokenExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenExpiresAt: %w", err)
	}
	return oldValue.TokenExpiresAt, nil
}

// ClearTokenExpiresAt clears the value of the "token_expires_at" field.
func (m *CRMIntegrationMutation) ClearTokenExpiresAt() {
	m.token_expires_at = nil
	m.clearedFields[crmintegration.FieldTokenExpiresAt] = struct{}{}
}

// TokenExpiresAtCleared returns if the "token_expires_at" field was cleared in this mutation.
func (m *CRMIntegrationMutation) TokenExpiresAtCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldTokenExpiresAt]
	return ok
}

// ResetTokenExpiresAt resets all changes to the "token_expires_at" field.
func (m *CRMIntegrationMutation) ResetTokenExpiresAt() {
	m.token_expires_at = nil
	delete(m.clearedFields, crmintegration.FieldTokenExpiresAt)
}

// SetAccountID sets the "account_id" field.
func (m *CRMIntegrationMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *CRMIntegrationMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *CRMIntegrationMutation) ResetAccountID() {
	m.account_id = nil
}

// SetInstanceURL sets the "instance_url" field.
func (m *CRMIntegrationMutation) SetInstanceURL(s string) {
	m.instance_url = &s
}

// InstanceURL returns the value of the "instance_url" field in the mutation.
func (m *CRMIntegrationMutation) InstanceURL() (r string, exists bool) {
	v := m.instance_url
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceURL returns the old "instance_url" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldInstanceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceURL: %w", err)
	}
	return oldValue.InstanceURL, nil
}

// ClearInstanceURL clears the value of the "instance_url" field.
func (m *CRMIntegrationMutation) ClearInstanceURL() {
	m.instance_url = nil
	m.clearedFields[crmintegration.FieldInstanceURL] = struct{}{}
}

// InstanceURLCleared returns if the "instance_url" field was cleared in this mutation.
func (m *CRMIntegrationMutation) InstanceURLCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldInstanceURL]
	return ok
}

// ResetInstanceURL resets all changes to the "instance_url" field.
func (m *CRMIntegrationMutation) ResetInstanceURL() {
	m.instance_url = nil
	delete(m.clearedFields, crmintegration.FieldInstanceURL)
}

// SetAPIDomain sets the "api_domain" field.
func (m *CRMIntegrationMutation) SetAPIDomain(s string) {
	m.api_domain = &s
}

// APIDomain returns the value of the "api_domain" field in the mutation.
func (m *CRMIntegrationMutation) APIDomain() (r string, exists bool) {
	v := m.api_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIDomain returns the old "api_domain" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldAPIDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIDomain: %w", err)
	}
	return oldValue.APIDomain, nil
}

// ClearAPIDomain clears the value of the "api_domain" field.
func (m *CRMIntegrationMutation) ClearAPIDomain() {
	m.api_domain = nil
	m.clearedFields[crmintegration.FieldAPIDomain] = struct{}{}
}

// APIDomainCleared returns if the "api_domain" field was cleared in this mutation.
func (m *CRMIntegrationMutation) APIDomainCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldAPIDomain]
	return ok
}

// ResetAPIDomain resets all changes to the "api_domain" field.
func (m *CRMIntegrationMutation) ResetAPIDomain() {
	m.api_domain = nil
	delete(m.clearedFields, crmintegration.FieldAPIDomain)
}

// SetSyncDirection sets the "sync_direction" field.
func (m *CRMIntegrationMutation) SetSyncDirection(cd crmintegration.SyncDirection) {
	m.sync_direction = &cd
}

// SyncDirection returns the value of the "sync_direction" field in the mutation.
func (m *CRMIntegrationMutation) SyncDirection() (r crmintegration.SyncDirection, exists bool) {
	v := m.sync_direction
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncDirection returns the old "sync_direction" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldSyncDirection(ctx context.Context) (v crmintegration.SyncDirection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncDirection: %w", err)
	}
	return oldValue.SyncDirection, nil
}

// ResetSyncDirection resets all changes to the "sync_direction" field.
func (m *CRMIntegrationMutation) ResetSyncDirection() {
	m.sync_direction = nil
}

// SetAutoSyncContacts sets the "auto_sync_contacts" field.
func (m *CRMIntegrationMutation) SetAutoSyncContacts(b bool) {
	m.auto_sync_contacts = &b
}

// AutoSyncContacts returns the value of the "auto_sync_contacts" field in the mutation.
func (m *CRMIntegrationMutation) AutoSyncContacts() (r bool, exists bool) {
	v := m.auto_sync_contacts
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoSyncContacts returns the old "auto_sync_contacts" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldAutoSyncContacts(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoSyncContacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoSyncContacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoSyncContacts: %w", err)
	}
	return oldValue.AutoSyncContacts, nil
}

// ResetAutoSyncContacts resets all changes to the "auto_sync_contacts" field.
func (m *CRMIntegrationMutation) ResetAutoSyncContacts() {
	m.auto_sync_contacts = nil
}

// SetStatusSyncEvents sets the "status_sync_events" field.
func (m *CRMIntegrationMutation) SetStatusSyncEvents(s []string) {
	m.status_sync_events = &s
	m.appendstatus_sync_events = nil
}

// StatusSyncEvents returns the value of the "status_sync_events" field in the mutation.
func (m *CRMIntegrationMutation) StatusSyncEvents() (r []string, exists bool) {
	v := m.status_sync_events
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusSyncEvents returns the old "status_sync_events" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldStatusSyncEvents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusSyncEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusSyncEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusSyncEvents: %w", err)
	}
	return oldValue.StatusSyncEvents, nil
}

// AppendStatusSyncEvents adds s to the "status_sync_events" field.
func (m *CRMIntegrationMutation) AppendStatusSyncEvents(s []string) {
	m.appendstatus_sync_events = append(m.appendstatus_sync_events, s...)
}

// AppendedStatusSyncEvents returns the list of values that were appended to the "status_sync_events" field in this mutation.
func (m *CRMIntegrationMutation) AppendedStatusSyncEvents() ([]string, bool) {
	if len(m.appendstatus_sync_events) == 0 {
		return nil, false
	}
	return m.appendstatus_sync_events, true
}

// ClearStatusSyncEvents clears the value of the "status_sync_events" field.
func (m *CRMIntegrationMutation) ClearStatusSyncEvents() {
	m.status_sync_events = nil
	m.appendstatus_sync_events = nil
	m.clearedFields[crmintegration.FieldStatusSyncEvents] = struct{}{}
}

// StatusSyncEventsCleared returns if the "status_sync_events" field was cleared in this mutation.
func (m *CRMIntegrationMutation) StatusSyncEventsCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldStatusSyncEvents]
	return ok
}

// ResetStatusSyncEvents resets all changes to the "status_sync_events" field.
func (m *CRMIntegrationMutation) ResetStatusSyncEvents() {
	m.status_sync_events = nil
	m.appendstatus_sync_events = nil
	delete(m.clearedFields, crmintegration.FieldStatusSyncEvents)
}

// SetLastSyncAt sets the "last_sync_at" field.
func (m *CRMIntegrationMutation) SetLastSyncAt(t time.Time) {
	m.last_sync_at = &t
}

// LastSyncAt returns the value of the "last_sync_at" field in the mutation.
func (m *CRMIntegrationMutation) LastSyncAt() (r time.Time, exists bool) {
	v := m.last_sync_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncAt returns the old "last_sync_at" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldLastSyncAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncAt: %w", err)
	}
	return oldValue.LastSyncAt, nil
}

// ClearLastSyncAt clears the value of the "last_sync_at" field.
func (m *CRMIntegrationMutation) ClearLastSyncAt() {
	m.last_sync_at = nil
	m.clearedFields[crmintegration.FieldLastSyncAt] = struct{}{}
}

// LastSyncAtCleared returns if the "last_sync_at" field was cleared in this mutation.
func (m *CRMIntegrationMutation) LastSyncAtCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldLastSyncAt]
	return ok
}

// ResetLastSyncAt resets all changes to the "last_sync_at" field.
func (m *CRMIntegrationMutation) ResetLastSyncAt() {
	m.last_sync_at = nil
	delete(m.clearedFields, crmintegration.FieldLastSyncAt)
}

// SetLastSyncError sets the "last_sync_error" field.
func (m *CRMIntegrationMutation) SetLastSyncError(s string) {
	m.last_sync_error = &s
}

// LastSyncError returns the value of the "last_sync_error" field in the mutation.
func (m *CRMIntegrationMutation) LastSyncError() (r string, exists bool) {
	v := m.last_sync_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncError returns the old "last_sync_error" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldLastSyncError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncError: %w", err)
	}
	return oldValue.LastSyncError, nil
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (m *CRMIntegrationMutation) ClearLastSyncError() {
	m.last_sync_error = nil
	m.clearedFields[crmintegration.FieldLastSyncError] = struct{}{}
}

// LastSyncErrorCleared returns if the "last_sync_error" field was cleared in this mutation.
func (m *CRMIntegrationMutation) LastSyncErrorCleared() bool {
	_, ok := m.clearedFields[crmintegration.FieldLastSyncError]
	return ok
}

// ResetLastSyncError resets all changes to the "last_sync_error" field.
func (m *CRMIntegrationMutation) ResetLastSyncError() {
	m.last_sync_error = nil
	delete(m.clearedFields, crmintegration.FieldLastSyncError)
}

// SetCreatedAt sets the "created_at" field.
func (m *CRMIntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CRMIntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CRMIntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CRMIntegrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CRMIntegrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CRMIntegration entity.
// If the CRMIntegration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMIntegrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CRMIntegrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *CRMIntegrationMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[crmintegration.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *CRMIntegrationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *CRMIntegrationMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *CRMIntegrationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddStageMappingIDs adds the "stage_mappings" edge to the StageMapping entity by ids.
func (m *CRMIntegrationMutation) AddStageMappingIDs(ids ...int) {
	if m.stage_mappings == nil {
		m.stage_mappings = make(map[int]struct{})
	}
	for i := range ids {
		m.stage_mappings[ids[i]] = struct{}{}
	}
}

// ClearStageMappings clears the "stage_mappings" edge to the StageMapping entity.
func (m *CRMIntegrationMutation) ClearStageMappings() {
	m.clearedstage_mappings = true
}

// StageMappingsCleared reports if the "stage_mappings" edge to the StageMapping entity was cleared.
func (m *CRMIntegrationMutation) StageMappingsCleared() bool {
	return m.clearedstage_mappings
}

// RemoveStageMappingIDs removes the "stage_mappings" edge to the StageMapping entity by IDs.
func (m *CRMIntegrationMutation) RemoveStageMappingIDs(ids ...int) {
	if m.removedstage_mappings == nil {
		m.removedstage_mappings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stage_mappings, ids[i])
		m.removedstage_mappings[ids[i]] = struct{}{}
	}
}

// RemovedStageMappings returns the removed IDs of the "stage_mappings" edge to the StageMapping entity.
func (m *CRMIntegrationMutation) RemovedStageMappingsIDs() (ids []int) {
	for id := range m.removedstage_mappings {
		ids = append(ids, id)
	}
	return
}

// StageMappingsIDs returns the "stage_mappings" edge IDs in the mutation.
func (m *CRMIntegrationMutation) StageMappingsIDs() (ids []int) {
	for id := range m.stage_mappings {
		ids = append(ids, id)
	}
	return
}

// ResetStageMappings resets all changes to the "stage_mappings" edge.
func (m *CRMIntegrationMutation) ResetStageMappings() {
	m.stage_mappings = nil
	m.clearedstage_mappings = false
	m.removedstage_mappings = nil
}

// AddDealLinkIDs adds the "deal_links" edge to the DealLink entity by ids.
func (m *CRMIntegrationMutation) AddDealLinkIDs(ids ...int) {
	if m.deal_links == nil {
		m.deal_links = make(map[int]struct{})
	}
	for i := range ids {
		m.deal_links[ids[i]] = struct{}{}
	}
}

// ClearDealLinks clears the "deal_links" edge to the DealLink entity.
func (m *CRMIntegrationMutation) ClearDealLinks() {
	m.cleareddeal_links = true
}

// DealLinksCleared reports if the "deal_links" edge to the DealLink entity was cleared.
func (m *CRMIntegrationMutation) DealLinksCleared() bool {
	return m.cleareddeal_links
}

// RemoveDealLinkIDs removes the "deal_links" edge to the DealLink entity by IDs.
func (m *CRMIntegrationMutation) RemoveDealLinkIDs(ids ...int) {
	if m.removeddeal_links == nil {
		m.removeddeal_links = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deal_links, ids[i])
		m.removeddeal_links[ids[i]] = struct{}{}
	}
}

// RemovedDealLinks returns the removed IDs of the "deal_links" edge to the DealLink entity.
func (m *CRMIntegrationMutation) RemovedDealLinksIDs() (ids []int) {
	for id := range m.removeddeal_links {
		ids = append(ids, id)
	}
	return
}

// DealLinksIDs returns the "deal_links" edge IDs in the mutation.
func (m *CRMIntegrationMutation) DealLinksIDs() (ids []int) {
	for id := range m.deal_links {
		ids = append(ids, id)
	}
	return
}

// ResetDealLinks resets all changes to the "deal_links" edge.
func (m *CRMIntegrationMutation) ResetDealLinks() {
	m.deal_links = nil
	m.cleareddeal_links = false
	m.removeddeal_links = nil
}

// AddContactIDs adds the "contacts" edge to the CRMContact entity by ids.
func (m *CRMIntegrationMutation) AddContactIDs(ids ...int) {
	if m.contacts == nil {
		m.contacts = make(map[int]struct{})
	}
	for i := range ids {
		m.contacts[ids[i]] = struct{}{}
	}
}

// ClearContacts clears the "contacts" edge to the CRMContact entity.
func (m *CRMIntegrationMutation) ClearContacts() {
	m.clearedcontacts = true
}

// ContactsCleared reports if the "contacts" edge to the CRMContact entity was cleared.
func (m *CRMIntegrationMutation) ContactsCleared() bool {
	return m.clearedcontacts
}

// RemoveContactIDs removes the "contacts" edge to the CRMContact entity by IDs.
func (m *CRMIntegrationMutation) RemoveContactIDs(ids ...int) {
	if m.removedcontacts == nil {
		m.removedcontacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.contacts, ids[i])
		m.removedcontacts[ids[i]] = struct{}{}
	}
}

// RemovedContacts returns the removed IDs of the "contacts" edge to the CRMContact entity.
func (m *CRMIntegrationMutation) RemovedContactsIDs() (ids []int) {
	for id := range m.removedcontacts {
		ids = append(ids, id)
	}
	return
}

// ContactsIDs returns the "contacts" edge IDs in the mutation.
func (m *CRMIntegrationMutation) ContactsIDs() (ids []int) {
	for id := range m.contacts {
		ids = append(ids, id)
	}
	return
}

// ResetContacts resets all changes to the "contacts" edge.
func (m *CRMIntegrationMutation) ResetContacts() {
	m.contacts = nil
	m.clearedcontacts = false
	m.removedcontacts = nil
}

// Where appends a list predicates to the CRMIntegrationMutation builder.
func (m *CRMIntegrationMutation) Where(ps ...predicate.CRMIntegration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMIntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMIntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMIntegration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMIntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMIntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMIntegration).
func (m *CRMIntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMIntegrationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user != nil {
		fields = append(fields, crmintegration.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, crmintegration.FieldProvider)
	}
	if m.active != nil {
		fields = append(fields, crmintegration.FieldActive)
	}
	if m.access_token != nil {
		fields = append(fields, crmintegration.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, crmintegration.FieldRefreshToken)
	}
	if m.token_expires_at != nil {
		fields = append(fields, crmintegration.FieldTokenExpiresAt)
	}
	if m.account_id != nil {
		fields = append(fields, crmintegration.FieldAccountID)
	}
	if m.instance_url != nil {
		fields = append(fields, crmintegration.FieldInstanceURL)
	}
	if m.api_domain != nil {
		fields = append(fields, crmintegration.FieldAPIDomain)
	}
	if m.sync_direction != nil {
		fields = append(fields, crmintegration.FieldSyncDirection)
	}
	if m.auto_sync_contacts != nil {
		fields = append(fields, crmintegration.FieldAutoSyncContacts)
	}
	if m.status_sync_events != nil {
		fields = append(fields, crmintegration.FieldStatusSyncEvents)
	}
	if m.last_sync_at != nil {
		fields = append(fields, crmintegration.FieldLastSyncAt)
	}
	if m.last_sync_error != nil {
		fields = append(fields, crmintegration.FieldLastSyncError)
	}
	if m.created_at != nil {
		fields = append(fields, crmintegration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crmintegration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMIntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmintegration.FieldUserID:
		return m.UserID()
	case crmintegration.FieldProvider:
		return m.Provider()
	case crmintegration.FieldActive:
		return m.Active()
	case crmintegration.FieldAccessToken:
		return m.AccessToken()
	case crmintegration.FieldRefreshToken:
		return m.RefreshToken()
	case crmintegration.FieldTokenExpiresAt:
		return m.TokenExpiresAt()
	case crmintegration.FieldAccountID:
		return m.AccountID()
	case crmintegration.FieldInstanceURL:
		return m.InstanceURL()
	case crmintegration.FieldAPIDomain:
		return m.APIDomain()
	case crmintegration.FieldSyncDirection:
		return m.SyncDirection()
	case crmintegration.FieldAutoSyncContacts:
		return m.AutoSyncContacts()
	case crmintegration.FieldStatusSyncEvents:
		return m.StatusSyncEvents()
	case crmintegration.FieldLastSyncAt:
		return m.LastSyncAt()
	case crmintegration.FieldLastSyncError:
		return m.LastSyncError()
	case crmintegration.FieldCreatedAt:
		return m.CreatedAt()
	case crmintegration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMIntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmintegration.FieldUserID:
		return m.OldUserID(ctx)
	case crmintegration.FieldProvider:
		return m.OldProvider(ctx)
	case crmintegration.FieldActive:
		return m.OldActive(ctx)
	case crmintegration.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case crmintegration.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case crmintegration.FieldTokenExpiresAt:
		return m.OldTokenExpiresAt(ctx)
	case crmintegration.FieldAccountID:
		return m.OldAccountID(ctx)
	case crmintegration.FieldInstanceURL:
		return m.OldInstanceURL(ctx)
	case crmintegration.FieldAPIDomain:
		return m.OldAPIDomain(ctx)
	case crmintegration.FieldSyncDirection:
		return m.OldSyncDirection(ctx)
	case crmintegration.FieldAutoSyncContacts:
		return m.OldAutoSyncContacts(ctx)
	case crmintegration.FieldStatusSyncEvents:
		return m.OldStatusSyncEvents(ctx)
	case crmintegration.FieldLastSyncAt:
		return m.OldLastSyncAt(ctx)
	case crmintegration.FieldLastSyncError:
		return m.OldLastSyncError(ctx)
	case crmintegration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crmintegration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMIntegration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMIntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmintegration.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case crmintegration.FieldProvider:
		v, ok := value.(crmintegration.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case crmintegration.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case crmintegration.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case crmintegration.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case crmintegration.FieldTokenExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenExpiresAt(v)
		return nil
	case crmintegration.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case crmintegration.FieldInstanceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceURL(v)
		return nil
	case crmintegration.FieldAPIDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIDomain(v)
		return nil
	case crmintegration.FieldSyncDirection:
		v, ok := value.(crmintegration.SyncDirection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncDirection(v)
		return nil
	case crmintegration.FieldAutoSyncContacts:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoSyncContacts(v)
		return nil
	case crmintegration.FieldStatusSyncEvents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusSyncEvents(v)
		return nil
	case crmintegration.FieldLastSyncAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncAt(v)
		return nil
	case crmintegration.FieldLastSyncError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncError(v)
		return nil
	case crmintegration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crmintegration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMIntegration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMIntegrationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMIntegrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMIntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CRMIntegration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMIntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmintegration.FieldRefreshToken) {
		fields = append(fields, crmintegration.FieldRefreshToken)
	}
	if m.FieldCleared(crmintegration.FieldTokenExpiresAt) {
		fields = append(fields, crmintegration.FieldTokenExpiresAt)
	}
	if m.FieldCleared(crmintegration.FieldInstanceURL) {
		fields = append(fields, crmintegration.FieldInstanceURL)
	}
	if m.FieldCleared(crmintegration.FieldAPIDomain) {
		fields = append(fields, crmintegration.FieldAPIDomain)
	}
	if m.FieldCleared(crmintegration.FieldStatusSyncEvents) {
		fields = append(fields, crmintegration.FieldStatusSyncEvents)
	}
	if m.FieldCleared(crmintegration.FieldLastSyncAt) {
		fields = append(fields, crmintegration.FieldLastSyncAt)
	}
	if m.FieldCleared(crmintegration.FieldLastSyncError) {
		fields = append(fields, crmintegration.FieldLastSyncError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMIntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMIntegrationMutation) ClearField(name string) error {
	switch name {
	case crmintegration.FieldRefreshToken:
		m.ClearRefreshToken()
		return nil
	case crmintegration.FieldTokenExpiresAt:
		m.ClearTokenExpiresAt()
		return nil
	case crmintegration.FieldInstanceURL:
		m.ClearInstanceURL()
		return nil
	case crmintegration.FieldAPIDomain:
		m.ClearAPIDomain()
		return nil
	case crmintegration.FieldStatusSyncEvents:
		m.ClearStatusSyncEvents()
		return nil
	case crmintegration.FieldLastSyncAt:
		m.ClearLastSyncAt()
		return nil
	case crmintegration.FieldLastSyncError:
		m.ClearLastSyncError()
		return nil
	}
	return fmt.Errorf("unknown CRMIntegration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMIntegrationMutation) ResetField(name string) error {
	switch name {
	case crmintegration.FieldUserID:
		m.ResetUserID()
		return nil
	case crmintegration.FieldProvider:
		m.ResetProvider()
		return nil
	case crmintegration.FieldActive:
		m.ResetActive()
		return nil
	case crmintegration.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case crmintegration.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case crmintegration.FieldTokenExpiresAt:
		m.ResetTokenExpiresAt()
		return nil
	case crmintegration.FieldAccountID:
		m.ResetAccountID()
		return nil
	case crmintegration.FieldInstanceURL:
		m.ResetInstanceURL()
		return nil
	case crmintegration.FieldAPIDomain:
		m.ResetAPIDomain()
		return nil
	case crmintegration.FieldSyncDirection:
		m.ResetSyncDirection()
		return nil
	case crmintegration.FieldAutoSyncContacts:
		m.ResetAutoSyncContacts()
		return nil
	case crmintegration.FieldStatusSyncEvents:
		m.ResetStatusSyncEvents()
		return nil
	case crmintegration.FieldLastSyncAt:
		m.ResetLastSyncAt()
		return nil
	case crmintegration.FieldLastSyncError:
		m.ResetLastSyncError()
		return nil
	case crmintegration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crmintegration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMIntegration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMIntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, crmintegration.EdgeUser)
	}
	if m.stage_mappings != nil {
		edges = append(edges, crmintegration.EdgeStageMappings)
	}
	if m.deal_links != nil {
		edges = append(edges, crmintegration.EdgeDealLinks)
	}
	if m.contacts != nil {
		edges = append(edges, crmintegration.EdgeContacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMIntegrationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crmintegration.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case crmintegration.EdgeStageMappings:
		ids := make([]ent.Value, 0, len(m.stage_mappings))
		for id := range m.stage_mappings {
			ids = append(ids, id)
		}
		return ids
	case crmintegration.EdgeDealLinks:
		ids := make([]ent.Value, 0, len(m.deal_links))
		for id := range m.deal_links {
			ids = append(ids, id)
		}
		return ids
	case crmintegration.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.contacts))
		for id := range m.contacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMIntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedstage_mappings != nil {
		edges = append(edges, crmintegration.EdgeStageMappings)
	}
	if m.removeddeal_links != nil {
		edges = append(edges, crmintegration.EdgeDealLinks)
	}
	if m.removedcontacts != nil {
		edges = append(edges, crmintegration.EdgeContacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMIntegrationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case crmintegration.EdgeStageMappings:
		ids := make([]ent.Value, 0, len(m.removedstage_mappings))
		for id := range m.removedstage_mappings {
			ids = append(ids, id)
		}
		return ids
	case crmintegration.EdgeDealLinks:
		ids := make([]ent.Value, 0, len(m.removeddeal_links))
		for id := range m.removeddeal_links {
			ids = append(ids, id)
		}
		return ids
	case crmintegration.EdgeContacts:
		ids := make([]ent.Value, 0, len(m.removedcontacts))
		for id := range m.removedcontacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMIntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, crmintegration.EdgeUser)
	}
	if m.clearedstage_mappings {
		edges = append(edges, crmintegration.EdgeStageMappings)
	}
	if m.cleareddeal_links {
		edges = append(edges, crmintegration.EdgeDealLinks)
	}
	if m.clearedcontacts {
		edges = append(edges, crmintegration.EdgeContacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMIntegrationMutation) EdgeCleared(name string) bool {
	switch name {
	case crmintegration.EdgeUser:
		return m.cleareduser
	case crmintegration.EdgeStageMappings:
		return m.clearedstage_mappings
	case crmintegration.EdgeDealLinks:
		return m.cleareddeal_links
	case crmintegration.EdgeContacts:
		return m.clearedcontacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMIntegrationMutation) ClearEdge(name string) error {
	switch name {
	case crmintegration.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown CRMIntegration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMIntegrationMutation) ResetEdge(name string) error {
	switch name {
	case crmintegration.EdgeUser:
		m.ResetUser()
		return nil
	case crmintegration.EdgeStageMappings:
		m.ResetStageMappings()
		return nil
	case crmintegration.EdgeDealLinks:
		m.ResetDealLinks()
		return nil
	case crmintegration.EdgeContacts:
		m.ResetContacts()
		return nil
	}
	return fmt.Errorf("unknown CRMIntegration edge %s", name)
}

// DealLinkMutation represents an operation that mutates the DealLink nodes in the graph.
type DealLinkMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	external_deal_id   *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	integration        *int
	clearedintegration bool
	proposal           *int
	clearedproposal    bool
	done               bool
	oldValue           func(context.Context) (*DealLink, error)
	predicates         []predicate.DealLink
}

var _ ent.Mutation = (*DealLinkMutation)(nil)

// deallinkOption allows management of the mutation configuration using functional options.
type deallinkOption func(*DealLinkMutation)

// newDealLinkMutation creates new mutation for the DealLink entity.
func newDealLinkMutation(c config, op Op, opts ...deallinkOption) *DealLinkMutation {
	m := &DealLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeDealLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDealLinkID sets the ID field of the mutation.
func withDealLinkID(id int) deallinkOption {
	return func(m *DealLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *DealLink
		)
		m.oldValue = func(ctx context.Context) (*DealLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DealLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDealLink sets the old DealLink of the mutation.
func withDealLink(node *DealLink) deallinkOption {
	return func(m *DealLinkMutation) {
		m.oldValue = func(context.Context) (*DealLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DealLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DealLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DealLinkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DealLinkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DealLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationID sets the "integration_id" field.
func (m *DealLinkMutation) SetIntegrationID(i int) {
	m.integration = &i
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *DealLinkMutation) IntegrationID() (r int, exists bool) {
	v := m.integration
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the DealLink entity.
// If the DealLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealLinkMutation) OldIntegrationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *DealLinkMutation) ResetIntegrationID() {
	m.integration = nil
}

// SetProposalID sets the "proposal_id" field.
func (m *DealLinkMutation) SetProposalID(i int) {
	m.proposal = &i
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *DealLinkMutation) ProposalID() (r int, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the DealLink entity.
// If the DealLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealLinkMutation) OldProposalID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *DealLinkMutation) ResetProposalID() {
	m.proposal = nil
}

// SetExternalDealID sets the "external_deal_id" field.
func (m *DealLinkMutation) SetExternalDealID(s string) {
	m.external_deal_id = &s
}

// ExternalDealID returns the value of the "external_deal_id" field in the mutation.
func (m *DealLinkMutation) ExternalDealID() (r string, exists bool) {
	v := m.external_deal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalDealID returns the old "external_deal_id" field's value of the DealLink entity.
// If the DealLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealLinkMutation) OldExternalDealID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalDealID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalDealID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalDealID: %w", err)
	}
	return oldValue.ExternalDealID, nil
}

// ResetExternalDealID resets all changes to the "external_deal_id" field.
func (m *DealLinkMutation) ResetExternalDealID() {
	m.external_deal_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DealLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DealLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DealLink entity.
// If the DealLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DealLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DealLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DealLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DealLink entity.
// If the DealLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DealLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (m *DealLinkMutation) ClearIntegration() {
	m.clearedintegration = true
	m.clearedFields[deallink.FieldIntegrationID] = struct{}{}
}

// IntegrationCleared reports if the "integration" edge to the CRMIntegration entity was cleared.
func (m *DealLinkMutation) IntegrationCleared() bool {
	return m.clearedintegration
}

// IntegrationIDs returns the "integration" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntegrationID instead. It exists only for internal usage by the builders.
func (m *DealLinkMutation) IntegrationIDs() (ids []int) {
	if id := m.integration; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntegration resets all changes to the "integration" edge.
func (m *DealLinkMutation) ResetIntegration() {
	m.integration = nil
	m.clearedintegration = false
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *DealLinkMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[deallink.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *DealLinkMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *DealLinkMutation) ProposalIDs() (ids []int) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *DealLinkMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the DealLinkMutation builder.
func (m *DealLinkMutation) Where(ps ...predicate.DealLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DealLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DealLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DealLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DealLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DealLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DealLink).
func (m *DealLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DealLinkMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.integration != nil {
		fields = append(fields, deallink.FieldIntegrationID)
	}
	if m.proposal != nil {
		fields = append(fields, deallink.FieldProposalID)
	}
	if m.external_deal_id != nil {
		fields = append(fields, deallink.FieldExternalDealID)
	}
	if m.created_at != nil {
		fields = append(fields, deallink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, deallink.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DealLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deallink.FieldIntegrationID:
		return m.IntegrationID()
	case deallink.FieldProposalID:
		return m.ProposalID()
	case deallink.FieldExternalDealID:
		return m.ExternalDealID()
	case deallink.FieldCreatedAt:
		return m.CreatedAt()
	case deallink.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DealLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deallink.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case deallink.FieldProposalID:
		return m.OldProposalID(ctx)
	case deallink.FieldExternalDealID:
		return m.OldExternalDealID(ctx)
	case deallink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deallink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DealLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deallink.FieldIntegrationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case deallink.FieldProposalID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case deallink.FieldExternalDealID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalDealID(v)
		return nil
	case deallink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deallink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DealLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DealLinkMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DealLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DealLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DealLinkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DealLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DealLinkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DealLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DealLinkMutation) ResetField(name string) error {
	switch name {
	case deallink.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case deallink.FieldProposalID:
		m.ResetProposalID()
		return nil
	case deallink.FieldExternalDealID:
		m.ResetExternalDealID()
		return nil
	case deallink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deallink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DealLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DealLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.integration != nil {
		edges = append(edges, deallink.EdgeIntegration)
	}
	if m.proposal != nil {
		edges = append(edges, deallink.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DealLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deallink.EdgeIntegration:
		if id := m.integration; id != nil {
			return []ent.Value{*id}
		}
	case deallink.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DealLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DealLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DealLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedintegration {
		edges = append(edges, deallink.EdgeIntegration)
	}
	if m.clearedproposal {
		edges = append(edges, deallink.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DealLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case deallink.EdgeIntegration:
		return m.clearedintegration
	case deallink.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DealLinkMutation) ClearEdge(name string) error {
	switch name {
	case deallink.EdgeIntegration:
		m.ClearIntegration()
		return nil
	case deallink.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown DealLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DealLinkMutation) ResetEdge(name string) error {
	switch name {
	case deallink.EdgeIntegration:
		m.ResetIntegration()
		return nil
	case deallink.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown DealLink edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	title               *string
	amount              *float64
	addamount           *float64
	currency            *string
	status              *proposal.Status
	signed_document_url *string
	status_changed_at   *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	user                *int
	cleareduser         bool
	deal_links          map[int]struct{}
	removeddeal_links   map[int]struct{}
	cleareddeal_links   bool
	done                bool
	oldValue            func(context.Context) (*Proposal, error)
	predicates          []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id int) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProposalMutation) SetUserID(i int) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProposalMutation) UserID() (r int, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProposalMutation) ResetUserID() {
	m.user = nil
}

// SetTitle sets the "title" field.
func (m *ProposalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProposalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProposalMutation) ResetTitle() {
	m.title = nil
}

// SetAmount sets the "amount" field.
func (m *ProposalMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ProposalMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ProposalMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ProposalMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ProposalMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *ProposalMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ProposalMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ProposalMutation) ResetCurrency() {
	m.currency = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(pr proposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r proposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v proposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetSignedDocumentURL sets the "signed_document_url" field.
func (m *ProposalMutation) SetSignedDocumentURL(s string) {
	m.signed_document_url = &s
}

// SignedDocumentURL returns the value of the "signed_document_url" field in the mutation.
func (m *ProposalMutation) SignedDocumentURL() (r string, exists bool) {
	v := m.signed_document_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSignedDocumentURL returns the old "signed_document_url" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldSignedDocumentURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignedDocumentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignedDocumentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignedDocumentURL: %w", err)
	}
	return oldValue.SignedDocumentURL, nil
}

// ClearSignedDocumentURL clears the value of the "signed_document_url" field.
func (m *ProposalMutation) ClearSignedDocumentURL() {
	m.signed_document_url = nil
	m.clearedFields[proposal.FieldSignedDocumentURL] = struct{}{}
}

// SignedDocumentURLCleared returns if the "signed_document_url" field was cleared in this mutation.
func (m *ProposalMutation) SignedDocumentURLCleared() bool {
	_, ok := m.clearedFields[proposal.FieldSignedDocumentURL]
	return ok
}

// ResetSignedDocumentURL resets all changes to the "signed_document_url" field.
func (m *ProposalMutation) ResetSignedDocumentURL() {
	m.signed_document_url = nil
	delete(m.clearedFields, proposal.FieldSignedDocumentURL)
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *ProposalMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *ProposalMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *ProposalMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ProposalMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[proposal.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ProposalMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ProposalMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ProposalMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddDealLinkIDs adds the "deal_links" edge to the DealLink entity by ids.
func (m *ProposalMutation) AddDealLinkIDs(ids ...int) {
	if m.deal_links == nil {
		m.deal_links = make(map[int]struct{})
	}
	for i := range ids {
		m.deal_links[ids[i]] = struct{}{}
	}
}

// ClearDealLinks clears the "deal_links" edge to the DealLink entity.
func (m *ProposalMutation) ClearDealLinks() {
	m.cleareddeal_links = true
}

// DealLinksCleared reports if the "deal_links" edge to the DealLink entity was cleared.
func (m *ProposalMutation) DealLinksCleared() bool {
	return m.cleareddeal_links
}

// RemoveDealLinkIDs removes the "deal_links" edge to the DealLink entity by IDs.
func (m *ProposalMutation) RemoveDealLinkIDs(ids ...int) {
	if m.removeddeal_links == nil {
		m.removeddeal_links = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.deal_links, ids[i])
		m.removeddeal_links[ids[i]] = struct{}{}
	}
}

// RemovedDealLinks returns the removed IDs of the "deal_links" edge to the DealLink entity.
func (m *ProposalMutation) RemovedDealLinksIDs() (ids []int) {
	for id := range m.removeddeal_links {
		ids = append(ids, id)
	}
	return
}

// DealLinksIDs returns the "deal_links" edge IDs in the mutation.
func (m *ProposalMutation) DealLinksIDs() (ids []int) {
	for id := range m.deal_links {
		ids = append(ids, id)
	}
	return
}

// ResetDealLinks resets all changes to the "deal_links" edge.
func (m *ProposalMutation) ResetDealLinks() {
	m.deal_links = nil
	m.cleareddeal_links = false
	m.removeddeal_links = nil
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, proposal.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, proposal.FieldTitle)
	}
	if m.amount != nil {
		fields = append(fields, proposal.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, proposal.FieldCurrency)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.signed_document_url != nil {
		fields = append(fields, proposal.FieldSignedDocumentURL)
	}
	if m.status_changed_at != nil {
		fields = append(fields, proposal.FieldStatusChangedAt)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldUserID:
		return m.UserID()
	case proposal.FieldTitle:
		return m.Title()
	case proposal.FieldAmount:
		return m.Amount()
	case proposal.FieldCurrency:
		return m.Currency()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldSignedDocumentURL:
		return m.SignedDocumentURL()
	case proposal.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	case proposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldUserID:
		return m.OldUserID(ctx)
	case proposal.FieldTitle:
		return m.OldTitle(ctx)
	case proposal.FieldAmount:
		return m.OldAmount(ctx)
	case proposal.FieldCurrency:
		return m.OldCurrency(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldSignedDocumentURL:
		return m.OldSignedDocumentURL(ctx)
	case proposal.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case proposal.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case proposal.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case proposal.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(proposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldSignedDocumentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignedDocumentURL(v)
		return nil
	case proposal.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, proposal.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldSignedDocumentURL) {
		fields = append(fields, proposal.FieldSignedDocumentURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldSignedDocumentURL:
		m.ClearSignedDocumentURL()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldUserID:
		m.ResetUserID()
		return nil
	case proposal.FieldTitle:
		m.ResetTitle()
		return nil
	case proposal.FieldAmount:
		m.ResetAmount()
		return nil
	case proposal.FieldCurrency:
		m.ResetCurrency()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldSignedDocumentURL:
		m.ResetSignedDocumentURL()
		return nil
	case proposal.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, proposal.EdgeUser)
	}
	if m.deal_links != nil {
		edges = append(edges, proposal.EdgeDealLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case proposal.EdgeDealLinks:
		ids := make([]ent.Value, 0, len(m.deal_links))
		for id := range m.deal_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddeal_links != nil {
		edges = append(edges, proposal.EdgeDealLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeDealLinks:
		ids := make([]ent.Value, 0, len(m.removeddeal_links))
		for id := range m.removeddeal_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, proposal.EdgeUser)
	}
	if m.cleareddeal_links {
		edges = append(edges, proposal.EdgeDealLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case proposal.EdgeUser:
		return m.cleareduser
	case proposal.EdgeDealLinks:
		return m.cleareddeal_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	switch name {
	case proposal.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	switch name {
	case proposal.EdgeUser:
		m.ResetUser()
		return nil
	case proposal.EdgeDealLinks:
		m.ResetDealLinks()
		return nil
	}
	return fmt.Errorf("unknown Proposal edge %s", name)
}

// StageMappingMutation represents an operation that mutates the StageMapping nodes in the graph.
type StageMappingMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	proposal_status     *string
	external_stage_id   *string
	external_stage_name *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	integration         *int
	clearedintegration  bool
	done                bool
	oldValue            func(context.Context) (*StageMapping, error)
	predicates          []predicate.StageMapping
}

var _ ent.Mutation = (*StageMappingMutation)(nil)

// stagemappingOption allows management of the mutation configuration using functional options.
type stagemappingOption func(*StageMappingMutation)

// newStageMappingMutation creates new mutation for the StageMapping entity.
func newStageMappingMutation(c config, op Op, opts ...stagemappingOption) *StageMappingMutation {
	m := &StageMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeStageMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageMappingID sets the ID field of the mutation.
func withStageMappingID(id int) stagemappingOption {
	return func(m *StageMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *StageMapping
		)
		m.oldValue = func(ctx context.Context) (*StageMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageMapping sets the old StageMapping of the mutation.
func withStageMapping(node *StageMapping) stagemappingOption {
	return func(m *StageMappingMutation) {
		m.oldValue = func(context.Context) (*StageMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageMappingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageMappingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationID sets the "integration_id" field.
func (m *StageMappingMutation) SetIntegrationID(i int) {
	m.integration = &i
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *StageMappingMutation) IntegrationID() (r int, exists bool) {
	v := m.integration
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldIntegrationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *StageMappingMutation) ResetIntegrationID() {
	m.integration = nil
}

// SetProposalStatus sets the "proposal_status" field.
func (m *StageMappingMutation) SetProposalStatus(s string) {
	m.proposal_status = &s
}

// ProposalStatus returns the value of the "proposal_status" field in the mutation.
func (m *StageMappingMutation) ProposalStatus() (r string, exists bool) {
	v := m.proposal_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalStatus returns the old "proposal_status" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldProposalStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalStatus: %w", err)
	}
	return oldValue.ProposalStatus, nil
}

// ResetProposalStatus resets all changes to the "proposal_status" field.
func (m *StageMappingMutation) ResetProposalStatus() {
	m.proposal_status = nil
}

// SetExternalStageID sets the "external_stage_id" field.
func (m *StageMappingMutation) SetExternalStageID(s string) {
	m.external_stage_id = &s
}

// ExternalStageID returns the value of the "external_stage_id" field in the mutation.
func (m *StageMappingMutation) ExternalStageID() (r string, exists bool) {
	v := m.external_stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalStageID returns the old "external_stage_id" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldExternalStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalStageID: %w", err)
	}
	return oldValue.ExternalStageID, nil
}

// ResetExternalStageID resets all changes to the "external_stage_id" field.
func (m *StageMappingMutation) ResetExternalStageID() {
	m.external_stage_id = nil
}

// SetExternalStageName sets the "external_stage_name" field.
func (m *StageMappingMutation) SetExternalStageName(s string) {
	m.external_stage_name = &s
}

// ExternalStageName returns the value of the "external_stage_name" field in the mutation.
func (m *StageMappingMutation) ExternalStageName() (r string, exists bool) {
	v := m.external_stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalStageName returns the old "external_stage_name" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldExternalStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalStageName: %w", err)
	}
	return oldValue.ExternalStageName, nil
}

// ClearExternalStageName clears the value of the "external_stage_name" field.
func (m *StageMappingMutation) ClearExternalStageName() {
	m.external_stage_name = nil
	m.clearedFields[stagemapping.FieldExternalStageName] = struct{}{}
}

// ExternalStageNameCleared returns if the "external_stage_name" field was cleared in this mutation.
func (m *StageMappingMutation) ExternalStageNameCleared() bool {
	_, ok := m.clearedFields[stagemapping.FieldExternalStageName]
	return ok
}

// ResetExternalStageName resets all changes to the "external_stage_name" field.
func (m *StageMappingMutation) ResetExternalStageName() {
	m.external_stage_name = nil
	delete(m.clearedFields, stagemapping.FieldExternalStageName)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StageMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StageMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StageMapping entity.
// If the StageMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StageMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearIntegration clears the "integration" edge to the CRMIntegration entity.
func (m *StageMappingMutation) ClearIntegration() {
	m.clearedintegration = true
	m.clearedFields[stagemapping.FieldIntegrationID] = struct{}{}
}

// IntegrationCleared reports if the "integration" edge to the CRMIntegration entity was cleared.
func (m *StageMappingMutation) IntegrationCleared() bool {
	return m.clearedintegration
}

// IntegrationIDs returns the "integration" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntegrationID instead. It exists only for internal usage by the builders.
func (m *StageMappingMutation) IntegrationIDs() (ids []int) {
	if id := m.integration; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntegration resets all changes to the "integration" edge.
func (m *StageMappingMutation) ResetIntegration() {
	m.integration = nil
	m.clearedintegration = false
}

// Where appends a list predicates to the StageMappingMutation builder.
func (m *StageMappingMutation) Where(ps ...predicate.StageMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageMapping).
func (m *StageMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageMappingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.integration != nil {
		fields = append(fields, stagemapping.FieldIntegrationID)
	}
	if m.proposal_status != nil {
		fields = append(fields, stagemapping.FieldProposalStatus)
	}
	if m.external_stage_id != nil {
		fields = append(fields, stagemapping.FieldExternalStageID)
	}
	if m.external_stage_name != nil {
		fields = append(fields, stagemapping.FieldExternalStageName)
	}
	if m.created_at != nil {
		fields = append(fields, stagemapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stagemapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagemapping.FieldIntegrationID:
		return m.IntegrationID()
	case stagemapping.FieldProposalStatus:
		return m.ProposalStatus()
	case stagemapping.FieldExternalStageID:
		return m.ExternalStageID()
	case stagemapping.FieldExternalStageName:
		return m.ExternalStageName()
	case stagemapping.FieldCreatedAt:
		return m.CreatedAt()
	case stagemapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagemapping.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case stagemapping.FieldProposalStatus:
		return m.OldProposalStatus(ctx)
	case stagemapping.FieldExternalStageID:
		return m.OldExternalStageID(ctx)
	case stagemapping.FieldExternalStageName:
		return m.OldExternalStageName(ctx)
	case stagemapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stagemapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagemapping.FieldIntegrationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case stagemapping.FieldProposalStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalStatus(v)
		return nil
	case stagemapping.FieldExternalStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalStageID(v)
		return nil
	case stagemapping.FieldExternalStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalStageName(v)
		return nil
	case stagemapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stagemapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageMappingMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StageMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagemapping.FieldExternalStageName) {
		fields = append(fields, stagemapping.FieldExternalStageName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageMappingMutation) ClearField(name string) error {
	switch name {
	case stagemapping.FieldExternalStageName:
		m.ClearExternalStageName()
		return nil
	}
	return fmt.Errorf("unknown StageMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageMappingMutation) ResetField(name string) error {
	switch name {
	case stagemapping.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case stagemapping.FieldProposalStatus:
		m.ResetProposalStatus()
		return nil
	case stagemapping.FieldExternalStageID:
		m.ResetExternalStageID()
		return nil
	case stagemapping.FieldExternalStageName:
		m.ResetExternalStageName()
		return nil
	case stagemapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stagemapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.integration != nil {
		edges = append(edges, stagemapping.EdgeIntegration)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stagemapping.EdgeIntegration:
		if id := m.integration; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintegration {
		edges = append(edges, stagemapping.EdgeIntegration)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case stagemapping.EdgeIntegration:
		return m.clearedintegration
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageMappingMutation) ClearEdge(name string) error {
	switch name {
	case stagemapping.EdgeIntegration:
		m.ClearIntegration()
		return nil
	}
	return fmt.Errorf("unknown StageMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageMappingMutation) ResetEdge(name string) error {
	switch name {
	case stagemapping.EdgeIntegration:
		m.ResetIntegration()
		return nil
	}
	return fmt.Errorf("unknown StageMapping edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	email                   *string
	password_hash           *string
	name                    *string
	email_verified          *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	proposals               map[int]struct{}
	removedproposals        map[int]struct{}
	clearedproposals        bool
	crm_integrations        map[int]struct{}
	removedcrm_integrations map[int]struct{}
	clearedcrm_integrations bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by ids.
func (m *UserMutation) AddProposalIDs(ids ...int) {
	if m.proposals == nil {
		m.proposals = make(map[int]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the Proposal entity.
func (m *UserMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the Proposal entity was cleared.
func (m *UserMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the Proposal entity by IDs.
func (m *UserMutation) RemoveProposalIDs(ids ...int) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the Proposal entity.
func (m *UserMutation) RemovedProposalsIDs() (ids []int) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *UserMutation) ProposalsIDs() (ids []int) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *UserMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// AddCrmIntegrationIDs adds the "crm_integrations" edge to the CRMIntegration entity by ids.
func (m *UserMutation) AddCrmIntegrationIDs(ids ...int) {
	if m.crm_integrations == nil {
		m.crm_integrations = make(map[int]struct{})
	}
	for i := range ids {
		m.crm_integrations[ids[i]] = struct{}{}
	}
}

// ClearCrmIntegrations clears the "crm_integrations" edge to the CRMIntegration entity.
func (m *UserMutation) ClearCrmIntegrations() {
	m.clearedcrm_integrations = true
}

// CrmIntegrationsCleared reports if the "crm_integrations" edge to the CRMIntegration entity was cleared.
func (m *UserMutation) CrmIntegrationsCleared() bool {
	return m.clearedcrm_integrations
}

// RemoveCrmIntegrationIDs removes the "crm_integrations" edge to the CRMIntegration entity by IDs.
func (m *UserMutation) RemoveCrmIntegrationIDs(ids ...int) {
	if m.removedcrm_integrations == nil {
		m.removedcrm_integrations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.crm_integrations, ids[i])
		m.removedcrm_integrations[ids[i]] = struct{}{}
	}
}

// RemovedCrmIntegrations returns the removed IDs of the "crm_integrations" edge to the CRMIntegration entity.
func (m *UserMutation) RemovedCrmIntegrationsIDs() (ids []int) {
	for id := range m.removedcrm_integrations {
		ids = append(ids, id)
	}
	return
}

// CrmIntegrationsIDs returns the "crm_integrations" edge IDs in the mutation.
func (m *UserMutation) CrmIntegrationsIDs() (ids []int) {
	for id := range m.crm_integrations {
		ids = append(ids, id)
	}
	return
}

// ResetCrmIntegrations resets all changes to the "crm_integrations" edge.
func (m *UserMutation) ResetCrmIntegrations() {
	m.crm_integrations = nil
	m.clearedcrm_integrations = false
	m.removedcrm_integrations = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldName:
		return m.Name()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.proposals != nil {
		edges = append(edges, user.EdgeProposals)
	}
	if m.crm_integrations != nil {
		edges = append(edges, user.EdgeCrmIntegrations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCrmIntegrations:
		ids := make([]ent.Value, 0, len(m.crm_integrations))
		for id := range m.crm_integrations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedproposals != nil {
		edges = append(edges, user.EdgeProposals)
	}
	if m.removedcrm_integrations != nil {
		edges = append(edges, user.EdgeCrmIntegrations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCrmIntegrations:
		ids := make([]ent.Value, 0, len(m.removedcrm_integrations))
		for id := range m.removedcrm_integrations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproposals {
		edges = append(edges, user.EdgeProposals)
	}
	if m.clearedcrm_integrations {
		edges = append(edges, user.EdgeCrmIntegrations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeProposals:
		return m.clearedproposals
	case user.EdgeCrmIntegrations:
		return m.clearedcrm_integrations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeProposals:
		m.ResetProposals()
		return nil
	case user.EdgeCrmIntegrations:
		m.ResetCrmIntegrations()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WebhookLogMutation represents an operation that mutates the WebhookLog nodes in the graph.
type WebhookLogMutation struct {
	config
	op                Op
	typ               string
	id                *int
	provider          *webhooklog.Provider
	event_type        *string
	payload           *map[string]interface{}
	processed         *bool
	processing_error  *string
	integration_id    *int
	addintegration_id *int
	received_at       *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*WebhookLog, error)
	predicates        []predicate.WebhookLog
}

var _ ent.Mutation = (*WebhookLogMutation)(nil)

// webhooklogOption allows management of the mutation configuration using functional options.
type webhooklogOption func(*WebhookLogMutation)

// newWebhookLogMutation creates new mutation for the WebhookLog entity.
func newWebhookLogMutation(c config, op Op, opts ...webhooklogOption) *WebhookLogMutation {
	m := &WebhookLogMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookLogID sets the ID field of the mutation.
func withWebhookLogID(id int) webhooklogOption {
	return func(m *WebhookLogMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookLog
		)
		m.oldValue = func(ctx context.Context) (*WebhookLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookLog sets the old WebhookLog of the mutation.
func withWebhookLog(node *WebhookLog) webhooklogOption {
	return func(m *WebhookLogMutation) {
		m.oldValue = func(context.Context) (*WebhookLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *WebhookLogMutation) SetProvider(w webhooklog.Provider) {
	m.provider = &w
}

// Provider returns the value of the "provider" field in the mutation.
func (m *WebhookLogMutation) Provider() (r webhooklog.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldProvider(ctx context.Context) (v webhooklog.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *WebhookLogMutation) ResetProvider() {
	m.provider = nil
}

// SetEventType sets the "event_type" field.
func (m *WebhookLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookLogMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookLogMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WebhookLogMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[webhooklog.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WebhookLogMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[webhooklog.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookLogMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, webhooklog.FieldPayload)
}

// SetProcessed sets the "processed" field.
func (m *WebhookLogMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *WebhookLogMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *WebhookLogMutation) ResetProcessed() {
	m.processed = nil
}

// SetProcessingError sets the "processing_error" field.
func (m *WebhookLogMutation) SetProcessingError(s string) {
	m.processing_error = &s
}

// ProcessingError returns the value of the "processing_error" field in the mutation.
func (m *WebhookLogMutation) ProcessingError() (r string, exists bool) {
	v := m.processing_error
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingError returns the old "processing_error" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldProcessingError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingError: %w", err)
	}
	return oldValue.ProcessingError, nil
}

// ClearProcessingError clears the value of the "processing_error" field.
func (m *WebhookLogMutation) ClearProcessingError() {
	m.processing_error = nil
	m.clearedFields[webhooklog.FieldProcessingError] = struct{}{}
}

// ProcessingErrorCleared returns if the "processing_error" field was cleared in this mutation.
func (m *WebhookLogMutation) ProcessingErrorCleared() bool {
	_, ok := m.clearedFields[webhooklog.FieldProcessingError]
	return ok
}

// ResetProcessingError resets all changes to the "processing_error" field.
func (m *WebhookLogMutation) ResetProcessingError() {
	m.processing_error = nil
	delete(m.clearedFields, webhooklog.FieldProcessingError)
}

// SetIntegrationID sets the "integration_id" field.
func (m *WebhookLogMutation) SetIntegrationID(i int) {
	m.integration_id = &i
	m.addintegration_id = nil
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *WebhookLogMutation) IntegrationID() (r int, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldIntegrationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// AddIntegrationID adds i to the "integration_id" field.
func (m *WebhookLogMutation) AddIntegrationID(i int) {
	if m.addintegration_id != nil {
		*m.addintegration_id += i
	} else {
		m.addintegration_id = &i
	}
}

// AddedIntegrationID returns the value that was added to the "integration_id" field in this mutation.
func (m *WebhookLogMutation) AddedIntegrationID() (r int, exists bool) {
	v := m.addintegration_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (m *WebhookLogMutation) ClearIntegrationID() {
	m.integration_id = nil
	m.addintegration_id = nil
	m.clearedFields[webhooklog.FieldIntegrationID] = struct{}{}
}

// IntegrationIDCleared returns if the "integration_id" field was cleared in this mutation.
func (m *WebhookLogMutation) IntegrationIDCleared() bool {
	_, ok := m.clearedFields[webhooklog.FieldIntegrationID]
	return ok
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *WebhookLogMutation) ResetIntegrationID() {
	m.integration_id = nil
	m.addintegration_id = nil
	delete(m.clearedFields, webhooklog.FieldIntegrationID)
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookLogMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookLogMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookLog entity.
// If the WebhookLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookLogMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookLogMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the WebhookLogMutation builder.
func (m *WebhookLogMutation) Where(ps ...predicate.WebhookLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookLog).
func (m *WebhookLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.provider != nil {
		fields = append(fields, webhooklog.FieldProvider)
	}
	if m.event_type != nil {
		fields = append(fields, webhooklog.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, webhooklog.FieldPayload)
	}
	if m.processed != nil {
		fields = append(fields, webhooklog.FieldProcessed)
	}
	if m.processing_error != nil {
		fields = append(fields, webhooklog.FieldProcessingError)
	}
	if m.integration_id != nil {
		fields = append(fields, webhooklog.FieldIntegrationID)
	}
	if m.received_at != nil {
		fields = append(fields, webhooklog.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhooklog.FieldProvider:
		return m.Provider()
	case webhooklog.FieldEventType:
		return m.EventType()
	case webhooklog.FieldPayload:
		return m.Payload()
	case webhooklog.FieldProcessed:
		return m.Processed()
	case webhooklog.FieldProcessingError:
		return m.ProcessingError()
	case webhooklog.FieldIntegrationID:
		return m.IntegrationID()
	case webhooklog.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhooklog.FieldProvider:
		return m.OldProvider(ctx)
	case webhooklog.FieldEventType:
		return m.OldEventType(ctx)
	case webhooklog.FieldPayload:
		return m.OldPayload(ctx)
	case webhooklog.FieldProcessed:
		return m.OldProcessed(ctx)
	case webhooklog.FieldProcessingError:
		return m.OldProcessingError(ctx)
	case webhooklog.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case webhooklog.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhooklog.FieldProvider:
		v, ok := value.(webhooklog.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case webhooklog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhooklog.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhooklog.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case webhooklog.FieldProcessingError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingError(v)
		return nil
	case webhooklog.FieldIntegrationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case webhooklog.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookLogMutation) AddedFields() []string {
	var fields []string
	if m.addintegration_id != nil {
		fields = append(fields, webhooklog.FieldIntegrationID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhooklog.FieldIntegrationID:
		return m.AddedIntegrationID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhooklog.FieldIntegrationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntegrationID(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhooklog.FieldPayload) {
		fields = append(fields, webhooklog.FieldPayload)
	}
	if m.FieldCleared(webhooklog.FieldProcessingError) {
		fields = append(fields, webhooklog.FieldProcessingError)
	}
	if m.FieldCleared(webhooklog.FieldIntegrationID) {
		fields = append(fields, webhooklog.FieldIntegrationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookLogMutation) ClearField(name string) error {
	switch name {
	case webhooklog.FieldPayload:
		m.ClearPayload()
		return nil
	case webhooklog.FieldProcessingError:
		m.ClearProcessingError()
		return nil
	case webhooklog.FieldIntegrationID:
		m.ClearIntegrationID()
		return nil
	}
	return fmt.Errorf("unknown WebhookLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookLogMutation) ResetField(name string) error {
	switch name {
	case webhooklog.FieldProvider:
		m.ResetProvider()
		return nil
	case webhooklog.FieldEventType:
		m.ResetEventType()
		return nil
	case webhooklog.FieldPayload:
		m.ResetPayload()
		return nil
	case webhooklog.FieldProcessed:
		m.ResetProcessed()
		return nil
	case webhooklog.FieldProcessingError:
		m.ResetProcessingError()
		return nil
	case webhooklog.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case webhooklog.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookLog edge %s", name)
}
