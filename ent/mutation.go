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
	"github.com/abenov/mathai/ent/llmrequestevent"
	"github.com/abenov/mathai/ent/predicate"
	"github.com/abenov/mathai/ent/profilesnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeProfileSnapshot = "ProfileSnapshot"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// ProfileSnapshotMutation represents an operation that mutates the ProfileSnapshot nodes in the graph.
type ProfileSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	data          *string
	saved_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProfileSnapshot, error)
	predicates    []predicate.ProfileSnapshot
}

var _ ent.Mutation = (*ProfileSnapshotMutation)(nil)

// profilesnapshotOption allows management of the mutation configuration using functional options.
type profilesnapshotOption func(*ProfileSnapshotMutation)

// newProfileSnapshotMutation creates new mutation for the ProfileSnapshot entity.
func newProfileSnapshotMutation(c config, op Op, opts ...profilesnapshotOption) *ProfileSnapshotMutation {
	m := &ProfileSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeProfileSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileSnapshotID sets the ID field of the mutation.
func withProfileSnapshotID(id int) profilesnapshotOption {
	return func(m *ProfileSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ProfileSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ProfileSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProfileSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfileSnapshot sets the old ProfileSnapshot of the mutation.
func withProfileSnapshot(node *ProfileSnapshot) profilesnapshotOption {
	return func(m *ProfileSnapshotMutation) {
		m.oldValue = func(context.Context) (*ProfileSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProfileSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetData sets the "data" field.
func (m *ProfileSnapshotMutation) SetData(s string) {
	m.data = &s
}

// Data returns the value of the "data" field in the mutation.
func (m *ProfileSnapshotMutation) Data() (r string, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ProfileSnapshot entity.
// If the ProfileSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSnapshotMutation) OldData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ProfileSnapshotMutation) ResetData() {
	m.data = nil
}

// SetSavedAt sets the "saved_at" field.
func (m *ProfileSnapshotMutation) SetSavedAt(t time.Time) {
	m.saved_at = &t
}

// SavedAt returns the value of the "saved_at" field in the mutation.
func (m *ProfileSnapshotMutation) SavedAt() (r time.Time, exists bool) {
	v := m.saved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedAt returns the old "saved_at" field's value of the ProfileSnapshot entity.
// If the ProfileSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSnapshotMutation) OldSavedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedAt: %w", err)
	}
	return oldValue.SavedAt, nil
}

// ResetSavedAt resets all changes to the "saved_at" field.
func (m *ProfileSnapshotMutation) ResetSavedAt() {
	m.saved_at = nil
}

// Where appends a list predicates to the ProfileSnapshotMutation builder.
func (m *ProfileSnapshotMutation) Where(ps ...predicate.ProfileSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProfileSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProfileSnapshot).
func (m *ProfileSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.data != nil {
		fields = append(fields, profilesnapshot.FieldData)
	}
	if m.saved_at != nil {
		fields = append(fields, profilesnapshot.FieldSavedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profilesnapshot.FieldData:
		return m.Data()
	case profilesnapshot.FieldSavedAt:
		return m.SavedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profilesnapshot.FieldData:
		return m.OldData(ctx)
	case profilesnapshot.FieldSavedAt:
		return m.OldSavedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profilesnapshot.FieldData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case profilesnapshot.FieldSavedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileSnapshotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProfileSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileSnapshotMutation) ResetField(name string) error {
	switch name {
	case profilesnapshot.FieldData:
		m.ResetData()
		return nil
	case profilesnapshot.FieldSavedAt:
		m.ResetSavedAt()
		return nil
	}
	return fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot edge %s", name)
}
