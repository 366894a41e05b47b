// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package minter is a generated GoMock package.
package minter

import (
	context "context"
	big "math/big"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	model "github.com/smartzplatform/minter-service/internal/model"
)

// MockIdempotencyStore is a mock of IdempotencyStore interface.
type MockIdempotencyStore struct {
	ctrl     *gomock.Controller
	recorder *MockIdempotencyStoreMockRecorder
}

// MockIdempotencyStoreMockRecorder is the mock recorder for MockIdempotencyStore.
type MockIdempotencyStoreMockRecorder struct {
	mock *MockIdempotencyStore
}

// NewMockIdempotencyStore creates a new mock instance.
func NewMockIdempotencyStore(ctrl *gomock.Controller) *MockIdempotencyStore {
	mock := &MockIdempotencyStore{ctrl: ctrl}
	mock.recorder = &MockIdempotencyStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdempotencyStore) EXPECT() *MockIdempotencyStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIdempotencyStore) Get(ctx context.Context, id model.MintID) (model.MintRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(model.MintRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIdempotencyStoreMockRecorder) Get(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIdempotencyStore)(nil).Get), ctx, id)
}

// Reserve mocks base method.
func (m *MockIdempotencyStore) Reserve(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (bool, model.MintRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reserve", ctx, id, recipient, amount)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(model.MintRecord)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Reserve indicates an expected call of Reserve.
func (mr *MockIdempotencyStoreMockRecorder) Reserve(ctx, id, recipient, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserve", reflect.TypeOf((*MockIdempotencyStore)(nil).Reserve), ctx, id, recipient, amount)
}

// StalePending mocks base method.
func (m *MockIdempotencyStore) StalePending(ctx context.Context, olderThan time.Duration, limit int) ([]model.MintRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StalePending", ctx, olderThan, limit)
	ret0, _ := ret[0].([]model.MintRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StalePending indicates an expected call of StalePending.
func (mr *MockIdempotencyStoreMockRecorder) StalePending(ctx, olderThan, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StalePending", reflect.TypeOf((*MockIdempotencyStore)(nil).StalePending), ctx, olderThan, limit)
}

// UpdateStatus mocks base method.
func (m *MockIdempotencyStore) UpdateStatus(ctx context.Context, id model.MintID, status model.MintStatus, submissionRef string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status, submissionRef)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockIdempotencyStoreMockRecorder) UpdateStatus(ctx, id, status, submissionRef interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockIdempotencyStore)(nil).UpdateStatus), ctx, id, status, submissionRef)
}

// MockLedgerClient is a mock of LedgerClient interface.
type MockLedgerClient struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerClientMockRecorder
}

// MockLedgerClientMockRecorder is the mock recorder for MockLedgerClient.
type MockLedgerClientMockRecorder struct {
	mock *MockLedgerClient
}

// NewMockLedgerClient creates a new mock instance.
func NewMockLedgerClient(ctrl *gomock.Controller) *MockLedgerClient {
	mock := &MockLedgerClient{ctrl: ctrl}
	mock.recorder = &MockLedgerClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerClient) EXPECT() *MockLedgerClientMockRecorder {
	return m.recorder
}

// ConfirmationDepth mocks base method.
func (m *MockLedgerClient) ConfirmationDepth(ctx context.Context, ref string) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConfirmationDepth", ctx, ref)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConfirmationDepth indicates an expected call of ConfirmationDepth.
func (mr *MockLedgerClientMockRecorder) ConfirmationDepth(ctx, ref interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConfirmationDepth", reflect.TypeOf((*MockLedgerClient)(nil).ConfirmationDepth), ctx, ref)
}

// Mint mocks base method.
func (m *MockLedgerClient) Mint(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Mint", ctx, id, recipient, amount)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Mint indicates an expected call of Mint.
func (mr *MockLedgerClientMockRecorder) Mint(ctx, id, recipient, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mint", reflect.TypeOf((*MockLedgerClient)(nil).Mint), ctx, id, recipient, amount)
}

// Processed mocks base method.
func (m *MockLedgerClient) Processed(ctx context.Context, id model.MintID, depth uint64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Processed", ctx, id, depth)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Processed indicates an expected call of Processed.
func (mr *MockLedgerClientMockRecorder) Processed(ctx, id, depth interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Processed", reflect.TypeOf((*MockLedgerClient)(nil).Processed), ctx, id, depth)
}

// Syncing mocks base method.
func (m *MockLedgerClient) Syncing(ctx context.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Syncing", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Syncing indicates an expected call of Syncing.
func (mr *MockLedgerClientMockRecorder) Syncing(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Syncing", reflect.TypeOf((*MockLedgerClient)(nil).Syncing), ctx)
}

// MockJournal is a mock of Journal interface.
type MockJournal struct {
	ctrl     *gomock.Controller
	recorder *MockJournalMockRecorder
}

// MockJournalMockRecorder is the mock recorder for MockJournal.
type MockJournalMockRecorder struct {
	mock *MockJournal
}

// NewMockJournal creates a new mock instance.
func NewMockJournal(ctrl *gomock.Controller) *MockJournal {
	mock := &MockJournal{ctrl: ctrl}
	mock.recorder = &MockJournalMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockJournal) EXPECT() *MockJournalMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockJournal) Append(ctx context.Context, event model.MintEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockJournalMockRecorder) Append(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockJournal)(nil).Append), ctx, event)
}

// MockCoordinatorMetrics is a mock of CoordinatorMetrics interface.
type MockCoordinatorMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockCoordinatorMetricsMockRecorder
}

// MockCoordinatorMetricsMockRecorder is the mock recorder for MockCoordinatorMetrics.
type MockCoordinatorMetricsMockRecorder struct {
	mock *MockCoordinatorMetrics
}

// NewMockCoordinatorMetrics creates a new mock instance.
func NewMockCoordinatorMetrics(ctrl *gomock.Controller) *MockCoordinatorMetrics {
	mock := &MockCoordinatorMetrics{ctrl: ctrl}
	mock.recorder = &MockCoordinatorMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCoordinatorMetrics) EXPECT() *MockCoordinatorMetricsMockRecorder {
	return m.recorder
}

// ObserveMismatch mocks base method.
func (m *MockCoordinatorMetrics) ObserveMismatch() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveMismatch")
}

// ObserveMismatch indicates an expected call of ObserveMismatch.
func (mr *MockCoordinatorMetricsMockRecorder) ObserveMismatch() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveMismatch", reflect.TypeOf((*MockCoordinatorMetrics)(nil).ObserveMismatch))
}

// ObserveSubmit mocks base method.
func (m *MockCoordinatorMetrics) ObserveSubmit(resolution string, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveSubmit", resolution, started)
}

// ObserveSubmit indicates an expected call of ObserveSubmit.
func (mr *MockCoordinatorMetricsMockRecorder) ObserveSubmit(resolution, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveSubmit", reflect.TypeOf((*MockCoordinatorMetrics)(nil).ObserveSubmit), resolution, started)
}

// MockWatcherMetrics is a mock of WatcherMetrics interface.
type MockWatcherMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockWatcherMetricsMockRecorder
}

// MockWatcherMetricsMockRecorder is the mock recorder for MockWatcherMetrics.
type MockWatcherMetricsMockRecorder struct {
	mock *MockWatcherMetrics
}

// NewMockWatcherMetrics creates a new mock instance.
func NewMockWatcherMetrics(ctrl *gomock.Controller) *MockWatcherMetrics {
	mock := &MockWatcherMetrics{ctrl: ctrl}
	mock.recorder = &MockWatcherMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWatcherMetrics) EXPECT() *MockWatcherMetricsMockRecorder {
	return m.recorder
}

// ObserveFetchPending mocks base method.
func (m *MockWatcherMetrics) ObserveFetchPending(err error, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveFetchPending", err, started)
}

// ObserveFetchPending indicates an expected call of ObserveFetchPending.
func (mr *MockWatcherMetricsMockRecorder) ObserveFetchPending(err, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveFetchPending", reflect.TypeOf((*MockWatcherMetrics)(nil).ObserveFetchPending), err, started)
}

// ObserveResolveBatch mocks base method.
func (m *MockWatcherMetrics) ObserveResolveBatch(err error, records int, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveResolveBatch", err, records, started)
}

// ObserveResolveBatch indicates an expected call of ObserveResolveBatch.
func (mr *MockWatcherMetricsMockRecorder) ObserveResolveBatch(err, records, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveResolveBatch", reflect.TypeOf((*MockWatcherMetrics)(nil).ObserveResolveBatch), err, records, started)
}
