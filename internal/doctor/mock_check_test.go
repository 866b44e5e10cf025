package doctor

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// mockCheck is a Check whose methods are driven by testify expectations.
type mockCheck struct {
	mock.Mock
}

func newMockCheck(t *testing.T) *mockCheck {
	t.Helper()
	m := &mockCheck{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockCheck) Name() string {
	return m.Called().String(0)
}

func (m *mockCheck) Category() string {
	return m.Called().String(0)
}

func (m *mockCheck) Run() *CheckResult {
	return m.Called().Get(0).(*CheckResult)
}

// fixableCheck is a mockCheck that also implements Fixer.
type fixableCheck struct {
	mockCheck
}

func (m *fixableCheck) CanFix() bool {
	return m.Called().Bool(0)
}

func (m *fixableCheck) Fix() []FixResult {
	return m.Called().Get(0).([]FixResult)
}
