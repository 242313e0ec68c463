package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Up() error               { return m.Called().Error(0) }
func (m *mockMigrator) Down() error             { return m.Called().Error(0) }
func (m *mockMigrator) Steps(n int) error       { return m.Called(n).Error(0) }
func (m *mockMigrator) GoTo(version uint) error { return m.Called(version).Error(0) }
func (m *mockMigrator) Force(version int) error { return m.Called(version).Error(0) }

func (m *mockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func TestDBCommands(t *testing.T) {
	log := zap.NewNop()

	m := new(mockMigrator)
	m.On("Steps", -1).Return(nil)
	m.On("GoTo", uint(2)).Return(nil)
	m.On("Force", 1).Return(nil)
	m.On("Version").Return(uint(2), false, nil)

	require.NoError(t, dbCommands["step"](m, log, []string{"-1"}))
	require.NoError(t, dbCommands["goto"](m, log, []string{"2"}))
	require.NoError(t, dbCommands["force"](m, log, []string{"1"}))
	require.NoError(t, dbCommands["version"](m, log, nil))
	m.AssertExpectations(t)

	assert.ErrorIs(t, dbCommands["step"](m, log, nil), errUsage)
	assert.ErrorIs(t, dbCommands["goto"](m, log, []string{"-3"}), errUsage)
	assert.ErrorIs(t, dbCommands["force"](m, log, []string{"x"}), errUsage)
}

func TestRun_WithoutDatabase(t *testing.T) {
	log := zap.NewNop()

	t.Run("unknown command", func(t *testing.T) {
		assert.ErrorIs(t, run(log, "", "drop", nil), errUsage)
	})

	t.Run("list embedded", func(t *testing.T) {
		assert.NoError(t, run(log, "", "list", nil))
	})

	t.Run("create then list on disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(log, dir, "create", []string{"add returns", "Track returns"}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		_, err = os.Stat(filepath.Join(dir, "000001_add_returns.up.sql"))
		assert.NoError(t, err)

		assert.NoError(t, run(log, dir, "list", nil))
	})

	t.Run("create needs a name", func(t *testing.T) {
		assert.ErrorIs(t, run(log, t.TempDir(), "create", nil), errUsage)
	})
}
