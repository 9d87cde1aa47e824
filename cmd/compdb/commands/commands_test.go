package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/cmd/compdb/commands"
	"go.trai.ch/compdb/internal/app"
	"go.trai.ch/compdb/internal/build"
)

type mockApp struct {
	generateFunc func(ctx context.Context, targetNames []string, opts app.GenerateOptions) error
	targetsFunc  func(ctx context.Context) ([]string, error)
}

func (m *mockApp) Generate(ctx context.Context, targetNames []string, opts app.GenerateOptions) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, targetNames, opts)
	}
	return nil
}

func (m *mockApp) Targets(ctx context.Context) ([]string, error) {
	if m.targetsFunc != nil {
		return m.targetsFunc(ctx)
	}
	return nil, nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.GenerateOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			generateFunc: func(_ context.Context, targetNames []string, opts app.GenerateOptions) error {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "//app:bin", "-o", "out/db.json", "--watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"//app:bin"}, capturedTargets)
		assert.Equal(t, "out/db.json", capturedOpts.Output)
		assert.True(t, capturedOpts.Watch)
	})

	t.Run("defaults the output file", func(t *testing.T) {
		var capturedOpts app.GenerateOptions

		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, opts app.GenerateOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "//app:bin"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "compile_commands.json", capturedOpts.Output)
		assert.False(t, capturedOpts.Watch)
	})

	t.Run("returns error on generation failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, _ app.GenerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate", "//app:bin"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no targets provided", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ []string, _ app.GenerateOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"generate"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Targets(t *testing.T) {
	t.Run("prints targets one per line", func(t *testing.T) {
		mock := &mockApp{
			targetsFunc: func(_ context.Context) ([]string, error) {
				return []string{"//base:bar", "//lib:foo"}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"targets"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "//base:bar\n//lib:foo\n", buf.String())
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		mock := &mockApp{
			targetsFunc: func(_ context.Context) ([]string, error) {
				return nil, errors.New("no workspace")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"targets"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), build.Version)
}
