package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stake/internal/adapters/fs"
	"go.trai.ch/stake/internal/app"
	"go.trai.ch/stake/internal/core/domain"
	"go.trai.ch/stake/internal/core/ports/mocks"
	"go.trai.ch/stake/internal/pinstore"
	"go.uber.org/mock/gomock"
)

const workspace = "/ws"

func newApp(t *testing.T) (*app.App, *fs.Memory, *mocks.MockMirrorLoader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockMirrors := mocks.NewMockMirrorLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	memfs := fs.NewMemory()
	return app.New(memfs, mockMirrors, mockLogger), memfs, mockMirrors
}

func seedLedger(t *testing.T, memfs *fs.Memory, pins ...domain.Pin) {
	t.Helper()

	store, err := pinstore.Open(filepath.Join(workspace, app.LedgerFilename), memfs, domain.MirrorSet{}, noopLogger{})
	require.NoError(t, err)
	for _, pin := range pins {
		store.Pin(pin.Ref, pin.State)
	}
	require.NoError(t, store.Save())
}

type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}

func TestApp_List(t *testing.T) {
	t.Parallel()

	a, memfs, mockMirrors := newApp(t)
	mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)

	seedLedger(t, memfs,
		domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/foo.git"), State: domain.Versioned("1.0.0", "aaa")},
		domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/bar.git"), State: domain.Branched("main", "bbb")},
	)

	pins, fingerprint, err := a.List(workspace)
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, domain.Identity("bar"), pins[0].Ref.Identity)
	assert.Equal(t, domain.Identity("foo"), pins[1].Ref.Identity)
	assert.NotEmpty(t, fingerprint)
}

func TestApp_List_MirrorLoaderFailure(t *testing.T) {
	t.Parallel()

	a, _, mockMirrors := newApp(t)
	mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, domain.ErrMalformedMirrors)

	_, _, err := a.List(workspace)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load mirror configuration")
}

func TestApp_Verify(t *testing.T) {
	t.Parallel()

	t.Run("all local checkouts present", func(t *testing.T) {
		t.Parallel()

		a, memfs, mockMirrors := newApp(t)
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)

		require.NoError(t, memfs.WriteFileAtomic("/deps/lib", []byte("checkout")))
		seedLedger(t, memfs,
			domain.Pin{Ref: domain.NewLocalSourceControlReference("/deps/lib"), State: domain.RevisionOnly("aaa")},
			// Remote pins are skipped, present or not.
			domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/foo.git"), State: domain.Versioned("1.0.0", "bbb")},
		)

		require.NoError(t, a.Verify(context.Background(), workspace))
	})

	t.Run("missing local checkout", func(t *testing.T) {
		t.Parallel()

		a, memfs, mockMirrors := newApp(t)
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)

		seedLedger(t, memfs,
			domain.Pin{Ref: domain.NewLocalSourceControlReference("/deps/gone"), State: domain.RevisionOnly("aaa")},
		)

		err := a.Verify(context.Background(), workspace)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pinned checkout missing")
		assert.Contains(t, err.Error(), "/deps/gone")
	})
}

func TestApp_Prune(t *testing.T) {
	t.Parallel()

	t.Run("single identity", func(t *testing.T) {
		t.Parallel()

		a, memfs, mockMirrors := newApp(t)
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil).Times(2)

		seedLedger(t, memfs,
			domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/foo.git"), State: domain.Versioned("1.0.0", "aaa")},
			domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/bar.git"), State: domain.Versioned("2.0.0", "bbb")},
		)

		require.NoError(t, a.Prune(workspace, []string{"foo"}))

		pins, _, err := a.List(workspace)
		require.NoError(t, err)
		require.Len(t, pins, 1)
		assert.Equal(t, domain.Identity("bar"), pins[0].Ref.Identity)
	})

	t.Run("everything deletes the ledger", func(t *testing.T) {
		t.Parallel()

		a, memfs, mockMirrors := newApp(t)
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)

		seedLedger(t, memfs,
			domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/foo.git"), State: domain.Versioned("1.0.0", "aaa")},
		)

		require.NoError(t, a.Prune(workspace, nil))
		assert.False(t, memfs.Exists(filepath.Join(workspace, app.LedgerFilename)))
	})

	t.Run("remove failure propagates", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockFS := mocks.NewMockFileSystem(ctrl)
		mockMirrors := mocks.NewMockMirrorLoader(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

		ledger := filepath.Join(workspace, app.LedgerFilename)
		content := `{
  "version": 2,
  "pins": [
    {
      "identity": "foo",
      "kind": "remoteSourceControl",
      "location": "https://github.com/corp/foo.git",
      "state": { "branch": null, "revision": "aaa", "version": "1.0.0" }
    }
  ]
}`
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)
		mockFS.EXPECT().Exists(ledger).Return(true).Times(2)
		mockFS.EXPECT().ReadFile(ledger).Return([]byte(content), nil)
		mockFS.EXPECT().Remove(ledger).Return(errors.New("permission denied"))

		a := app.New(mockFS, mockMirrors, mockLogger)
		err := a.Prune(workspace, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to remove resolved-dependency ledger")
	})

	t.Run("unknown identity is a warning, not an error", func(t *testing.T) {
		t.Parallel()

		a, memfs, mockMirrors := newApp(t)
		mockMirrors.EXPECT().Load(workspace).Return(domain.MirrorSet{}, nil)

		seedLedger(t, memfs,
			domain.Pin{Ref: domain.NewRemoteSourceControlReference("https://github.com/corp/foo.git"), State: domain.Versioned("1.0.0", "aaa")},
		)

		require.NoError(t, a.Prune(workspace, []string{"never-pinned"}))
	})
}
