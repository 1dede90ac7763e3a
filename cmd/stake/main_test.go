package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stake/internal/adapters/config"
	"go.trai.ch/stake/internal/adapters/fs"
	"go.trai.ch/stake/internal/adapters/logger"
	"go.trai.ch/stake/internal/app"
	"go.trai.ch/zerr"
)

func testProvider(*testing.T) ComponentProvider {
	return func(context.Context) (*app.Components, error) {
		memfs := fs.NewMemory()
		log := logger.New()
		a := app.New(memfs, config.NewMirrorsLoader(memfs, log), log)
		return app.NewComponents(a, log), nil
	}
}

func TestRun_Version(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, testProvider(t))
	assert.Equal(t, 0, code)
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"list"}, &stderr, func(context.Context) (*app.Components, error) {
		return nil, zerr.New("wiring failed")
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_CommandFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"no-such-command"}, &stderr, testProvider(t))
	assert.Equal(t, 1, code)
}
