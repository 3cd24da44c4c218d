package service

import (
	"context"
	"errors"
	"testing"

	"github.com/smallbiznis/snackcat/internal/config"
	"github.com/smallbiznis/snackcat/internal/lookup/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProvider struct {
	result *domain.Result
	err    error
	calls  int
}

func (f *fakeProvider) Lookup(ctx context.Context, code string) (*domain.Result, error) {
	f.calls++
	return f.result, f.err
}

func newTestService(p domain.Provider) domain.Service {
	return New(Params{
		Config:   config.Config{},
		Log:      zap.NewNop(),
		Provider: p,
	})
}

func TestLookup_BlankCodeNeverReachesProvider(t *testing.T) {
	fake := &fakeProvider{}
	svc := newTestService(fake)

	for _, code := range []string{"", "   ", "\t"} {
		_, err := svc.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, domain.ErrMissingCode)
	}
	assert.Zero(t, fake.calls)
}

func TestLookup_PassesThroughFoundResult(t *testing.T) {
	fake := &fakeProvider{result: &domain.Result{
		Found: true, Name: "Matcha Sparkling Drink", Brand: "Ito En",
	}}
	svc := newTestService(fake)

	result, err := svc.Lookup(context.Background(), " 4901777391234 ")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "Matcha Sparkling Drink", result.Name)
	assert.Equal(t, 1, fake.calls)
}

func TestLookup_PassesThroughNotFound(t *testing.T) {
	fake := &fakeProvider{result: &domain.Result{Found: false}}
	svc := newTestService(fake)

	result, err := svc.Lookup(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.False(t, result.Found)
}

func TestLookup_ProviderFailureSurfaces(t *testing.T) {
	fake := &fakeProvider{err: domain.ErrUnavailable}
	svc := newTestService(fake)

	_, err := svc.Lookup(context.Background(), "4901777391234")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestLookup_UnexpectedProviderErrorSurfaces(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeProvider{err: boom}
	svc := newTestService(fake)

	_, err := svc.Lookup(context.Background(), "4901777391234")
	assert.ErrorIs(t, err, boom)
}
