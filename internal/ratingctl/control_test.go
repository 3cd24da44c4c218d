package ratingctl

import (
	"context"
	"errors"
	"testing"

	"github.com/smallbiznis/snackcat/internal/snack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

type fakeUpdater struct {
	resp *domain.Response
	err  error

	gotID     string
	gotRating *int
	calls     int
}

func (f *fakeUpdater) UpdateRating(ctx context.Context, id string, rating *int) (*domain.Response, error) {
	f.calls++
	f.gotID = id
	f.gotRating = rating
	return f.resp, f.err
}

func TestControl_OptimisticTransition(t *testing.T) {
	ctl := New("snack-1", nil, &fakeUpdater{})

	token := ctl.Set(intPtr(3))

	st := ctl.State()
	assert.Equal(t, KindPending, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 3, *st.Rating)
	assert.Nil(t, st.Previous)

	ok := ctl.Complete(token, intPtr(3))
	assert.True(t, ok)

	st = ctl.State()
	assert.Equal(t, KindIdle, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 3, *st.Rating)
}

func TestControl_ServerValueWins(t *testing.T) {
	ctl := New("snack-1", intPtr(1), &fakeUpdater{})

	token := ctl.Set(intPtr(3))

	// The server settled on a different value than the optimistic one.
	ctl.Complete(token, intPtr(2))

	st := ctl.State()
	assert.Equal(t, KindIdle, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 2, *st.Rating)
}

func TestControl_FailureRollsBack(t *testing.T) {
	ctl := New("snack-1", intPtr(2), &fakeUpdater{})

	token := ctl.Set(intPtr(3))
	ok := ctl.Fail(token, errors.New("store_unavailable"))
	assert.True(t, ok)

	st := ctl.State()
	assert.Equal(t, KindError, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 2, *st.Rating)
	assert.Equal(t, "store_unavailable", st.Message)
}

func TestControl_FailureRollsBackToUnrated(t *testing.T) {
	ctl := New("snack-1", nil, &fakeUpdater{})

	token := ctl.Set(intPtr(1))
	ctl.Fail(token, errors.New("store_unavailable"))

	st := ctl.State()
	assert.Equal(t, KindError, st.Kind)
	assert.Nil(t, st.Rating)
}

func TestControl_SupersededResponseDropped(t *testing.T) {
	ctl := New("snack-1", intPtr(1), &fakeUpdater{})

	stale := ctl.Set(intPtr(2))
	fresh := ctl.Set(intPtr(3))

	// The first request's response lands after the second was issued.
	assert.False(t, ctl.Complete(stale, intPtr(2)))
	assert.False(t, ctl.Fail(stale, errors.New("late failure")))

	st := ctl.State()
	assert.Equal(t, KindPending, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 3, *st.Rating)

	assert.True(t, ctl.Complete(fresh, intPtr(3)))
	st = ctl.State()
	assert.Equal(t, KindIdle, st.Kind)
	assert.Equal(t, 3, *st.Rating)
}

func TestControl_SupersedeKeepsConfirmedRollbackTarget(t *testing.T) {
	ctl := New("snack-1", intPtr(1), &fakeUpdater{})

	ctl.Set(intPtr(2))
	fresh := ctl.Set(intPtr(3))

	// Rollback targets the last confirmed rating, not the optimistic 2.
	ctl.Fail(fresh, errors.New("store_unavailable"))

	st := ctl.State()
	assert.Equal(t, KindError, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 1, *st.Rating)
}

func TestControl_TapTogglesActiveRating(t *testing.T) {
	ctl := New("snack-1", intPtr(2), &fakeUpdater{})

	// Tapping the active rating requests a clear.
	_, rating := ctl.Tap(2)
	assert.Nil(t, rating)

	st := ctl.State()
	assert.Equal(t, KindPending, st.Kind)
	assert.Nil(t, st.Rating)
}

func TestControl_TapDifferentRating(t *testing.T) {
	ctl := New("snack-1", intPtr(2), &fakeUpdater{})

	_, rating := ctl.Tap(3)
	require.NotNil(t, rating)
	assert.Equal(t, 3, *rating)
}

func TestSubmit_SuccessAdoptsServerRating(t *testing.T) {
	upd := &fakeUpdater{resp: &domain.Response{ID: "snack-1", Rating: intPtr(3)}}
	ctl := New("snack-1", nil, upd)

	st := ctl.Submit(context.Background(), intPtr(3))

	assert.Equal(t, KindIdle, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 3, *st.Rating)
	assert.Equal(t, "snack-1", upd.gotID)
	require.NotNil(t, upd.gotRating)
	assert.Equal(t, 3, *upd.gotRating)
}

func TestSubmit_FailureRollsBackAndSurfacesMessage(t *testing.T) {
	upd := &fakeUpdater{err: errors.New("store_unavailable")}
	ctl := New("snack-1", intPtr(1), upd)

	st := ctl.Submit(context.Background(), intPtr(3))

	assert.Equal(t, KindError, st.Kind)
	require.NotNil(t, st.Rating)
	assert.Equal(t, 1, *st.Rating)
	assert.Equal(t, "store_unavailable", st.Message)

	// A later submit recovers from the error state.
	upd.err = nil
	upd.resp = &domain.Response{ID: "snack-1", Rating: intPtr(2)}
	st = ctl.Submit(context.Background(), intPtr(2))
	assert.Equal(t, KindIdle, st.Kind)
	assert.Equal(t, 2, *st.Rating)
}
