package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefs-processor/internal/model"
)

func TestHappyPathTransitions(t *testing.T) {
	s := New()
	assert.Equal(t, StateIdle, s.State())

	require.NoError(t, s.Fire(EventFileSelected))
	assert.Equal(t, StateAwaitingFile, s.State())

	require.NoError(t, s.Fire(EventSubmit))
	assert.Equal(t, StateAwaitingResponse, s.State())

	s.SetBriefing(model.NewBriefing("data.csv", "raw", []string{"raw"}))
	require.NoError(t, s.Fire(EventResponseOK))
	assert.Equal(t, StateShowingResults, s.State())
	assert.NotNil(t, s.Briefing())
}

func TestErrorPathTransitions(t *testing.T) {
	s := New()
	require.NoError(t, s.Fire(EventFileSelected))
	require.NoError(t, s.Fire(EventSubmit))

	s.SetError("workflow exploded")
	require.NoError(t, s.Fire(EventResponseError))
	assert.Equal(t, StateShowingError, s.State())
	assert.Equal(t, "workflow exploded", s.Err())
}

func TestInvalidTransitionsRejected(t *testing.T) {
	s := New()
	assert.Error(t, s.Fire(EventResponseOK), "results before submit")
	assert.Error(t, s.Fire(EventSubmit), "submit before file")
	assert.Equal(t, StateIdle, s.State())
}

func TestResetClearsResults(t *testing.T) {
	s := New()
	require.NoError(t, s.Fire(EventFileSelected))
	require.NoError(t, s.Fire(EventSubmit))
	s.SetBriefing(model.NewBriefing("data.csv", "raw", []string{"raw"}))
	require.NoError(t, s.Fire(EventResponseOK))

	require.NoError(t, s.Fire(EventReset))
	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Briefing())
	assert.Empty(t, s.Err())
}

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore()
	s := st.Create()

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}
