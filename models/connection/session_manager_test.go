package connection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	session := bsm.GenerateNewSession(nil)
	require.NotEmpty(t, session.Id())
	assert.Equal(t, 1, bsm.ActiveSessions())

	found, err := bsm.FindSession(session.Id())
	require.NoError(t, err)
	assert.Same(t, session, found)

	bsm.TerminateSession(session.Id())
	assert.Equal(t, 0, bsm.ActiveSessions())

	_, err = bsm.FindSession(session.Id())
	assert.Error(t, err)
}

func TestSessionIdsAreUnique(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id := bsm.GenerateNewSession(nil).Id()
		require.False(t, seen[id], "duplicate session id: %s", id)
		seen[id] = true
	}
	assert.Equal(t, 50, bsm.ActiveSessions())
}

func TestCleanupStale(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(time.Minute))

	stale := bsm.GenerateNewSession(nil)
	stale.createdAt = time.Now().Add(-time.Hour)
	fresh := bsm.GenerateNewSession(nil)

	bsm.cleanupStale()

	_, err := bsm.FindSession(stale.Id())
	assert.Error(t, err)
	_, err = bsm.FindSession(fresh.Id())
	assert.NoError(t, err)
}

func TestCleanupPeriodicallyStopsOnCancel(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(time.Millisecond * 5))
	stale := bsm.GenerateNewSession(nil)
	stale.createdAt = time.Now().Add(-time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bsm.CleanupPeriodically(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return bsm.ActiveSessions() == 0 }, time.Second, time.Millisecond*5)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop after cancel")
	}
}

func TestFetchCodeFromMsg(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	code, err := bsm.FetchCodeFromMsg([]byte(`{"code": 1, "payload": {}}`))
	require.NoError(t, err)
	assert.Equal(t, CodeValidateBoard, code)

	code, err = bsm.FetchCodeFromMsg([]byte(`not json`))
	assert.Error(t, err)
	assert.Equal(t, uint8(255), code)
}

func TestConnErr(t *testing.T) {
	err := NewConnErr(ConnInvalidMsgType).AddDesc("bad type")
	assert.Equal(t, ConnInvalidMsgType, err.Code())
	assert.Contains(t, err.Error(), "bad type")
}
