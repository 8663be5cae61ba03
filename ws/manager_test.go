package ws_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zeebo/assert"

	"github.com/sandoapp/finance_service/ws"
)

type fakeConn struct {
	writes   [][]byte
	writeErr error
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestConnManagerBroadcast(t *testing.T) {
	manager := ws.NewConnManager()

	a := &fakeConn{}
	b := &fakeConn{writeErr: errors.New("broken pipe")}
	c := &fakeConn{}

	manager.Connect(a)
	manager.Connect(b)
	manager.Connect(c)
	assert.Equal(t, 3, manager.Len())

	manager.Broadcast("hello")

	// a and c still got the frame even though b failed mid-loop
	assert.Equal(t, 1, len(a.writes))
	assert.Equal(t, "hello", string(a.writes[0]))
	assert.Equal(t, 1, len(c.writes))

	// the failing connection is dropped and closed
	assert.True(t, b.closed)
	assert.Equal(t, 2, manager.Len())

	manager.Broadcast("again")
	assert.Equal(t, 2, len(a.writes))
	assert.Equal(t, 2, len(c.writes))
}

// overlapConn flags any two writes arriving at the same time, the
// situation gorilla connections panic on.
type overlapConn struct {
	writing    atomic.Bool
	overlapped atomic.Bool
	writes     atomic.Int64
}

func (o *overlapConn) WriteMessage(messageType int, data []byte) error {
	if !o.writing.CompareAndSwap(false, true) {
		o.overlapped.Store(true)
	}
	time.Sleep(time.Millisecond)
	o.writing.Store(false)
	o.writes.Add(1)
	return nil
}

func (o *overlapConn) Close() error {
	return nil
}

func TestConnManagerConcurrentBroadcast(t *testing.T) {
	manager := ws.NewConnManager()

	conns := []*overlapConn{{}, {}, {}}
	for _, conn := range conns {
		manager.Connect(conn)
	}

	const senders = 4
	const perSender = 25

	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				manager.Broadcast("ping")
			}
		}()
	}
	wg.Wait()

	for _, conn := range conns {
		assert.False(t, conn.overlapped.Load())
		assert.Equal(t, int64(senders*perSender), conn.writes.Load())
	}
}

func TestConnManagerDisconnect(t *testing.T) {
	manager := ws.NewConnManager()

	a := &fakeConn{}
	manager.Connect(a)

	// disconnecting something never registered is a no-op
	manager.Disconnect(&fakeConn{})
	assert.Equal(t, 1, manager.Len())

	manager.Disconnect(a)
	assert.Equal(t, 0, manager.Len())

	// double disconnect stays a no-op
	manager.Disconnect(a)
	assert.Equal(t, 0, manager.Len())
}
