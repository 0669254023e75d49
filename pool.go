package gowire

import "context"
import "fmt"
import "io"
import "sync"
import "sync/atomic"
import "time"

import s "github.com/bnclabs/gosettings"
import log "github.com/bnclabs/golog"
import "github.com/VictoriaMetrics/metrics"

type poolState int32

const (
	poolStopped poolState = iota
	poolRunning
	poolStopping
)

// poolkey identifies one bounded set of connections, capacity applies
// per (endpoint, mode).
type poolkey struct {
	endpoint Endpoint
	mode     TransportMode
}

// waiter parked inside Get until capacity or a connection shows up.
// A nil grant transfers a freed capacity reservation, the receiver
// dials its own connection on that slot.
type waiter struct {
	ch chan *Connection
}

// Pool manages bounded, reusable connections per datacenter endpoint
// and transport mode. Connections move Idle -> Issued -> Idle until
// closed, a closed connection never re-enters the idle collection.
// All pool state mutates under one mutex, waiters queue in FIFO
// arrival order per key.
type Pool struct {
	// statistics, keep this 8-byte aligned.
	nDials    uint64 // number of new connections established
	nDialerrs uint64 // number of failed connection attempts
	nReuses   uint64 // number of times an idle connection was handed out
	nWaits    uint64 // number of callers that had to park for capacity
	nReleases uint64 // number of connections returned by callers
	nCloses   uint64 // number of connections closed by the pool

	mu      sync.Mutex
	state   poolState
	idle    map[poolkey][]*Connection
	issued  map[poolkey]int
	waiters map[poolkey][]*waiter
	killch  chan struct{}

	// fields.
	name string
	dial Dialer

	// settings
	setts     s.Settings
	maxconns  int
	logprefix string
}

// NewPool create a pool in the Stopped state, call Start() before the
// first acquisition. Pass dial as nil for the default TCP dialer, and
// setts as nil for DefaultSettings().
func NewPool(name string, dial Dialer, setts s.Settings) *Pool {
	if setts == nil {
		setts = DefaultSettings()
	}
	if dial == nil {
		timeout := time.Duration(setts.Int64("dialtimeout"))
		dial = tcpDialer(timeout * time.Millisecond)
	}
	p := &Pool{
		name:     name,
		dial:     dial,
		setts:    setts,
		maxconns: int(setts.Int64("maxconns")),
	}
	p.logprefix = fmt.Sprintf("POOL[%v]", name)
	return p
}

// Start the pool, allocates bookkeeping and transitions Stopped to
// Running. Calling Start on a running pool is a no-op.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.state == poolRunning:
		return nil
	case p.state == poolStopping || p.killch != nil:
		// Stop is terminal, a pool is never restarted.
		return ErrorPoolClosed
	}
	p.idle = make(map[poolkey][]*Connection)
	p.issued = make(map[poolkey]int)
	p.waiters = make(map[poolkey][]*waiter)
	p.killch = make(chan struct{})
	p.state = poolRunning
	log.Infof("%v started, maxconns:%v per endpoint ...\n",
		p.logprefix, p.maxconns)
	return nil
}

// Get a connection to endpoint under mode. Reuses an idle connection
// when one exists, dials a new one while the key is under capacity,
// otherwise parks the caller in FIFO order until a holder releases.
// There is no timeout here, cancel via ctx. After Stop() every call
// fails with ErrorPoolClosed.
func (p *Pool) Get(
	ctx context.Context,
	endpoint Endpoint, mode TransportMode) (*Connection, error) {

	key := poolkey{endpoint: endpoint, mode: mode}

	p.mu.Lock()
	if p.state != poolRunning {
		p.mu.Unlock()
		return nil, ErrorPoolClosed
	}
	if conns := p.idle[key]; len(conns) > 0 {
		conn := conns[len(conns)-1]
		p.idle[key] = conns[:len(conns)-1]
		p.issued[key]++
		p.mu.Unlock()
		atomic.AddUint64(&p.nReuses, 1)
		mReuses.Inc()
		conn.touch()
		return conn, nil
	}
	if p.issued[key]+len(p.idle[key]) < p.maxconns {
		p.issued[key]++ // reserve capacity across the dial
		p.mu.Unlock()
		return p.dialnew(key)
	}
	w := &waiter{ch: make(chan *Connection, 1)}
	p.waiters[key] = append(p.waiters[key], w)
	killch := p.killch
	p.mu.Unlock()

	atomic.AddUint64(&p.nWaits, 1)
	mWaits.Inc()
	log.Debugf("%v %v at capacity, parking caller\n", p.logprefix, key)

	select {
	case conn := <-w.ch:
		if conn == nil { // a freed slot reserved on our behalf, dial it
			return p.dialnew(key)
		}
		return conn, nil

	case <-ctx.Done():
		p.unwait(key, w)
		return nil, ctx.Err()

	case <-killch:
		// a grant can race the shutdown, don't leak it.
		select {
		case conn := <-w.ch:
			if conn != nil {
				p.closeconn(conn)
			} else {
				p.mu.Lock()
				p.decissued(key)
				p.mu.Unlock()
			}
		default:
		}
		return nil, ErrorPoolClosed
	}
}

// Release a connection back for reuse. Pass healthy as false when the
// caller saw a transport failure, the connection is then closed and
// its capacity freed so a later Get can dial a replacement. A healthy
// connection goes to the first parked waiter of its key, or idles.
func (p *Pool) Release(conn *Connection, healthy bool) {
	if conn == nil {
		return
	}
	atomic.AddUint64(&p.nReleases, 1)
	key := poolkey{endpoint: conn.Endpoint(), mode: conn.Mode()}

	p.mu.Lock()
	if p.state != poolRunning {
		p.decissued(key)
		p.mu.Unlock()
		p.closeconn(conn)
		return
	}
	if !healthy || !conn.IsConnected() {
		p.freeslot(key)
		p.mu.Unlock()
		p.closeconn(conn)
		return
	}
	conn.touch()
	if q := p.waiters[key]; len(q) > 0 {
		w := q[0] // first-suspended, first-served
		p.waiters[key] = q[1:]
		w.ch <- conn // stays issued, direct handoff
		p.mu.Unlock()
		return
	}
	p.decissued(key)
	p.idle[key] = append(p.idle[key], conn)
	p.mu.Unlock()
}

// Stop the pool. Idle connections are closed here, issued connections
// are closed as their holders release them, parked callers fail with
// ErrorPoolClosed. Close errors during shutdown are logged, shutdown
// always completes. Stop is terminal.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.state != poolRunning {
		p.mu.Unlock()
		return nil
	}
	p.state = poolStopping
	close(p.killch)
	var conns []*Connection
	for _, q := range p.idle {
		conns = append(conns, q...)
	}
	p.idle = make(map[poolkey][]*Connection)
	p.waiters = make(map[poolkey][]*waiter)
	p.state = poolStopped
	p.mu.Unlock()

	for _, conn := range conns {
		p.closeconn(conn)
	}
	log.Infof("%v ... stopped\n", p.logprefix)
	return nil
}

//---- maintenance APIs

// Name returns the pool-name.
func (p *Pool) Name() string {
	return p.name
}

// Counts return the idle and issued connection counts for endpoint
// under mode.
func (p *Pool) Counts(endpoint Endpoint, mode TransportMode) (idle, issued int) {
	key := poolkey{endpoint: endpoint, mode: mode}
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle[key]), p.issued[key]
}

// Stat shall return the stat counts for this pool.
//
// "n_dials"
//		number of new connections established.
//
// "n_dialerrs"
//		number of failed connection attempts.
//
// "n_reuses"
//		number of times an idle connection was handed out.
//
// "n_waits"
//		number of callers that parked waiting for capacity.
//
// "n_releases"
//		number of connections returned by callers.
//
// "n_closes"
//		number of connections closed by the pool.
func (p *Pool) Stat() map[string]uint64 {
	return map[string]uint64{
		"n_dials":    atomic.LoadUint64(&p.nDials),
		"n_dialerrs": atomic.LoadUint64(&p.nDialerrs),
		"n_reuses":   atomic.LoadUint64(&p.nReuses),
		"n_waits":    atomic.LoadUint64(&p.nWaits),
		"n_releases": atomic.LoadUint64(&p.nReleases),
		"n_closes":   atomic.LoadUint64(&p.nCloses),
	}
}

// WriteMetrics dump process-wide pool counters in prometheus
// exposition format.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}

//---- local APIs

func (p *Pool) dialnew(key poolkey) (*Connection, error) {
	raw, err := p.dial(key.endpoint, key.mode)
	if err != nil {
		atomic.AddUint64(&p.nDialerrs, 1)
		mDialerrs.Inc()
		p.mu.Lock()
		p.freeslot(key) // the reserved slot is free again
		p.mu.Unlock()
		log.Errorf("%v dial %v: %v\n", p.logprefix, key, err)
		return nil, fmt.Errorf("%w: %v", ErrorConnectionFailed, err)
	}
	conn := newConnection(raw, key.endpoint, key.mode)
	atomic.AddUint64(&p.nDials, 1)
	mDials.Inc()

	p.mu.Lock()
	if p.state != poolRunning { // pool stopped while dialing
		p.decissued(key)
		p.mu.Unlock()
		p.closeconn(conn)
		return nil, ErrorPoolClosed
	}
	p.mu.Unlock()
	log.Verbosef("%v dialed %v\n", p.logprefix, key)
	return conn, nil
}

// remove w from the waiter queue after cancellation, without side
// effects. A grant that raced the cancellation is pushed back into
// the pool.
func (p *Pool) unwait(key poolkey, w *waiter) {
	p.mu.Lock()
	q := p.waiters[key]
	for i, x := range q {
		if x == w {
			p.waiters[key] = append(q[:i], q[i+1:]...)
			p.mu.Unlock()
			return
		}
	}
	stopped := p.state != poolRunning
	p.mu.Unlock()

	if stopped { // Stop() cleared the queue, no grant is coming
		select {
		case conn := <-w.ch:
			if conn != nil {
				p.closeconn(conn)
			} else {
				p.mu.Lock()
				p.decissued(key)
				p.mu.Unlock()
			}
		default:
		}
		return
	}
	// not queued anymore, a grant was sent under the pool lock.
	if conn := <-w.ch; conn != nil {
		p.Release(conn, true)
	} else {
		p.mu.Lock()
		p.freeslot(key) // pass the reservation on
		p.mu.Unlock()
	}
}

// caller shall hold p.mu. Capacity freed by the caller moves to the
// first parked waiter as a reservation, the waiter dials on that slot
// and later arrivals cannot steal it. Without waiters the slot is
// freed for anyone.
func (p *Pool) freeslot(key poolkey) {
	if q := p.waiters[key]; len(q) > 0 {
		w := q[0]
		p.waiters[key] = q[1:]
		w.ch <- nil // reservation travels with the nil grant
		return
	}
	p.decissued(key)
}

// caller shall hold p.mu.
func (p *Pool) decissued(key poolkey) {
	if p.issued[key] > 0 {
		p.issued[key]--
	}
}

func (p *Pool) closeconn(conn *Connection) {
	atomic.AddUint64(&p.nCloses, 1)
	mCloses.Inc()
	if err := conn.Close(); err != nil {
		log.Warnf("%v close %v: %v\n", p.logprefix, conn.Endpoint(), err)
	}
}

// process-wide counters, aggregated across pool instances.
var mDials = metrics.NewCounter("gowire_pool_dials_total")
var mDialerrs = metrics.NewCounter("gowire_pool_dial_errors_total")
var mReuses = metrics.NewCounter("gowire_pool_reuses_total")
var mWaits = metrics.NewCounter("gowire_pool_waits_total")
var mCloses = metrics.NewCounter("gowire_pool_closes_total")
