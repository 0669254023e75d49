package gowire

import "fmt"
import "net"
import "strconv"
import "sync/atomic"
import "time"

import log "github.com/bnclabs/golog"

// TransportMode names the framing variant spoken over a raw
// connection. Modes are opaque to the codec, the session layer picks
// one per connection and the pool keys its bookkeeping on it.
type TransportMode string

const (
	ModeAbridged     TransportMode = "abridged"
	ModeIntermediate TransportMode = "intermediate"
	ModeFull         TransportMode = "full"
)

// Endpoint identifies a remote datacenter.
type Endpoint struct {
	Host string
	Port int
}

// Addr return host:port for dialing.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Addr()
}

// Transporter interface to read and write raw bytes, connection
// objects shall implement this interface.
type Transporter interface { // facilitates unit testing
	Read(b []byte) (n int, err error)
	Write(b []byte) (n int, err error)
	LocalAddr() net.Addr
	RemoteAddr() net.Addr
	Close() error
}

// Dialer establishes a raw transport to endpoint under mode. The
// default dialer opens a plain TCP connection, tests and session
// layers substitute their own.
type Dialer func(endpoint Endpoint, mode TransportMode) (Transporter, error)

// tcpDialer return a Dialer opening TCP connections with timeout.
func tcpDialer(timeout time.Duration) Dialer {
	return func(endpoint Endpoint, mode TransportMode) (Transporter, error) {
		conn, err := net.DialTimeout("tcp", endpoint.Addr(), timeout)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// Connection is one live transport link to an endpoint, owned by the
// pool except while checked out to exactly one caller. The payload
// bytes flowing through it are opaque here, sessions frame them with
// the TL codec.
type Connection struct {
	// 8-byte aligned atomics.
	aliveat int64 // last-used timestamp, in nanoseconds
	closed  int32

	conn      Transporter
	endpoint  Endpoint
	mode      TransportMode
	logprefix string
}

func newConnection(
	conn Transporter, endpoint Endpoint, mode TransportMode) *Connection {

	c := &Connection{
		aliveat:  time.Now().UnixNano(),
		conn:     conn,
		endpoint: endpoint,
		mode:     mode,
	}
	c.logprefix = fmt.Sprintf("CONN[%v;%v]", endpoint, mode)
	return c
}

// Read raw bytes off the transport, refreshes the last-used timestamp.
func (c *Connection) Read(b []byte) (int, error) {
	if !c.IsConnected() {
		return 0, ErrorClosedConn
	}
	n, err := c.conn.Read(b)
	c.touch()
	return n, err
}

// Write raw bytes to the transport, refreshes the last-used timestamp.
func (c *Connection) Write(b []byte) (int, error) {
	if !c.IsConnected() {
		return 0, ErrorClosedConn
	}
	n, err := c.conn.Write(b)
	c.touch()
	return n, err
}

// Close the underlying transport, idempotent, Closed is terminal.
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	log.Debugf("%v closed\n", c.logprefix)
	return c.conn.Close()
}

// IsConnected return whether this connection is still usable.
func (c *Connection) IsConnected() bool {
	return atomic.LoadInt32(&c.closed) == 0
}

// Endpoint this connection is dialed to.
func (c *Connection) Endpoint() Endpoint {
	return c.endpoint
}

// Mode this connection was dialed under.
func (c *Connection) Mode() TransportMode {
	return c.mode
}

// Idletime since the connection last carried bytes.
func (c *Connection) Idletime() time.Duration {
	then := time.Unix(0, atomic.LoadInt64(&c.aliveat))
	return time.Since(then)
}

func (c *Connection) touch() {
	atomic.StoreInt64(&c.aliveat, time.Now().UnixNano())
}
