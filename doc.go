// Package gowire implements the transport-facing core of a binary RPC
// client speaking a length-prefixed, schema driven wire encoding to
// remote datacenters.
//
// The package has three parts. TL codec primitives encode and decode
// scalars and length-prefixed byte-strings into the exact, padded
// binary layout, refer Int32ToTL, BytesToTL and friends. A constructor
// registry maps 32-bit constructor ids to type descriptors and decoder
// factories, generic frames dispatch through it via TLToObject. A
// connection pool hands out bounded, reusable transport connections
// per (endpoint, transport-mode) with FIFO waiting and context based
// cancellation.
//
// typical usage:
//
//	registry := gowire.KnownConstructors(gowire.NewRegistry())
//	pool := gowire.NewPool("dc2", nil, nil)
//	pool.Start()
//	conn, err := pool.Get(ctx, gowire.Endpoint{Host: host, Port: 443},
//		gowire.ModeAbridged)
//	// frame requests with the codec, write/read over conn ...
//	pool.Release(conn, true)
//	pool.Stop()
//
// Sessions, key exchange, retries and reconnection policy are layered
// on top of this package and are not part of it. The pool moves opaque
// bytes, the codec never touches connections.
package gowire
