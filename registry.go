package gowire

import "github.com/puzpuzpuz/xsync/v3"

import log "github.com/bnclabs/golog"

// ObjectFactory returns a fresh, zero valued Object ready for Decode.
// Registries dispatch generic decoding through factories instead of
// reflection, one factory per constructor id.
type ObjectFactory func() Object

// Registry maps 32-bit constructor ids to type descriptors and decoder
// factories. Lookup is total, an unrecognized id is an expected
// condition when talking to peers on a newer schema. Registration
// normally happens once during init, hot registration is allowed and
// concurrent-safe but is not a fast path.
type Registry struct {
	names     *xsync.MapOf[uint32, string]
	factories *xsync.MapOf[uint32, ObjectFactory]
}

// NewRegistry return an empty registry. One registry per client or
// process, never a package global, so schema versions and tests stay
// isolated.
func NewRegistry() *Registry {
	return &Registry{
		names:     xsync.NewMapOf[uint32, string](),
		factories: xsync.NewMapOf[uint32, ObjectFactory](),
	}
}

// Register a type descriptor for id, without a decoder. Overwriting a
// live registration is allowed but never silent.
func (r *Registry) Register(id uint32, name string) *Registry {
	if prev, ok := r.names.Load(id); ok && prev != name {
		log.Warnf("registry: %#x %q overrides %q\n", id, name, prev)
	}
	r.names.Store(id, name)
	return r
}

// Subscribe a type descriptor and its decoder factory for id, objects
// of this constructor can then be decoded generically via TLToObject.
func (r *Registry) Subscribe(id uint32, name string, f ObjectFactory) *Registry {
	r.Register(id, name)
	r.factories.Store(id, f)
	return r
}

// Lookup the descriptor for id. A miss returns ok=false, it is a
// normal result and never panics.
func (r *Registry) Lookup(id uint32) (name string, ok bool) {
	return r.names.Load(id)
}

// Factory return the decoder factory for id, if one is subscribed.
func (r *Registry) Factory(id uint32) (ObjectFactory, bool) {
	return r.factories.Load(id)
}

// Count of registered constructor ids.
func (r *Registry) Count() int {
	return r.names.Size()
}

// KnownConstructors subscribe the core schema types with r, callers
// layer their full schema on top.
func KnownConstructors(r *Registry) *Registry {
	r.Subscribe(idNull, "gowire.Null", func() Object { return &Null{} })
	r.Subscribe(idVector, "gowire.Vector",
		func() Object { return &Vector{registry: r} })
	r.Subscribe(idCoreMessage, "gowire.CoreMessage",
		func() Object { return &CoreMessage{} })
	r.Subscribe(idMsgContainer, "gowire.MsgContainer",
		func() Object { return &MsgContainer{} })
	r.Subscribe(idGzipPacked, "gowire.GzipPacked",
		func() Object { return &GzipPacked{} })
	r.Subscribe(idFutureSalt, "gowire.FutureSalt",
		func() Object { return &FutureSalt{} })
	r.Subscribe(idFutureSalts, "gowire.FutureSalts",
		func() Object { return &FutureSalts{} })
	r.Subscribe(idPing, "gowire.Ping", func() Object { return &Ping{} })
	r.Subscribe(idGetConfig, "gowire.GetConfig",
		func() Object { return &GetConfig{} })
	// plain descriptors, these constructors decode inside the scalar
	// primitives and never dispatch through a factory.
	r.Register(idBoolTrue, "gowire.BoolTrue")
	r.Register(idBoolFalse, "gowire.BoolFalse")
	r.Register(idTrue, "gowire.True")
	return r
}
