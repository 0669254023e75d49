package gowire

import "testing"

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(0xdeadbeef, "schema.Custom")
	if name, ok := r.Lookup(0xdeadbeef); !ok || name != "schema.Custom" {
		t.Errorf("expected schema.Custom, got %q (%v)", name, ok)
	}
	// a miss is a normal result, never a panic.
	if name, ok := r.Lookup(0x12345678); ok {
		t.Errorf("expected miss, got %q", name)
	}
}

func TestRegistryOverride(t *testing.T) {
	r := NewRegistry()
	r.Register(0xdeadbeef, "schema.Old")
	r.Register(0xdeadbeef, "schema.New") // deliberate override, logged
	if name, _ := r.Lookup(0xdeadbeef); name != "schema.New" {
		t.Errorf("expected schema.New, got %q", name)
	}
	if ref := 1; r.Count() != ref {
		t.Errorf("expected %v, got %v", ref, r.Count())
	}
}

func TestKnownConstructors(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	refs := map[uint32]string{
		idBoolFalse:    "gowire.BoolFalse",
		idBoolTrue:     "gowire.BoolTrue",
		idVector:       "gowire.Vector",
		idMsgContainer: "gowire.MsgContainer",
		idFutureSalts:  "gowire.FutureSalts",
		idFutureSalt:   "gowire.FutureSalt",
		idGzipPacked:   "gowire.GzipPacked",
		idCoreMessage:  "gowire.CoreMessage",
		idNull:         "gowire.Null",
		idPing:         "gowire.Ping",
		idGetConfig:    "gowire.GetConfig",
	}
	for id, ref := range refs {
		if name, ok := r.Lookup(id); !ok || name != ref {
			t.Errorf("%#x: expected %q, got %q (%v)", id, ref, name, ok)
		}
	}
	// the scalar bool constructors carry no factory.
	if _, ok := r.Factory(idBoolTrue); ok {
		t.Errorf("expected no factory for boolTrue")
	}
	if _, ok := r.Factory(idVector); !ok {
		t.Errorf("expected a factory for vector")
	}
}

func BenchmarkRegistryLookup(b *testing.B) {
	r := KnownConstructors(NewRegistry())
	for i := 0; i < b.N; i++ {
		r.Lookup(idVector)
	}
}
