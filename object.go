package gowire

import "fmt"

// Object interface, implemented by every schema type exchanged on the
// wire. Encode emits the body only, the 4-byte constructor id frame is
// added by ObjectToTL so that composite objects can embed bare bodies.
type Object interface {
	// ID return the 32-bit constructor id of this type.
	ID() uint32

	// Encode the object body into out, return bytes written.
	Encode(out []byte) (int, error)

	// Decode the object body from in, return bytes consumed.
	Decode(in []byte) (int, error)

	// String representation of this object, used for logging.
	String() string
}

// ObjectToTL encode a generically framed object, 4 bytes of
// little-endian constructor id followed by the body.
func ObjectToTL(obj Object, out []byte) (int, error) {
	n := Uint32ToTL(obj.ID(), out)
	m, err := obj.Encode(out[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// TLToObject decode a generically framed object, dispatching on the
// leading constructor id via the registry. A constructor without a
// subscribed decoder fails with ErrorUnknownConstructor, the id is
// included in the error text.
func TLToObject(r *Registry, in []byte) (Object, int, error) {
	id, n, err := TLToUint32(in)
	if err != nil {
		return nil, 0, err
	}
	factory, ok := r.Factory(id)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %#x", ErrorUnknownConstructor, id)
	}
	obj := factory()
	m, err := obj.Decode(in[n:])
	if err != nil {
		return nil, 0, err
	}
	return obj, n + m, nil
}

// ObjectTLSize worst-case frame size for an object whose body needs n
// bytes.
func ObjectTLSize(n int) int {
	return 4 + n
}
