package gowire

import "bytes"
import "compress/gzip"
import "fmt"
import "io"

// Null constructor, empty body.
type Null struct{}

// ID implement Object interface.
func (msg *Null) ID() uint32 {
	return idNull
}

// Encode implement Object interface.
func (msg *Null) Encode(out []byte) (int, error) {
	return 0, nil
}

// Decode implement Object interface.
func (msg *Null) Decode(in []byte) (int, error) {
	return 0, nil
}

func (msg *Null) String() string {
	return "Null"
}

// Vector of generically framed objects, body is an element count
// followed by one full frame per element.
type Vector struct {
	registry *Registry
	Items    []Object
}

// NewVector return a vector over items, decodable elements resolve
// through r.
func NewVector(r *Registry, items ...Object) *Vector {
	return &Vector{registry: r, Items: items}
}

// ID implement Object interface.
func (msg *Vector) ID() uint32 {
	return idVector
}

// Encode implement Object interface.
func (msg *Vector) Encode(out []byte) (int, error) {
	n := Int32ToTL(int32(len(msg.Items)), out)
	for _, item := range msg.Items {
		m, err := ObjectToTL(item, out[n:])
		if err != nil {
			return 0, err
		}
		n += m
	}
	return n, nil
}

// Decode implement Object interface.
func (msg *Vector) Decode(in []byte) (int, error) {
	count, n, err := TLToInt32(in)
	if err != nil {
		return 0, err
	}
	// each element carries at least a 4-byte constructor id, a count
	// the remaining bytes cannot hold is a lie.
	if count < 0 || int(count) > (len(in)-n)/4 {
		return 0, ErrorTruncated
	}
	msg.Items = make([]Object, 0, count)
	for i := int32(0); i < count; i++ {
		item, m, err := TLToObject(msg.registry, in[n:])
		if err != nil {
			return 0, err
		}
		msg.Items = append(msg.Items, item)
		n += m
	}
	return n, nil
}

func (msg *Vector) String() string {
	return fmt.Sprintf("Vector<%d>", len(msg.Items))
}

// GzipPacked wraps a compressed object frame, Data holds the gzip
// compressed bytes of the inner frame.
type GzipPacked struct {
	Data []byte
}

// NewGzipPacked compress the frame of obj into a GzipPacked wrapper.
func NewGzipPacked(obj Object, buflen int) (*GzipPacked, error) {
	frame := make([]byte, buflen)
	n, err := ObjectToTL(obj, frame)
	if err != nil {
		return nil, err
	}
	var wbuf bytes.Buffer
	writer := gzip.NewWriter(&wbuf)
	if _, err := writer.Write(frame[:n]); err != nil {
		return nil, err
	} else if err := writer.Close(); err != nil {
		return nil, err
	}
	return &GzipPacked{Data: wbuf.Bytes()}, nil
}

// Unpack decompress and decode the inner frame via r.
func (msg *GzipPacked) Unpack(r *Registry) (Object, error) {
	reader, err := gzip.NewReader(bytes.NewReader(msg.Data))
	if err != nil {
		return nil, err
	}
	frame, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	obj, _, err := TLToObject(r, frame)
	return obj, err
}

// ID implement Object interface.
func (msg *GzipPacked) ID() uint32 {
	return idGzipPacked
}

// Encode implement Object interface.
func (msg *GzipPacked) Encode(out []byte) (int, error) {
	return BytesToTL(msg.Data, out)
}

// Decode implement Object interface.
func (msg *GzipPacked) Decode(in []byte) (int, error) {
	data, n, err := TLToBytes(in)
	if err != nil {
		return 0, err
	}
	msg.Data = data
	return n, nil
}

func (msg *GzipPacked) String() string {
	return fmt.Sprintf("GzipPacked<%d>", len(msg.Data))
}
