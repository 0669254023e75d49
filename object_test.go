package gowire

import "bytes"
import "errors"
import "reflect"
import "testing"

func TestObjectFrame(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	out := make([]byte, 64)
	ref := NewPing(123456789)
	n, err := ObjectToTL(ref, out)
	if err != nil {
		t.Fatal(err)
	}
	// frame starts with the little-endian constructor id.
	id, _, _ := TLToUint32(out[:n])
	if id != idPing {
		t.Errorf("expected %#x, got %#x", idPing, id)
	}
	obj, m, err := TLToObject(r, out[:n])
	if err != nil {
		t.Fatal(err)
	} else if m != n {
		t.Errorf("expected %v consumed, got %v", n, m)
	}
	if ping, ok := obj.(*Ping); !ok || ping.PingID != ref.PingID {
		t.Errorf("expected %v, got %v", ref, obj)
	}
}

func TestObjectUnknownConstructor(t *testing.T) {
	r := NewRegistry()
	out := make([]byte, 8)
	Uint32ToTL(0xcafebabe, out)
	_, _, err := TLToObject(r, out)
	if !errors.Is(err, ErrorUnknownConstructor) {
		t.Errorf("expected %v, got %v", ErrorUnknownConstructor, err)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	ref := NewVector(r, NewPing(1), NewPing(2), &Null{})
	out := make([]byte, 256)
	n, err := ObjectToTL(ref, out)
	if err != nil {
		t.Fatal(err)
	}
	obj, m, err := TLToObject(r, out[:n])
	if err != nil {
		t.Fatal(err)
	} else if m != n {
		t.Errorf("expected %v consumed, got %v", n, m)
	}
	vec, ok := obj.(*Vector)
	if !ok {
		t.Fatalf("expected Vector, got %T", obj)
	}
	if !reflect.DeepEqual(ref.Items, vec.Items) {
		t.Errorf("expected %v, got %v", ref.Items, vec.Items)
	}
}

func TestCoreMessageRoundTrip(t *testing.T) {
	body := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	ref := &CoreMessage{MsgID: 7205759403792793600, SeqNo: 3, Body: body}
	out := make([]byte, 64)
	n, err := ref.Encode(out)
	if err != nil {
		t.Fatal(err)
	}
	msg := &CoreMessage{}
	m, err := msg.Decode(out[:n])
	if err != nil {
		t.Fatal(err)
	} else if m != n {
		t.Errorf("expected %v consumed, got %v", n, m)
	}
	if !reflect.DeepEqual(ref, msg) {
		t.Errorf("expected %v, got %v", ref, msg)
	}
	// declared body length beyond the buffer is truncation.
	if _, err := msg.Decode(out[:n-4]); !errors.Is(err, ErrorTruncated) {
		t.Errorf("expected %v, got %v", ErrorTruncated, err)
	}
}

func TestMsgContainerRoundTrip(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	ref := &MsgContainer{
		Messages: []CoreMessage{
			{MsgID: 1, SeqNo: 1, Body: []byte{0xaa, 0xbb, 0xcc, 0xdd}},
			{MsgID: 2, SeqNo: 3, Body: []byte{}},
		},
	}
	out := make([]byte, 256)
	n, err := ObjectToTL(ref, out)
	if err != nil {
		t.Fatal(err)
	}
	obj, _, err := TLToObject(r, out[:n])
	if err != nil {
		t.Fatal(err)
	}
	cont, ok := obj.(*MsgContainer)
	if !ok {
		t.Fatalf("expected MsgContainer, got %T", obj)
	}
	if len(cont.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", len(cont.Messages))
	}
	if !bytes.Equal(ref.Messages[0].Body, cont.Messages[0].Body) {
		t.Errorf("expected %v, got %v",
			ref.Messages[0].Body, cont.Messages[0].Body)
	}
}

func TestFutureSaltsRoundTrip(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	ref := &FutureSalts{
		ReqMsgID: 42,
		Now:      1700000000,
		Salts: []FutureSalt{
			{ValidSince: 1, ValidUntil: 2, Salt: -3},
			{ValidSince: 4, ValidUntil: 5, Salt: 6},
		},
	}
	out := make([]byte, 256)
	n, err := ObjectToTL(ref, out)
	if err != nil {
		t.Fatal(err)
	}
	obj, _, err := TLToObject(r, out[:n])
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ref, obj) {
		t.Errorf("expected %v, got %v", ref, obj)
	}
}

func TestDecodeBogusCounts(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	// a negative or absurdly large element count must fail cleanly,
	// not panic or preallocate beyond the buffer.
	for _, id := range []uint32{idVector, idMsgContainer} {
		out := make([]byte, 8)
		n := Uint32ToTL(id, out)
		Int32ToTL(-1, out[n:])
		if _, _, err := TLToObject(r, out); !errors.Is(err, ErrorTruncated) {
			t.Errorf("id %#x count -1: expected %v, got %v",
				id, ErrorTruncated, err)
		}
		Int32ToTL(0x7fffffff, out[n:])
		if _, _, err := TLToObject(r, out); !errors.Is(err, ErrorTruncated) {
			t.Errorf("id %#x count max: expected %v, got %v",
				id, ErrorTruncated, err)
		}
	}
	out := make([]byte, 16)
	n := Uint32ToTL(idFutureSalts, out)
	n += Int64ToTL(42, out[n:])
	n += Int32ToTL(1700000000, out[n:])
	// count field is past the 16-byte buffer, declare it separately.
	frame := append(out[:n], 0xff, 0xff, 0xff, 0x7f)
	if _, _, err := TLToObject(r, frame); !errors.Is(err, ErrorTruncated) {
		t.Errorf("salts count max: expected %v, got %v", ErrorTruncated, err)
	}
	frame = append(frame[:n], 0xff, 0xff, 0xff, 0xff)
	if _, _, err := TLToObject(r, frame); !errors.Is(err, ErrorTruncated) {
		t.Errorf("salts count -1: expected %v, got %v", ErrorTruncated, err)
	}
}

func TestGzipPackedRoundTrip(t *testing.T) {
	r := KnownConstructors(NewRegistry())
	inner := NewPing(987654321)
	packed, err := NewGzipPacked(inner, 64)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 512)
	n, err := ObjectToTL(packed, out)
	if err != nil {
		t.Fatal(err)
	}
	obj, _, err := TLToObject(r, out[:n])
	if err != nil {
		t.Fatal(err)
	}
	gz, ok := obj.(*GzipPacked)
	if !ok {
		t.Fatalf("expected GzipPacked, got %T", obj)
	}
	unpacked, err := gz.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if ping, ok := unpacked.(*Ping); !ok || ping.PingID != inner.PingID {
		t.Errorf("expected %v, got %v", inner, unpacked)
	}
}

func BenchmarkObjectToTL(b *testing.B) {
	out := make([]byte, 64)
	ping := NewPing(1)
	for i := 0; i < b.N; i++ {
		ObjectToTL(ping, out)
	}
}

func BenchmarkTLToObject(b *testing.B) {
	r := KnownConstructors(NewRegistry())
	out := make([]byte, 64)
	n, _ := ObjectToTL(NewPing(1), out)
	for i := 0; i < b.N; i++ {
		TLToObject(r, out[:n])
	}
}
