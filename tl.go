package gowire

import "math"
import "unicode/utf8"

// TL primitives, the padded length-prefixed binary layout carried over
// datacenter connections. All functions are pure, encode fills the
// caller supplied `out` buffer and returns the number of bytes written,
// decode returns the value and the number of bytes consumed. Every
// encoded primitive is either fixed width or padded to a multiple of
// four bytes, so fields concatenate into a parent frame without
// re-scanning for boundaries.

// Int32ToTL encode v as 4 bytes little-endian two's-complement.
func Int32ToTL(v int32, out []byte) int {
	x := uint32(v)
	out[0] = byte(x)
	out[1] = byte(x >> 8)
	out[2] = byte(x >> 16)
	out[3] = byte(x >> 24)
	return 4
}

// TLToInt32 decode 4 bytes little-endian two's-complement.
func TLToInt32(in []byte) (int32, int, error) {
	if len(in) < 4 {
		return 0, 0, ErrorTruncated
	}
	x := uint32(in[0]) | uint32(in[1])<<8 | uint32(in[2])<<16 |
		uint32(in[3])<<24
	return int32(x), 4, nil
}

// Int64ToTL encode v as 8 bytes little-endian two's-complement.
func Int64ToTL(v int64, out []byte) int {
	x := uint64(v)
	for i := 0; i < 8; i++ {
		out[i] = byte(x >> (uint(i) * 8))
	}
	return 8
}

// TLToInt64 decode 8 bytes little-endian two's-complement.
func TLToInt64(in []byte) (int64, int, error) {
	if len(in) < 8 {
		return 0, 0, ErrorTruncated
	}
	var x uint64
	for i := 0; i < 8; i++ {
		x |= uint64(in[i]) << (uint(i) * 8)
	}
	return int64(x), 8, nil
}

// Uint32ToTL encode v as 4 bytes little-endian, constructor ids and
// other unsigned fields use this.
func Uint32ToTL(v uint32, out []byte) int {
	return Int32ToTL(int32(v), out)
}

// TLToUint32 decode 4 bytes little-endian unsigned.
func TLToUint32(in []byte) (uint32, int, error) {
	v, n, err := TLToInt32(in)
	return uint32(v), n, err
}

// Float64ToTL encode v as IEEE-754 double, little-endian. NaN and
// infinities pass through bit-exact, no validation.
func Float64ToTL(v float64, out []byte) int {
	return Int64ToTL(int64(math.Float64bits(v)), out)
}

// TLToFloat64 decode 8 bytes IEEE-754 little-endian.
func TLToFloat64(in []byte) (float64, int, error) {
	x, n, err := TLToInt64(in)
	if err != nil {
		return 0, 0, err
	}
	return math.Float64frombits(uint64(x)), n, nil
}

// BoolToTL encode v as the 4-byte boolTrue/boolFalse constructor.
func BoolToTL(v bool, out []byte) int {
	if v {
		return Uint32ToTL(idBoolTrue, out)
	}
	return Uint32ToTL(idBoolFalse, out)
}

// TLToBool decode a boolean constructor, any constructor other than
// boolTrue/boolFalse fails with ErrorInvalidEncoding.
func TLToBool(in []byte) (bool, int, error) {
	id, n, err := TLToUint32(in)
	if err != nil {
		return false, 0, err
	}
	switch id {
	case idBoolTrue:
		return true, n, nil
	case idBoolFalse:
		return false, n, nil
	}
	return false, 0, ErrorInvalidEncoding
}

// BytesTLSize return the encoded size of an n byte payload, header,
// payload and padding included. Callers use it to size `out` buffers.
func BytesTLSize(n int) int {
	if n < bytesLongForm {
		return (1 + n + 3) &^ 3
	}
	return 4 + ((n + 3) &^ 3)
}

// BytesToTL encode data as a length-prefixed byte-string.
//
// short form, length < 254:
//	| len | payload ... | 0x00 padding |
// long form, length >= 254:
//	| 0xfe | len 24-bit LE | payload ... | 0x00 padding |
//
// either way the total is a multiple of four, padding bytes are zero.
// Payloads longer than MaxBytesLen fail with ErrorValueTooLarge.
func BytesToTL(data []byte, out []byte) (int, error) {
	ln := len(data)
	if ln > MaxBytesLen {
		return 0, ErrorValueTooLarge
	}
	n := 0
	if ln < bytesLongForm {
		out[n] = byte(ln)
		n++
	} else {
		out[0] = bytesLongForm
		out[1] = byte(ln)
		out[2] = byte(ln >> 8)
		out[3] = byte(ln >> 16)
		n = 4
	}
	n += copy(out[n:], data)
	for n&3 != 0 {
		out[n] = 0
		n++
	}
	return n, nil
}

// TLToBytes decode a length-prefixed byte-string, returning a copy of
// the payload. Padding is skipped by computed count from the declared
// length, the pad bytes themselves are not validated.
func TLToBytes(in []byte) ([]byte, int, error) {
	if len(in) < 1 {
		return nil, 0, ErrorTruncated
	}
	var ln, n int
	if in[0] < bytesLongForm {
		ln, n = int(in[0]), 1
	} else {
		if len(in) < 4 {
			return nil, 0, ErrorTruncated
		}
		ln = int(in[1]) | int(in[2])<<8 | int(in[3])<<16
		n = 4
	}
	total := (n + ln + 3) &^ 3
	if len(in) < total {
		return nil, 0, ErrorTruncated
	}
	data := make([]byte, ln)
	copy(data, in[n:n+ln])
	return data, total, nil
}

// TextToTL encode s as a utf8 byte-string.
func TextToTL(s string, out []byte) (int, error) {
	return BytesToTL(str2bytes(s), out)
}

// TLToText decode a utf8 byte-string, malformed utf8 fails with
// ErrorInvalidEncoding.
func TLToText(in []byte) (string, int, error) {
	data, n, err := TLToBytes(in)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(data) {
		return "", 0, ErrorInvalidEncoding
	}
	return bytes2str(data), n, nil // data is a fresh copy, safe to alias
}
