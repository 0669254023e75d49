package gowire

import "errors"

// ErrorTruncated means the input buffer ended before the field's
// declared, or fixed, width. Caller can retry after reading more bytes.
var ErrorTruncated = errors.New("gowire.truncated")

// ErrorInvalidEncoding means a text field carried malformed utf8, or a
// boolean field carried a constructor that is neither true nor false.
var ErrorInvalidEncoding = errors.New("gowire.invalidEncoding")

// ErrorValueTooLarge means a byte-string exceeds the 24-bit length
// field of the long form, refer MaxBytesLen.
var ErrorValueTooLarge = errors.New("gowire.valueTooLarge")

// ErrorUnknownConstructor means a generic object frame started with a
// constructor id that has no decoder subscribed with the registry.
var ErrorUnknownConstructor = errors.New("gowire.unknownConstructor")

// ErrorConnectionFailed means dialing a new connection to the endpoint
// failed, pool capacity is unaffected.
var ErrorConnectionFailed = errors.New("gowire.connectionFailed")

// ErrorPoolClosed is returned for pool operations after Stop().
var ErrorPoolClosed = errors.New("gowire.poolClosed")

// ErrorClosedConn is returned for I/O on a closed connection.
var ErrorClosedConn = errors.New("gowire.closedConnection")

// MaxBytesLen is the longest byte-string the long form can frame,
// its length field is 24-bit.
const MaxBytesLen = 1<<24 - 1

// marker byte for the long form, also the first length that needs it.
const bytesLongForm = 0xfe

// constructor ids for the core schema types.
const (
	idBoolFalse    uint32 = 0xbc799737
	idBoolTrue     uint32 = 0x997275b5
	idVector       uint32 = 0x1cb5c415
	idMsgContainer uint32 = 0x73f1f8dc
	idFutureSalts  uint32 = 0xae500895
	idFutureSalt   uint32 = 0x0949d9dc
	idGzipPacked   uint32 = 0x3072cfa1
	idCoreMessage  uint32 = 0x5bb8e511
	idNull         uint32 = 0x02134579
	idTrue         uint32 = 0x3fedd339
	idPing         uint32 = 0x7abe77ec
	idGetConfig    uint32 = 0x78d4b1fb
)
