package gowire

import "fmt"

// CoreMessage envelope for a payload travelling inside a session,
// body is length-prefixed raw bytes and stays opaque at this layer.
type CoreMessage struct {
	MsgID int64
	SeqNo int32
	Body  []byte
}

// ID implement Object interface.
func (msg *CoreMessage) ID() uint32 {
	return idCoreMessage
}

// Encode implement Object interface.
func (msg *CoreMessage) Encode(out []byte) (int, error) {
	n := Int64ToTL(msg.MsgID, out)
	n += Int32ToTL(msg.SeqNo, out[n:])
	n += Int32ToTL(int32(len(msg.Body)), out[n:])
	n += copy(out[n:], msg.Body)
	return n, nil
}

// Decode implement Object interface.
func (msg *CoreMessage) Decode(in []byte) (int, error) {
	msgid, n, err := TLToInt64(in)
	if err != nil {
		return 0, err
	}
	seqno, m, err := TLToInt32(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	length, m, err := TLToInt32(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	if length < 0 || len(in) < n+int(length) {
		return 0, ErrorTruncated
	}
	msg.MsgID, msg.SeqNo = msgid, seqno
	msg.Body = make([]byte, length)
	n += copy(msg.Body, in[n:n+int(length)])
	return n, nil
}

func (msg *CoreMessage) String() string {
	return fmt.Sprintf("CoreMessage<%d,%d>", msg.MsgID, msg.SeqNo)
}

// MsgContainer batches several messages into one frame, elements are
// bare message bodies without their own constructor id.
type MsgContainer struct {
	Messages []CoreMessage
}

// ID implement Object interface.
func (msg *MsgContainer) ID() uint32 {
	return idMsgContainer
}

// Encode implement Object interface.
func (msg *MsgContainer) Encode(out []byte) (int, error) {
	n := Int32ToTL(int32(len(msg.Messages)), out)
	for i := range msg.Messages {
		m, err := msg.Messages[i].Encode(out[n:])
		if err != nil {
			return 0, err
		}
		n += m
	}
	return n, nil
}

// Decode implement Object interface.
func (msg *MsgContainer) Decode(in []byte) (int, error) {
	count, n, err := TLToInt32(in)
	if err != nil {
		return 0, err
	}
	// a bare message body is at least 16 bytes, msgid + seqno + length.
	if count < 0 || int(count) > (len(in)-n)/16 {
		return 0, ErrorTruncated
	}
	msg.Messages = make([]CoreMessage, 0, count)
	for i := int32(0); i < count; i++ {
		var cm CoreMessage
		m, err := cm.Decode(in[n:])
		if err != nil {
			return 0, err
		}
		msg.Messages = append(msg.Messages, cm)
		n += m
	}
	return n, nil
}

func (msg *MsgContainer) String() string {
	return fmt.Sprintf("MsgContainer<%d>", len(msg.Messages))
}
