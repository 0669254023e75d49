package gowire

import "fmt"

// FutureSalt a server salt valid for a time window.
type FutureSalt struct {
	ValidSince int32
	ValidUntil int32
	Salt       int64
}

// ID implement Object interface.
func (msg *FutureSalt) ID() uint32 {
	return idFutureSalt
}

// Encode implement Object interface.
func (msg *FutureSalt) Encode(out []byte) (int, error) {
	n := Int32ToTL(msg.ValidSince, out)
	n += Int32ToTL(msg.ValidUntil, out[n:])
	n += Int64ToTL(msg.Salt, out[n:])
	return n, nil
}

// Decode implement Object interface.
func (msg *FutureSalt) Decode(in []byte) (int, error) {
	since, n, err := TLToInt32(in)
	if err != nil {
		return 0, err
	}
	until, m, err := TLToInt32(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	salt, m, err := TLToInt64(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	msg.ValidSince, msg.ValidUntil, msg.Salt = since, until, salt
	return n, nil
}

func (msg *FutureSalt) String() string {
	return fmt.Sprintf("FutureSalt<%d>", msg.Salt)
}

// FutureSalts response to a salt request, salts are bare bodies.
type FutureSalts struct {
	ReqMsgID int64
	Now      int32
	Salts    []FutureSalt
}

// ID implement Object interface.
func (msg *FutureSalts) ID() uint32 {
	return idFutureSalts
}

// Encode implement Object interface.
func (msg *FutureSalts) Encode(out []byte) (int, error) {
	n := Int64ToTL(msg.ReqMsgID, out)
	n += Int32ToTL(msg.Now, out[n:])
	n += Int32ToTL(int32(len(msg.Salts)), out[n:])
	for i := range msg.Salts {
		m, err := msg.Salts[i].Encode(out[n:])
		if err != nil {
			return 0, err
		}
		n += m
	}
	return n, nil
}

// Decode implement Object interface.
func (msg *FutureSalts) Decode(in []byte) (int, error) {
	reqid, n, err := TLToInt64(in)
	if err != nil {
		return 0, err
	}
	now, m, err := TLToInt32(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	count, m, err := TLToInt32(in[n:])
	if err != nil {
		return 0, err
	}
	n += m
	// a bare salt body is exactly 16 bytes.
	if count < 0 || int(count) > (len(in)-n)/16 {
		return 0, ErrorTruncated
	}
	msg.ReqMsgID, msg.Now = reqid, now
	msg.Salts = make([]FutureSalt, 0, count)
	for i := int32(0); i < count; i++ {
		var fs FutureSalt
		m, err := fs.Decode(in[n:])
		if err != nil {
			return 0, err
		}
		msg.Salts = append(msg.Salts, fs)
		n += m
	}
	return n, nil
}

func (msg *FutureSalts) String() string {
	return fmt.Sprintf("FutureSalts<%d>", len(msg.Salts))
}
