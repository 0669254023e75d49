package gowire

import "fmt"

// Ping function, peers answer with a pong carrying the same ping id.
type Ping struct {
	PingID int64
}

// NewPing return a ping for pingid.
func NewPing(pingid int64) *Ping {
	return &Ping{PingID: pingid}
}

// ID implement Object interface.
func (msg *Ping) ID() uint32 {
	return idPing
}

// Encode implement Object interface.
func (msg *Ping) Encode(out []byte) (int, error) {
	return Int64ToTL(msg.PingID, out), nil
}

// Decode implement Object interface.
func (msg *Ping) Decode(in []byte) (int, error) {
	pingid, n, err := TLToInt64(in)
	if err != nil {
		return 0, err
	}
	msg.PingID = pingid
	return n, nil
}

func (msg *Ping) String() string {
	return fmt.Sprintf("Ping<%d>", msg.PingID)
}

// GetConfig function, empty body.
type GetConfig struct{}

// ID implement Object interface.
func (msg *GetConfig) ID() uint32 {
	return idGetConfig
}

// Encode implement Object interface.
func (msg *GetConfig) Encode(out []byte) (int, error) {
	return 0, nil
}

// Decode implement Object interface.
func (msg *GetConfig) Decode(in []byte) (int, error) {
	return 0, nil
}

func (msg *GetConfig) String() string {
	return "GetConfig"
}
