package gowire

import s "github.com/bnclabs/gosettings"

// DefaultSettings for pools and tools.
//
// "maxconns" (int64, default: 8)
//		ceiling on idle+issued connections per (endpoint, mode).
//
// "dialtimeout" (int64, default: 10000)
//		timeout in milliseconds for the default TCP dialer.
//
// "buffersize" (int64, default: 4096)
//		scratch buffer size for object framing helpers.
//
// "log.level" (string, default: "info")
//		one of "ignore", "fatal", "error", "warn", "info", "verbose",
//		"debug", "trace".
//
// "log.file" (string, default: "")
//		log to file, empty string means console.
func DefaultSettings() s.Settings {
	return s.Settings{
		"maxconns":    8,
		"dialtimeout": 10000,
		"buffersize":  4096,
		"log.level":   "info",
		"log.file":    "",
	}
}
