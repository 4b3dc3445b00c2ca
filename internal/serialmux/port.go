package serialmux

import "io"

// SerialPorter is the minimal interface needed from a serial port. It lets
// tests run the mux over in-memory ports.
type SerialPorter interface {
	io.ReadWriter
	io.Closer
}

// Opener opens the port at path. NewRealSerialMux is built on OpenSerialPort;
// tests substitute their own.
type Opener func(path string, opts PortOptions) (SerialPorter, error)
