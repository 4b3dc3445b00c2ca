package serialmux

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
)

var errPortClosed = errors.New("serial port closed")

// MemoryPort is an in-memory SerialPorter standing in for an instrument. Reads
// block until data is queued or the port is closed, at which point they
// return io.EOF. Every complete command line written to the port is
// recorded and, when Respond is set, answered with whatever Respond returns.
type MemoryPort struct {
	mu       sync.Mutex
	cond     *sync.Cond
	readBuf  bytes.Buffer
	writeBuf bytes.Buffer
	pending  string
	commands []string
	closed   bool

	// Respond maps a received command line (without line ending) to the
	// text the instrument prints back. It is called without the port lock.
	Respond func(command string) string

	// WriteError, when set, fails the next Write.
	WriteError error
	// CloseError is returned by Close.
	CloseError error
}

// NewMemoryPort returns an empty port.
func NewMemoryPort() *MemoryPort {
	p := &MemoryPort{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *MemoryPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for !p.closed && p.readBuf.Len() == 0 {
		p.cond.Wait()
	}
	if p.readBuf.Len() == 0 {
		return 0, io.EOF
	}
	return p.readBuf.Read(b)
}

func (p *MemoryPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0, errPortClosed
	}
	if p.WriteError != nil {
		err := p.WriteError
		p.WriteError = nil
		p.mu.Unlock()
		return 0, err
	}
	p.writeBuf.Write(b)
	p.pending += string(b)
	var lines []string
	for {
		i := strings.IndexByte(p.pending, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(p.pending[:i], "\r")
		p.pending = p.pending[i+1:]
		p.commands = append(p.commands, line)
		lines = append(lines, line)
	}
	respond := p.Respond
	p.mu.Unlock()

	if respond != nil {
		for _, line := range lines {
			if reply := respond(line); reply != "" {
				p.Feed(reply)
			}
		}
	}
	return len(b), nil
}

func (p *MemoryPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.cond.Broadcast()
	return p.CloseError
}

// Feed queues text for subsequent reads, as if printed by the instrument.
func (p *MemoryPort) Feed(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readBuf.WriteString(text)
	p.cond.Broadcast()
}

// Commands returns the command lines received so far.
func (p *MemoryPort) Commands() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.commands...)
}

// Written returns every byte written to the port.
func (p *MemoryPort) Written() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeBuf.String()
}

// Closed reports whether Close was called.
func (p *MemoryPort) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// NewMemorySerialMux creates a SerialMux over a fresh MemoryPort.
func NewMemorySerialMux() (*SerialMux[*MemoryPort], *MemoryPort) {
	port := NewMemoryPort()
	return NewSerialMux(port), port
}
