package systolic

import (
	"fmt"
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosPortMsgSend marks when a message is sent out from the port.
var HookPosPortMsgSend = &sim.HookPos{Name: "Port Msg Send"}

// HookPosPortMsgRecvd marks when an inbound message arrives at the port.
var HookPosPortMsgRecvd = &sim.HookPos{Name: "Port Msg Recv"}

// HookPosPortMsgRetrieve marks when a message is taken out of a port buffer.
var HookPosPortMsgRetrieve = &sim.HookPos{Name: "Port Msg Retrieve"}

// stimulusPort implements sim.Port with single-message incoming and
// outgoing buffers. One buffered message per direction is all the engine
// needs: stimulus and results move in lockstep with the clock.
type stimulusPort struct {
	sim.HookableBase

	lock sync.Mutex
	name string
	comp sim.Component
	conn sim.Connection

	incomingBuf sim.Buffer
	outgoingBuf sim.Buffer
}

// NewPort creates a port with the given buffer capacities.
func NewPort(
	comp sim.Component,
	incomingBufCap, outgoingBufCap int,
	name string,
) sim.Port {
	p := new(stimulusPort)
	p.comp = comp
	p.incomingBuf = sim.NewBuffer(name+".IncomingBuf", incomingBufCap)
	p.outgoingBuf = sim.NewBuffer(name+".OutgoingBuf", outgoingBufCap)
	p.name = name

	return p
}

// AsRemote returns the remote port name.
func (p *stimulusPort) AsRemote() sim.RemotePort {
	return sim.RemotePort(p.name)
}

// SetConnection sets which connection is plugged in to this port.
func (p *stimulusPort) SetConnection(conn sim.Connection) {
	if p.conn != nil {
		panic(fmt.Sprintf(
			"connection already set to %s, now connecting to %s",
			p.conn.Name(), conn.Name(),
		))
	}

	p.conn = conn
}

// Component returns the owner component of the port.
func (p *stimulusPort) Component() sim.Component {
	return p.comp
}

// Name returns the name of the port.
func (p *stimulusPort) Name() string {
	return p.name
}

// CanSend checks if the port can send a message without error.
func (p *stimulusPort) CanSend() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.outgoingBuf.CanPush()
}

// Send is used to send a message out from a component.
func (p *stimulusPort) Send(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	p.msgMustBeValid(msg)

	if !p.outgoingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := (p.outgoingBuf.Size() == 0)
	p.outgoingBuf.Push(msg)

	hookCtx := sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgSend,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)
	p.lock.Unlock()

	if wasEmpty {
		p.conn.NotifySend()
	}

	return nil
}

// Deliver is used by the connection to deliver a message to the component.
func (p *stimulusPort) Deliver(msg sim.Msg) *sim.SendError {
	p.lock.Lock()

	if !p.incomingBuf.CanPush() {
		p.lock.Unlock()
		return sim.NewSendError()
	}

	wasEmpty := (p.incomingBuf.Size() == 0)

	hookCtx := sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRecvd,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	p.incomingBuf.Push(msg)
	p.lock.Unlock()

	if p.comp != nil && wasEmpty {
		p.comp.NotifyRecv(p)
	}

	return nil
}

// RetrieveIncoming takes a message from the incoming buffer.
func (p *stimulusPort) RetrieveIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Pop()
	if item == nil {
		return nil
	}

	msg := item.(sim.Msg)
	hookCtx := sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRetrieve,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	if p.incomingBuf.Size() == p.incomingBuf.Capacity()-1 {
		p.conn.NotifyAvailable(p)
	}

	return msg
}

// RetrieveOutgoing takes a message from the outgoing buffer.
func (p *stimulusPort) RetrieveOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Pop()
	if item == nil {
		return nil
	}

	msg := item.(sim.Msg)
	hookCtx := sim.HookCtx{
		Domain: p,
		Pos:    HookPosPortMsgRetrieve,
		Item:   msg,
	}
	p.InvokeHook(hookCtx)

	if p.outgoingBuf.Size() == p.outgoingBuf.Capacity()-1 {
		p.comp.NotifyPortFree(p)
	}

	return msg
}

// PeekIncoming returns the first message in the incoming buffer without
// removing it.
func (p *stimulusPort) PeekIncoming() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.incomingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// PeekOutgoing returns the first message in the outgoing buffer without
// removing it.
func (p *stimulusPort) PeekOutgoing() sim.Msg {
	p.lock.Lock()
	defer p.lock.Unlock()

	item := p.outgoingBuf.Peek()
	if item == nil {
		return nil
	}

	return item.(sim.Msg)
}

// NotifyAvailable is called by the connection when it can accept messages
// again.
func (p *stimulusPort) NotifyAvailable() {
	if p.comp != nil {
		p.comp.NotifyPortFree(p)
	}
}

func (p *stimulusPort) msgMustBeValid(msg sim.Msg) {
	if p.Name() != string(msg.Meta().Src) {
		panic("sending port is not msg src")
	}

	if msg.Meta().Dst == "" {
		panic("dst is not given")
	}

	if msg.Meta().Src == msg.Meta().Dst {
		panic("sending back to src")
	}
}
