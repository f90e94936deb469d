package systolic

import "github.com/sarchlab/akita/v4/sim"

// StimulusMsg carries one cycle of stimulus to the engine: the reset line
// level and the two operand matrices.
type StimulusMsg struct {
	sim.MsgMeta

	Reset bool
	A, B  []uint8
}

// Meta returns the meta data of the msg.
func (m *StimulusMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *StimulusMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// StimulusMsgBuilder is a factory for StimulusMsg.
type StimulusMsgBuilder struct {
	src, dst sim.RemotePort
	reset    bool
	a, b     []uint8
}

// WithSrc sets the source port of the msg.
func (b StimulusMsgBuilder) WithSrc(src sim.RemotePort) StimulusMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b StimulusMsgBuilder) WithDst(dst sim.RemotePort) StimulusMsgBuilder {
	b.dst = dst
	return b
}

// WithReset sets the level of the reset line for this cycle.
func (b StimulusMsgBuilder) WithReset(reset bool) StimulusMsgBuilder {
	b.reset = reset
	return b
}

// WithOperands sets the flattened operand matrices for this cycle.
func (b StimulusMsgBuilder) WithOperands(a, b2 []uint8) StimulusMsgBuilder {
	b.a = a
	b.b = b2
	return b
}

// Build creates a StimulusMsg.
func (b StimulusMsgBuilder) Build() *StimulusMsg {
	return &StimulusMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Reset: b.reset,
		A:     b.a,
		B:     b.b,
	}
}

// ResultMsg carries the finalized output matrix of one cycle back to the
// stimulus driver.
type ResultMsg struct {
	sim.MsgMeta

	C []uint16
}

// Meta returns the meta data of the msg.
func (m *ResultMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *ResultMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// ResultMsgBuilder is a factory for ResultMsg.
type ResultMsgBuilder struct {
	src, dst sim.RemotePort
	c        []uint16
}

// WithSrc sets the source port of the msg.
func (b ResultMsgBuilder) WithSrc(src sim.RemotePort) ResultMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResultMsgBuilder) WithDst(dst sim.RemotePort) ResultMsgBuilder {
	b.dst = dst
	return b
}

// WithOutputs sets the flattened output matrix.
func (b ResultMsgBuilder) WithOutputs(c []uint16) ResultMsgBuilder {
	b.c = c
	return b
}

// Build creates a ResultMsg.
func (b ResultMsgBuilder) Build() *ResultMsg {
	return &ResultMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		C: b.c,
	}
}
