package sim

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

type State int

const (
	Running State = iota
	Stop
	End
	Abort
	Quit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stop:
		return "stop"
	case End:
		return "end"
	case Abort:
		return "abort"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

const (
	MemBase     uint32 = 0x80000000
	ResetVector        = MemBase

	instEbreak uint32 = 0x00100073
)

// defaultImage stores a zero byte, loads it back into a0 and traps.
var defaultImage = []uint32{
	0x00000297, // auipc t0,0
	0x00028823, // sb  zero,16(t0)
	0x0102c503, // lbu a0,16(t0)
	instEbreak, // ebreak
	0xdeadbeef, // some data
}

// MinMemSize is the smallest guest memory that holds the built-in image.
var MinMemSize = len(defaultImage) * 4

var regNames = [32]string{
	"$0", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// Machine is a small RV32 core with just enough of the ISA to run the
// built-in image and simple raw programs.
type Machine struct {
	gpr [32]uint32
	pc  uint32
	mem []byte

	state   State
	haltPC  uint32
	haltRet uint32
	retired uint64

	out io.Writer
}

func NewMachine(memSize int, out io.Writer) (*Machine, error) {
	if memSize < MinMemSize {
		return nil, fmt.Errorf("memory size %d is below the minimum of %d bytes", memSize, MinMemSize)
	}

	m := &Machine{
		mem:   make([]byte, memSize),
		pc:    ResetVector,
		state: Stop,
		out:   out,
	}
	m.loadWords(defaultImage)
	return m, nil
}

func (m *Machine) loadWords(words []uint32) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(m.mem[i*4:], w)
	}
}

// LoadImage copies a raw binary to the start of guest memory.
func (m *Machine) LoadImage(path string) (int, error) {
	img, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read image: %w", err)
	}
	if len(img) > len(m.mem) {
		return 0, fmt.Errorf("image %s is %d bytes, memory is %d bytes", path, len(img), len(m.mem))
	}
	copy(m.mem, img)
	return len(img), nil
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) PC() uint32 {
	return m.pc
}

func (m *Machine) Reg(i int) uint32 {
	return m.gpr[i]
}

func (m *Machine) Retired() uint64 {
	return m.retired
}

// Exec runs at most n instructions; a negative n runs until the program
// traps or aborts.
func (m *Machine) Exec(ctx context.Context, n int64) {
	switch m.state {
	case End, Abort, Quit:
		fmt.Fprintln(m.out, "Program execution has ended. To restart the program, exit NEMU and run again.")
		return
	}

	m.state = Running
	for i := int64(0); n < 0 || i < n; i++ {
		// the host can still stop a runaway guest between instructions
		if i&0x3ff == 0x3ff && ctx.Err() != nil {
			break
		}
		m.step()
		if m.state != Running {
			break
		}
	}

	switch m.state {
	case Running:
		m.state = Stop
	case End:
		if m.haltRet == 0 {
			fmt.Fprintf(m.out, "nemu: HIT GOOD TRAP at pc = 0x%08x\n", m.haltPC)
		} else {
			fmt.Fprintf(m.out, "nemu: HIT BAD TRAP at pc = 0x%08x\n", m.haltPC)
		}
	case Abort:
		fmt.Fprintf(m.out, "nemu: ABORT at pc = 0x%08x\n", m.haltPC)
	}
}

func (m *Machine) Quit() {
	m.state = Quit
}

// ExitStatusBad reports whether the process should exit with a failure.
func (m *Machine) ExitStatusBad() bool {
	good := (m.state == End && m.haltRet == 0) || m.state == Quit
	return !good
}

func (m *Machine) Display(w io.Writer) {
	for i, name := range regNames {
		fmt.Fprintf(w, "%-4s 0x%08x %d\n", name, m.gpr[i], int32(m.gpr[i]))
	}
	fmt.Fprintf(w, "%-4s 0x%08x\n", "pc", m.pc)
}

func (m *Machine) step() {
	inst, ok := m.read(m.pc, 4)
	if !ok {
		m.abort(fmt.Sprintf("instruction fetch out of bound at pc = 0x%08x", m.pc))
		return
	}

	next := m.pc + 4
	rd := (inst >> 7) & 0x1f
	rs1 := m.gpr[(inst>>15)&0x1f]
	rs2 := m.gpr[(inst>>20)&0x1f]
	funct3 := (inst >> 12) & 0x7
	immI := uint32(int32(inst) >> 20)
	immS := uint32(int32(inst)>>25<<5) | (inst>>7)&0x1f

	switch {
	case inst == instEbreak:
		m.state = End
		m.haltPC = m.pc
		m.haltRet = m.gpr[10]
	case inst&0x7f == 0x17: // auipc
		m.setReg(rd, m.pc+(inst&0xfffff000))
	case inst&0x7f == 0x37: // lui
		m.setReg(rd, inst&0xfffff000)
	case inst&0x7f == 0x13 && funct3 == 0: // addi
		m.setReg(rd, rs1+immI)
	case inst&0x7f == 0x03 && funct3 == 4: // lbu
		v, ok := m.read(rs1+immI, 1)
		if !ok {
			m.abort(fmt.Sprintf("load out of bound at 0x%08x", rs1+immI))
			return
		}
		m.setReg(rd, v)
	case inst&0x7f == 0x23 && funct3 == 0: // sb
		if !m.writeByte(rs1+immS, byte(rs2)) {
			m.abort(fmt.Sprintf("store out of bound at 0x%08x", rs1+immS))
			return
		}
	default:
		m.abort(fmt.Sprintf("invalid opcode 0x%08x at pc = 0x%08x", inst, m.pc))
		return
	}

	m.retired++
	if m.state == Running {
		m.pc = next
	}
}

func (m *Machine) abort(reason string) {
	fmt.Fprintln(m.out, reason)
	m.state = Abort
	m.haltPC = m.pc
	m.haltRet = ^uint32(0)
}

func (m *Machine) setReg(rd, v uint32) {
	if rd != 0 {
		m.gpr[rd] = v
	}
}

func (m *Machine) inBound(addr uint32, size int) bool {
	return addr >= MemBase && uint64(addr-MemBase)+uint64(size) <= uint64(len(m.mem))
}

func (m *Machine) read(addr uint32, size int) (uint32, bool) {
	if !m.inBound(addr, size) {
		return 0, false
	}
	off := addr - MemBase
	switch size {
	case 1:
		return uint32(m.mem[off]), true
	default:
		return binary.LittleEndian.Uint32(m.mem[off:]), true
	}
}

func (m *Machine) writeByte(addr uint32, v byte) bool {
	if !m.inBound(addr, 1) {
		return false
	}
	m.mem[addr-MemBase] = v
	return true
}
