// spc_cpu_alu.go - arithmetic, logical, compare and shift instruction families
//
// N is always set from the computed result's own bit 7, including for the
// memory-destination ADC/SBC forms (dp,dp / (X),(Y) / dp,#imm) where the
// accumulator itself is untouched.

package main

// decodeRegisterFamilies handles every opcode not already dispatched by the
// TCALL/SET1/CLR1/BBS/BBC families or the fixed-opcode switch in Step.
func (c *CPU) decodeRegisterFamilies(ram *RAM, pc uint16, op byte) (uint32, error) {
	switch {
	case op >= 0x04 && op <= 0x09, op >= 0x14 && op <= 0x19:
		return c.execBinaryLogical(ram, op, func(a, b byte) byte { return a | b }), nil
	case op >= 0x24 && op <= 0x29, op >= 0x34 && op <= 0x39:
		return c.execBinaryLogical(ram, op, func(a, b byte) byte { return a & b }), nil
	case op >= 0x44 && op <= 0x49, op >= 0x54 && op <= 0x59:
		return c.execBinaryLogical(ram, op, func(a, b byte) byte { return a ^ b }), nil
	case op >= 0x64 && op <= 0x69, op >= 0x74 && op <= 0x79:
		return c.execCompareA(ram, op), nil
	case op >= 0x84 && op <= 0x89, op >= 0x94 && op <= 0x99:
		return c.execAddSub(ram, op, addWithFlags), nil
	case op >= 0xA4 && op <= 0xA9, op >= 0xB4 && op <= 0xB9:
		return c.execAddSub(ram, op, subWithFlags), nil
	}

	switch op {
	// 16-bit arithmetic
	case 0x7A: // ADDW YA,d
		return c.opAddW(ram), nil
	case 0x9A: // SUBW YA,d
		return c.opSubW(ram), nil
	case 0x5A: // CMPW YA,d
		return c.opCmpW(ram), nil
	case 0xBA: // MOVW YA,d
		d := c.fetch8(ram)
		addr := c.addrDP(d)
		c.A = ram.Read8(addr)
		c.Y = ram.Read8(addr + 1)
		c.setNZ16(uint16(c.Y)<<8 | uint16(c.A))
		return 5, nil
	case 0xDA: // MOVW d,YA
		d := c.fetch8(ram)
		addr := c.addrDP(d)
		ram.Write8(addr, c.A)
		ram.Write8(addr+1, c.Y)
		return 5, nil

	// XCN
	case 0x9F:
		c.A = (c.A >> 4) | (c.A << 4)
		c.setNZ8(c.A)
		return 5, nil

	// MUL / DIV
	case 0xCF: // MUL YA
		product := uint16(c.Y) * uint16(c.A)
		c.Y = byte(product >> 8)
		c.A = byte(product)
		c.setFlag(PSW_N, c.Y&0x80 != 0)
		c.setFlag(PSW_Z, c.Y == 0)
		return 9, nil
	case 0x9E: // DIV YA,X
		ya := uint16(c.Y)<<8 | uint16(c.A)
		if c.X == 0 {
			c.A = 0xFF
			c.Y = byte(ya & 0xFF)
			c.setFlag(PSW_V, true)
			c.setFlag(PSW_H, true)
			c.setFlag(PSW_N, true)
			c.setFlag(PSW_Z, false)
			return 12, nil
		}
		quot := ya / uint16(c.X)
		rem := ya % uint16(c.X)
		c.A = byte(quot)
		c.Y = byte(rem)
		c.setFlag(PSW_N, quot > 0xFF)
		c.setFlag(PSW_V, quot > 0xFF)
		c.setFlag(PSW_H, (c.Y&0xF) >= (c.X&0xF))
		c.setFlag(PSW_Z, quot == 0)
		return 12, nil

	// DAA / DAS
	case 0xDF: // DAA
		c.opDAA()
		return 3, nil
	case 0xBE: // DAS
		c.opDAS()
		return 3, nil

	// INC / DEC (8-bit)
	case 0xBC: // INC A
		c.A++
		c.setNZ8(c.A)
		return 2, nil
	case 0x9C: // DEC A
		c.A--
		c.setNZ8(c.A)
		return 2, nil
	case 0x3D: // INC X
		c.X++
		c.setNZ8(c.X)
		return 2, nil
	case 0x1D: // DEC X
		c.X--
		c.setNZ8(c.X)
		return 2, nil
	case 0xFC: // INC Y
		c.Y++
		c.setNZ8(c.Y)
		return 2, nil
	case 0xDC: // DEC Y
		c.Y--
		c.setNZ8(c.Y)
		return 2, nil
	case 0xAB: // INC d
		return c.incDecMem(ram, c.addrDP(c.fetch8(ram)), 1), nil
	case 0xBB: // INC d+X
		return c.incDecMem(ram, c.addrDPX(c.fetch8(ram)), 1) + 1, nil
	case 0xAC: // INC !a
		return c.incDecMem(ram, c.fetch16(ram), 1) + 1, nil
	case 0x8B: // DEC d
		return c.incDecMem(ram, c.addrDP(c.fetch8(ram)), -1), nil
	case 0x9B: // DEC d+X
		return c.incDecMem(ram, c.addrDPX(c.fetch8(ram)), -1) + 1, nil
	case 0x8C: // DEC !a
		return c.incDecMem(ram, c.fetch16(ram), -1) + 1, nil

	// INCW / DECW
	case 0x3A: // INCW d
		return c.incDecWord(ram, c.fetch8(ram), 1), nil
	case 0x1A: // DECW d
		return c.incDecWord(ram, c.fetch8(ram), -1), nil

	// Shifts/rotates
	case 0x1C: // ASL A
		c.A = c.shiftLeft(c.A, false)
		return 2, nil
	case 0x0B: // ASL d
		return c.shiftMem(ram, c.addrDP(c.fetch8(ram)), false, false), nil
	case 0x1B: // ASL d+X
		return c.shiftMem(ram, c.addrDPX(c.fetch8(ram)), false, false) + 1, nil
	case 0x0C: // ASL !a
		return c.shiftMem(ram, c.fetch16(ram), false, false) + 1, nil
	case 0x3C: // ROL A
		c.A = c.shiftLeft(c.A, true)
		return 2, nil
	case 0x2B: // ROL d
		return c.shiftMem(ram, c.addrDP(c.fetch8(ram)), false, true), nil
	case 0x3B: // ROL d+X
		return c.shiftMem(ram, c.addrDPX(c.fetch8(ram)), false, true) + 1, nil
	case 0x2C: // ROL !a
		return c.shiftMem(ram, c.fetch16(ram), false, true) + 1, nil
	case 0x5C: // LSR A
		c.A = c.shiftRight(c.A, false)
		return 2, nil
	case 0x4B: // LSR d
		return c.shiftMem(ram, c.addrDP(c.fetch8(ram)), true, false), nil
	case 0x5B: // LSR d+X
		return c.shiftMem(ram, c.addrDPX(c.fetch8(ram)), true, false) + 1, nil
	case 0x4C: // LSR !a
		return c.shiftMem(ram, c.fetch16(ram), true, false) + 1, nil
	case 0x7C: // ROR A
		c.A = c.shiftRight(c.A, true)
		return 2, nil
	case 0x6B: // ROR d
		return c.shiftMem(ram, c.addrDP(c.fetch8(ram)), true, true), nil
	case 0x7B: // ROR d+X
		return c.shiftMem(ram, c.addrDPX(c.fetch8(ram)), true, true) + 1, nil
	case 0x6C: // ROR !a
		return c.shiftMem(ram, c.fetch16(ram), true, true) + 1, nil

	// Standalone CMP X/Y forms (not part of the 0x64/0x74 A-register group)
	case 0x1E: // CMP X,!a
		v := ram.Read8(c.fetch16(ram))
		c.setCompareFlags(int16(c.X) - int16(v))
		return 4, nil
	case 0x3E: // CMP X,d
		v := ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setCompareFlags(int16(c.X) - int16(v))
		return 3, nil
	case 0xC8: // CMP X,#i
		v := c.fetch8(ram)
		c.setCompareFlags(int16(c.X) - int16(v))
		return 2, nil
	case 0x5E: // CMP Y,!a
		v := ram.Read8(c.fetch16(ram))
		c.setCompareFlags(int16(c.Y) - int16(v))
		return 4, nil
	case 0x7E: // CMP Y,d
		v := ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setCompareFlags(int16(c.Y) - int16(v))
		return 3, nil
	case 0xAD: // CMP Y,#i
		v := c.fetch8(ram)
		c.setCompareFlags(int16(c.Y) - int16(v))
		return 2, nil
	}

	return c.decodeMovFamily(ram, pc, op)
}

func (c *CPU) setCompareFlags(diff int16) {
	c.setFlag(PSW_N, diff&0x80 != 0)
	c.setFlag(PSW_Z, diff == 0)
	c.setFlag(PSW_C, diff >= 0)
}

func addWithFlags(a, b byte, carryIn bool) (result byte, arithOverflow, signOverflow, halfCarry bool) {
	sum := uint16(a) + uint16(b)
	if carryIn {
		sum++
	}
	result = byte(sum)
	arithOverflow = sum&0x100 != 0
	signOverflow = (a&0x80) == (b&0x80) && (a&0x80) != (result&0x80)
	halfCarry = ((a&0xF)+(b&0xF))&0x10 == 0x10
	return
}

func subWithFlags(a, b byte, carryIn bool) (result byte, arithOverflow, signOverflow, halfCarry bool) {
	diff := int16(a) - int16(b)
	if !carryIn {
		diff--
	}
	result = byte(diff)
	arithOverflow = diff >= 0 // carry out for SBC means "no borrow", as in SUBW/CMP
	signOverflow = (a&0x80) != (b&0x80) && (a&0x80) != (result&0x80)
	halfCarry = (int16(a&0xF) - int16(b&0xF)) < 0
	return
}

func (c *CPU) applyAddSubFlags(result byte, arithOverflow, signOverflow, halfCarry bool) {
	c.setFlag(PSW_N, result&0x80 != 0)
	c.setFlag(PSW_H, halfCarry)
	c.setFlag(PSW_Z, result == 0)
	switch {
	case arithOverflow:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, true)
	case signOverflow:
		c.setFlag(PSW_V, true)
		c.setFlag(PSW_C, false)
	default:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, false)
	}
}

// execBinaryLogical implements the OR/AND/EOR opcode families, which share
// an identical addressing-mode layout distinguished only by op&0x1F.
func (c *CPU) execBinaryLogical(ram *RAM, op byte, logic func(a, b byte) byte) uint32 {
	switch op & 0x1F {
	case 0x04: // A,d
		v := ram.Read8(c.addrDP(c.fetch8(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 3
	case 0x05: // A,!a
		v := ram.Read8(c.fetch16(ram))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 4
	case 0x06: // A,(X)
		v := ram.Read8(c.addrDP(c.X))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 3
	case 0x07: // A,[d+X]
		v := ram.Read8(c.addrDPXIndirect(ram, c.fetch8(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 6
	case 0x08: // A,#i
		v := c.fetch8(ram)
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 2
	case 0x09: // d,d2
		ddst, dsrc := c.fetch8(ram), c.fetch8(ram)
		addrDst, addrSrc := c.addrDP(ddst), c.addrDP(dsrc)
		result := logic(ram.Read8(addrDst), ram.Read8(addrSrc))
		ram.Write8(addrDst, result)
		c.setNZ8(result)
		return 6
	case 0x14: // A,d+X
		v := ram.Read8(c.addrDPX(c.fetch8(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 4
	case 0x15: // A,!a+X
		v := ram.Read8(c.addrAbsX(c.fetch16(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 5
	case 0x16: // A,!a+Y
		v := ram.Read8(c.addrAbsY(c.fetch16(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 5
	case 0x17: // A,[d]+Y
		v := ram.Read8(c.addrDPIndirectY(ram, c.fetch8(ram)))
		c.A = logic(c.A, v)
		c.setNZ8(c.A)
		return 6
	case 0x18: // d,#i
		d := c.fetch8(ram)
		imm := c.fetch8(ram)
		addr := c.addrDP(d)
		result := logic(ram.Read8(addr), imm)
		ram.Write8(addr, result)
		c.setNZ8(result)
		return 5
	case 0x19: // (X),(Y)
		addrX, addrY := c.addrDP(c.X), c.addrDP(c.Y)
		result := logic(ram.Read8(addrX), ram.Read8(addrY))
		ram.Write8(addrX, result)
		c.setNZ8(result)
		return 5
	}
	return 2
}

// execAddSub implements the ADC/SBC opcode families.
func (c *CPU) execAddSub(ram *RAM, op byte, arith func(a, b byte, carryIn bool) (byte, bool, bool, bool)) uint32 {
	carryIn := c.testFlag(PSW_C)
	apply := func(a, b byte) (byte, uint32) {
		res, ao, so, hc := arith(a, b, carryIn)
		c.applyAddSubFlags(res, ao, so, hc)
		return res, 0
	}
	switch op & 0x1F {
	case 0x04:
		v := ram.Read8(c.addrDP(c.fetch8(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 3
	case 0x05:
		v := ram.Read8(c.fetch16(ram))
		res, _ := apply(c.A, v)
		c.A = res
		return 4
	case 0x06:
		v := ram.Read8(c.addrDP(c.X))
		res, _ := apply(c.A, v)
		c.A = res
		return 3
	case 0x07:
		v := ram.Read8(c.addrDPXIndirect(ram, c.fetch8(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 6
	case 0x08:
		v := c.fetch8(ram)
		res, _ := apply(c.A, v)
		c.A = res
		return 2
	case 0x09:
		ddst, dsrc := c.fetch8(ram), c.fetch8(ram)
		addrDst, addrSrc := c.addrDP(ddst), c.addrDP(dsrc)
		res, _ := apply(ram.Read8(addrDst), ram.Read8(addrSrc))
		ram.Write8(addrDst, res)
		return 6
	case 0x14:
		v := ram.Read8(c.addrDPX(c.fetch8(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 4
	case 0x15:
		v := ram.Read8(c.addrAbsX(c.fetch16(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 5
	case 0x16:
		v := ram.Read8(c.addrAbsY(c.fetch16(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 5
	case 0x17:
		v := ram.Read8(c.addrDPIndirectY(ram, c.fetch8(ram)))
		res, _ := apply(c.A, v)
		c.A = res
		return 6
	case 0x18:
		d := c.fetch8(ram)
		imm := c.fetch8(ram)
		addr := c.addrDP(d)
		res, _ := apply(ram.Read8(addr), imm)
		ram.Write8(addr, res)
		return 5
	case 0x19:
		addrX, addrY := c.addrDP(c.X), c.addrDP(c.Y)
		res, _ := apply(ram.Read8(addrX), ram.Read8(addrY))
		ram.Write8(addrX, res)
		return 5
	}
	return 2
}

// execCompareA implements the CMP A,<src> opcode family (no writeback).
func (c *CPU) execCompareA(ram *RAM, op byte) uint32 {
	switch op & 0x1F {
	case 0x04:
		v := ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 3
	case 0x05:
		v := ram.Read8(c.fetch16(ram))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 4
	case 0x06:
		v := ram.Read8(c.addrDP(c.X))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 3
	case 0x07:
		v := ram.Read8(c.addrDPXIndirect(ram, c.fetch8(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 6
	case 0x08:
		v := c.fetch8(ram)
		c.setCompareFlags(int16(c.A) - int16(v))
		return 2
	case 0x09:
		ddst, dsrc := c.fetch8(ram), c.fetch8(ram)
		vdst := ram.Read8(c.addrDP(ddst))
		vsrc := ram.Read8(c.addrDP(dsrc))
		c.setCompareFlags(int16(vdst) - int16(vsrc))
		return 6
	case 0x14:
		v := ram.Read8(c.addrDPX(c.fetch8(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 4
	case 0x15:
		v := ram.Read8(c.addrAbsX(c.fetch16(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 5
	case 0x16:
		v := ram.Read8(c.addrAbsY(c.fetch16(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 5
	case 0x17:
		v := ram.Read8(c.addrDPIndirectY(ram, c.fetch8(ram)))
		c.setCompareFlags(int16(c.A) - int16(v))
		return 6
	case 0x18:
		d := c.fetch8(ram)
		imm := c.fetch8(ram)
		v := ram.Read8(c.addrDP(d))
		c.setCompareFlags(int16(v) - int16(imm))
		return 5
	case 0x19:
		vx := ram.Read8(c.addrDP(c.X))
		vy := ram.Read8(c.addrDP(c.Y))
		c.setCompareFlags(int16(vx) - int16(vy))
		return 5
	}
	return 2
}

func (c *CPU) opAddW(ram *RAM) uint32 {
	d := c.fetch8(ram)
	addr := c.addrDP(d)
	wval := ram.Read16(addr)
	ya := uint16(c.Y)<<8 | uint16(c.A)
	sum := uint32(ya) + uint32(wval)
	result := uint16(sum)
	arithOverflow := sum&0x10000 != 0
	signOverflow := (ya&0x8000) == (wval&0x8000) && (ya&0x8000) != (result&0x8000)
	halfCarry := ((ya&0xF)+(wval&0xF))&0x10 == 0x10
	c.Y = byte(result >> 8)
	c.A = byte(result)
	c.setFlag(PSW_N, result&0x8000 != 0)
	c.setFlag(PSW_H, halfCarry)
	c.setFlag(PSW_Z, result == 0)
	switch {
	case arithOverflow:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, true)
	case signOverflow:
		c.setFlag(PSW_V, true)
		c.setFlag(PSW_C, false)
	default:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, false)
	}
	return 5
}

func (c *CPU) opSubW(ram *RAM) uint32 {
	d := c.fetch8(ram)
	addr := c.addrDP(d)
	wval := ram.Read16(addr)
	ya := uint16(c.Y)<<8 | uint16(c.A)
	diff := int32(ya) - int32(wval)
	result := uint16(diff)
	arithOverflow := diff < 0
	signOverflow := (ya&0x8000) != (wval&0x8000) && (ya&0x8000) != (result&0x8000)
	halfCarry := (int32(ya&0xF) - int32(wval&0xF)) < 0
	c.Y = byte(result >> 8)
	c.A = byte(result)
	c.setFlag(PSW_N, result&0x8000 != 0)
	c.setFlag(PSW_H, halfCarry)
	c.setFlag(PSW_Z, result == 0)
	switch {
	case !arithOverflow:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, true)
	case signOverflow:
		c.setFlag(PSW_V, true)
		c.setFlag(PSW_C, false)
	default:
		c.setFlag(PSW_V, false)
		c.setFlag(PSW_C, false)
	}
	return 5
}

func (c *CPU) opCmpW(ram *RAM) uint32 {
	d := c.fetch8(ram)
	wval := ram.Read16(c.addrDP(d))
	ya := uint16(c.Y)<<8 | uint16(c.A)
	diff := int32(ya) - int32(wval)
	c.setFlag(PSW_N, diff&0x8000 != 0)
	c.setFlag(PSW_Z, diff == 0)
	c.setFlag(PSW_C, diff >= 0)
	return 4
}

func (c *CPU) opDAA() {
	ret := c.A
	carry := c.testFlag(PSW_C)
	if c.testFlag(PSW_H) || ret&0x0F >= 0xA {
		sum := uint16(ret) + 0x06
		ret = byte(sum)
		carry = sum&0x100 != 0 || carry
	}
	if !carry || (ret&0xF0)>>4 >= 0xA {
		sum := uint16(ret) + 0x60
		ret = byte(sum)
		carry = sum&0x100 != 0 || carry
	}
	c.A = ret
	c.setFlag(PSW_N, ret&0x80 != 0)
	c.setFlag(PSW_Z, ret == 0)
	c.setFlag(PSW_C, carry)
}

func (c *CPU) opDAS() {
	ret := c.A
	carry := c.testFlag(PSW_C)
	if c.testFlag(PSW_H) || ret&0x0F >= 0xA {
		diff := int16(ret) - 0x06
		ret = byte(diff)
		carry = diff >= 0 && carry
	}
	if !carry || (ret&0xF0)>>4 >= 0xA {
		diff := int16(ret) - 0x60
		ret = byte(diff)
		carry = diff >= 0 && carry
	}
	c.A = ret
	c.setFlag(PSW_N, ret&0x80 != 0)
	c.setFlag(PSW_Z, ret == 0)
	c.setFlag(PSW_C, carry)
}

func (c *CPU) incDecMem(ram *RAM, addr uint16, delta int) uint32 {
	v := ram.Read8(addr) + byte(delta)
	ram.Write8(addr, v)
	c.setNZ8(v)
	return 4
}

func (c *CPU) incDecWord(ram *RAM, d byte, delta int) uint32 {
	addr := c.addrDP(d)
	v := ram.Read16(addr) + uint16(delta)
	ram.Write16(addr, v)
	c.setNZ16(v)
	return 6
}

// shiftLeft implements ASL (rotate=false) and ROL (rotate=true) on a
// scalar value, returning the new value with C/N/Z updated.
func (c *CPU) shiftLeft(v byte, rotate bool) byte {
	carryOut := v&0x80 != 0
	result := v << 1
	if rotate && c.testFlag(PSW_C) {
		result |= 1
	}
	c.setFlag(PSW_C, carryOut)
	c.setNZ8(result)
	return result
}

func (c *CPU) shiftRight(v byte, rotate bool) byte {
	carryOut := v&0x01 != 0
	result := v >> 1
	if rotate && c.testFlag(PSW_C) {
		result |= 0x80
	}
	c.setFlag(PSW_C, carryOut)
	c.setNZ8(result)
	return result
}

func (c *CPU) shiftMem(ram *RAM, addr uint16, right bool, rotate bool) uint32 {
	v := ram.Read8(addr)
	var result byte
	if right {
		result = c.shiftRight(v, rotate)
	} else {
		result = c.shiftLeft(v, rotate)
	}
	ram.Write8(addr, result)
	return 4
}
