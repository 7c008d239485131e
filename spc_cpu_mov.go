// spc_cpu_mov.go - MOV data transfer instruction family (MOVW is decoded
// with the 16-bit arithmetic in spc_cpu_alu.go)
//
// MOV never touches C/V/H; loads into A/X/Y set N/Z from the loaded value,
// stores set no flags at all. Two forms take their operand bytes in a
// fixed, non-obvious order (MOV dp,#imm fetches the immediate before the
// direct-page byte; MOV dd,ds fetches the source page before the
// destination page) — both are called out inline below since nothing
// about the mnemonic order hints at it.

package main

// decodeMovFamily handles every opcode left once register-family ALU
// decoding has been tried. An opcode reaching the end of this switch
// indicates a genuinely undefined SPC700 encoding.
func (c *CPU) decodeMovFamily(ram *RAM, pc uint16, op byte) (uint32, error) {
	switch op {
	// Register-to-register transfers
	case 0x7D: // MOV A,X
		c.A = c.X
		c.setNZ8(c.A)
		return 2, nil
	case 0x5D: // MOV X,A
		c.X = c.A
		c.setNZ8(c.X)
		return 2, nil
	case 0xDD: // MOV A,Y
		c.A = c.Y
		c.setNZ8(c.A)
		return 2, nil
	case 0xFD: // MOV Y,A
		c.Y = c.A
		c.setNZ8(c.Y)
		return 2, nil
	case 0x9D: // MOV X,SP
		c.X = c.SP
		c.setNZ8(c.X)
		return 2, nil
	case 0xBD: // MOV SP,X
		c.SP = c.X
		return 2, nil

	// Immediate loads
	case 0xE8: // MOV A,#i
		c.A = c.fetch8(ram)
		c.setNZ8(c.A)
		return 2, nil
	case 0xCD: // MOV X,#i
		c.X = c.fetch8(ram)
		c.setNZ8(c.X)
		return 2, nil
	case 0x8D: // MOV Y,#i
		c.Y = c.fetch8(ram)
		c.setNZ8(c.Y)
		return 2, nil

	// (X) indirect, with and without post-increment
	case 0xE6: // MOV A,(X)
		c.A = ram.Read8(c.addrDP(c.X))
		c.setNZ8(c.A)
		return 3, nil
	case 0xC6: // MOV (X),A
		ram.Write8(c.addrDP(c.X), c.A)
		return 4, nil
	case 0xBF: // MOV A,(X)+
		c.A = ram.Read8(c.addrDP(c.X))
		c.X++
		c.setNZ8(c.A)
		return 4, nil
	case 0xAF: // MOV (X)+,A
		ram.Write8(c.addrDP(c.X), c.A)
		c.X++
		return 4, nil

	// Loads into A
	case 0xE4: // MOV A,d
		c.A = ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setNZ8(c.A)
		return 3, nil
	case 0xF4: // MOV A,d+X
		c.A = ram.Read8(c.addrDPX(c.fetch8(ram)))
		c.setNZ8(c.A)
		return 4, nil
	case 0xE5: // MOV A,!a
		c.A = ram.Read8(c.fetch16(ram))
		c.setNZ8(c.A)
		return 4, nil
	case 0xF5: // MOV A,!a+X
		c.A = ram.Read8(c.addrAbsX(c.fetch16(ram)))
		c.setNZ8(c.A)
		return 5, nil
	case 0xF6: // MOV A,!a+Y
		c.A = ram.Read8(c.addrAbsY(c.fetch16(ram)))
		c.setNZ8(c.A)
		return 5, nil
	case 0xE7: // MOV A,[d+X]
		c.A = ram.Read8(c.addrDPXIndirect(ram, c.fetch8(ram)))
		c.setNZ8(c.A)
		return 6, nil
	case 0xF7: // MOV A,[d]+Y
		c.A = ram.Read8(c.addrDPIndirectY(ram, c.fetch8(ram)))
		c.setNZ8(c.A)
		return 6, nil

	// Loads into X
	case 0xF8: // MOV X,d
		c.X = ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setNZ8(c.X)
		return 3, nil
	case 0xF9: // MOV X,d+Y
		c.X = ram.Read8(c.addrDPY(c.fetch8(ram)))
		c.setNZ8(c.X)
		return 4, nil
	case 0xE9: // MOV X,!a
		c.X = ram.Read8(c.fetch16(ram))
		c.setNZ8(c.X)
		return 4, nil

	// Loads into Y
	case 0xEB: // MOV Y,d
		c.Y = ram.Read8(c.addrDP(c.fetch8(ram)))
		c.setNZ8(c.Y)
		return 3, nil
	case 0xFB: // MOV Y,d+X
		c.Y = ram.Read8(c.addrDPX(c.fetch8(ram)))
		c.setNZ8(c.Y)
		return 4, nil
	case 0xEC: // MOV Y,!a
		c.Y = ram.Read8(c.fetch16(ram))
		c.setNZ8(c.Y)
		return 4, nil

	// Stores from A
	case 0xC4: // MOV d,A
		ram.Write8(c.addrDP(c.fetch8(ram)), c.A)
		return 4, nil
	case 0xD4: // MOV d+X,A
		ram.Write8(c.addrDPX(c.fetch8(ram)), c.A)
		return 5, nil
	case 0xC5: // MOV !a,A
		ram.Write8(c.fetch16(ram), c.A)
		return 5, nil
	case 0xD5: // MOV !a+X,A
		ram.Write8(c.addrAbsX(c.fetch16(ram)), c.A)
		return 6, nil
	case 0xD6: // MOV !a+Y,A
		ram.Write8(c.addrAbsY(c.fetch16(ram)), c.A)
		return 6, nil
	case 0xC7: // MOV [d+X],A
		ram.Write8(c.addrDPXIndirect(ram, c.fetch8(ram)), c.A)
		return 7, nil
	case 0xD7: // MOV [d]+Y,A
		ram.Write8(c.addrDPIndirectY(ram, c.fetch8(ram)), c.A)
		return 7, nil

	// Stores from X
	case 0xD8: // MOV d,X
		ram.Write8(c.addrDP(c.fetch8(ram)), c.X)
		return 4, nil
	case 0xD9: // MOV d+Y,X
		ram.Write8(c.addrDPY(c.fetch8(ram)), c.X)
		return 5, nil
	case 0xC9: // MOV !a,X
		ram.Write8(c.fetch16(ram), c.X)
		return 5, nil

	// Stores from Y
	case 0xCB: // MOV d,Y
		ram.Write8(c.addrDP(c.fetch8(ram)), c.Y)
		return 4, nil
	case 0xDB: // MOV d+X,Y
		ram.Write8(c.addrDPX(c.fetch8(ram)), c.Y)
		return 5, nil
	case 0xCC: // MOV !a,Y
		ram.Write8(c.fetch16(ram), c.Y)
		return 5, nil

	// Direct-page/immediate forms with a fixed, non-mnemonic-order encoding
	case 0x8F: // MOV d,#i (encoding fetches the immediate, then the dp byte)
		imm := c.fetch8(ram)
		d := c.fetch8(ram)
		ram.Write8(c.addrDP(d), imm)
		return 5, nil
	case 0xFA: // MOV dd,ds (encoding fetches the source page, then dest page)
		ds := c.fetch8(ram)
		dd := c.fetch8(ram)
		ram.Write8(c.addrDP(dd), ram.Read8(c.addrDP(ds)))
		return 5, nil
	}

	return 0, newOpcodeError(KindUndefinedOpcode, pc, op, "")
}
