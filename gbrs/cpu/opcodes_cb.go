package cpu

import "github.com/TobiasNienhaus/gbrs/gbrs/bit"

//RLC B
//#0xCB 0x00:
func opcodeCB0x00(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegB])
	return 2
}

//RLC C
//#0xCB 0x01:
func opcodeCB0x01(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegC])
	return 2
}

//RLC D
//#0xCB 0x02:
func opcodeCB0x02(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegD])
	return 2
}

//RLC E
//#0xCB 0x03:
func opcodeCB0x03(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegE])
	return 2
}

//RLC H
//#0xCB 0x04:
func opcodeCB0x04(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegH])
	return 2
}

//RLC L
//#0xCB 0x05:
func opcodeCB0x05(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegL])
	return 2
}

//RLC (HL)
//#0xCB 0x06:
func opcodeCB0x06(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rlc(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//RLC A
//#0xCB 0x07:
func opcodeCB0x07(cpu *CPU) int {
	cpu.rlc(&cpu.regs[RegA])
	return 2
}

//RRC B
//#0xCB 0x08:
func opcodeCB0x08(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegB])
	return 2
}

//RRC C
//#0xCB 0x09:
func opcodeCB0x09(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegC])
	return 2
}

//RRC D
//#0xCB 0x0A:
func opcodeCB0x0A(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegD])
	return 2
}

//RRC E
//#0xCB 0x0B:
func opcodeCB0x0B(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegE])
	return 2
}

//RRC H
//#0xCB 0x0C:
func opcodeCB0x0C(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegH])
	return 2
}

//RRC L
//#0xCB 0x0D:
func opcodeCB0x0D(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegL])
	return 2
}

//RRC (HL)
//#0xCB 0x0E:
func opcodeCB0x0E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rrc(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//RRC A
//#0xCB 0x0F:
func opcodeCB0x0F(cpu *CPU) int {
	cpu.rrc(&cpu.regs[RegA])
	return 2
}

//RL B
//#0xCB 0x10:
func opcodeCB0x10(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegB])
	return 2
}

//RL C
//#0xCB 0x11:
func opcodeCB0x11(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegC])
	return 2
}

//RL D
//#0xCB 0x12:
func opcodeCB0x12(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegD])
	return 2
}

//RL E
//#0xCB 0x13:
func opcodeCB0x13(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegE])
	return 2
}

//RL H
//#0xCB 0x14:
func opcodeCB0x14(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegH])
	return 2
}

//RL L
//#0xCB 0x15:
func opcodeCB0x15(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegL])
	return 2
}

//RL (HL)
//#0xCB 0x16:
func opcodeCB0x16(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rl(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//RL A
//#0xCB 0x17:
func opcodeCB0x17(cpu *CPU) int {
	cpu.rl(&cpu.regs[RegA])
	return 2
}

//RR B
//#0xCB 0x18:
func opcodeCB0x18(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegB])
	return 2
}

//RR C
//#0xCB 0x19:
func opcodeCB0x19(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegC])
	return 2
}

//RR D
//#0xCB 0x1A:
func opcodeCB0x1A(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegD])
	return 2
}

//RR E
//#0xCB 0x1B:
func opcodeCB0x1B(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegE])
	return 2
}

//RR H
//#0xCB 0x1C:
func opcodeCB0x1C(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegH])
	return 2
}

//RR L
//#0xCB 0x1D:
func opcodeCB0x1D(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegL])
	return 2
}

//RR (HL)
//#0xCB 0x1E:
func opcodeCB0x1E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.rr(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//RR A
//#0xCB 0x1F:
func opcodeCB0x1F(cpu *CPU) int {
	cpu.rr(&cpu.regs[RegA])
	return 2
}

//SLA B
//#0xCB 0x20:
func opcodeCB0x20(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegB])
	return 2
}

//SLA C
//#0xCB 0x21:
func opcodeCB0x21(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegC])
	return 2
}

//SLA D
//#0xCB 0x22:
func opcodeCB0x22(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegD])
	return 2
}

//SLA E
//#0xCB 0x23:
func opcodeCB0x23(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegE])
	return 2
}

//SLA H
//#0xCB 0x24:
func opcodeCB0x24(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegH])
	return 2
}

//SLA L
//#0xCB 0x25:
func opcodeCB0x25(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegL])
	return 2
}

//SLA (HL)
//#0xCB 0x26:
func opcodeCB0x26(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.sla(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//SLA A
//#0xCB 0x27:
func opcodeCB0x27(cpu *CPU) int {
	cpu.sla(&cpu.regs[RegA])
	return 2
}

//SRA B
//#0xCB 0x28:
func opcodeCB0x28(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegB])
	return 2
}

//SRA C
//#0xCB 0x29:
func opcodeCB0x29(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegC])
	return 2
}

//SRA D
//#0xCB 0x2A:
func opcodeCB0x2A(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegD])
	return 2
}

//SRA E
//#0xCB 0x2B:
func opcodeCB0x2B(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegE])
	return 2
}

//SRA H
//#0xCB 0x2C:
func opcodeCB0x2C(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegH])
	return 2
}

//SRA L
//#0xCB 0x2D:
func opcodeCB0x2D(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegL])
	return 2
}

//SRA (HL)
//#0xCB 0x2E:
func opcodeCB0x2E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.sra(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//SRA A
//#0xCB 0x2F:
func opcodeCB0x2F(cpu *CPU) int {
	cpu.sra(&cpu.regs[RegA])
	return 2
}

//SWAP B
//#0xCB 0x30:
func opcodeCB0x30(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegB])
	return 2
}

//SWAP C
//#0xCB 0x31:
func opcodeCB0x31(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegC])
	return 2
}

//SWAP D
//#0xCB 0x32:
func opcodeCB0x32(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegD])
	return 2
}

//SWAP E
//#0xCB 0x33:
func opcodeCB0x33(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegE])
	return 2
}

//SWAP H
//#0xCB 0x34:
func opcodeCB0x34(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegH])
	return 2
}

//SWAP L
//#0xCB 0x35:
func opcodeCB0x35(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegL])
	return 2
}

//SWAP (HL)
//#0xCB 0x36:
func opcodeCB0x36(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.swap(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//SWAP A
//#0xCB 0x37:
func opcodeCB0x37(cpu *CPU) int {
	cpu.swap(&cpu.regs[RegA])
	return 2
}

//SRL B
//#0xCB 0x38:
func opcodeCB0x38(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegB])
	return 2
}

//SRL C
//#0xCB 0x39:
func opcodeCB0x39(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegC])
	return 2
}

//SRL D
//#0xCB 0x3A:
func opcodeCB0x3A(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegD])
	return 2
}

//SRL E
//#0xCB 0x3B:
func opcodeCB0x3B(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegE])
	return 2
}

//SRL H
//#0xCB 0x3C:
func opcodeCB0x3C(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegH])
	return 2
}

//SRL L
//#0xCB 0x3D:
func opcodeCB0x3D(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegL])
	return 2
}

//SRL (HL)
//#0xCB 0x3E:
func opcodeCB0x3E(cpu *CPU) int {
	value := cpu.memory.Read(cpu.getHL())
	cpu.srl(&value)
	cpu.memory.Write(cpu.getHL(), value)
	return 4
}

//SRL A
//#0xCB 0x3F:
func opcodeCB0x3F(cpu *CPU) int {
	cpu.srl(&cpu.regs[RegA])
	return 2
}

//BIT 0, B
//#0xCB 0x40:
func opcodeCB0x40(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegB])
	return 2
}

//BIT 0, C
//#0xCB 0x41:
func opcodeCB0x41(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegC])
	return 2
}

//BIT 0, D
//#0xCB 0x42:
func opcodeCB0x42(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegD])
	return 2
}

//BIT 0, E
//#0xCB 0x43:
func opcodeCB0x43(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegE])
	return 2
}

//BIT 0, H
//#0xCB 0x44:
func opcodeCB0x44(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegH])
	return 2
}

//BIT 0, L
//#0xCB 0x45:
func opcodeCB0x45(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegL])
	return 2
}

//BIT 0, (HL)
//#0xCB 0x46:
func opcodeCB0x46(cpu *CPU) int {
	cpu.bitTest(0, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 0, A
//#0xCB 0x47:
func opcodeCB0x47(cpu *CPU) int {
	cpu.bitTest(0, cpu.regs[RegA])
	return 2
}

//BIT 1, B
//#0xCB 0x48:
func opcodeCB0x48(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegB])
	return 2
}

//BIT 1, C
//#0xCB 0x49:
func opcodeCB0x49(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegC])
	return 2
}

//BIT 1, D
//#0xCB 0x4A:
func opcodeCB0x4A(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegD])
	return 2
}

//BIT 1, E
//#0xCB 0x4B:
func opcodeCB0x4B(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegE])
	return 2
}

//BIT 1, H
//#0xCB 0x4C:
func opcodeCB0x4C(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegH])
	return 2
}

//BIT 1, L
//#0xCB 0x4D:
func opcodeCB0x4D(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegL])
	return 2
}

//BIT 1, (HL)
//#0xCB 0x4E:
func opcodeCB0x4E(cpu *CPU) int {
	cpu.bitTest(1, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 1, A
//#0xCB 0x4F:
func opcodeCB0x4F(cpu *CPU) int {
	cpu.bitTest(1, cpu.regs[RegA])
	return 2
}

//BIT 2, B
//#0xCB 0x50:
func opcodeCB0x50(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegB])
	return 2
}

//BIT 2, C
//#0xCB 0x51:
func opcodeCB0x51(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegC])
	return 2
}

//BIT 2, D
//#0xCB 0x52:
func opcodeCB0x52(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegD])
	return 2
}

//BIT 2, E
//#0xCB 0x53:
func opcodeCB0x53(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegE])
	return 2
}

//BIT 2, H
//#0xCB 0x54:
func opcodeCB0x54(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegH])
	return 2
}

//BIT 2, L
//#0xCB 0x55:
func opcodeCB0x55(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegL])
	return 2
}

//BIT 2, (HL)
//#0xCB 0x56:
func opcodeCB0x56(cpu *CPU) int {
	cpu.bitTest(2, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 2, A
//#0xCB 0x57:
func opcodeCB0x57(cpu *CPU) int {
	cpu.bitTest(2, cpu.regs[RegA])
	return 2
}

//BIT 3, B
//#0xCB 0x58:
func opcodeCB0x58(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegB])
	return 2
}

//BIT 3, C
//#0xCB 0x59:
func opcodeCB0x59(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegC])
	return 2
}

//BIT 3, D
//#0xCB 0x5A:
func opcodeCB0x5A(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegD])
	return 2
}

//BIT 3, E
//#0xCB 0x5B:
func opcodeCB0x5B(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegE])
	return 2
}

//BIT 3, H
//#0xCB 0x5C:
func opcodeCB0x5C(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegH])
	return 2
}

//BIT 3, L
//#0xCB 0x5D:
func opcodeCB0x5D(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegL])
	return 2
}

//BIT 3, (HL)
//#0xCB 0x5E:
func opcodeCB0x5E(cpu *CPU) int {
	cpu.bitTest(3, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 3, A
//#0xCB 0x5F:
func opcodeCB0x5F(cpu *CPU) int {
	cpu.bitTest(3, cpu.regs[RegA])
	return 2
}

//BIT 4, B
//#0xCB 0x60:
func opcodeCB0x60(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegB])
	return 2
}

//BIT 4, C
//#0xCB 0x61:
func opcodeCB0x61(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegC])
	return 2
}

//BIT 4, D
//#0xCB 0x62:
func opcodeCB0x62(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegD])
	return 2
}

//BIT 4, E
//#0xCB 0x63:
func opcodeCB0x63(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegE])
	return 2
}

//BIT 4, H
//#0xCB 0x64:
func opcodeCB0x64(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegH])
	return 2
}

//BIT 4, L
//#0xCB 0x65:
func opcodeCB0x65(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegL])
	return 2
}

//BIT 4, (HL)
//#0xCB 0x66:
func opcodeCB0x66(cpu *CPU) int {
	cpu.bitTest(4, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 4, A
//#0xCB 0x67:
func opcodeCB0x67(cpu *CPU) int {
	cpu.bitTest(4, cpu.regs[RegA])
	return 2
}

//BIT 5, B
//#0xCB 0x68:
func opcodeCB0x68(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegB])
	return 2
}

//BIT 5, C
//#0xCB 0x69:
func opcodeCB0x69(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegC])
	return 2
}

//BIT 5, D
//#0xCB 0x6A:
func opcodeCB0x6A(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegD])
	return 2
}

//BIT 5, E
//#0xCB 0x6B:
func opcodeCB0x6B(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegE])
	return 2
}

//BIT 5, H
//#0xCB 0x6C:
func opcodeCB0x6C(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegH])
	return 2
}

//BIT 5, L
//#0xCB 0x6D:
func opcodeCB0x6D(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegL])
	return 2
}

//BIT 5, (HL)
//#0xCB 0x6E:
func opcodeCB0x6E(cpu *CPU) int {
	cpu.bitTest(5, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 5, A
//#0xCB 0x6F:
func opcodeCB0x6F(cpu *CPU) int {
	cpu.bitTest(5, cpu.regs[RegA])
	return 2
}

//BIT 6, B
//#0xCB 0x70:
func opcodeCB0x70(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegB])
	return 2
}

//BIT 6, C
//#0xCB 0x71:
func opcodeCB0x71(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegC])
	return 2
}

//BIT 6, D
//#0xCB 0x72:
func opcodeCB0x72(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegD])
	return 2
}

//BIT 6, E
//#0xCB 0x73:
func opcodeCB0x73(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegE])
	return 2
}

//BIT 6, H
//#0xCB 0x74:
func opcodeCB0x74(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegH])
	return 2
}

//BIT 6, L
//#0xCB 0x75:
func opcodeCB0x75(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegL])
	return 2
}

//BIT 6, (HL)
//#0xCB 0x76:
func opcodeCB0x76(cpu *CPU) int {
	cpu.bitTest(6, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 6, A
//#0xCB 0x77:
func opcodeCB0x77(cpu *CPU) int {
	cpu.bitTest(6, cpu.regs[RegA])
	return 2
}

//BIT 7, B
//#0xCB 0x78:
func opcodeCB0x78(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegB])
	return 2
}

//BIT 7, C
//#0xCB 0x79:
func opcodeCB0x79(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegC])
	return 2
}

//BIT 7, D
//#0xCB 0x7A:
func opcodeCB0x7A(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegD])
	return 2
}

//BIT 7, E
//#0xCB 0x7B:
func opcodeCB0x7B(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegE])
	return 2
}

//BIT 7, H
//#0xCB 0x7C:
func opcodeCB0x7C(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegH])
	return 2
}

//BIT 7, L
//#0xCB 0x7D:
func opcodeCB0x7D(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegL])
	return 2
}

//BIT 7, (HL)
//#0xCB 0x7E:
func opcodeCB0x7E(cpu *CPU) int {
	cpu.bitTest(7, cpu.memory.Read(cpu.getHL()))
	return 3
}

//BIT 7, A
//#0xCB 0x7F:
func opcodeCB0x7F(cpu *CPU) int {
	cpu.bitTest(7, cpu.regs[RegA])
	return 2
}

//RES 0, B
//#0xCB 0x80:
func opcodeCB0x80(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(0, cpu.regs[RegB])
	return 2
}

//RES 0, C
//#0xCB 0x81:
func opcodeCB0x81(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(0, cpu.regs[RegC])
	return 2
}

//RES 0, D
//#0xCB 0x82:
func opcodeCB0x82(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(0, cpu.regs[RegD])
	return 2
}

//RES 0, E
//#0xCB 0x83:
func opcodeCB0x83(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(0, cpu.regs[RegE])
	return 2
}

//RES 0, H
//#0xCB 0x84:
func opcodeCB0x84(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(0, cpu.regs[RegH])
	return 2
}

//RES 0, L
//#0xCB 0x85:
func opcodeCB0x85(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(0, cpu.regs[RegL])
	return 2
}

//RES 0, (HL)
//#0xCB 0x86:
func opcodeCB0x86(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(0, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 0, A
//#0xCB 0x87:
func opcodeCB0x87(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(0, cpu.regs[RegA])
	return 2
}

//RES 1, B
//#0xCB 0x88:
func opcodeCB0x88(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(1, cpu.regs[RegB])
	return 2
}

//RES 1, C
//#0xCB 0x89:
func opcodeCB0x89(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(1, cpu.regs[RegC])
	return 2
}

//RES 1, D
//#0xCB 0x8A:
func opcodeCB0x8A(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(1, cpu.regs[RegD])
	return 2
}

//RES 1, E
//#0xCB 0x8B:
func opcodeCB0x8B(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(1, cpu.regs[RegE])
	return 2
}

//RES 1, H
//#0xCB 0x8C:
func opcodeCB0x8C(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(1, cpu.regs[RegH])
	return 2
}

//RES 1, L
//#0xCB 0x8D:
func opcodeCB0x8D(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(1, cpu.regs[RegL])
	return 2
}

//RES 1, (HL)
//#0xCB 0x8E:
func opcodeCB0x8E(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(1, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 1, A
//#0xCB 0x8F:
func opcodeCB0x8F(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(1, cpu.regs[RegA])
	return 2
}

//RES 2, B
//#0xCB 0x90:
func opcodeCB0x90(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(2, cpu.regs[RegB])
	return 2
}

//RES 2, C
//#0xCB 0x91:
func opcodeCB0x91(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(2, cpu.regs[RegC])
	return 2
}

//RES 2, D
//#0xCB 0x92:
func opcodeCB0x92(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(2, cpu.regs[RegD])
	return 2
}

//RES 2, E
//#0xCB 0x93:
func opcodeCB0x93(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(2, cpu.regs[RegE])
	return 2
}

//RES 2, H
//#0xCB 0x94:
func opcodeCB0x94(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(2, cpu.regs[RegH])
	return 2
}

//RES 2, L
//#0xCB 0x95:
func opcodeCB0x95(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(2, cpu.regs[RegL])
	return 2
}

//RES 2, (HL)
//#0xCB 0x96:
func opcodeCB0x96(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(2, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 2, A
//#0xCB 0x97:
func opcodeCB0x97(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(2, cpu.regs[RegA])
	return 2
}

//RES 3, B
//#0xCB 0x98:
func opcodeCB0x98(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(3, cpu.regs[RegB])
	return 2
}

//RES 3, C
//#0xCB 0x99:
func opcodeCB0x99(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(3, cpu.regs[RegC])
	return 2
}

//RES 3, D
//#0xCB 0x9A:
func opcodeCB0x9A(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(3, cpu.regs[RegD])
	return 2
}

//RES 3, E
//#0xCB 0x9B:
func opcodeCB0x9B(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(3, cpu.regs[RegE])
	return 2
}

//RES 3, H
//#0xCB 0x9C:
func opcodeCB0x9C(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(3, cpu.regs[RegH])
	return 2
}

//RES 3, L
//#0xCB 0x9D:
func opcodeCB0x9D(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(3, cpu.regs[RegL])
	return 2
}

//RES 3, (HL)
//#0xCB 0x9E:
func opcodeCB0x9E(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(3, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 3, A
//#0xCB 0x9F:
func opcodeCB0x9F(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(3, cpu.regs[RegA])
	return 2
}

//RES 4, B
//#0xCB 0xA0:
func opcodeCB0xA0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(4, cpu.regs[RegB])
	return 2
}

//RES 4, C
//#0xCB 0xA1:
func opcodeCB0xA1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(4, cpu.regs[RegC])
	return 2
}

//RES 4, D
//#0xCB 0xA2:
func opcodeCB0xA2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(4, cpu.regs[RegD])
	return 2
}

//RES 4, E
//#0xCB 0xA3:
func opcodeCB0xA3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(4, cpu.regs[RegE])
	return 2
}

//RES 4, H
//#0xCB 0xA4:
func opcodeCB0xA4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(4, cpu.regs[RegH])
	return 2
}

//RES 4, L
//#0xCB 0xA5:
func opcodeCB0xA5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(4, cpu.regs[RegL])
	return 2
}

//RES 4, (HL)
//#0xCB 0xA6:
func opcodeCB0xA6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(4, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 4, A
//#0xCB 0xA7:
func opcodeCB0xA7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(4, cpu.regs[RegA])
	return 2
}

//RES 5, B
//#0xCB 0xA8:
func opcodeCB0xA8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(5, cpu.regs[RegB])
	return 2
}

//RES 5, C
//#0xCB 0xA9:
func opcodeCB0xA9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(5, cpu.regs[RegC])
	return 2
}

//RES 5, D
//#0xCB 0xAA:
func opcodeCB0xAA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(5, cpu.regs[RegD])
	return 2
}

//RES 5, E
//#0xCB 0xAB:
func opcodeCB0xAB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(5, cpu.regs[RegE])
	return 2
}

//RES 5, H
//#0xCB 0xAC:
func opcodeCB0xAC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(5, cpu.regs[RegH])
	return 2
}

//RES 5, L
//#0xCB 0xAD:
func opcodeCB0xAD(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(5, cpu.regs[RegL])
	return 2
}

//RES 5, (HL)
//#0xCB 0xAE:
func opcodeCB0xAE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(5, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 5, A
//#0xCB 0xAF:
func opcodeCB0xAF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(5, cpu.regs[RegA])
	return 2
}

//RES 6, B
//#0xCB 0xB0:
func opcodeCB0xB0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(6, cpu.regs[RegB])
	return 2
}

//RES 6, C
//#0xCB 0xB1:
func opcodeCB0xB1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(6, cpu.regs[RegC])
	return 2
}

//RES 6, D
//#0xCB 0xB2:
func opcodeCB0xB2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(6, cpu.regs[RegD])
	return 2
}

//RES 6, E
//#0xCB 0xB3:
func opcodeCB0xB3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(6, cpu.regs[RegE])
	return 2
}

//RES 6, H
//#0xCB 0xB4:
func opcodeCB0xB4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(6, cpu.regs[RegH])
	return 2
}

//RES 6, L
//#0xCB 0xB5:
func opcodeCB0xB5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(6, cpu.regs[RegL])
	return 2
}

//RES 6, (HL)
//#0xCB 0xB6:
func opcodeCB0xB6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(6, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 6, A
//#0xCB 0xB7:
func opcodeCB0xB7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(6, cpu.regs[RegA])
	return 2
}

//RES 7, B
//#0xCB 0xB8:
func opcodeCB0xB8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Reset(7, cpu.regs[RegB])
	return 2
}

//RES 7, C
//#0xCB 0xB9:
func opcodeCB0xB9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Reset(7, cpu.regs[RegC])
	return 2
}

//RES 7, D
//#0xCB 0xBA:
func opcodeCB0xBA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Reset(7, cpu.regs[RegD])
	return 2
}

//RES 7, E
//#0xCB 0xBB:
func opcodeCB0xBB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Reset(7, cpu.regs[RegE])
	return 2
}

//RES 7, H
//#0xCB 0xBC:
func opcodeCB0xBC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Reset(7, cpu.regs[RegH])
	return 2
}

//RES 7, L
//#0xCB 0xBD:
func opcodeCB0xBD(cpu *CPU) int {
	cpu.regs[RegL] = bit.Reset(7, cpu.regs[RegL])
	return 2
}

//RES 7, (HL)
//#0xCB 0xBE:
func opcodeCB0xBE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Reset(7, cpu.memory.Read(cpu.getHL())))
	return 4
}

//RES 7, A
//#0xCB 0xBF:
func opcodeCB0xBF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Reset(7, cpu.regs[RegA])
	return 2
}

//SET 0, B
//#0xCB 0xC0:
func opcodeCB0xC0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(0, cpu.regs[RegB])
	return 2
}

//SET 0, C
//#0xCB 0xC1:
func opcodeCB0xC1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(0, cpu.regs[RegC])
	return 2
}

//SET 0, D
//#0xCB 0xC2:
func opcodeCB0xC2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(0, cpu.regs[RegD])
	return 2
}

//SET 0, E
//#0xCB 0xC3:
func opcodeCB0xC3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(0, cpu.regs[RegE])
	return 2
}

//SET 0, H
//#0xCB 0xC4:
func opcodeCB0xC4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(0, cpu.regs[RegH])
	return 2
}

//SET 0, L
//#0xCB 0xC5:
func opcodeCB0xC5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(0, cpu.regs[RegL])
	return 2
}

//SET 0, (HL)
//#0xCB 0xC6:
func opcodeCB0xC6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(0, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 0, A
//#0xCB 0xC7:
func opcodeCB0xC7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(0, cpu.regs[RegA])
	return 2
}

//SET 1, B
//#0xCB 0xC8:
func opcodeCB0xC8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(1, cpu.regs[RegB])
	return 2
}

//SET 1, C
//#0xCB 0xC9:
func opcodeCB0xC9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(1, cpu.regs[RegC])
	return 2
}

//SET 1, D
//#0xCB 0xCA:
func opcodeCB0xCA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(1, cpu.regs[RegD])
	return 2
}

//SET 1, E
//#0xCB 0xCB:
func opcodeCB0xCB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(1, cpu.regs[RegE])
	return 2
}

//SET 1, H
//#0xCB 0xCC:
func opcodeCB0xCC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(1, cpu.regs[RegH])
	return 2
}

//SET 1, L
//#0xCB 0xCD:
func opcodeCB0xCD(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(1, cpu.regs[RegL])
	return 2
}

//SET 1, (HL)
//#0xCB 0xCE:
func opcodeCB0xCE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(1, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 1, A
//#0xCB 0xCF:
func opcodeCB0xCF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(1, cpu.regs[RegA])
	return 2
}

//SET 2, B
//#0xCB 0xD0:
func opcodeCB0xD0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(2, cpu.regs[RegB])
	return 2
}

//SET 2, C
//#0xCB 0xD1:
func opcodeCB0xD1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(2, cpu.regs[RegC])
	return 2
}

//SET 2, D
//#0xCB 0xD2:
func opcodeCB0xD2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(2, cpu.regs[RegD])
	return 2
}

//SET 2, E
//#0xCB 0xD3:
func opcodeCB0xD3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(2, cpu.regs[RegE])
	return 2
}

//SET 2, H
//#0xCB 0xD4:
func opcodeCB0xD4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(2, cpu.regs[RegH])
	return 2
}

//SET 2, L
//#0xCB 0xD5:
func opcodeCB0xD5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(2, cpu.regs[RegL])
	return 2
}

//SET 2, (HL)
//#0xCB 0xD6:
func opcodeCB0xD6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(2, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 2, A
//#0xCB 0xD7:
func opcodeCB0xD7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(2, cpu.regs[RegA])
	return 2
}

//SET 3, B
//#0xCB 0xD8:
func opcodeCB0xD8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(3, cpu.regs[RegB])
	return 2
}

//SET 3, C
//#0xCB 0xD9:
func opcodeCB0xD9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(3, cpu.regs[RegC])
	return 2
}

//SET 3, D
//#0xCB 0xDA:
func opcodeCB0xDA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(3, cpu.regs[RegD])
	return 2
}

//SET 3, E
//#0xCB 0xDB:
func opcodeCB0xDB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(3, cpu.regs[RegE])
	return 2
}

//SET 3, H
//#0xCB 0xDC:
func opcodeCB0xDC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(3, cpu.regs[RegH])
	return 2
}

//SET 3, L
//#0xCB 0xDD:
func opcodeCB0xDD(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(3, cpu.regs[RegL])
	return 2
}

//SET 3, (HL)
//#0xCB 0xDE:
func opcodeCB0xDE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(3, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 3, A
//#0xCB 0xDF:
func opcodeCB0xDF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(3, cpu.regs[RegA])
	return 2
}

//SET 4, B
//#0xCB 0xE0:
func opcodeCB0xE0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(4, cpu.regs[RegB])
	return 2
}

//SET 4, C
//#0xCB 0xE1:
func opcodeCB0xE1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(4, cpu.regs[RegC])
	return 2
}

//SET 4, D
//#0xCB 0xE2:
func opcodeCB0xE2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(4, cpu.regs[RegD])
	return 2
}

//SET 4, E
//#0xCB 0xE3:
func opcodeCB0xE3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(4, cpu.regs[RegE])
	return 2
}

//SET 4, H
//#0xCB 0xE4:
func opcodeCB0xE4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(4, cpu.regs[RegH])
	return 2
}

//SET 4, L
//#0xCB 0xE5:
func opcodeCB0xE5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(4, cpu.regs[RegL])
	return 2
}

//SET 4, (HL)
//#0xCB 0xE6:
func opcodeCB0xE6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(4, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 4, A
//#0xCB 0xE7:
func opcodeCB0xE7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(4, cpu.regs[RegA])
	return 2
}

//SET 5, B
//#0xCB 0xE8:
func opcodeCB0xE8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(5, cpu.regs[RegB])
	return 2
}

//SET 5, C
//#0xCB 0xE9:
func opcodeCB0xE9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(5, cpu.regs[RegC])
	return 2
}

//SET 5, D
//#0xCB 0xEA:
func opcodeCB0xEA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(5, cpu.regs[RegD])
	return 2
}

//SET 5, E
//#0xCB 0xEB:
func opcodeCB0xEB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(5, cpu.regs[RegE])
	return 2
}

//SET 5, H
//#0xCB 0xEC:
func opcodeCB0xEC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(5, cpu.regs[RegH])
	return 2
}

//SET 5, L
//#0xCB 0xED:
func opcodeCB0xED(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(5, cpu.regs[RegL])
	return 2
}

//SET 5, (HL)
//#0xCB 0xEE:
func opcodeCB0xEE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(5, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 5, A
//#0xCB 0xEF:
func opcodeCB0xEF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(5, cpu.regs[RegA])
	return 2
}

//SET 6, B
//#0xCB 0xF0:
func opcodeCB0xF0(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(6, cpu.regs[RegB])
	return 2
}

//SET 6, C
//#0xCB 0xF1:
func opcodeCB0xF1(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(6, cpu.regs[RegC])
	return 2
}

//SET 6, D
//#0xCB 0xF2:
func opcodeCB0xF2(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(6, cpu.regs[RegD])
	return 2
}

//SET 6, E
//#0xCB 0xF3:
func opcodeCB0xF3(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(6, cpu.regs[RegE])
	return 2
}

//SET 6, H
//#0xCB 0xF4:
func opcodeCB0xF4(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(6, cpu.regs[RegH])
	return 2
}

//SET 6, L
//#0xCB 0xF5:
func opcodeCB0xF5(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(6, cpu.regs[RegL])
	return 2
}

//SET 6, (HL)
//#0xCB 0xF6:
func opcodeCB0xF6(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(6, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 6, A
//#0xCB 0xF7:
func opcodeCB0xF7(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(6, cpu.regs[RegA])
	return 2
}

//SET 7, B
//#0xCB 0xF8:
func opcodeCB0xF8(cpu *CPU) int {
	cpu.regs[RegB] = bit.Set(7, cpu.regs[RegB])
	return 2
}

//SET 7, C
//#0xCB 0xF9:
func opcodeCB0xF9(cpu *CPU) int {
	cpu.regs[RegC] = bit.Set(7, cpu.regs[RegC])
	return 2
}

//SET 7, D
//#0xCB 0xFA:
func opcodeCB0xFA(cpu *CPU) int {
	cpu.regs[RegD] = bit.Set(7, cpu.regs[RegD])
	return 2
}

//SET 7, E
//#0xCB 0xFB:
func opcodeCB0xFB(cpu *CPU) int {
	cpu.regs[RegE] = bit.Set(7, cpu.regs[RegE])
	return 2
}

//SET 7, H
//#0xCB 0xFC:
func opcodeCB0xFC(cpu *CPU) int {
	cpu.regs[RegH] = bit.Set(7, cpu.regs[RegH])
	return 2
}

//SET 7, L
//#0xCB 0xFD:
func opcodeCB0xFD(cpu *CPU) int {
	cpu.regs[RegL] = bit.Set(7, cpu.regs[RegL])
	return 2
}

//SET 7, (HL)
//#0xCB 0xFE:
func opcodeCB0xFE(cpu *CPU) int {
	cpu.memory.Write(cpu.getHL(), bit.Set(7, cpu.memory.Read(cpu.getHL())))
	return 4
}

//SET 7, A
//#0xCB 0xFF:
func opcodeCB0xFF(cpu *CPU) int {
	cpu.regs[RegA] = bit.Set(7, cpu.regs[RegA])
	return 2
}
