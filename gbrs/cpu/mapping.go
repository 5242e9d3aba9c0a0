package cpu

// Opcode represents a function that executes an opcode and returns
// its cost in machine clocks.
type Opcode func(*CPU) int

var opcodeTable = [256]Opcode{
	0x00: opcode0x00,
	0x01: opcode0x01,
	0x02: opcode0x02,
	0x03: opcode0x03,
	0x04: opcode0x04,
	0x05: opcode0x05,
	0x06: opcode0x06,
	0x07: opcode0x07,
	0x08: opcode0x08,
	0x09: opcode0x09,
	0x0a: opcode0x0A,
	0x0b: opcode0x0B,
	0x0c: opcode0x0C,
	0x0d: opcode0x0D,
	0x0e: opcode0x0E,
	0x0f: opcode0x0F,
	0x10: opcode0x10,
	0x11: opcode0x11,
	0x12: opcode0x12,
	0x13: opcode0x13,
	0x14: opcode0x14,
	0x15: opcode0x15,
	0x16: opcode0x16,
	0x17: opcode0x17,
	0x18: opcode0x18,
	0x19: opcode0x19,
	0x1a: opcode0x1A,
	0x1b: opcode0x1B,
	0x1c: opcode0x1C,
	0x1d: opcode0x1D,
	0x1e: opcode0x1E,
	0x1f: opcode0x1F,
	0x20: opcode0x20,
	0x21: opcode0x21,
	0x22: opcode0x22,
	0x23: opcode0x23,
	0x24: opcode0x24,
	0x25: opcode0x25,
	0x26: opcode0x26,
	0x27: opcode0x27,
	0x28: opcode0x28,
	0x29: opcode0x29,
	0x2a: opcode0x2A,
	0x2b: opcode0x2B,
	0x2c: opcode0x2C,
	0x2d: opcode0x2D,
	0x2e: opcode0x2E,
	0x2f: opcode0x2F,
	0x30: opcode0x30,
	0x31: opcode0x31,
	0x32: opcode0x32,
	0x33: opcode0x33,
	0x34: opcode0x34,
	0x35: opcode0x35,
	0x36: opcode0x36,
	0x37: opcode0x37,
	0x38: opcode0x38,
	0x39: opcode0x39,
	0x3a: opcode0x3A,
	0x3b: opcode0x3B,
	0x3c: opcode0x3C,
	0x3d: opcode0x3D,
	0x3e: opcode0x3E,
	0x3f: opcode0x3F,
	0x40: opcode0x40,
	0x41: opcode0x41,
	0x42: opcode0x42,
	0x43: opcode0x43,
	0x44: opcode0x44,
	0x45: opcode0x45,
	0x46: opcode0x46,
	0x47: opcode0x47,
	0x48: opcode0x48,
	0x49: opcode0x49,
	0x4a: opcode0x4A,
	0x4b: opcode0x4B,
	0x4c: opcode0x4C,
	0x4d: opcode0x4D,
	0x4e: opcode0x4E,
	0x4f: opcode0x4F,
	0x50: opcode0x50,
	0x51: opcode0x51,
	0x52: opcode0x52,
	0x53: opcode0x53,
	0x54: opcode0x54,
	0x55: opcode0x55,
	0x56: opcode0x56,
	0x57: opcode0x57,
	0x58: opcode0x58,
	0x59: opcode0x59,
	0x5a: opcode0x5A,
	0x5b: opcode0x5B,
	0x5c: opcode0x5C,
	0x5d: opcode0x5D,
	0x5e: opcode0x5E,
	0x5f: opcode0x5F,
	0x60: opcode0x60,
	0x61: opcode0x61,
	0x62: opcode0x62,
	0x63: opcode0x63,
	0x64: opcode0x64,
	0x65: opcode0x65,
	0x66: opcode0x66,
	0x67: opcode0x67,
	0x68: opcode0x68,
	0x69: opcode0x69,
	0x6a: opcode0x6A,
	0x6b: opcode0x6B,
	0x6c: opcode0x6C,
	0x6d: opcode0x6D,
	0x6e: opcode0x6E,
	0x6f: opcode0x6F,
	0x70: opcode0x70,
	0x71: opcode0x71,
	0x72: opcode0x72,
	0x73: opcode0x73,
	0x74: opcode0x74,
	0x75: opcode0x75,
	0x76: opcode0x76,
	0x77: opcode0x77,
	0x78: opcode0x78,
	0x79: opcode0x79,
	0x7a: opcode0x7A,
	0x7b: opcode0x7B,
	0x7c: opcode0x7C,
	0x7d: opcode0x7D,
	0x7e: opcode0x7E,
	0x7f: opcode0x7F,
	0x80: opcode0x80,
	0x81: opcode0x81,
	0x82: opcode0x82,
	0x83: opcode0x83,
	0x84: opcode0x84,
	0x85: opcode0x85,
	0x86: opcode0x86,
	0x87: opcode0x87,
	0x88: opcode0x88,
	0x89: opcode0x89,
	0x8a: opcode0x8A,
	0x8b: opcode0x8B,
	0x8c: opcode0x8C,
	0x8d: opcode0x8D,
	0x8e: opcode0x8E,
	0x8f: opcode0x8F,
	0x90: opcode0x90,
	0x91: opcode0x91,
	0x92: opcode0x92,
	0x93: opcode0x93,
	0x94: opcode0x94,
	0x95: opcode0x95,
	0x96: opcode0x96,
	0x97: opcode0x97,
	0x98: opcode0x98,
	0x99: opcode0x99,
	0x9a: opcode0x9A,
	0x9b: opcode0x9B,
	0x9c: opcode0x9C,
	0x9d: opcode0x9D,
	0x9e: opcode0x9E,
	0x9f: opcode0x9F,
	0xa0: opcode0xA0,
	0xa1: opcode0xA1,
	0xa2: opcode0xA2,
	0xa3: opcode0xA3,
	0xa4: opcode0xA4,
	0xa5: opcode0xA5,
	0xa6: opcode0xA6,
	0xa7: opcode0xA7,
	0xa8: opcode0xA8,
	0xa9: opcode0xA9,
	0xaa: opcode0xAA,
	0xab: opcode0xAB,
	0xac: opcode0xAC,
	0xad: opcode0xAD,
	0xae: opcode0xAE,
	0xaf: opcode0xAF,
	0xb0: opcode0xB0,
	0xb1: opcode0xB1,
	0xb2: opcode0xB2,
	0xb3: opcode0xB3,
	0xb4: opcode0xB4,
	0xb5: opcode0xB5,
	0xb6: opcode0xB6,
	0xb7: opcode0xB7,
	0xb8: opcode0xB8,
	0xb9: opcode0xB9,
	0xba: opcode0xBA,
	0xbb: opcode0xBB,
	0xbc: opcode0xBC,
	0xbd: opcode0xBD,
	0xbe: opcode0xBE,
	0xbf: opcode0xBF,
	0xc0: opcode0xC0,
	0xc1: opcode0xC1,
	0xc2: opcode0xC2,
	0xc3: opcode0xC3,
	0xc4: opcode0xC4,
	0xc5: opcode0xC5,
	0xc6: opcode0xC6,
	0xc7: opcode0xC7,
	0xc8: opcode0xC8,
	0xc9: opcode0xC9,
	0xca: opcode0xCA,
	0xcb: opcode0xCB,
	0xcc: opcode0xCC,
	0xcd: opcode0xCD,
	0xce: opcode0xCE,
	0xcf: opcode0xCF,
	0xd0: opcode0xD0,
	0xd1: opcode0xD1,
	0xd2: opcode0xD2,
	0xd3: unknownOpcode,
	0xd4: opcode0xD4,
	0xd5: opcode0xD5,
	0xd6: opcode0xD6,
	0xd7: opcode0xD7,
	0xd8: opcode0xD8,
	0xd9: opcode0xD9,
	0xda: opcode0xDA,
	0xdb: unknownOpcode,
	0xdc: opcode0xDC,
	0xdd: unknownOpcode,
	0xde: opcode0xDE,
	0xdf: opcode0xDF,
	0xe0: opcode0xE0,
	0xe1: opcode0xE1,
	0xe2: opcode0xE2,
	0xe3: unknownOpcode,
	0xe4: unknownOpcode,
	0xe5: opcode0xE5,
	0xe6: opcode0xE6,
	0xe7: opcode0xE7,
	0xe8: opcode0xE8,
	0xe9: opcode0xE9,
	0xea: opcode0xEA,
	0xeb: unknownOpcode,
	0xec: unknownOpcode,
	0xed: unknownOpcode,
	0xee: opcode0xEE,
	0xef: opcode0xEF,
	0xf0: opcode0xF0,
	0xf1: opcode0xF1,
	0xf2: opcode0xF2,
	0xf3: opcode0xF3,
	0xf4: unknownOpcode,
	0xf5: opcode0xF5,
	0xf6: opcode0xF6,
	0xf7: opcode0xF7,
	0xf8: opcode0xF8,
	0xf9: opcode0xF9,
	0xfa: opcode0xFA,
	0xfb: opcode0xFB,
	0xfc: unknownOpcode,
	0xfd: unknownOpcode,
	0xfe: opcode0xFE,
	0xff: opcode0xFF,
}

var opcodeCBTable = [256]Opcode{
	0x00: opcodeCB0x00,
	0x01: opcodeCB0x01,
	0x02: opcodeCB0x02,
	0x03: opcodeCB0x03,
	0x04: opcodeCB0x04,
	0x05: opcodeCB0x05,
	0x06: opcodeCB0x06,
	0x07: opcodeCB0x07,
	0x08: opcodeCB0x08,
	0x09: opcodeCB0x09,
	0x0a: opcodeCB0x0A,
	0x0b: opcodeCB0x0B,
	0x0c: opcodeCB0x0C,
	0x0d: opcodeCB0x0D,
	0x0e: opcodeCB0x0E,
	0x0f: opcodeCB0x0F,
	0x10: opcodeCB0x10,
	0x11: opcodeCB0x11,
	0x12: opcodeCB0x12,
	0x13: opcodeCB0x13,
	0x14: opcodeCB0x14,
	0x15: opcodeCB0x15,
	0x16: opcodeCB0x16,
	0x17: opcodeCB0x17,
	0x18: opcodeCB0x18,
	0x19: opcodeCB0x19,
	0x1a: opcodeCB0x1A,
	0x1b: opcodeCB0x1B,
	0x1c: opcodeCB0x1C,
	0x1d: opcodeCB0x1D,
	0x1e: opcodeCB0x1E,
	0x1f: opcodeCB0x1F,
	0x20: opcodeCB0x20,
	0x21: opcodeCB0x21,
	0x22: opcodeCB0x22,
	0x23: opcodeCB0x23,
	0x24: opcodeCB0x24,
	0x25: opcodeCB0x25,
	0x26: opcodeCB0x26,
	0x27: opcodeCB0x27,
	0x28: opcodeCB0x28,
	0x29: opcodeCB0x29,
	0x2a: opcodeCB0x2A,
	0x2b: opcodeCB0x2B,
	0x2c: opcodeCB0x2C,
	0x2d: opcodeCB0x2D,
	0x2e: opcodeCB0x2E,
	0x2f: opcodeCB0x2F,
	0x30: opcodeCB0x30,
	0x31: opcodeCB0x31,
	0x32: opcodeCB0x32,
	0x33: opcodeCB0x33,
	0x34: opcodeCB0x34,
	0x35: opcodeCB0x35,
	0x36: opcodeCB0x36,
	0x37: opcodeCB0x37,
	0x38: opcodeCB0x38,
	0x39: opcodeCB0x39,
	0x3a: opcodeCB0x3A,
	0x3b: opcodeCB0x3B,
	0x3c: opcodeCB0x3C,
	0x3d: opcodeCB0x3D,
	0x3e: opcodeCB0x3E,
	0x3f: opcodeCB0x3F,
	0x40: opcodeCB0x40,
	0x41: opcodeCB0x41,
	0x42: opcodeCB0x42,
	0x43: opcodeCB0x43,
	0x44: opcodeCB0x44,
	0x45: opcodeCB0x45,
	0x46: opcodeCB0x46,
	0x47: opcodeCB0x47,
	0x48: opcodeCB0x48,
	0x49: opcodeCB0x49,
	0x4a: opcodeCB0x4A,
	0x4b: opcodeCB0x4B,
	0x4c: opcodeCB0x4C,
	0x4d: opcodeCB0x4D,
	0x4e: opcodeCB0x4E,
	0x4f: opcodeCB0x4F,
	0x50: opcodeCB0x50,
	0x51: opcodeCB0x51,
	0x52: opcodeCB0x52,
	0x53: opcodeCB0x53,
	0x54: opcodeCB0x54,
	0x55: opcodeCB0x55,
	0x56: opcodeCB0x56,
	0x57: opcodeCB0x57,
	0x58: opcodeCB0x58,
	0x59: opcodeCB0x59,
	0x5a: opcodeCB0x5A,
	0x5b: opcodeCB0x5B,
	0x5c: opcodeCB0x5C,
	0x5d: opcodeCB0x5D,
	0x5e: opcodeCB0x5E,
	0x5f: opcodeCB0x5F,
	0x60: opcodeCB0x60,
	0x61: opcodeCB0x61,
	0x62: opcodeCB0x62,
	0x63: opcodeCB0x63,
	0x64: opcodeCB0x64,
	0x65: opcodeCB0x65,
	0x66: opcodeCB0x66,
	0x67: opcodeCB0x67,
	0x68: opcodeCB0x68,
	0x69: opcodeCB0x69,
	0x6a: opcodeCB0x6A,
	0x6b: opcodeCB0x6B,
	0x6c: opcodeCB0x6C,
	0x6d: opcodeCB0x6D,
	0x6e: opcodeCB0x6E,
	0x6f: opcodeCB0x6F,
	0x70: opcodeCB0x70,
	0x71: opcodeCB0x71,
	0x72: opcodeCB0x72,
	0x73: opcodeCB0x73,
	0x74: opcodeCB0x74,
	0x75: opcodeCB0x75,
	0x76: opcodeCB0x76,
	0x77: opcodeCB0x77,
	0x78: opcodeCB0x78,
	0x79: opcodeCB0x79,
	0x7a: opcodeCB0x7A,
	0x7b: opcodeCB0x7B,
	0x7c: opcodeCB0x7C,
	0x7d: opcodeCB0x7D,
	0x7e: opcodeCB0x7E,
	0x7f: opcodeCB0x7F,
	0x80: opcodeCB0x80,
	0x81: opcodeCB0x81,
	0x82: opcodeCB0x82,
	0x83: opcodeCB0x83,
	0x84: opcodeCB0x84,
	0x85: opcodeCB0x85,
	0x86: opcodeCB0x86,
	0x87: opcodeCB0x87,
	0x88: opcodeCB0x88,
	0x89: opcodeCB0x89,
	0x8a: opcodeCB0x8A,
	0x8b: opcodeCB0x8B,
	0x8c: opcodeCB0x8C,
	0x8d: opcodeCB0x8D,
	0x8e: opcodeCB0x8E,
	0x8f: opcodeCB0x8F,
	0x90: opcodeCB0x90,
	0x91: opcodeCB0x91,
	0x92: opcodeCB0x92,
	0x93: opcodeCB0x93,
	0x94: opcodeCB0x94,
	0x95: opcodeCB0x95,
	0x96: opcodeCB0x96,
	0x97: opcodeCB0x97,
	0x98: opcodeCB0x98,
	0x99: opcodeCB0x99,
	0x9a: opcodeCB0x9A,
	0x9b: opcodeCB0x9B,
	0x9c: opcodeCB0x9C,
	0x9d: opcodeCB0x9D,
	0x9e: opcodeCB0x9E,
	0x9f: opcodeCB0x9F,
	0xa0: opcodeCB0xA0,
	0xa1: opcodeCB0xA1,
	0xa2: opcodeCB0xA2,
	0xa3: opcodeCB0xA3,
	0xa4: opcodeCB0xA4,
	0xa5: opcodeCB0xA5,
	0xa6: opcodeCB0xA6,
	0xa7: opcodeCB0xA7,
	0xa8: opcodeCB0xA8,
	0xa9: opcodeCB0xA9,
	0xaa: opcodeCB0xAA,
	0xab: opcodeCB0xAB,
	0xac: opcodeCB0xAC,
	0xad: opcodeCB0xAD,
	0xae: opcodeCB0xAE,
	0xaf: opcodeCB0xAF,
	0xb0: opcodeCB0xB0,
	0xb1: opcodeCB0xB1,
	0xb2: opcodeCB0xB2,
	0xb3: opcodeCB0xB3,
	0xb4: opcodeCB0xB4,
	0xb5: opcodeCB0xB5,
	0xb6: opcodeCB0xB6,
	0xb7: opcodeCB0xB7,
	0xb8: opcodeCB0xB8,
	0xb9: opcodeCB0xB9,
	0xba: opcodeCB0xBA,
	0xbb: opcodeCB0xBB,
	0xbc: opcodeCB0xBC,
	0xbd: opcodeCB0xBD,
	0xbe: opcodeCB0xBE,
	0xbf: opcodeCB0xBF,
	0xc0: opcodeCB0xC0,
	0xc1: opcodeCB0xC1,
	0xc2: opcodeCB0xC2,
	0xc3: opcodeCB0xC3,
	0xc4: opcodeCB0xC4,
	0xc5: opcodeCB0xC5,
	0xc6: opcodeCB0xC6,
	0xc7: opcodeCB0xC7,
	0xc8: opcodeCB0xC8,
	0xc9: opcodeCB0xC9,
	0xca: opcodeCB0xCA,
	0xcb: opcodeCB0xCB,
	0xcc: opcodeCB0xCC,
	0xcd: opcodeCB0xCD,
	0xce: opcodeCB0xCE,
	0xcf: opcodeCB0xCF,
	0xd0: opcodeCB0xD0,
	0xd1: opcodeCB0xD1,
	0xd2: opcodeCB0xD2,
	0xd3: opcodeCB0xD3,
	0xd4: opcodeCB0xD4,
	0xd5: opcodeCB0xD5,
	0xd6: opcodeCB0xD6,
	0xd7: opcodeCB0xD7,
	0xd8: opcodeCB0xD8,
	0xd9: opcodeCB0xD9,
	0xda: opcodeCB0xDA,
	0xdb: opcodeCB0xDB,
	0xdc: opcodeCB0xDC,
	0xdd: opcodeCB0xDD,
	0xde: opcodeCB0xDE,
	0xdf: opcodeCB0xDF,
	0xe0: opcodeCB0xE0,
	0xe1: opcodeCB0xE1,
	0xe2: opcodeCB0xE2,
	0xe3: opcodeCB0xE3,
	0xe4: opcodeCB0xE4,
	0xe5: opcodeCB0xE5,
	0xe6: opcodeCB0xE6,
	0xe7: opcodeCB0xE7,
	0xe8: opcodeCB0xE8,
	0xe9: opcodeCB0xE9,
	0xea: opcodeCB0xEA,
	0xeb: opcodeCB0xEB,
	0xec: opcodeCB0xEC,
	0xed: opcodeCB0xED,
	0xee: opcodeCB0xEE,
	0xef: opcodeCB0xEF,
	0xf0: opcodeCB0xF0,
	0xf1: opcodeCB0xF1,
	0xf2: opcodeCB0xF2,
	0xf3: opcodeCB0xF3,
	0xf4: opcodeCB0xF4,
	0xf5: opcodeCB0xF5,
	0xf6: opcodeCB0xF6,
	0xf7: opcodeCB0xF7,
	0xf8: opcodeCB0xF8,
	0xf9: opcodeCB0xF9,
	0xfa: opcodeCB0xFA,
	0xfb: opcodeCB0xFB,
	0xfc: opcodeCB0xFC,
	0xfd: opcodeCB0xFD,
	0xfe: opcodeCB0xFE,
	0xff: opcodeCB0xFF,
}
