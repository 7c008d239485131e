// spc_gauss.go - S-DSP Gaussian interpolation table
//
// This is the fixed 512-entry lookup ROM the real S-DSP hardware uses to
// smooth BRR sample playback between decoded nibbles. It is hardware
// documentation, not derived code, so it is transcribed here verbatim.

package main

var gaussTable = [512]int32{
	0x000, 0x001, 0x001, 0x001, 0x002, 0x002, 0x002, 0x002, 0x003, 0x003, 0x003, 0x004, 0x004, 0x004, 0x005, 0x005,
	0x006, 0x006, 0x006, 0x007, 0x007, 0x008, 0x008, 0x009, 0x009, 0x00A, 0x00A, 0x00B, 0x00B, 0x00C, 0x00C, 0x00D,
	0x00E, 0x00E, 0x00F, 0x00F, 0x010, 0x011, 0x011, 0x012, 0x013, 0x013, 0x014, 0x015, 0x015, 0x016, 0x017, 0x018,
	0x018, 0x019, 0x01A, 0x01B, 0x01B, 0x01C, 0x01D, 0x01E, 0x01F, 0x020, 0x020, 0x021, 0x022, 0x023, 0x024, 0x025,
	0x026, 0x027, 0x028, 0x029, 0x02A, 0x02B, 0x02C, 0x02D, 0x02E, 0x02F, 0x030, 0x031, 0x032, 0x033, 0x034, 0x035,
	0x036, 0x037, 0x038, 0x03A, 0x03B, 0x03C, 0x03D, 0x03E, 0x040, 0x041, 0x042, 0x043, 0x045, 0x046, 0x047, 0x049,
	0x04A, 0x04B, 0x04D, 0x04E, 0x04F, 0x051, 0x052, 0x054, 0x055, 0x056, 0x058, 0x059, 0x05B, 0x05C, 0x05E, 0x05F,
	0x061, 0x062, 0x064, 0x065, 0x067, 0x068, 0x06A, 0x06B, 0x06D, 0x06E, 0x070, 0x071, 0x073, 0x075, 0x076, 0x078,
	0x079, 0x07B, 0x07D, 0x07E, 0x080, 0x082, 0x083, 0x085, 0x087, 0x088, 0x08A, 0x08C, 0x08D, 0x08F, 0x091, 0x092,
	0x094, 0x096, 0x098, 0x099, 0x09B, 0x09D, 0x09F, 0x0A0, 0x0A2, 0x0A4, 0x0A6, 0x0A8, 0x0A9, 0x0AB, 0x0AD, 0x0AF,
	0x0B1, 0x0B2, 0x0B4, 0x0B6, 0x0B8, 0x0BA, 0x0BC, 0x0BE, 0x0C0, 0x0C1, 0x0C3, 0x0C5, 0x0C7, 0x0C9, 0x0CB, 0x0CD,
	0x0CF, 0x0D1, 0x0D3, 0x0D5, 0x0D7, 0x0D9, 0x0DB, 0x0DD, 0x0DF, 0x0E1, 0x0E3, 0x0E5, 0x0E7, 0x0E9, 0x0EB, 0x0ED,
	0x0EF, 0x0F1, 0x0F3, 0x0F5, 0x0F8, 0x0FA, 0x0FC, 0x0FE, 0x100, 0x102, 0x104, 0x106, 0x109, 0x10B, 0x10D, 0x10F,
	0x111, 0x114, 0x116, 0x118, 0x11A, 0x11D, 0x11F, 0x121, 0x123, 0x126, 0x128, 0x12A, 0x12C, 0x12F, 0x131, 0x133,
	0x136, 0x138, 0x13A, 0x13D, 0x13F, 0x141, 0x144, 0x146, 0x148, 0x14B, 0x14D, 0x150, 0x152, 0x154, 0x157, 0x159,
	0x15C, 0x15E, 0x160, 0x163, 0x165, 0x168, 0x16A, 0x16D, 0x16F, 0x172, 0x174, 0x177, 0x179, 0x17C, 0x17E, 0x181,
	0x183, 0x186, 0x188, 0x18B, 0x18D, 0x190, 0x192, 0x195, 0x197, 0x19A, 0x19C, 0x19F, 0x1A1, 0x1A4, 0x1A6, 0x1A9,
	0x1AC, 0x1AE, 0x1B1, 0x1B3, 0x1B6, 0x1B8, 0x1BB, 0x1BD, 0x1C0, 0x1C3, 0x1C5, 0x1C8, 0x1CA, 0x1CD, 0x1D0, 0x1D2,
	0x1D5, 0x1D7, 0x1DA, 0x1DC, 0x1DF, 0x1E2, 0x1E4, 0x1E7, 0x1E9, 0x1EC, 0x1EE, 0x1F1, 0x1F4, 0x1F6, 0x1F9, 0x1FB,
	0x1FE, 0x200, 0x203, 0x205, 0x208, 0x20B, 0x20D, 0x210, 0x212, 0x215, 0x217, 0x21A, 0x21D, 0x21F, 0x222, 0x224,
	0x227, 0x229, 0x22C, 0x22E, 0x231, 0x233, 0x236, 0x238, 0x23B, 0x23D, 0x240, 0x242, 0x245, 0x247, 0x24A, 0x24C,
	0x24F, 0x251, 0x254, 0x256, 0x259, 0x25B, 0x25D, 0x260, 0x262, 0x265, 0x267, 0x26A, 0x26C, 0x26E, 0x271, 0x273,
	0x276, 0x278, 0x27A, 0x27D, 0x27F, 0x281, 0x284, 0x286, 0x288, 0x28B, 0x28D, 0x28F, 0x292, 0x294, 0x296, 0x299,
	0x29B, 0x29D, 0x29F, 0x2A2, 0x2A4, 0x2A6, 0x2A8, 0x2AB, 0x2AD, 0x2AF, 0x2B1, 0x2B3, 0x2B6, 0x2B8, 0x2BA, 0x2BC,
	0x2BE, 0x2C1, 0x2C3, 0x2C5, 0x2C7, 0x2C9, 0x2CB, 0x2CD, 0x2CF, 0x2D2, 0x2D4, 0x2D6, 0x2D8, 0x2DA, 0x2DC, 0x2DE,
	0x2E0, 0x2E2, 0x2E4, 0x2E6, 0x2E8, 0x2EA, 0x2EC, 0x2ED, 0x2EF, 0x2F1, 0x2F3, 0x2F5, 0x2F7, 0x2F9, 0x2FB, 0x2FC,
	0x2FE, 0x300, 0x302, 0x304, 0x306, 0x307, 0x309, 0x30B, 0x30C, 0x30E, 0x310, 0x312, 0x313, 0x315, 0x317, 0x318,
	0x31A, 0x31B, 0x31D, 0x31F, 0x320, 0x322, 0x323, 0x325, 0x326, 0x328, 0x329, 0x32B, 0x32C, 0x32E, 0x32F, 0x331,
	0x332, 0x334, 0x335, 0x337, 0x338, 0x339, 0x33B, 0x33C, 0x33D, 0x33F, 0x340, 0x341, 0x343, 0x344, 0x345, 0x347,
	0x348, 0x349, 0x34A, 0x34C, 0x34D, 0x34E, 0x34F, 0x350, 0x352, 0x353, 0x354, 0x355, 0x356, 0x357, 0x358, 0x359,
	0x35A, 0x35C, 0x35D, 0x35E, 0x35F, 0x360, 0x361, 0x362, 0x363, 0x364, 0x365, 0x366, 0x367, 0x368, 0x369, 0x36A,
	0x36B, 0x36C, 0x36D, 0x36E, 0x36E, 0x36F, 0x370, 0x371, 0x372, 0x373, 0x374, 0x375, 0x375, 0x376, 0x377, 0x378,
}

// gauss returns the interpolation coefficient for a 9-bit table index.
func gauss(idx int) int32 {
	return gaussTable[idx&0x1FF]
}
