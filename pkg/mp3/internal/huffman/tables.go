package huffman

// spec describes one code table: symbol dimensions, the escape field
// width for values clamped at 15, and the code length and code word for
// each (x, y) pair in row-major order. The data follows ISO/IEC 11172-3
// table B.7: tables 0, 4 and 14 carry no code, tables 16 through 23
// share one code assignment with per-table linbits, as do 24 through 31.
type spec struct {
	xlen, ylen int
	linbits    uint
	hlen       []uint8
	code       []uint16
}

// linbits for the two escape table families.
var (
	linbits16 = [8]uint{1, 2, 3, 4, 6, 8, 10, 13}
	linbits24 = [8]uint{4, 5, 6, 7, 8, 9, 11, 13}
)

var table1 = spec{
	xlen: 2, ylen: 2,
	hlen: []uint8{
		1, 3,
		2, 3,
	},
	code: []uint16{
		0x0001, 0x0001,
		0x0001, 0x0000,
	},
}

var table2 = spec{
	xlen: 3, ylen: 3,
	hlen: []uint8{
		1, 3, 6,
		3, 3, 5,
		5, 5, 6,
	},
	code: []uint16{
		0x0001, 0x0002, 0x0001,
		0x0003, 0x0001, 0x0001,
		0x0003, 0x0002, 0x0000,
	},
}

var table3 = spec{
	xlen: 3, ylen: 3,
	hlen: []uint8{
		2, 2, 6,
		3, 2, 5,
		5, 5, 6,
	},
	code: []uint16{
		0x0003, 0x0002, 0x0001,
		0x0001, 0x0001, 0x0001,
		0x0003, 0x0002, 0x0000,
	},
}

var table5 = spec{
	xlen: 4, ylen: 4,
	hlen: []uint8{
		1, 3, 6, 7,
		3, 3, 6, 7,
		6, 6, 7, 8,
		7, 6, 7, 8,
	},
	code: []uint16{
		0x0001, 0x0002, 0x0006, 0x0005,
		0x0003, 0x0001, 0x0004, 0x0004,
		0x0007, 0x0005, 0x0007, 0x0001,
		0x0006, 0x0001, 0x0001, 0x0000,
	},
}

var table6 = spec{
	xlen: 4, ylen: 4,
	hlen: []uint8{
		3, 3, 5, 7,
		3, 2, 4, 5,
		4, 4, 5, 6,
		6, 5, 6, 7,
	},
	code: []uint16{
		0x0007, 0x0003, 0x0005, 0x0001,
		0x0006, 0x0002, 0x0003, 0x0002,
		0x0005, 0x0004, 0x0004, 0x0001,
		0x0003, 0x0003, 0x0002, 0x0000,
	},
}

var table7 = spec{
	xlen: 6, ylen: 6,
	hlen: []uint8{
		1, 3, 6, 8, 8, 9,
		3, 4, 6, 7, 7, 8,
		6, 5, 7, 8, 8, 9,
		7, 7, 8, 9, 9, 9,
		7, 7, 8, 9, 9, 10,
		8, 8, 9, 10, 10, 10,
	},
	code: []uint16{
		0x0001, 0x0002, 0x000a, 0x0013, 0x0010, 0x000a,
		0x0003, 0x0003, 0x0007, 0x000a, 0x0005, 0x0003,
		0x000b, 0x0004, 0x000d, 0x0011, 0x0008, 0x0004,
		0x000c, 0x000b, 0x0012, 0x000f, 0x000b, 0x0002,
		0x0007, 0x0006, 0x0009, 0x000e, 0x0003, 0x0001,
		0x0006, 0x0004, 0x0005, 0x0003, 0x0002, 0x0000,
	},
}

var table8 = spec{
	xlen: 6, ylen: 6,
	hlen: []uint8{
		2, 3, 6, 8, 8, 9,
		3, 2, 4, 8, 8, 8,
		6, 4, 6, 8, 8, 9,
		8, 8, 8, 9, 9, 10,
		8, 7, 8, 9, 10, 10,
		9, 8, 9, 9, 11, 11,
	},
	code: []uint16{
		0x0003, 0x0004, 0x0006, 0x0012, 0x000c, 0x0005,
		0x0005, 0x0001, 0x0002, 0x0010, 0x0009, 0x0003,
		0x0007, 0x0003, 0x0005, 0x000e, 0x0007, 0x0003,
		0x0013, 0x0011, 0x000f, 0x000d, 0x000a, 0x0004,
		0x000d, 0x0005, 0x0008, 0x000b, 0x0005, 0x0001,
		0x000c, 0x0004, 0x0004, 0x0001, 0x0001, 0x0000,
	},
}

var table9 = spec{
	xlen: 6, ylen: 6,
	hlen: []uint8{
		3, 3, 5, 6, 8, 9,
		3, 3, 4, 5, 6, 8,
		4, 4, 5, 6, 7, 8,
		6, 5, 6, 7, 7, 8,
		7, 6, 7, 7, 8, 9,
		8, 7, 8, 8, 9, 9,
	},
	code: []uint16{
		0x0007, 0x0005, 0x0009, 0x000e, 0x000f, 0x0007,
		0x0006, 0x0004, 0x0005, 0x0005, 0x0006, 0x0007,
		0x0007, 0x0006, 0x0008, 0x0008, 0x0008, 0x0005,
		0x000f, 0x0006, 0x0009, 0x000a, 0x0005, 0x0001,
		0x000b, 0x0007, 0x0009, 0x0006, 0x0004, 0x0001,
		0x000e, 0x0004, 0x0006, 0x0002, 0x0006, 0x0000,
	},
}

var table10 = spec{
	xlen: 8, ylen: 8,
	hlen: []uint8{
		1, 3, 6, 8, 9, 9, 9, 10,
		3, 4, 6, 7, 8, 9, 8, 8,
		6, 6, 7, 8, 9, 10, 9, 9,
		7, 7, 8, 9, 10, 10, 9, 10,
		8, 8, 9, 10, 10, 10, 10, 10,
		9, 9, 10, 10, 11, 11, 10, 11,
		8, 8, 9, 10, 10, 10, 11, 11,
		9, 8, 9, 10, 10, 11, 11, 11,
	},
	code: []uint16{
		0x0001, 0x0002, 0x000a, 0x0017, 0x0023, 0x001e, 0x000c, 0x0011,
		0x0003, 0x0003, 0x0008, 0x000c, 0x0012, 0x0015, 0x000c, 0x0007,
		0x000b, 0x0009, 0x000f, 0x0015, 0x0020, 0x0028, 0x0013, 0x0006,
		0x000e, 0x000d, 0x0016, 0x0022, 0x002e, 0x0017, 0x0012, 0x0007,
		0x0014, 0x0013, 0x0021, 0x002f, 0x001b, 0x0016, 0x0009, 0x0003,
		0x001f, 0x0016, 0x0029, 0x001a, 0x0015, 0x0014, 0x0005, 0x0003,
		0x000e, 0x000d, 0x000a, 0x000b, 0x0010, 0x0006, 0x0005, 0x0001,
		0x0009, 0x0008, 0x0007, 0x0008, 0x0004, 0x0004, 0x0002, 0x0000,
	},
}

var table11 = spec{
	xlen: 8, ylen: 8,
	hlen: []uint8{
		2, 3, 5, 7, 8, 9, 8, 9,
		3, 3, 4, 6, 8, 8, 7, 8,
		5, 5, 6, 7, 8, 9, 8, 8,
		7, 6, 7, 9, 8, 10, 8, 9,
		8, 8, 8, 9, 9, 10, 9, 10,
		8, 8, 9, 10, 10, 11, 10, 11,
		8, 7, 7, 8, 9, 10, 10, 10,
		8, 7, 8, 9, 10, 10, 10, 10,
	},
	code: []uint16{
		0x0003, 0x0004, 0x000a, 0x0018, 0x0022, 0x0021, 0x0015, 0x000f,
		0x0005, 0x0003, 0x0004, 0x000a, 0x0020, 0x0011, 0x000b, 0x000a,
		0x000b, 0x0007, 0x000d, 0x0012, 0x001e, 0x001f, 0x0014, 0x0005,
		0x0019, 0x000b, 0x0013, 0x003b, 0x001b, 0x0012, 0x000c, 0x0005,
		0x0023, 0x0021, 0x001f, 0x003a, 0x001e, 0x0010, 0x0007, 0x0005,
		0x001c, 0x001a, 0x0020, 0x0013, 0x0011, 0x000f, 0x0008, 0x000e,
		0x000e, 0x000c, 0x0009, 0x000d, 0x000e, 0x0009, 0x0004, 0x0001,
		0x000b, 0x0004, 0x0006, 0x0006, 0x0006, 0x0003, 0x0002, 0x0000,
	},
}

var table12 = spec{
	xlen: 8, ylen: 8,
	hlen: []uint8{
		4, 3, 5, 7, 8, 9, 9, 9,
		3, 3, 4, 5, 7, 7, 8, 8,
		5, 4, 5, 6, 7, 8, 7, 8,
		6, 5, 6, 6, 7, 8, 8, 8,
		7, 6, 7, 7, 8, 8, 8, 9,
		8, 7, 8, 8, 8, 9, 8, 9,
		8, 7, 7, 8, 8, 9, 9, 10,
		9, 8, 8, 9, 9, 9, 9, 10,
	},
	code: []uint16{
		0x0009, 0x0006, 0x0010, 0x0021, 0x0029, 0x0027, 0x0026, 0x001a,
		0x0007, 0x0005, 0x0006, 0x0009, 0x0017, 0x0010, 0x001a, 0x000b,
		0x0011, 0x0007, 0x000b, 0x000e, 0x0015, 0x001e, 0x000a, 0x0007,
		0x0011, 0x000a, 0x000f, 0x000c, 0x0012, 0x001c, 0x000e, 0x0005,
		0x0020, 0x000d, 0x0016, 0x0013, 0x0012, 0x0010, 0x0009, 0x0005,
		0x0028, 0x0011, 0x001f, 0x001d, 0x0011, 0x000d, 0x0004, 0x0002,
		0x001b, 0x000c, 0x000b, 0x000f, 0x000a, 0x0007, 0x0004, 0x0001,
		0x001b, 0x000c, 0x0008, 0x000c, 0x0006, 0x0003, 0x0001, 0x0000,
	},
}

var table13 = spec{
	xlen: 16, ylen: 16,
	hlen: []uint8{
		1, 4, 6, 7, 8, 9, 9, 10, 9, 10, 11, 11, 12, 12, 13, 13,
		3, 4, 6, 7, 8, 8, 9, 9, 9, 9, 10, 10, 11, 12, 12, 12,
		6, 6, 7, 8, 9, 9, 10, 10, 9, 10, 10, 11, 11, 12, 13, 13,
		7, 7, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 13,
		8, 7, 9, 9, 10, 10, 11, 11, 10, 11, 11, 12, 12, 13, 13, 14,
		9, 8, 9, 10, 10, 10, 11, 11, 11, 11, 12, 11, 13, 13, 14, 14,
		9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 13, 13, 14, 14,
		10, 9, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14, 16, 16,
		9, 8, 9, 10, 10, 11, 11, 12, 12, 12, 12, 13, 13, 14, 15, 15,
		10, 9, 10, 10, 11, 11, 11, 13, 12, 13, 13, 14, 14, 14, 16, 15,
		10, 10, 10, 11, 11, 12, 12, 13, 12, 13, 14, 13, 14, 15, 16, 17,
		11, 10, 10, 11, 12, 12, 12, 12, 13, 13, 13, 14, 15, 15, 15, 16,
		11, 11, 11, 12, 12, 13, 12, 13, 14, 14, 15, 15, 15, 16, 16, 16,
		12, 11, 12, 13, 13, 13, 14, 14, 14, 14, 14, 15, 16, 15, 16, 16,
		13, 12, 12, 13, 13, 13, 15, 14, 14, 17, 15, 15, 15, 17, 16, 16,
		12, 12, 13, 14, 14, 14, 15, 14, 15, 15, 16, 16, 19, 18, 19, 16,
	},
	code: []uint16{
		0x0001, 0x0005, 0x000e, 0x0015, 0x0022, 0x0033, 0x002e, 0x0047, 0x002a, 0x0034, 0x0044, 0x0034, 0x0043, 0x002c, 0x002b, 0x0013,
		0x0003, 0x0004, 0x000c, 0x0013, 0x001f, 0x001a, 0x002c, 0x0021, 0x001f, 0x0018, 0x0020, 0x0018, 0x001f, 0x0023, 0x0016, 0x000e,
		0x000f, 0x000d, 0x0017, 0x0024, 0x003b, 0x0031, 0x004d, 0x0041, 0x001d, 0x0028, 0x001e, 0x0028, 0x001b, 0x0021, 0x002a, 0x0010,
		0x0016, 0x0014, 0x0025, 0x003d, 0x0038, 0x004f, 0x0049, 0x0040, 0x002b, 0x004c, 0x0038, 0x0025, 0x001a, 0x001f, 0x0019, 0x000e,
		0x0023, 0x0010, 0x003c, 0x0039, 0x0061, 0x004b, 0x0072, 0x005b, 0x0036, 0x0049, 0x0037, 0x0029, 0x0030, 0x0035, 0x0017, 0x0018,
		0x003a, 0x001b, 0x0032, 0x0060, 0x004c, 0x0046, 0x005d, 0x0054, 0x004d, 0x003a, 0x004f, 0x001d, 0x004a, 0x0031, 0x0029, 0x0011,
		0x002f, 0x002d, 0x004e, 0x004a, 0x0073, 0x005e, 0x005a, 0x004f, 0x0045, 0x0053, 0x0047, 0x0032, 0x003b, 0x0026, 0x0024, 0x000f,
		0x0048, 0x0022, 0x0038, 0x005f, 0x005c, 0x0055, 0x005b, 0x005a, 0x0056, 0x0049, 0x004d, 0x0041, 0x0033, 0x002c, 0x002b, 0x002a,
		0x002b, 0x0014, 0x001e, 0x002c, 0x0037, 0x004e, 0x0048, 0x0057, 0x004e, 0x003d, 0x002e, 0x0036, 0x0025, 0x001e, 0x0014, 0x0010,
		0x0035, 0x0019, 0x0029, 0x0025, 0x002c, 0x003b, 0x0036, 0x0051, 0x0042, 0x004c, 0x0039, 0x0036, 0x0025, 0x0012, 0x0027, 0x000b,
		0x0023, 0x0021, 0x001f, 0x0039, 0x002a, 0x0052, 0x0048, 0x0050, 0x002f, 0x003a, 0x0037, 0x0015, 0x0016, 0x001a, 0x0026, 0x0016,
		0x0035, 0x0019, 0x0017, 0x0026, 0x0046, 0x003c, 0x0033, 0x0024, 0x0037, 0x001a, 0x0022, 0x0017, 0x001b, 0x000e, 0x0009, 0x0007,
		0x0022, 0x0020, 0x001c, 0x0027, 0x0031, 0x004b, 0x001e, 0x0034, 0x0030, 0x0028, 0x0034, 0x001c, 0x0012, 0x0011, 0x0009, 0x0005,
		0x002d, 0x0015, 0x0022, 0x0040, 0x0038, 0x0032, 0x0031, 0x002d, 0x001f, 0x0013, 0x000c, 0x000f, 0x000a, 0x0007, 0x0006, 0x0003,
		0x0030, 0x0017, 0x0014, 0x0027, 0x0024, 0x0023, 0x0035, 0x0015, 0x0010, 0x0017, 0x000d, 0x000a, 0x0006, 0x0001, 0x0004, 0x0002,
		0x0010, 0x000f, 0x0011, 0x001b, 0x0019, 0x0014, 0x001d, 0x000b, 0x0011, 0x000c, 0x0010, 0x0008, 0x0001, 0x0001, 0x0000, 0x0001,
	},
}

var table15 = spec{
	xlen: 16, ylen: 16,
	hlen: []uint8{
		3, 4, 5, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11, 12, 13,
		4, 3, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 10, 11, 11,
		5, 5, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 11, 11, 11,
		6, 6, 6, 7, 7, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		7, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		8, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 11, 11, 11, 12,
		9, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 12, 12,
		9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 12,
		9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 12, 12, 12,
		9, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12,
		10, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 12,
		10, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 13,
		11, 10, 9, 10, 10, 10, 11, 11, 11, 11, 11, 11, 12, 12, 13, 13,
		11, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12, 13, 13,
		12, 11, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 13, 13, 12, 13,
		12, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 13, 13, 13, 13,
	},
	code: []uint16{
		0x0007, 0x000c, 0x0012, 0x0035, 0x002f, 0x004c, 0x007c, 0x006c, 0x0059, 0x007b, 0x006c, 0x0077, 0x006b, 0x0051, 0x007a, 0x003f,
		0x000d, 0x0005, 0x0010, 0x001b, 0x002e, 0x0024, 0x003d, 0x0033, 0x002a, 0x0046, 0x0034, 0x0053, 0x0041, 0x0029, 0x003b, 0x0024,
		0x0013, 0x0011, 0x000f, 0x0018, 0x0029, 0x0022, 0x003b, 0x0030, 0x0028, 0x0040, 0x0032, 0x004e, 0x003e, 0x0050, 0x0038, 0x0021,
		0x001d, 0x001c, 0x0019, 0x002b, 0x0027, 0x003f, 0x0037, 0x005d, 0x004c, 0x003b, 0x005d, 0x0048, 0x0036, 0x004b, 0x0032, 0x001d,
		0x0034, 0x0016, 0x002a, 0x0028, 0x0043, 0x0039, 0x005f, 0x004f, 0x0048, 0x0039, 0x0059, 0x0045, 0x0031, 0x0042, 0x002e, 0x001b,
		0x004d, 0x0025, 0x0023, 0x0042, 0x003a, 0x0034, 0x005b, 0x004a, 0x003e, 0x0030, 0x004f, 0x003f, 0x005a, 0x003e, 0x0028, 0x0026,
		0x007d, 0x0020, 0x003c, 0x0038, 0x0032, 0x005c, 0x004e, 0x0041, 0x0037, 0x0057, 0x0047, 0x0033, 0x0049, 0x0033, 0x0046, 0x001e,
		0x006d, 0x0035, 0x0031, 0x005e, 0x0058, 0x004b, 0x0042, 0x007a, 0x005b, 0x0049, 0x0038, 0x002a, 0x0040, 0x002c, 0x0015, 0x0019,
		0x005a, 0x002b, 0x0029, 0x004d, 0x0049, 0x003f, 0x0038, 0x005c, 0x004d, 0x0042, 0x002f, 0x0043, 0x0030, 0x0035, 0x0024, 0x0014,
		0x0047, 0x0022, 0x0043, 0x003c, 0x003a, 0x0031, 0x0058, 0x004c, 0x0043, 0x006a, 0x0047, 0x0036, 0x0026, 0x0027, 0x0017, 0x000f,
		0x006d, 0x0035, 0x0033, 0x002f, 0x005a, 0x0052, 0x003a, 0x0039, 0x0030, 0x0048, 0x0039, 0x0029, 0x0017, 0x001b, 0x003e, 0x0009,
		0x0056, 0x002a, 0x0028, 0x0025, 0x0046, 0x0040, 0x0034, 0x002b, 0x0046, 0x0037, 0x002a, 0x0019, 0x001d, 0x0012, 0x000b, 0x000b,
		0x0076, 0x0044, 0x001e, 0x0037, 0x0032, 0x002e, 0x004a, 0x0041, 0x0031, 0x0027, 0x0018, 0x0010, 0x0016, 0x000d, 0x000e, 0x0007,
		0x005b, 0x002c, 0x0027, 0x0026, 0x0022, 0x003f, 0x0034, 0x002d, 0x001f, 0x0034, 0x001c, 0x0013, 0x000e, 0x0008, 0x0009, 0x0003,
		0x007b, 0x003c, 0x003a, 0x0035, 0x002f, 0x002b, 0x0020, 0x0016, 0x0025, 0x0018, 0x0011, 0x000c, 0x000f, 0x000a, 0x0002, 0x0001,
		0x0047, 0x0025, 0x0022, 0x001e, 0x001c, 0x0014, 0x0011, 0x001a, 0x0015, 0x0010, 0x000a, 0x0006, 0x0008, 0x0006, 0x0002, 0x0000,
	},
}

var table16 = spec{
	xlen: 16, ylen: 16,
	hlen: []uint8{
		1, 4, 6, 8, 9, 9, 10, 10, 11, 11, 11, 11, 11, 11, 16, 9,
		3, 4, 6, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 8,
		6, 6, 7, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 16, 9,
		8, 7, 8, 9, 9, 10, 10, 10, 11, 11, 16, 16, 16, 16, 16, 10,
		9, 8, 9, 9, 10, 10, 11, 11, 11, 11, 11, 11, 16, 16, 16, 10,
		9, 9, 9, 10, 10, 10, 16, 15, 11, 11, 12, 16, 16, 16, 16, 10,
		10, 9, 10, 10, 10, 11, 11, 11, 11, 12, 16, 12, 16, 16, 12, 10,
		10, 10, 10, 11, 11, 11, 11, 16, 16, 12, 16, 16, 13, 16, 13, 10,
		10, 10, 10, 11, 11, 11, 11, 16, 16, 16, 16, 12, 16, 13, 13, 10,
		11, 10, 10, 11, 11, 11, 16, 16, 16, 16, 12, 13, 13, 13, 16, 10,
		11, 12, 12, 12, 12, 16, 16, 16, 12, 13, 16, 13, 16, 13, 13, 10,
		11, 12, 11, 12, 16, 16, 12, 12, 16, 16, 13, 16, 16, 13, 13, 10,
		11, 12, 12, 12, 16, 16, 12, 16, 16, 13, 16, 13, 16, 16, 13, 10,
		12, 12, 12, 12, 16, 16, 16, 16, 16, 13, 13, 13, 13, 16, 13, 10,
		16, 11, 12, 16, 12, 16, 16, 16, 16, 16, 16, 13, 13, 14, 13, 10,
		9, 8, 8, 9, 9, 10, 10, 11, 12, 11, 11, 11, 11, 11, 12, 8,
	},
	code: []uint16{
		0x0001, 0x0005, 0x000e, 0x002c, 0x004a, 0x003f, 0x006e, 0x005d, 0x00ac, 0x0095, 0x008a, 0x00f2, 0x00e1, 0x00c3, 0x0cec, 0x0011,
		0x0003, 0x0004, 0x000c, 0x0014, 0x0023, 0x003e, 0x0035, 0x002f, 0x0053, 0x004b, 0x0044, 0x0077, 0x0085, 0x0076, 0x0078, 0x0009,
		0x000f, 0x000d, 0x0017, 0x0026, 0x0043, 0x003a, 0x0067, 0x005a, 0x0032, 0x0048, 0x007f, 0x0075, 0x006e, 0x00d1, 0x0ced, 0x0010,
		0x002d, 0x0015, 0x0027, 0x0045, 0x0040, 0x0072, 0x0063, 0x0057, 0x009e, 0x008c, 0x0cee, 0x0cef, 0x0ce0, 0x0ce1, 0x0ce2, 0x001a,
		0x004b, 0x0024, 0x0044, 0x0041, 0x0073, 0x0065, 0x00b3, 0x00a4, 0x009b, 0x0108, 0x00f6, 0x00e2, 0x0ce3, 0x0ce4, 0x0d38, 0x0009,
		0x0020, 0x001e, 0x0018, 0x001b, 0x0008, 0x005c, 0x0ce5, 0x0673, 0x009f, 0x0092, 0x00f8, 0x0d39, 0x0d3a, 0x0d3b, 0x0d3c, 0x0007,
		0x006f, 0x0036, 0x0066, 0x0064, 0x005b, 0x00b2, 0x00a5, 0x009d, 0x0109, 0x00fd, 0x0d3d, 0x00e0, 0x0d3e, 0x0d3f, 0x00db, 0x0006,
		0x0060, 0x0012, 0x0013, 0x00ab, 0x00a0, 0x00a1, 0x00f4, 0x0d48, 0x0d49, 0x015b, 0x0d4a, 0x0d4b, 0x024e, 0x0dad, 0x01d3, 0x0005,
		0x0014, 0x0015, 0x0016, 0x00a3, 0x00e0, 0x00f7, 0x00d3, 0x0d4c, 0x0d4d, 0x0d4e, 0x0d4f, 0x0117, 0x0dae, 0x01d2, 0x01bd, 0x0004,
		0x00d0, 0x0017, 0x0028, 0x0072, 0x0071, 0x00f5, 0x0d68, 0x0d69, 0x0d6a, 0x0d6b, 0x011f, 0x023c, 0x01f9, 0x01d0, 0x0daf, 0x0029,
		0x0068, 0x00e6, 0x00d9, 0x00d7, 0x00cf, 0x0d6c, 0x0d6d, 0x0d6e, 0x0139, 0x0265, 0x0de0, 0x021e, 0x0de1, 0x01cf, 0x01b4, 0x002a,
		0x00f3, 0x00df, 0x00d2, 0x00d2, 0x0d6f, 0x0d88, 0x0152, 0x0131, 0x0d89, 0x0de2, 0x0235, 0x0de3, 0x0de4, 0x01d9, 0x01b0, 0x002b,
		0x00e3, 0x00d5, 0x00e1, 0x00ef, 0x0d8a, 0x0d8b, 0x0150, 0x0d8c, 0x0de5, 0x0238, 0x0de6, 0x0214, 0x0de7, 0x0e70, 0x01ac, 0x002c,
		0x00f9, 0x00fb, 0x0162, 0x0163, 0x0d8d, 0x0d8e, 0x0d8f, 0x0e71, 0x0e72, 0x022c, 0x021b, 0x01f4, 0x01dd, 0x0e73, 0x01a6, 0x002d,
		0x0da8, 0x00c2, 0x0108, 0x0da9, 0x015a, 0x0daa, 0x0dab, 0x0dac, 0x0e74, 0x0e75, 0x0e76, 0x0213, 0x01da, 0x033a, 0x01a8, 0x002e,
		0x000c, 0x0007, 0x0003, 0x0005, 0x0008, 0x002f, 0x0062, 0x0066, 0x010b, 0x00b0, 0x00aa, 0x00a2, 0x009a, 0x0094, 0x010c, 0x0000,
	},
}

var table24 = spec{
	xlen: 16, ylen: 16,
	hlen: []uint8{
		4, 4, 6, 7, 8, 9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 9,
		4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 10, 10, 10, 10, 10, 8,
		6, 5, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 7,
		7, 6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 7,
		8, 7, 7, 8, 8, 8, 8, 9, 9, 9, 10, 10, 10, 10, 11, 7,
		9, 7, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 8,
		9, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 8,
		10, 8, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 8,
		10, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 8,
		10, 9, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 8,
		11, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 8,
		11, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 8,
		11, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 8,
		11, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 8,
		12, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 13, 8,
		8, 7, 7, 7, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 4,
	},
	code: []uint16{
		0x000f, 0x000d, 0x002e, 0x0050, 0x0092, 0x0106, 0x00f8, 0x01b2, 0x01aa, 0x029d, 0x028d, 0x0289, 0x026d, 0x0205, 0x0408, 0x0058,
		0x000e, 0x000c, 0x0015, 0x0026, 0x0047, 0x0082, 0x007a, 0x00d8, 0x00d1, 0x00c6, 0x0147, 0x0159, 0x013f, 0x0129, 0x0117, 0x002a,
		0x002f, 0x0016, 0x0029, 0x004a, 0x0044, 0x0080, 0x0078, 0x00dd, 0x00cf, 0x00c2, 0x00b6, 0x0154, 0x013b, 0x0127, 0x021d, 0x0012,
		0x0051, 0x0027, 0x004b, 0x0046, 0x0086, 0x007d, 0x0074, 0x00dc, 0x00cc, 0x00be, 0x00b2, 0x0145, 0x0137, 0x0125, 0x010f, 0x0010,
		0x0093, 0x0048, 0x0045, 0x0087, 0x007f, 0x0076, 0x0070, 0x00d2, 0x00c8, 0x00bc, 0x015b, 0x0143, 0x0132, 0x011d, 0x021c, 0x0017,
		0x0107, 0x0042, 0x0081, 0x007e, 0x0077, 0x0072, 0x00d6, 0x00ca, 0x00c0, 0x00b4, 0x0155, 0x013d, 0x012d, 0x01f1, 0x01f4, 0x000c,
		0x00f9, 0x007b, 0x0079, 0x0075, 0x0071, 0x00d7, 0x00ce, 0x00c3, 0x00b9, 0x015a, 0x0140, 0x012f, 0x011e, 0x0214, 0x01f9, 0x000a,
		0x01b3, 0x0073, 0x00d3, 0x00ba, 0x00cd, 0x00c7, 0x00bf, 0x00b5, 0x0158, 0x014d, 0x0138, 0x0128, 0x01ff, 0x01fc, 0x01f2, 0x0009,
		0x01ab, 0x00d4, 0x00d0, 0x00cb, 0x00c5, 0x00bb, 0x00b3, 0x0153, 0x0149, 0x013e, 0x012c, 0x011f, 0x0208, 0x01f5, 0x01ee, 0x0008,
		0x0152, 0x00c9, 0x00c4, 0x00bd, 0x00b7, 0x00af, 0x014f, 0x014a, 0x0148, 0x0130, 0x0207, 0x029c, 0x0219, 0x020a, 0x03e1, 0x0007,
		0x028c, 0x00c1, 0x00b8, 0x00b0, 0x0150, 0x014b, 0x0151, 0x013a, 0x0133, 0x024d, 0x021b, 0x0215, 0x020c, 0x01f3, 0x03de, 0x000b,
		0x0288, 0x011c, 0x014c, 0x0116, 0x0142, 0x0107, 0x0135, 0x012e, 0x024c, 0x0218, 0x0216, 0x0211, 0x020b, 0x0409, 0x03e0, 0x0006,
		0x026c, 0x0141, 0x013c, 0x00fd, 0x0131, 0x012b, 0x00fb, 0x0248, 0x0241, 0x021a, 0x0212, 0x020d, 0x0405, 0x0401, 0x03df, 0x0005,
		0x0209, 0x0139, 0x0134, 0x00f6, 0x00b2, 0x0210, 0x0244, 0x0240, 0x0242, 0x0213, 0x0406, 0x0403, 0x03fd, 0x03fc, 0x03fa, 0x0004,
		0x040d, 0x00b3, 0x012a, 0x00e0, 0x0249, 0x0247, 0x0243, 0x0245, 0x0246, 0x040c, 0x0404, 0x0400, 0x03fb, 0x03f1, 0x07e0, 0x0003,
		0x002b, 0x0014, 0x0013, 0x0011, 0x001d, 0x0000, 0x000e, 0x000d, 0x002d, 0x0002, 0x0039, 0x003c, 0x0044, 0x0046, 0x000f, 0x0001,
	},
}

var count1SpecA = spec{
	xlen: 16, ylen: 1,
	hlen: []uint8{
		1, 4, 4, 5, 4, 6, 5, 6, 4, 5, 5, 6, 5, 6, 6, 6,
	},
	code: []uint16{
		0x0001, 0x0005, 0x0004, 0x0005, 0x0006, 0x0005, 0x0004, 0x0004, 0x0007, 0x0003, 0x0006, 0x0000, 0x0007, 0x0002, 0x0003, 0x0001,
	},
}

// tableSpecs maps table_select values to their code tables. The
// escape families 16..31 are filled in during init with per-table
// linbits copies of table16 and table24.
var tableSpecs = [32]*spec{
	1:  &table1,
	2:  &table2,
	3:  &table3,
	5:  &table5,
	6:  &table6,
	7:  &table7,
	8:  &table8,
	9:  &table9,
	10: &table10,
	11: &table11,
	12: &table12,
	13: &table13,
	15: &table15,
}
