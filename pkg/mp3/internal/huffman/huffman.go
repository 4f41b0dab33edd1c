// Package huffman decodes the Layer III spectral Huffman codes: the
// big-value pair tables and the count1 quadruple tables.
package huffman

// BitReader is the bit source the decoders pull from. The reservoir
// buffer satisfies it.
type BitReader interface {
	ReadBits(n uint) uint32
}

// node is one position in a decode tree. Leaves carry the symbol;
// inner nodes carry child indices (0 means unassigned, the root is
// never a child).
type node struct {
	child [2]int16
	x, y  uint8
	leaf  bool
}

// tree is a built decode tree plus the escape width of its table.
type tree struct {
	nodes   []node
	linbits uint
}

// empty reports whether the table carries no codes (tables 0, 4, 14).
func (t *tree) empty() bool {
	return len(t.nodes) <= 1
}

// walk consumes bits until a leaf is reached. Unassigned branches
// terminate with the zero symbol so corrupt streams cannot walk out
// of the tree.
func (t *tree) walk(r BitReader) (x, y int) {
	n := int16(0)
	for !t.nodes[n].leaf {
		b := r.ReadBits(1)
		next := t.nodes[n].child[b]
		if next == 0 {
			return 0, 0
		}
		n = next
	}
	return int(t.nodes[n].x), int(t.nodes[n].y)
}

// insert adds one symbol to the tree, creating inner nodes as needed.
func (t *tree) insert(code uint32, hlen uint8, x, y uint8) {
	n := int16(0)
	for i := int(hlen) - 1; i >= 0; i-- {
		b := (code >> uint(i)) & 1
		next := t.nodes[n].child[b]
		if next == 0 {
			t.nodes = append(t.nodes, node{})
			next = int16(len(t.nodes) - 1)
			t.nodes[n].child[b] = next
		}
		n = next
	}
	t.nodes[n].leaf = true
	t.nodes[n].x = x
	t.nodes[n].y = y
}

func buildTree(s *spec) tree {
	t := tree{
		nodes:   make([]node, 1, 2*len(s.hlen)),
		linbits: s.linbits,
	}
	for xi := 0; xi < s.xlen; xi++ {
		for yi := 0; yi < s.ylen; yi++ {
			i := xi*s.ylen + yi
			t.insert(uint32(s.code[i]), s.hlen[i], uint8(xi), uint8(yi))
		}
	}
	return t
}

// pairTrees maps the 32 table_select values to built trees.
var pairTrees [32]tree

// count1TreeA is the decode tree for count1 table 0.
var count1TreeA tree

func init() {
	// Tables 16-23 and 24-31 share two code assignments and differ only
	// in escape width.
	for i := 0; i < 8; i++ {
		s16 := table16
		s16.linbits = linbits16[i]
		tableSpecs[16+i] = &s16
		s24 := table24
		s24.linbits = linbits24[i]
		tableSpecs[24+i] = &s24
	}

	for i, s := range tableSpecs {
		if s == nil {
			pairTrees[i] = tree{nodes: make([]node, 1)}
			continue
		}
		pairTrees[i] = buildTree(s)
	}
	count1TreeA = buildTree(&count1SpecA)
}

// DecodePair decodes one big-value (x, y) pair using the given
// table_select value, applying linbits escapes and sign bits.
func DecodePair(table int, r BitReader) (x, y int) {
	t := &pairTrees[table]
	if t.empty() {
		return 0, 0
	}

	x, y = t.walk(r)

	if x == 15 && t.linbits > 0 {
		x += int(r.ReadBits(t.linbits))
	}
	if x != 0 && r.ReadBits(1) != 0 {
		x = -x
	}

	if y == 15 && t.linbits > 0 {
		y += int(r.ReadBits(t.linbits))
	}
	if y != 0 && r.ReadBits(1) != 0 {
		y = -y
	}

	return x, y
}

// DecodeQuad decodes one count1 (v, w, x, y) quadruple using the given
// count1table_select value, applying sign bits.
func DecodeQuad(table int, r BitReader) (v, w, x, y int) {
	var bits uint32
	if table == 0 {
		xy, _ := count1TreeA.walk(r)
		bits = uint32(xy)
	} else {
		// Table B codes each quadruple as the inverted 4 bits.
		bits = ^r.ReadBits(4) & 0xF
	}

	v = int(bits >> 3 & 1)
	w = int(bits >> 2 & 1)
	x = int(bits >> 1 & 1)
	y = int(bits & 1)

	if v != 0 && r.ReadBits(1) != 0 {
		v = -v
	}
	if w != 0 && r.ReadBits(1) != 0 {
		w = -w
	}
	if x != 0 && r.ReadBits(1) != 0 {
		x = -x
	}
	if y != 0 && r.ReadBits(1) != 0 {
		y = -y
	}

	return v, w, x, y
}
