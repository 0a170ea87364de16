package deflate

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Code is a canonical Huffman code: a code_value packed MSB-first within
// its Length least significant bits.
type Code struct {
	Value  uint32
	Length uint8
}

// huffNode is one entry in the arena-of-indices Huffman tree that Design
// Notes §9 recommends in place of pointer-linked nodes.
type huffNode struct {
	weight  int64
	symbol  int32 // -1 for internal nodes
	left    int32 // -1 for leaves
	right   int32
}

// nodeQueue is a container/heap priority queue of arena indices, ordered
// by (weight, insertion sequence) so that ties are broken by whichever
// node was created first, per spec.md §4.5.
type nodeQueue struct {
	weight []int64
	seq    []int
	node   []int32
}

func (q *nodeQueue) Len() int { return len(q.node) }
func (q *nodeQueue) Less(i, j int) bool {
	if q.weight[i] != q.weight[j] {
		return q.weight[i] < q.weight[j]
	}
	return q.seq[i] < q.seq[j]
}
func (q *nodeQueue) Swap(i, j int) {
	q.weight[i], q.weight[j] = q.weight[j], q.weight[i]
	q.seq[i], q.seq[j] = q.seq[j], q.seq[i]
	q.node[i], q.node[j] = q.node[j], q.node[i]
}
func (q *nodeQueue) Push(x any) {
	e := x.(nodeQueueEntry)
	q.weight = append(q.weight, e.weight)
	q.seq = append(q.seq, e.seq)
	q.node = append(q.node, e.node)
}
func (q *nodeQueue) Pop() any {
	n := len(q.node) - 1
	e := nodeQueueEntry{q.weight[n], q.seq[n], q.node[n]}
	q.weight = q.weight[:n]
	q.seq = q.seq[:n]
	q.node = q.node[:n]
	return e
}

type nodeQueueEntry struct {
	weight int64
	seq    int
	node   int32
}

// BuildHuffman derives a canonical Huffman code table from freq, indexed
// by symbol, per spec.md §4.5. maxLen bounds the code length (15 for the
// LL/DD alphabets, 7 for the meta alphabet); when the natural tree would
// exceed it, limitLengths clamps the over-long codes and lengthens the
// shortest ones until the lengths fit.
func BuildHuffman(freq []int32, maxLen uint8) []Code {
	codes := make([]Code, len(freq))

	lengths := buildCodeLengths(freq, maxLen)
	assignCanonicalCodes(lengths, maxLen, codes)
	return codes
}

// buildCodeLengths returns, for each symbol index, the bit length of its
// canonical code (0 if the symbol is unused).
func buildCodeLengths(freq []int32, maxLen uint8) []uint8 {
	lengths := make([]uint8, len(freq))

	var used []int32
	for sym, f := range freq {
		if f > 0 {
			used = append(used, int32(sym))
		}
	}

	switch len(used) {
	case 0:
		return lengths
	case 1:
		// Fewer than two symbols: give the one real symbol a 1-bit code,
		// the length it would get beside a weight-0 dummy sibling. No
		// code is assigned to any other symbol.
		lengths[used[0]] = 1
		return lengths
	}

	arena := make([]huffNode, 0, 2*len(used)-1)
	q := &nodeQueue{}
	for seq, sym := range used {
		idx := int32(len(arena))
		arena = append(arena, huffNode{weight: int64(freq[sym]), symbol: sym, left: -1, right: -1})
		heap.Push(q, nodeQueueEntry{weight: int64(freq[sym]), seq: seq, node: idx})
	}

	seq := len(used)
	for q.Len() > 1 {
		a := heap.Pop(q).(nodeQueueEntry)
		b := heap.Pop(q).(nodeQueueEntry)
		idx := int32(len(arena))
		arena = append(arena, huffNode{
			weight: a.weight + b.weight,
			symbol: -1,
			left:   a.node,
			right:  b.node,
		})
		heap.Push(q, nodeQueueEntry{weight: a.weight + b.weight, seq: seq, node: idx})
		seq++
	}

	root := heap.Pop(q).(nodeQueueEntry).node

	maxDepth := walkDepths(arena, root, 0, lengths)
	if maxDepth > int(maxLen) {
		limitLengths(lengths, used, maxLen)
		maxDepth = maxDepthOf(lengths, used)
	}

	assert.Assertf(maxDepth <= int(maxLen), "canonical code length %d exceeds limit %d", maxDepth, maxLen)

	return lengths
}

// walkDepths records each leaf's depth from root into lengths and returns
// the maximum depth seen.
func walkDepths(arena []huffNode, node int32, depth int, lengths []uint8) int {
	n := &arena[node]
	if n.left < 0 {
		lengths[n.symbol] = uint8(depth)
		return depth
	}
	l := walkDepths(arena, n.left, depth+1, lengths)
	r := walkDepths(arena, n.right, depth+1, lengths)
	if r > l {
		return r
	}
	return l
}

func maxDepthOf(lengths []uint8, used []int32) int {
	max := 0
	for _, sym := range used {
		if int(lengths[sym]) > max {
			max = int(lengths[sym])
		}
	}
	return max
}

// limitLengths repairs a code-length vector that exceeds maxLen by
// clamping every over-long code to maxLen and then, while the Kraft sum
// exceeds 1, lengthening the shortest remaining codes one bit at a time
// until the vector describes a valid (if no longer optimal) prefix code.
// Spec.md §9 leaves the exact reshaping algorithm to the implementer and
// notes this path is not exercised by the reference vectors; this
// implementation prioritizes a simple, obviously-terminating proof of
// validity over compression efficiency.
func limitLengths(lengths []uint8, used []int32, maxLen uint8) {
	for _, sym := range used {
		if lengths[sym] > maxLen {
			lengths[sym] = maxLen
		}
	}

	var total uint64
	for _, sym := range used {
		total += 1 << (maxLen - lengths[sym])
	}
	full := uint64(1) << maxLen

	for total > full {
		shortest := -1
		for _, sym := range used {
			if lengths[sym] >= maxLen {
				continue
			}
			if shortest < 0 || lengths[sym] < lengths[shortest] {
				shortest = int(sym)
			}
		}
		assert.Assertf(shortest >= 0, "cannot repair code lengths to satisfy Kraft inequality within maxLen %d", maxLen)
		total -= uint64(1) << (maxLen - lengths[shortest] - 1)
		lengths[shortest]++
	}
}

// assignCanonicalCodes implements spec.md §4.5's canonical assignment
// algorithm: count codes per length, derive next_code per length, then
// assign codes to symbols in ascending symbol order.
func assignCanonicalCodes(lengths []uint8, maxLen uint8, codes []Code) {
	var blCount [16]int
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}

	var nextCode [16]uint32
	var code uint32
	for bits := uint8(1); bits <= maxLen; bits++ {
		code = (code + uint32(blCount[bits-1])) << 1
		nextCode[bits] = code
	}

	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		codes[sym] = Code{Value: nextCode[l], Length: l}
		nextCode[l]++
	}
}
