package consts

const (
	// ChunkLen is the size of one AES state in bytes.
	ChunkLen = 16

	// GroupLanes is the number of sub-lanes absorbed together by one pass of
	// the block absorber.
	GroupLanes = 8

	// GroupLen is the number of bytes a lane group reads from each half of
	// a block.
	GroupLen = ChunkLen * GroupLanes
)

const (
	Lanes128 = 8
	Lanes256 = 16
	Lanes512 = 32

	Block128 = 2 * ChunkLen * Lanes128
	Block256 = 2 * ChunkLen * Lanes256
	Block512 = 2 * ChunkLen * Lanes512
)

// Finalize holds the round keys applied after the lanes have been folded
// together. They are the first 384 bits of the fractional part of pi.
var Finalize = [3][4]uint32{
	{0x243F6A88, 0x85A308D3, 0x13198A2E, 0x03707344},
	{0xA4093822, 0x299F31D0, 0x082EFA98, 0xEC4E6C89},
	{0x452821E6, 0x38D01377, 0xBE5466CF, 0x34E90C6C},
}
