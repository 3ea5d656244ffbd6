// Package control frames byte strings as self-delimiting data blocks.
//
// Each block starts with a control byte. The high bits of that byte are a
// unary prefix naming the block type; the remaining bits carry either data
// or a length. The encoder always picks the shortest block able to hold the
// bytes it is given, so small encoded integers cost a single byte.
//
//	prefix     type            payload
//	1xxxxxxx   Data            7 data bits in the control byte
//	01xxxxxx   Data Size       1 to 64 data bytes follow
//	001xxxxx   Data + 1        5 data bits here, then 1 more byte
//	0001xxxx   Data + 2        4 data bits here, then 2 more bytes
//	00001xxx   Data Size Size  1 to 8 length bytes, then the data
//	00000001   Empty           no payload
//	00000000   Null            no payload
//
// Counts are stored minus one, so a Data Size block with low bits 000011
// holds four bytes. Zero length data has no block of its own and is written
// as Empty.
//
// The length in a Data Size Size block is an unsigned big-endian integer
// handled as a bigint.Int: the encoder writes the minimal bytes of
// bigint.New(n-1) and the decoder adds one back, rejecting lengths that do
// not fit in a uint64.
//
// A Decoder walks blocks with Next. Data that the caller does not read is
// skipped before the next block, by seeking when the input is an io.Seeker.
// A block that ends early is reported as io.ErrUnexpectedEOF in both cases.
package control
