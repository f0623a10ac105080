// Package qnum provides the BSV encoding of binary fixed point numbers.
//
// The equation for a Q(M.N) number is:
//
//  number = raw * 2 ^ -N
//
// Where raw is the scaled integer stored in M+N+1 bits. For example in Q3.4:
//
//  2.0625 = 33 * 2^-4
//
// Encoding
//
// The number is laid out first by the raw integer (with sign bit) and then a
// single format byte. The whole sequence is written as one BSV data block, so
// the smallest control block that fits is chosen by the control encoder.
//
// The raw integer is encoded big-endian with a trailing sign bit (aka zigzag),
// exactly like the integer package.
//
// The format byte holds N in its upper six bits and the storage width in its
// lower two bits. M is implied by the width: M = width - 1 - N.
//
//  | 0 | 1 | Storage Width |
//  |-------|---------------|
//  | 0 . 0 | 8 bits        |
//  | 0 . 1 | 16 bits       |
//  | 1 . 0 | 32 bits       |
//  | 1 . 1 | 64 bits       |
//  |-------|---------------|
//  | 6 | 7 |
//
// Examples
//
// Q3.4 -0.0625 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 0 . 1 | 1 | Data + 1 Control Block with raw value of -1.
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 . 0 | 0 . 0 | N of 4, 8 bit storage.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Q3.4 2.0625 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 0 . 1 | Data Size Control Block with size of 2.
//  |-------------------------------|
//  | 0 . 1 . 0 . 0 . 0 . 0 . 1 | 0 | Raw value of +33.
//  |-------------------------------|
//  | 0 . 0 . 0 . 1 . 0 . 0 | 0 . 0 | N of 4, 8 bit storage.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Q15.16 1.5 (5 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 | 0 . 0 . 0 . 0 . 1 . 1 | Data Size Control Block with size of 4.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 . 1 | Raw value of +98304.
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 | 0 |
//  |-------------------------------|
//  | 0 . 1 . 0 . 0 . 0 . 0 | 1 . 0 | N of 16, 32 bit storage.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// A nullable schema writes the Null control block for null values.
package qnum
