// Package control reads and writes the scalar BSV control blocks that carry
// encoded numbers.
//
// The first byte of every block is prefix coded: the leading bits name the
// block type and the remaining bits hold data or a size.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           | Payload                          |
//  |---------------|---------------||----------------|----------------------------------|
//  | 1 |                           || Data           | 7 bits                           |
//  | 0 . 1 |                       || Data Size      | 1 to 64 bytes follow             |
//  | 0 . 0 . 1 |                   || Data + 1       | 5 bits and 1 byte                |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits and 2 bytes               |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 size bytes, then the data |
//  | 0 . 0 . 0 . 0 . 0 . 1 . x . x || Container      | not supported                    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 |   || Skip Size      | not supported                    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | none                             |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | none                             |
//  |---------------|---------------||----------------|----------------------------------|
//
// Sizes are stored minus one. The encoder picks the smallest block: the data
// bits of the control byte are used only when the leading bits of the first
// data byte are clear.
//
// Container and skip blocks structure a stream of fields. A number is always
// a single field, so the decoder reports them as errors.
package control
