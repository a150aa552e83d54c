// Package nbt reads and writes Named Binary Tag data, the recursively typed
// binary format used by Minecraft for worlds, player data and network
// payloads.
//
// A decoded tree is made of Tag values. Scalars and arrays are plain Go
// types (Byte, Int, String, IntArray, ...); containers are *List and
// *Compound. Compound entries are held in a *Value, which converts its tag
// to Go numbers only along widening conversions and reports ErrInvalidCast
// otherwise.
//
//	name, root, err := nbt.Unmarshal(data)
//	level, err := nbt.NewValue(root).At("Level")
//	x, err := level.Index("xPos") // creates a placeholder when missing
//
// Java Edition data is big-endian, the default. Bedrock Edition data is
// little-endian; select it with WithByteOrder(binary.LittleEndian).
package nbt
