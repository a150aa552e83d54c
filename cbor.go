package nbt

import "github.com/fxamacker/cbor/v2"

// cborMode sorts map keys so equal trees always produce equal bytes.
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// ToCBOR renders t as deterministic CBOR using the mapping of ToAny.
// Compound insertion order is not preserved.
func ToCBOR(t Tag) ([]byte, error) {
	return cborMode.Marshal(ToAny(t))
}
