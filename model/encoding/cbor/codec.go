package cborcodec

import (
	"github.com/fxamacker/cbor/v2"
)

// EncMode is the CBOR encoding mode used for all canonical binary artifacts
// (type tags, value layouts). It uses the deterministic core encoding options
// so that equal inputs always produce byte-identical encodings, across
// restarts and implementations.
var EncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// DecMode is the CBOR decoding mode matching EncMode.
var DecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()
