// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package upgrade

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidRuntime = errors.New("invalid runtime blob")

// maxCodeSize bounds the decompressed size of a runtime.
const maxCodeSize = 50 * 1024 * 1024

var (
	compressionFlag = []byte{82, 188, 83, 118, 70, 219, 142, 5}
	wasmMagic       = []byte{0, 'a', 's', 'm'}
)

// checkRuntime verifies that code is a Wasm module, zstd compressed or not.
func checkRuntime(code []byte) error {
	wasm, err := decompressWasm(code)
	if err != nil {
		return fmt.Errorf("%w: decompressing: %s", ErrInvalidRuntime, err)
	}
	if !bytes.HasPrefix(wasm, wasmMagic) {
		return fmt.Errorf("%w: missing wasm magic number", ErrInvalidRuntime)
	}
	return nil
}

// decompressWasm decompresses a Wasm blob that may or may not be compressed with zstd
// ref: https://github.com/paritytech/polkadot-sdk/blob/master/substrate/primitives/maybe-compressed-blob/src/lib.rs
func decompressWasm(code []byte) ([]byte, error) {
	if !bytes.HasPrefix(code, compressionFlag) {
		return code, nil
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxCodeSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	return decoder.DecodeAll(code[len(compressionFlag):], nil)
}
