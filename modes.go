// modes.go - ECB/CBC/CTR mode drivers.
package aesfd

import "errors"

// EncryptECB encrypts buf in place, block by block, independently. len(buf)
// must be a multiple of blockLen.
func (ctx *Context) EncryptECB(buf []byte) error {
	return ctx.forEachBlock(buf, ctx.encryptBlock)
}

// DecryptECB decrypts buf in place, block by block, independently.
func (ctx *Context) DecryptECB(buf []byte) error {
	return ctx.forEachBlock(buf, ctx.decryptBlock)
}

// EncryptCBC chains blocks with the context's IV: each plaintext block is
// XORed with the previous ciphertext block (the IV for the first) before
// entering the pipeline. Advances ctx's IV to the last ciphertext block, so
// a caller streaming multiple buffers through the same Context continues
// the chain correctly.
func (ctx *Context) EncryptCBC(buf []byte) error {
	if !ctx.ivSet {
		return ErrInvalidIVState
	}
	if len(buf)%blockLen != 0 {
		return &LengthError{Length: len(buf)}
	}

	prev := ctx.iv
	for off := 0; off < len(buf); off += blockLen {
		block := buf[off : off+blockLen]
		for i := 0; i < blockLen; i++ {
			block[i] ^= prev[i]
		}
		if err := ctx.encryptBlock(block); err != nil {
			setBlocksComplete(err, off/blockLen)
			return err
		}
		copy(prev[:], block)
	}
	ctx.iv = prev
	return nil
}

// DecryptCBC reverses EncryptCBC: each ciphertext block is run through the
// inverse pipeline, then XORed with the previous ciphertext block (the IV
// for the first).
func (ctx *Context) DecryptCBC(buf []byte) error {
	if !ctx.ivSet {
		return ErrInvalidIVState
	}
	if len(buf)%blockLen != 0 {
		return &LengthError{Length: len(buf)}
	}

	prev := ctx.iv
	for off := 0; off < len(buf); off += blockLen {
		block := buf[off : off+blockLen]
		var cipherCopy [blockLen]byte
		copy(cipherCopy[:], block)

		if err := ctx.decryptBlock(block); err != nil {
			setBlocksComplete(err, off/blockLen)
			return err
		}
		for i := 0; i < blockLen; i++ {
			block[i] ^= prev[i]
		}
		prev = cipherCopy
	}
	ctx.iv = prev
	return nil
}

// XCryptCTR XORs buf against a keystream generated by encrypting successive
// big-endian counter values starting from ctx's current IV/counter. CTR
// keystream generation is its own inverse, so this single method serves
// both encryption and decryption. Matches original_source/aes.c's lazy
// per-byte keystream regeneration: a fresh 16-byte keystream block is only
// produced when the running byte index wraps back to 0, and the counter is
// incremented (with carry) immediately after each block is produced.
func (ctx *Context) XCryptCTR(buf []byte) error {
	if !ctx.ivSet {
		return ErrInvalidIVState
	}

	var keystream [blockLen]byte
	bi := blockLen // forces regeneration on the first byte

	for i := range buf {
		if bi == blockLen {
			keystream = ctx.iv
			if err := ctx.encryptBlock(keystream[:]); err != nil {
				setBlocksComplete(err, i/blockLen)
				return err
			}
			incrementCounter(&ctx.iv)
			bi = 0
		}
		buf[i] ^= keystream[bi]
		bi++
	}
	return nil
}

// incrementCounter treats iv as a 128-bit big-endian integer and adds one,
// propagating carry from the least significant byte.
func incrementCounter(iv *[blockLen]byte) {
	for i := blockLen - 1; i >= 0; i-- {
		iv[i]++
		if iv[i] != 0 {
			break
		}
	}
}

// forEachBlock runs fn over every block-sized slice of buf in place.
func (ctx *Context) forEachBlock(buf []byte, fn func([]byte) error) error {
	if len(buf)%blockLen != 0 {
		return &LengthError{Length: len(buf)}
	}
	for off := 0; off < len(buf); off += blockLen {
		if err := fn(buf[off : off+blockLen]); err != nil {
			setBlocksComplete(err, off/blockLen)
			return err
		}
	}
	return nil
}

// setBlocksComplete fills in FaultError.BlocksComplete when a mode driver
// aborts partway through a multi-block buffer.
func setBlocksComplete(err error, n int) {
	var fe *FaultError
	if errors.As(err, &fe) {
		fe.BlocksComplete = n
	}
}
