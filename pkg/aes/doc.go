/*
Package aes implements the AES block cipher (FIPS-197) from first
principles, together with ECB and CBC modes (NIST SP 800-38A) and PKCS#7
padding.

Key Sizes:
  - 16 bytes: AES-128, 10 rounds
  - 24 bytes: AES-192, 12 rounds
  - 32 bytes: AES-256, 14 rounds

Basic Usage:

	c, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	iv, err := aes.GenerateIV()
	if err != nil {
		return err
	}

	ciphertext, err := c.Seal(plaintext, aes.CBC, iv)
	...
	plaintext, err := c.Open(ciphertext, aes.CBC, iv)

The IV is not part of the ciphertext; callers store or send it themselves.
Passing a nil IV with CBC selects InsecureDefaultIV, which is the same for
every message and so must not be used to protect real data.

A Cipher also satisfies crypto/cipher.Block, so it can be handed to any
mode in crypto/cipher, and the mode constructors here accept any
cipher.Block.

A Cipher holds only its round keys and is safe for concurrent use. Chaining
state lives in the BlockMode built for each call.

The implementation uses table lookups indexed by secret data and is not
constant time. It must not be used where an attacker can measure timing or
cache behaviour.
*/
package aes
