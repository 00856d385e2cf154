// Thin layer over the decred secp256k1 implementation, exposing just the curve operations the eckey package needs: scalar validation and generation, point derivation and parsing, ECDSA with low-S normalization, the DER signature codec, and SEC 1 private key encoding.
//
// All functions are pure and reentrant.
package secp
