// Package pem reads and writes RFC 7468 text armor for key documents.
//
// The base64 body is produced and parsed with the constant-time codec in
// internal/encoding, and decoded documents are returned as secret buffers, so
// private keys never pass through encoding/pem's table-driven decoder.
package pem
