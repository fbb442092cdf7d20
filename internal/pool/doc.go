// Package pool provides pooled scratch buffers for runseq internals.
//
// Fingerprinting serializes runs into a byte buffer before hashing. The buffers come
// from a sync.Pool so repeated fingerprints do not allocate:
//
//	buf := pool.GetHashBuffer()
//	defer pool.PutHashBuffer(buf)
package pool
