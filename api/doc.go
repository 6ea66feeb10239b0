// Package api
// Author: momentics <momentics@gmail.com>
//
// Abstract capability surface of hioload-alloc: allocator strategies,
// owned buffer handles, and the reusable-buffer cache contract.
// Concrete strategies live in package alloc; the cache in package pool.
package api
