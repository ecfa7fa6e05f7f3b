//go:build js || wasip1

package runenv

// WASM targets have no raw socket access; the browser sandbox is the only
// host that ships this binary shape.
const inWASM = true
