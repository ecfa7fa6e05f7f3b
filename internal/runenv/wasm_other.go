//go:build !js && !wasip1

package runenv

const inWASM = false
