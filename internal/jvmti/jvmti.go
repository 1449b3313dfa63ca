// Package jvmti exposes the host-compiled jvmtiCapabilities structure as a
// probe target. The structure and every field write are compiled by the
// host C toolchain, so the bytes observed after a write reflect the actual
// ABI bit-field packing rather than any assumed rule.
package jvmti

import "errors"

// ErrUnavailable is returned by New when the binary was built without cgo.
// Without the host C toolchain there is no structure instance to observe.
var ErrUnavailable = errors.New("jvmti: capabilities target requires cgo")
