// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the bytering library.
//
// The api package holds only interfaces and error types so that
// implementations (ring, pool, protocol) can depend on contracts
// without depending on each other.
package api
