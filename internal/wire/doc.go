// Package wire defines the typed packets the appearance pipeline consumes
// and produces, the packed texture-entry codec, and the transport capability
// interfaces. Session framing and authentication live behind the Sender and
// are out of scope here.
package wire
