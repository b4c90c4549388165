// Package stream adapts the codec to incrementally-readable and writable
// resources such as files and sockets.
//
// Decode pulls bytes through a bounded buffer rather than reading the
// whole document up front; Encode writes through a bounded buffer rather
// than materializing the full text. Failures of the underlying resource
// surface as io errors wrapping the resource's own error, distinct from
// parse and format errors.
//
// The codec imposes no timeouts of its own. Cancelling a long decode or
// encode is done by closing or aborting the underlying resource, which
// shows up here as an io error rather than a hang.
package stream
