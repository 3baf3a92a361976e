/*
Package viz renders splay trees for visual inspection.

Rendering works on the erased engine level (splay/topdown), so one
renderer serves every index type; labels for records are produced by a
client-supplied Labeler. Typed façade users reach the engine through
Tree.Engine().

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splay'
func tracer() tracing.Trace {
	return tracing.Select("splay")
}
