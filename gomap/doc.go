// Package gomap converts between [ir.Node] trees and plain Go values
// (maps, slices and scalars), and through them to and from YAML.
//
// [ToAny] and [FromAny] bridge to code that works on map[string]any, such
// as expression evaluators. [ToOrdered] and [FromYAML] keep object field
// order by using yaml.MapSlice in place of maps.
package gomap
