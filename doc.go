// Package jsonv ties the JSON value engine together with document level
// operations.
//
// [Patch] applies an RFC 6902 patch, [MergePatch] an RFC 7386 merge patch,
// and [Diff] and [MergeDiff] compute the patches turning one document into
// another. Trees come from package parse and are written with package
// encode; see package ir for their structure.
package jsonv
