// Package encoding provides the variable-length sections of the geometry pack
// format that do not fit the fixed structures of package section.
//
// The only such section today is the key names payload, which stores the
// original key strings so a decoder can resolve keys whose xxHash64 ids
// collide and can list the keys of a pack.
package encoding
