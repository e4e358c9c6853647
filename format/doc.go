// Package format holds the small enums and layout constants shared by the
// geometry binary codec and the pack container.
package format
