// Package encode renders paths, token streams and path trees as text,
// optionally in color.
package encode
