// Package schema builds a field format from index definitions.
//
// A [Spec] names indexes, and each index names the nested fields it covers
// with field paths such as "meta.tags[1]" or "a['x y'].b". A [Format]
// interns every path of every index into a [tree.Tree], so that two parts
// naming the same field share one [Field], and checks that the paths agree
// on the shape of the record: a field reached with a string key is a map,
// one reached with a numeric key is an array, and a leaf has one type.
//
// Specs are read from YAML:
//
//	name: users
//	indexes:
//	- name: primary
//	  parts:
//	  - path: id
//	    type: unsigned
//	- name: by_tag
//	  parts:
//	  - path: meta.tags[1]
//	    type: string
//	    nullable: true
package schema
