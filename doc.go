// Package bitfield reads and writes scalar numeric fields stored at
// arbitrary bit offsets inside a byte buffer. A field is described
// once, by New, with its starting bit, width in bits and type tag;
// the returned Accessor then reads or writes that field against any
// buffer of sufficient size, any number of times, with no reference
// to any particular buffer held in between.
package bitfield
