// Package archive packs and unpacks the tar bundle that becomes a
// vault's encrypted body: the depositor's files, a privacy notice, and a
// private manifest holding the full serialized vault record.
//
// Packing walks a staging directory and produces the whole archive in
// memory using the standard library's [archive/tar] in GNU format;
// unpacking extracts it into a destination directory.
package archive
