// Package w3dxml persists scenes in the archive project document format:
// one XML element per record, legacy attribute spellings preserved so
// documents written by earlier tooling keep loading.
//
// Encoding is total — any valid in-memory record serializes. Decoding is
// strict: structurally broken documents (a LinkRoot without its Link child, a
// Timeline without a name, an unparseable corner tuple) surface
// *errs.MalformedDocumentError instead of degrading into partial records.
package w3dxml
