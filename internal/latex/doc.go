// Package latex turns a card record into LaTeX source.
//
// The card layout is a fixed template (embedded at build time) with a
// named placeholder per field; [Render] fills it in and returns the
// complete document. There is deliberately no general templating
// surface here: the template is an implementation detail and the set
// of placeholders is closed.
//
// The one transformation that carries correctness weight is [Escape]:
// every user-entered text value passes through it exactly once before
// substitution, so no field content can change the structure of the
// generated document. Image filenames are the exception; they must
// match files on disk byte-for-byte and are therefore validated with
// [CheckImageName] instead of escaped.
package latex
