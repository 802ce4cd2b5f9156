// Package render drives pdflatex to turn generated card sources into
// PDF files. Each build is isolated in a temporary directory and
// bounded by a timeout. Failures come back as typed errors:
// [ToolMissingError] when the binary cannot be resolved,
// [MissingAssetError] when image files could not be staged and the
// compile then failed, [CompileError] for everything else.
package render
