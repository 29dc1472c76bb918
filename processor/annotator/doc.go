// Package annotator runs the Signum render pass over a parsed document.
//
// A pass is strictly sequential and runs once per call:
//
//  1. Read the six signum:* meta fields from the document head
//  2. Validate mandatory fields and the level code
//  3. Format the tooltip and accessible label
//  4. Render one indicator into every placeholder slot
//
// Missing metadata and unknown levels are recoverable: the pass logs a single
// warning on the operator logger, leaves the document untouched, and reports
// StatusSkipped. A document without placeholder slots is not an error either.
//
// Annotate is the explicit entry point for hosts. It does not detect how or
// when the document was produced; callers invoke it once their tree is built.
package annotator
