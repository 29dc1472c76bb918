// Package renderer writes Signum indicator elements into placeholder slots.
//
// # Overview
//
// A placeholder slot is any element matching the configured selector, by default
// [data-signum-placeholder]. For every slot the renderer removes the existing
// children and appends one indicator:
//
//	<span class="signum-label signum-h-ae" data-tooltip="..." aria-label="..."
//	      role="img" tabindex="0"></span>
//
// Because slots are cleared first, rendering the same document repeatedly leaves
// exactly one indicator per slot.
//
// # Escaping
//
// Every metadata value is untrusted. The indicator is a real element in the
// tree: its data-tooltip attribute holds the tooltip lines separated by real
// line breaks, so hosts walking the tree see ordinary attribute values.
// source.Document serializes leaf elements carrying control characters with
// explicit escaping (quotes, angle brackets, ampersands and control characters
// become character references). Each line break is written as &#10;, and a
// literal "&#10;" inside a value is written as "&amp;#10;", so nothing in a
// crafted value can leave its attribute or fake a line break.
//
// Slots that cannot hold an inline element through a parse are skipped: void
// elements (img, input, ...), table structure (table, tr, ...), select content,
// raw text and RCDATA elements (script, style, textarea, title, ...), and
// foreign SVG or MathML elements.
package renderer
