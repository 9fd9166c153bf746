// Package certificate renders personalized certificate PDFs.
//
// A render takes a recipient display name, a template image (PNG or JPEG), a
// TrueType font and a placement point, draws the name onto the template,
// flattens any transparency onto an opaque white canvas and writes the result
// as a single-page PDF. Downstream viewers assume an opaque single-page
// document, hence the flattening.
//
// Output files are written atomically (temp file + rename), so a failed
// render never leaves a partial PDF behind. Output names are keyed on the
// sanitized display name plus a caller-supplied per-row token, so two
// recipients with the same name cannot overwrite each other's certificate.
package certificate
