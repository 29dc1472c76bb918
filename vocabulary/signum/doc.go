// Package signum provides the Signum provenance vocabulary.
//
// The vocabulary has two parts:
//   - Levels: the closed set of five authorship levels and their display names
//   - Fields: the metadata field names read from a document head, all sharing
//     the "signum:" prefix
//
// # Levels
//
// Levels are ordered from fully human to fully automated:
//
//	H      Level 0: Human
//	H-AE   Level 1: Human, AI-Enhanced
//	AI-HR  Level 2: AI-Assisted, Human-Reviewed
//	AI-HP  Level 3: AI-Generated, Human-Prompted
//	AI-FA  Level 4: Fully Automated AI
//
// The name table is initialized once and only exposed through functions, so no
// caller can modify it at runtime.
package signum
