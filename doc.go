// Package barskema converts the loosely specified JSON documents returned by
// the BARS school portal into typed Go records and back.
//
// It provides:
//
//   - Explicit per-type field tables (Schema) built from typed field
//     constructors, with named Prepare and Export steps for wire quirks
//   - Decode that drops and reports unknown keys but fails on missing or
//     mistyped ones, returning every problem as Issues (JSON Pointer, code, message)
//   - Encode into the wire convention (camelCase keys) or a debug dump
//     (reserved Go identifiers escaped with a trailing "_")
//   - Sanitize, which turns markup in every string leaf of a Value or record
//     into display text, rewriting anchors as [label](url)
//   - Reading JSON or YAML input with duplicate-key/depth/size enforcement
//
// Typical usage:
//
//	doc, err := barskema.ReadDocument(ctx, barskema.JSONBytes(data))
//	day, err := records.DiaryDaySchema.Decode(ctx, doc, barskema.DecodeOpt{Reporter: rep})
//	clean, err := barskema.SanitizeRecord(records.DiaryDaySchema, day)
//
//	wire := barskema.Encode(records.DiaryDaySchema, day, barskema.EncodeWire)
//
// Schemas are immutable after package initialization; every operation is
// safe for concurrent use.
package barskema
