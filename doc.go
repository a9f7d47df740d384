// Package redfishgen compiles Redfish CSDL JSON schemas into Go resource
// types.
//
// Feed it the schema documents a service exposes and it produces Go
// structs for every reachable resource type, string-typed enums, excerpt
// projection structs for summary views, and action request payloads.
//
// The module is organized into four packages plus a command:
//
//   - [github.com/redfish-tools/redfishgen/csdl] — CSDL JSON document model and annotation vocabularies
//   - [github.com/redfish-tools/redfishgen/compiler] — demand-driven schema compiler producing the typed model
//   - [github.com/redfish-tools/redfishgen/optimizer] — inheritance-chain pruning over the compiled model
//   - [github.com/redfish-tools/redfishgen/gen] — Go code generator (template based)
//   - cmd/redfishgen — the command line front end
//
// Everything compiles and tests without network access or a live service;
// the inputs are static schema files.
package redfishgen
