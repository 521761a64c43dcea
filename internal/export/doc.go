// Package export maps Journey records to Markdown files.
//
// # Destination Paths
//
// Every entry is written below the target root using its journal time:
//
//	YYYY/MM/DD/YYYY-MM-DD-HH-MM-SS-ffffff-ZONE.md
//
// For example an entry written at 2023-07-04 08:15:30.5 UTC becomes:
//
//	2023/07/04/2023-07-04-08-15-30-500000-UTC.md
//
// ZONE is the abbreviation in effect at that instant (BST, CET, +0530),
// so the same instant recorded under two timezones lands in two files.
// Microseconds and zone together are the only collision avoidance; two
// entries sharing both will map to the same file.
//
// # Content
//
// By default the file body is the entry text, verbatim:
//
//	out := export.Map(record, zones, export.RenderOptions{})
//
// With RenderOptions.FrontMatter the body is prefixed with YAML metadata:
//
//	---
//	id: 1688458530500-3f7c2a1b9e
//	date: "2023-07-04T09:15:30.5+01:00"
//	modified: "2023-07-04T10:15:30+01:00"
//	timezone: Europe/London
//	tags:
//	    - summer
//	---
//
// # Writing
//
// Map is pure. Writer is the filesystem side: it creates day directories
// as needed and refuses to overwrite existing files unless forced.
package export
