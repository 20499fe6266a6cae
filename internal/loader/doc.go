// Package loader finds JavaScript and TypeScript sources on disk and parses
// them into source.Files.
package loader
