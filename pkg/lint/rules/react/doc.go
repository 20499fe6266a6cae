// Package react provides lint rules about React usage in JSX and TSX sources.
package react
