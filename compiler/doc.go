// Package compiler drives the build pipeline: read a velocity source file,
// scan and parse it, resolve its import closure, collect symbols, generate
// Go source, and write the result next to the input (or wherever the
// project manifest points).
//
// What the package offers:
//
//   - Compile — the full pipeline, producing one formatted Go file per
//     velocity file in the closure.
//   - Check — the front half only: everything up to symbol resolution,
//     reporting diagnostics without writing output.
//   - Run — Compile plus executing the program through the Go toolchain.
//
// Imports name sibling files: `import geometry;` loads geometry.vel from
// the importing file's directory, transitively and cycle-checked. The math
// module is built in and resolves to the runtime, never to a file.
//
// A velocity.toml manifest, found by walking up from the source file,
// seeds the configuration; explicit options always win over it.
package compiler
