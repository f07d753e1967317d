// Package atomicfile writes files through a temp file and rename, so a page
// being served from disk is never observed half-written.
package atomicfile
