// Package profile provides optional runtime profiling for flatenv.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	flatenv --pprof-mode=cpu --pprof-dir=/tmp/prof export big.json
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op
// [Stopper]. Profiles are analyzed with go tool pprof:
//
//	go tool pprof -http=: /tmp/prof/cpu.pprof
//
// The default output directory is the "pprof" subdirectory of the user cache
// directory, for example $XDG_CACHE_HOME/flatenv/pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
