package config

type (
	NET struct {
		// ReadBufferSize is the size in bytes of the buffered reader wrapping
		// each accepted connection.
		ReadBufferSize int
		// WriteBufferSize stores the serialized HTTP response before it is
		// flushed onto the wire.
		WriteBufferSize int
	}

	HTTP struct {
		// HeadersPrealloc is the number of header seats allocated per request
		// before growth kicks in.
		HeadersPrealloc int
		// FileBuffSize bounds the intermediate buffer used to stream files, so
		// serving a file takes O(FileBuffSize) memory rather than O(file size).
		FileBuffSize int
		// ResponseBuffSize is the initial capacity of the serializer's render
		// buffer.
		ResponseBuffSize int
	}

	FS struct {
		// Dir is the directory served under /files/. Set once at startup and
		// treated as immutable for the process lifetime.
		Dir string `test:"nullable"`
	}
)

// Config holds settings used across the server: buffer sizes, pre-allocations
// and the served directory.
//
// Always modify defaults (returned via Default()) instead of initializing the
// struct manually, otherwise zero-valued buffers produce ambiguous errors.
type Config struct {
	NET  NET
	HTTP HTTP
	FS   FS
}

// Default returns the default config. The values are balanced for ordinary
// requests: a couple of kilobytes covers nearly every request line and header
// section this server is asked to parse.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
		},
		HTTP: HTTP{
			HeadersPrealloc:  10,
			FileBuffSize:     64 * 1024,
			ResponseBuffSize: 1024,
		},
	}
}

// Fill backfills zero-valued fields of the passed config with defaults,
// letting callers override only what they care about.
func Fill(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}

	defaults := Default()
	cfg.NET.ReadBufferSize = either(cfg.NET.ReadBufferSize, defaults.NET.ReadBufferSize)
	cfg.NET.WriteBufferSize = either(cfg.NET.WriteBufferSize, defaults.NET.WriteBufferSize)
	cfg.HTTP.HeadersPrealloc = either(cfg.HTTP.HeadersPrealloc, defaults.HTTP.HeadersPrealloc)
	cfg.HTTP.FileBuffSize = either(cfg.HTTP.FileBuffSize, defaults.HTTP.FileBuffSize)
	cfg.HTTP.ResponseBuffSize = either(cfg.HTTP.ResponseBuffSize, defaults.HTTP.ResponseBuffSize)

	return cfg
}

func either(custom, fallback int) int {
	if custom == 0 {
		return fallback
	}

	return custom
}
