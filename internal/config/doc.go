// Package config provides configuration parsing for the gallery server.
//
// The configuration is stored in gallery.json or gallery.toml next to the
// binary, or at the path given with --config. The format is selected by the
// file extension. Every field has a default, so running without a file is
// valid and serves the embedded seed catalog.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "invalidateToken": "s3cret"
//	  },
//	  "provider": {
//	    "kind": "rest",
//	    "url": "https://project.example.co",
//	    "apiKey": "anon-key",
//	    "sanitize": true
//	  },
//	  "cache": {
//	    "store": "redis",
//	    "ttl": "5m",
//	    "redisAddr": "localhost:6379"
//	  },
//	  "render": {
//	    "streaming": true,
//	    "loadingGrace": "50ms"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "json"
//	  }
//	}
//
// # Environment
//
// Values from the environment override the file. Variables are named
// GALLERY_<SECTION>_<FIELD>, for example GALLERY_SERVER_PORT or
// GALLERY_PROVIDER_API_KEY.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
