// Package config loads tagkit configuration.
//
// Configuration is read from tagkit.toml, tagkit.yaml, tagkit.yml or
// tagkit.json (the first one found), then overridden by TAGKIT_*
// environment variables. The first underscore after the prefix separates
// the section from the key, so TAGKIT_PUBLISH_BUCKET sets publish.bucket and
// TAGKIT_SERVER_SHUTDOWN_TIMEOUT sets server.shutdown_timeout.
//
// # Configuration File Structure
//
//	[server]
//	address = ":8080"
//	shutdown_timeout = "30s"
//	max_body_bytes = 1048576
//
//	[theme]
//	file = "theme.toml"
//	default = "dark"
//
//	[metrics]
//	namespace = "tagkit"
//
//	[publish]
//	bucket = "my-site"
//	prefix = "docs/"
//	region = "eu-west-1"
//	endpoint = ""
//	path_style = false
//	dir = "public"
//
//	[log]
//	level = "info"
//	format = "text"
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Address:", cfg.Server.Address)
package config
