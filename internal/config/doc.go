// Package config provides configuration management for carouselctl.
//
// Configuration is loaded from several YAML sources and merged in order,
// with later sources overriding earlier ones field by field:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/carouselctl/config.yaml)
//  3. Project configuration (./.carouselctl/config.yaml)
//  4. An explicit file passed with --config
//
// Command-line flags are applied on top by the cmd package, again only for
// flags the user actually set.
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info
//
//	carousel:
//	  interval: 5s      # or 5000 (milliseconds); 0 disables auto-advance
//	  noWrap: false
//	  keyboard: true
//	  active: 0
//
//	deck:
//	  dir: ./slides     # *.md and *.txt files, sorted by name
//	  watch: true
//	  configMap: default/slides
//	  slides:
//	    - id: intro
//	      title: Hello
//	      body: "# Hello"
//
//	remote:
//	  enabled: false
//	  host: localhost
//	  port: 8090
//
// Carousel fields are pointers: an absent key leaves the lower layer's value
// in place, an explicit false or 0 overrides it.
package config
