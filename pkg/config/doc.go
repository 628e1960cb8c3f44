// Package config loads the magemock configuration and its fixture files.
//
// The configuration file is YAML or JSON, detected by extension:
//
//	server:
//	  port: 8080
//	  readTimeout: 30
//	  writeTimeout: 30
//	log:
//	  level: info
//	  format: text
//	admin:
//	  username: admin
//	  password: password123
//	  tokenTtl: 4h
//	platform:
//	  version: "2.4"
//	seed:
//	  paths:
//	    - fixtures/**/*.yaml
//
// Values set through MAGEMOCK_* environment variables override the file.
//
// Fixture files hold the orders, products, stock items, attributes,
// categories, shipments and invoices loaded into the store at startup. Every
// file is checked against an embedded JSON Schema before it is decoded.
package config
