// Package cli implements the magemock command line.
//
//	magemock serve --config magemock.yaml --seed 'fixtures/**/*.yaml'
//	magemock version
package cli
