// Package auth issues the admin tokens of the mock.
//
// Tokens are HS256 JWTs. The mock never checks them on later requests; they
// exist so client code can run its login step unchanged.
package auth
