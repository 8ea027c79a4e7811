// Package cli implements the passkeeper command-line client on cobra.
//
// Commands:
//
//	register <username>        create an account
//	login <username>           print a session token
//	verify                     check the session token
//	list                       show the caller's vault entries
//	add --title <title>        store a new secret
//
// Passwords and secrets are read from the terminal without echo and wiped
// after use. The session token comes from --token or PASSKEEPER_TOKEN.
package cli
