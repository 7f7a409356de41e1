// Package vpn drives the Cisco AnyConnect command-line client.
//
// # Connection Flow
//
// The AnyConnect CLI, started as
//
//	/opt/cisco/anyconnect/bin/vpn -s connect <host>
//
// reads three answers from stdin, one per line:
//
//  1. the group (tunnel profile) to use
//  2. the username
//  3. the password
//
// Client.Connect writes all three in one write, closes stdin and waits for
// the CLI to exit, returning whatever it printed. Establishing the tunnel
// itself is entirely up to the AnyConnect binary.
//
// # Exit Status
//
// The CLI's exit status is logged but not reported as an error; callers
// get the captured text in every case.
package vpn
