// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive console application runtime.
//
// It wires the terminal UI, client services, and the background refresh
// poller into a single process lifecycle: restore or establish a session,
// run the console, and clear the session again on logout.
package client
