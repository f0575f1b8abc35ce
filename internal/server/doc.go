// SPDX-License-Identifier: Apache-2.0

// Package server runs the stub API's HTTP transport.
//
// It owns the server lifecycle: startup, SIGINT/SIGTERM handling, and
// graceful shutdown.
package server
