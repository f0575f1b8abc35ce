// SPDX-License-Identifier: Apache-2.0

// Package http implements the development stub of the CPM REST API.
//
// The stub keeps its whole state in memory and fabricates plausible data: it
// exists so the console can be developed and demonstrated without a real CPM
// backend. Rotation and validation follow simple deterministic rules instead
// of touching any target system, and binary report formats carry placeholder
// payloads. Tracing, logging, and JWT authentication are handled by
// middleware before requests reach the handlers.
package http
